// Package langdetect sniffs the programming language of code fence content.
// The walker uses it to label fences that carry no info string: a confident
// guess turns the plain "Code" label into "Code (lang)".
//
// Detection runs go-enry behind a couple of cheap structural checks. An
// empty result means "not confident"; callers fall back to the unlabeled
// variant rather than guessing.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates bounds the enry classifier to languages that
// actually show up in fenced notes.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns the fence-tag language for code content, or "" when no
// confident detection is possible.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	if lang := detectByShape(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return ""
}

// detectByShape checks structural signatures that identify a language
// faster and more reliably than the classifier.
func detectByShape(trimmed []byte) string {
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("{")) && bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(trimmed, []byte("RUN ")):
		return "dockerfile"
	case hasSQLVerb(trimmed):
		return "sql"
	case bytes.Contains(trimmed, []byte("def ")) && bytes.Contains(trimmed, []byte("):")):
		return "python"
	case bytes.Contains(bytes.ToLower(trimmed), []byte("<!doctype html")) || bytes.Contains(trimmed, []byte("<html")):
		return "html"
	}
	return ""
}

// hasSQLVerb reports whether the content opens with a SQL statement verb.
func hasSQLVerb(trimmed []byte) bool {
	upper := strings.ToUpper(string(trimmed))
	for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, verb) {
			return true
		}
	}
	return false
}

// fenceTag converts an enry language name to a fence info-string tag.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
