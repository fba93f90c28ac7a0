// Package config defines the livemark configuration: the blog registry the
// decoration engine validates pseudo-post openers against, plus decoration
// and preview options. These are pure data structures; loading lives in
// yaml.go.
package config

import "github.com/yaklabco/livemark/pkg/decor"

// BlogEntry is one configured blog target.
type BlogEntry struct {
	// ID is the stable identifier the publish pipeline uses.
	ID string `yaml:"id"`

	// Name is the short name matched against @<name> post opener lines.
	Name string `yaml:"name"`
}

// PreviewConfig controls HTML preview output.
type PreviewConfig struct {
	// Standalone wraps the rendered fragment in a full HTML document.
	Standalone bool `yaml:"standalone"`

	// Title is the document title for standalone output.
	Title string `yaml:"title"`
}

// Config is the root configuration structure.
type Config struct {
	// Blogs is the ordered blog registry.
	Blogs []BlogEntry `yaml:"blogs"`

	// MetadataPrefix overrides the reserved always-hidden metadata line
	// prefix. Empty means the engine default.
	MetadataPrefix string `yaml:"metadata_prefix"`

	// DetectFenceLanguage enables content sniffing for unlabeled fences.
	DetectFenceLanguage bool `yaml:"detect_fence_language"`

	// Preview holds HTML preview options.
	Preview PreviewConfig `yaml:"preview"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		DetectFenceLanguage: true,
		Preview:             PreviewConfig{Standalone: true},
	}
}

// Registry converts the configured blogs into the engine's registry form.
func (c *Config) Registry() decor.Registry {
	registry := make(decor.Registry, len(c.Blogs))
	for i, b := range c.Blogs {
		registry[i] = decor.Blog{ID: b.ID, Name: b.Name}
	}
	return registry
}
