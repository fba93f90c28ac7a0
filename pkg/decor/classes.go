package decor

import "fmt"

// Style classes handed to the host substrate. The substrate maps these to
// its own theming; the engine only names them.
const (
	ClassBold   = "lv-bold"
	ClassItalic = "lv-italic"
	ClassStrike = "lv-strike"
	ClassCode   = "lv-code"
	ClassLink   = "lv-link"
	ClassTag    = "lv-tag"

	// ClassMarker styles revealed block markers so they match their
	// construct instead of reading as plain text.
	ClassMarker = "lv-marker"

	// Line classes.
	ClassQuoteLine  = "lv-line-quote"
	ClassCodeLine   = "lv-line-code"
	ClassHiddenLine = "lv-line-hidden"
	ClassAtLine     = "lv-line-at"
	ClassRule       = "lv-rule"

	classHeaderPrefix = "lv-header-"

	classBulletLine        = "lv-line-bullet"
	classNumberLine        = "lv-line-number"
	classTaskCheckedLine   = "lv-line-task-checked"
	classTaskUncheckedLine = "lv-line-task-unchecked"
)

// HeaderClass returns the style class for a header level (1-6).
func HeaderClass(level int) string {
	return fmt.Sprintf("%s%d", classHeaderPrefix, level)
}

// HeaderMarkerClass returns the marker style class for a revealed header
// marker, combining the marker variant with the level class.
func HeaderMarkerClass(level int) string {
	return ClassMarker + " " + HeaderClass(level)
}
