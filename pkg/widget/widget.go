// Package widget defines the replace-with-widget payloads the decoration
// engine emits and their stateless renderers. A widget replaces a region
// that cannot be meaningfully styled in place: block sentinels, code fence
// markers, single-line images.
//
// Renderers compute display text only. Interactive affordances (the publish
// button) never call back into the engine; activating one raises an Intent
// for the host to handle out of band.
package widget

// Kind discriminates the widget variants.
type Kind uint8

const (
	// KindBlockOpen replaces an opening blog-block sentinel with a styled
	// label and, when available, a publish affordance.
	KindBlockOpen Kind = iota

	// KindBlockClose replaces a closing blog-block sentinel with a small
	// decorative marker.
	KindBlockClose

	// KindCodeLabel replaces a code fence marker line with a "Code" or
	// "Code (lang)" label.
	KindCodeLabel

	// KindImage replaces a single-line image reference with a preview.
	KindImage

	// KindPostPublish is the trailing publish affordance on a pseudo-post
	// opener line.
	KindPostPublish
)

// String returns a human-readable name for the widget kind.
func (k Kind) String() string {
	switch k {
	case KindBlockOpen:
		return "block-open"
	case KindBlockClose:
		return "block-close"
	case KindCodeLabel:
		return "code-label"
	case KindImage:
		return "image"
	case KindPostPublish:
		return "post-publish"
	default:
		return "unknown"
	}
}

// Spec is the tagged-union payload for a replace-with-widget annotation.
// Only the fields relevant to Kind are populated.
type Spec struct {
	Kind Kind

	// Published is true when the owning block carries a published flag.
	// Used by KindBlockOpen and KindPostPublish.
	Published bool

	// HasPublish is true when the host supplied a publish callback, so a
	// publish/republish affordance should be rendered at all.
	HasPublish bool

	// Lang is the code fence language for KindCodeLabel (may be empty).
	Lang string

	// Alt and URL describe the image for KindImage.
	Alt string
	URL string

	// StartLine is the 0-based line of the owning block's opening line.
	// Identifies the block in publish intents.
	StartLine int

	// BlogName is the registry blog name for KindPostPublish.
	BlogName string
}

// Intent identifies a publish request raised by an activated affordance.
// The host looks up the block content, runs the publish pipeline, and
// mutates the document itself; none of that happens here.
type Intent struct {
	// BlockStartLine is the 0-based line of the block's opening line.
	BlockStartLine int

	// BlogName is set for pseudo-post publishes, empty for custom blocks.
	BlogName string
}

// IntentSink receives publish intents from materialized widgets.
type IntentSink interface {
	PublishRequested(Intent)
}

// IntentFunc adapts a function to the IntentSink interface.
type IntentFunc func(Intent)

// PublishRequested calls f.
func (f IntentFunc) PublishRequested(intent Intent) {
	f(intent)
}
