package widget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/livemark/pkg/widget"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer := widget.NewRenderer(false)

	tests := []struct {
		name string
		spec widget.Spec
		want string
	}{
		{
			name: "block open",
			spec: widget.Spec{Kind: widget.KindBlockOpen},
			want: "Blog post",
		},
		{
			name: "block open published",
			spec: widget.Spec{Kind: widget.KindBlockOpen, Published: true},
			want: "Blog post published",
		},
		{
			name: "block open with publish affordance",
			spec: widget.Spec{Kind: widget.KindBlockOpen, HasPublish: true},
			want: "Blog post Publish",
		},
		{
			name: "block open published with affordance",
			spec: widget.Spec{Kind: widget.KindBlockOpen, Published: true, HasPublish: true},
			want: "Blog post published Republish",
		},
		{
			name: "block close",
			spec: widget.Spec{Kind: widget.KindBlockClose},
			want: "···",
		},
		{
			name: "code label without language",
			spec: widget.Spec{Kind: widget.KindCodeLabel},
			want: "Code",
		},
		{
			name: "code label with language",
			spec: widget.Spec{Kind: widget.KindCodeLabel, Lang: "go"},
			want: "Code (go)",
		},
		{
			name: "image with alt text",
			spec: widget.Spec{Kind: widget.KindImage, Alt: "diagram", URL: "d.png"},
			want: "[image: diagram]",
		},
		{
			name: "image falls back to url",
			spec: widget.Spec{Kind: widget.KindImage, URL: "d.png"},
			want: "[image: d.png]",
		},
		{
			name: "post publish",
			spec: widget.Spec{Kind: widget.KindPostPublish, HasPublish: true, BlogName: "Tech"},
			want: "Publish → Tech",
		},
		{
			name: "post republish",
			spec: widget.Spec{Kind: widget.KindPostPublish, HasPublish: true, Published: true, BlogName: "Tech"},
			want: "Republish → Tech",
		},
		{
			name: "post publish without callback renders nothing",
			spec: widget.Spec{Kind: widget.KindPostPublish},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, renderer.Render(tt.spec))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "block-open", widget.KindBlockOpen.String())
	assert.Equal(t, "block-close", widget.KindBlockClose.String())
	assert.Equal(t, "code-label", widget.KindCodeLabel.String())
	assert.Equal(t, "image", widget.KindImage.String())
	assert.Equal(t, "post-publish", widget.KindPostPublish.String())
}

func TestIntentFunc(t *testing.T) {
	t.Parallel()

	var got widget.Intent
	var sink widget.IntentSink = widget.IntentFunc(func(i widget.Intent) {
		got = i
	})

	sink.PublishRequested(widget.Intent{BlockStartLine: 7, BlogName: "Tech"})

	assert.Equal(t, 7, got.BlockStartLine)
	assert.Equal(t, "Tech", got.BlogName)
}
