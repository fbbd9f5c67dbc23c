package linkify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_PlainText(t *testing.T) {
	tests := []string{
		"",
		"no links here",
		"ftp-like text: example.com/path",
		"https:// alone is not a link",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			segs := Split(text)
			require.Len(t, segs, 1)
			assert.Equal(t, text, segs[0].Text)
			assert.False(t, segs[0].IsLink())
		})
	}
}

func TestSplit_URLInSentence(t *testing.T) {
	segs := Split("see https://x.test/a for more")

	require.Len(t, segs, 3)
	assert.Equal(t, Segment{Text: "see "}, segs[0])
	assert.Equal(t, Segment{Text: "https://x.test/a", Href: "https://x.test/a"}, segs[1])
	assert.Equal(t, Segment{Text: " for more"}, segs[2])
}

func TestSplit_URLOnly(t *testing.T) {
	segs := Split("https://www.youtube.com/watch?v=5ucZLeoO1QQ")

	require.Len(t, segs, 1)
	assert.True(t, segs[0].IsLink())
	assert.Equal(t, "https://www.youtube.com/watch?v=5ucZLeoO1QQ", segs[0].Href)
}

func TestSplit_MultipleURLs(t *testing.T) {
	segs := Split("a http://one.test b https://two.test/x?y=1\nc")

	require.Len(t, segs, 5)
	assert.Equal(t, "a ", segs[0].Text)
	assert.Equal(t, "http://one.test", segs[1].Href)
	assert.Equal(t, " b ", segs[2].Text)
	assert.Equal(t, "https://two.test/x?y=1", segs[3].Href)
	assert.Equal(t, "\nc", segs[4].Text)
}

func TestSplit_TrailingPunctuation(t *testing.T) {
	tests := []struct {
		name string
		text string
		href string
		tail string
	}{
		{"period", "Demo: https://x.test/v.", "https://x.test/v", "."},
		{"comma", "at https://x.test/a, then", "https://x.test/a", ", then"},
		{"paren", "(see https://x.test/b)", "https://x.test/b", ")"},
		{"several", "wow https://x.test/c!?", "https://x.test/c", "!?"},
		{"scheme only", "https://.", "https://.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Split(tt.text)

			var link Segment
			var after strings.Builder
			seen := false
			for _, s := range segs {
				if s.IsLink() {
					link = s
					seen = true
					continue
				}
				if seen {
					after.WriteString(s.Text)
				}
			}
			assert.Equal(t, tt.href, link.Href)
			assert.Equal(t, tt.tail, after.String())
		})
	}
}

func TestSplit_PreservesText(t *testing.T) {
	text := "Check out the demo video: https://www.youtube.com/watch?v=5ucZLeoO1QQ.\n\nThe idea was simple."

	var rebuilt strings.Builder
	for _, s := range Split(text) {
		rebuilt.WriteString(s.Text)
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestSplit_Idempotent(t *testing.T) {
	text := "intro https://a.test/x. middle (http://b.test) end"

	for _, s := range Split(text) {
		again := Split(s.Text)
		require.Len(t, again, 1, "segment %q split further", s.Text)
		assert.Equal(t, s, again[0])
	}
}

func TestLinks(t *testing.T) {
	assert.Nil(t, Links("nothing"))
	assert.Equal(t, []string{"https://a.test", "http://b.test/p"}, Links("https://a.test and http://b.test/p."))
}
