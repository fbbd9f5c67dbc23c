// Package linkify splits free text into plain and link segments so raw URLs in
// project descriptions can be rendered as clickable anchors.
package linkify

import (
	"regexp"
	"strings"
)

// urlPattern matches an http(s) scheme followed by everything up to the next
// whitespace.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// trailing punctuation that ends a sentence rather than a URL
const trailingPunct = `.,;:!?)]}'"`

// Segment is one piece of linkified text. Href is empty for plain text.
type Segment struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// IsLink reports whether the segment should render as an anchor.
func (s Segment) IsLink() bool {
	return s.Href != ""
}

// Split breaks text into ordered segments. Text without URLs comes back as a
// single plain segment equal to the input.
func Split(text string) []Segment {
	matches := urlPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	plain := strings.Builder{}
	cursor := 0

	flush := func() {
		if plain.Len() > 0 {
			segments = append(segments, Segment{Text: plain.String()})
			plain.Reset()
		}
	}

	for _, m := range matches {
		plain.WriteString(text[cursor:m[0]])

		url := trimURL(text[m[0]:m[1]])
		flush()
		segments = append(segments, Segment{Text: url, Href: url})

		// whatever was trimmed off the match belongs to the following text
		plain.WriteString(text[m[0]+len(url) : m[1]])
		cursor = m[1]
	}
	plain.WriteString(text[cursor:])
	flush()

	return segments
}

// trimURL drops sentence punctuation from the end of a match, keeping it only
// when nothing but the scheme would remain.
func trimURL(match string) string {
	trimmed := strings.TrimRight(match, trailingPunct)
	if !urlPattern.MatchString(trimmed) || urlPattern.FindString(trimmed) != trimmed {
		return match
	}
	return trimmed
}

// Links returns only the link targets found in text, in order.
func Links(text string) []string {
	var hrefs []string
	for _, seg := range Split(text) {
		if seg.IsLink() {
			hrefs = append(hrefs, seg.Href)
		}
	}
	return hrefs
}
