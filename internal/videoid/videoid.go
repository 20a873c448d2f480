// Package videoid extracts canonical YouTube video identifiers from the
// assorted textual forms they show up in: watch-page URLs, embed URLs,
// shortened youtu.be links and Data API resource URIs.
package videoid

import (
	"fmt"
	"regexp"
)

// ID is the canonical 11-character identifier YouTube uses to address a
// single video, drawn from [a-zA-Z0-9_-]. Extraction returns whatever the
// matching alternative captured; the API is the authority on whether an ID
// actually exists.
type ID string

// Alternatives are tried leftmost-first: query parameter terminated by '&',
// v/ or vi/ path segment, embed path (also terminated by a double quote so
// HTML-embedded URLs work), bare query parameter, short link.
// Based on http://rubular.com/r/M9PJYcQxRW
var webURLPattern = regexp.MustCompile(`(?:v|i)=([a-zA-Z0-9-]+)&|(?:v|i)/([^&\n]+)|embed/([^"&\n]+)|(?:v|i)=([^&\n]+)|youtu\.be/([^&\n]+)`)

// ExtractionError reports that no known URL shape matched the input.
type ExtractionError struct {
	Input string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no video identifier found in %q", e.Input)
}

// FromWebURL extracts the video identifier from a watch-page URL, an embed
// URL or iframe snippet, a youtu.be link, or a v/ vi/ path form. The captured
// text is returned verbatim with no further validation. Returns an
// *ExtractionError carrying the input when nothing matches.
func FromWebURL(url string) (ID, error) {
	m := webURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", &ExtractionError{Input: url}
	}
	for _, group := range m[1:] {
		if group != "" {
			return ID(group), nil
		}
	}
	return "", &ExtractionError{Input: url}
}

// FromAPIURI derives the video identifier from an API resource URI, which
// ends in the video's 11-character identifier. The last 11 characters are
// taken verbatim; inputs that are not such URIs yield a wrong but non-erroring
// result. Inputs shorter than 11 characters are returned unchanged.
func FromAPIURI(uri string) ID {
	if len(uri) < 11 {
		return ID(uri)
	}
	return ID(uri[len(uri)-11:])
}
