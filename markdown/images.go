package markdown

import "regexp"

// ImageRef is one embedded image reference found in a Markdown body.
type ImageRef struct {
	Alt     string
	URL     string
	Caption *string
}

// Matches ![alt](url) and ![alt](url "caption"). URLs run to the first
// whitespace or closing paren so a trailing quoted caption is not swallowed.
var imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`)

// ExtractImages scans a Markdown body for embedded image references and
// returns them in document order. Alt defaults to the empty string; Caption
// is nil when the quoted segment is absent. The result is purely a function
// of the input text.
func ExtractImages(body string) []ImageRef {
	matches := imagePattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]ImageRef, 0, len(matches))
	for _, m := range matches {
		ref := ImageRef{Alt: m[1], URL: m[2]}
		if m[3] != "" {
			caption := m[3]
			ref.Caption = &caption
		}
		refs = append(refs, ref)
	}
	return refs
}
