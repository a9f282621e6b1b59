package lines

import "strings"

// DefaultCommentMarker starts a line that is excluded from parsing.
const DefaultCommentMarker = "#"

// SkipComments drops every line starting with marker, wherever it appears in
// the stream. Other lines pass through untouched. An empty marker disables
// filtering.
func SkipComments(in Seq, marker string) Seq {
	return func(yield func(string, error) bool) {
		for line, err := range in {
			if err == nil && marker != "" && strings.HasPrefix(line, marker) {
				continue
			}
			if !yield(line, err) {
				return
			}
		}
	}
}
