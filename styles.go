package relic

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements in rendered output.
type Styles struct {
	FileHeader ColorPair // Style for the file path in block headers
	CommitDate ColorPair // Style for commit dates in provenance
	CommitHash ColorPair // Style for shortened commit hashes
	Matched    ColorPair // Style for the matched line itself
	Context    ColorPair // Style for surrounding context lines
	LineNumber ColorPair // Style for the line-number gutter
	MatchedNum ColorPair // Style for the gutter of matched lines
	Note       ColorPair // Style for one-line provenance notes
}

// Theme provides styles for rendering matches.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
