package textcompare

// ColorPair represents a foreground and background color combination.
// Colors are CSS color values. Terminal renderers only understand hex strings
// in "#RRGGBB" format, so themes meant for both should use hex.
// Empty strings are valid and indicate no color override.
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a comparison.
type Styles struct {
	Matched   ColorPair // Text present identically on both sides
	Unmatched ColorPair // Side-exclusive or substituted text
	Title     ColorPair // Pane titles in interactive views
}

// Theme provides styles for rendering comparisons.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
