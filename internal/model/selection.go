package model

import "fmt"

// Position is a 0-based line/column pair inside a buffer.
type Position struct {
	Line   int
	Column int
}

// Selection is a range of user-chosen text. Only line numbers matter for
// scanning; columns are carried so selections round-trip unchanged.
type Selection struct {
	Start Position
	End   Position
}

// Contains reports whether the line lies within the selection, both ends inclusive.
func (s Selection) Contains(line int) bool {
	return s.Start.Line <= line && line <= s.End.Line
}

// String renders the selection in the 1-based L:C-L:C form accepted by the CLI.
func (s Selection) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line+1, s.Start.Column+1, s.End.Line+1, s.End.Column+1)
}

// Span is an absolute byte range in a buffer's full text.
type Span struct {
	Offset int
	Length int
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Offset + s.Length
}
