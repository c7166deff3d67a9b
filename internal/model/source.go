// Package model defines the data structures shared by the scaffolding workflow.
package model

// Path represents a file system path.
type Path string

// StdioPath is the path value that stands for stdin/stdout.
const StdioPath Path = "-"

// IsStdio reports whether p refers to the standard streams.
func (p Path) IsStdio() bool {
	return p == StdioPath || p == ""
}

// Declaration is a property recognized by the declaration pattern,
// e.g. `let centeringContainer = UIView()`.
type Declaration struct {
	Name string
	Line int // 0-based line index in the buffer it was scanned from
}
