package domain

import (
	"regexp"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// declarationPattern recognizes single-line declarations such as
// `let centeringContainer = UIView()`. Declarations with arguments, computed
// properties and multi-line forms are intentionally not recognized.
var declarationPattern = regexp.MustCompile(`(let|var) +([a-zA-Z0-9_]+) *= *[a-zA-Z]+\(\)`)

// LineKind classifies a buffer line for the scanner.
type LineKind int

const (
	// LineIgnored is any line the declaration pattern does not recognize.
	LineIgnored LineKind = iota
	// LineDeclaration is a recognized declaration.
	LineDeclaration
)

// ClassifyLine reports whether line holds a declaration and, if so, its name.
func ClassifyLine(line string) (LineKind, string) {
	match := declarationPattern.FindStringSubmatch(line)
	if match == nil {
		return LineIgnored, ""
	}

	return LineDeclaration, match[2]
}

// ScanDeclarations returns the declarations found on lines covered by at least
// one selection, in buffer order. Repeated names are kept.
func ScanDeclarations(buf LineBuffer, selections []m.Selection) []m.Declaration {
	var declarations []m.Declaration

	for i := 0; i < buf.Len(); i++ {
		if !inSelections(i, selections) {
			continue
		}

		kind, name := ClassifyLine(buf.Line(i))
		if kind != LineDeclaration {
			continue
		}

		declarations = append(declarations, m.Declaration{Name: name, Line: i})
	}

	return declarations
}

func inSelections(line int, selections []m.Selection) bool {
	for _, s := range selections {
		if s.Contains(line) {
			return true
		}
	}

	return false
}
