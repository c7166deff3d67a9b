package domain

import (
	"regexp"
	"strings"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

var (
	// enclosingEndPattern matches a closing brace at column 0.
	enclosingEndPattern = regexp.MustCompile(`^\}`)
	// functionEndPattern matches a closing brace indented one level. This is
	// a heuristic: the first such brace after a function's opening line is
	// taken as its end, even if it closes a nested block.
	functionEndPattern = regexp.MustCompile(`^    \}`)
	regionStartPattern = regexp.MustCompile(regexp.QuoteMeta(RegionStartMark))
)

// EnclosingBlockEnd finds the enclosing type's closing brace, searching from
// the anchor selection's last line to the end of the buffer.
func EnclosingBlockEnd(buf LineBuffer, anchor m.Selection) (int, bool) {
	start := anchor.End.Line

	return buf.FindPattern(enclosingEndPattern, start, buf.Len()-start)
}

// FunctionBodyEnd finds the closing brace of the function opened on line
// start, bounded above by the enclosing block end.
func FunctionBodyEnd(buf LineBuffer, anchor m.Selection, start int) (int, bool) {
	end, ok := EnclosingBlockEnd(buf, anchor)
	if !ok {
		return 0, false
	}

	return buf.FindPattern(functionEndPattern, start, end-start)
}

// HasRegion reports whether the generated region's start sentinel occurs
// anywhere in the buffer.
func HasRegion(buf LineBuffer) bool {
	return strings.Contains(buf.Text(), RegionStartMark)
}

// RegionStart returns the line holding the start sentinel.
func RegionStart(buf LineBuffer) (int, bool) {
	return buf.FindString(RegionStartMark, 0, buf.Len())
}

// RegionEnd returns the line holding the end sentinel.
func RegionEnd(buf LineBuffer) (int, bool) {
	return buf.FindString(RegionEndMark, 0, buf.Len())
}

// RegionSpan returns the byte span of the start sentinel in the buffer text.
func RegionSpan(buf LineBuffer) (m.Span, bool) {
	return buf.FindPatternSpan(regionStartPattern, 0, buf.Len())
}

// SectionExists reports whether the section label for name already occurs
// between the anchor selection and the enclosing block end. The label is
// matched as a substring, so a "Foo Viewer" section also gates "fooView".
func SectionExists(buf LineBuffer, anchor m.Selection, name string) bool {
	end, ok := EnclosingBlockEnd(buf, anchor)
	if !ok {
		return false
	}

	start := anchor.End.Line
	_, found := buf.FindString(SectionMark(name), start, end-start)

	return found
}

// stubBodyEnd locates the closing brace of the given lifecycle stub, looking
// only below the anchor selection.
func stubBodyEnd(buf LineBuffer, anchor m.Selection, s stub) (int, bool) {
	end, ok := EnclosingBlockEnd(buf, anchor)
	if !ok {
		return 0, false
	}

	start := anchor.End.Line

	open, ok := buf.FindString(s.signature, start, end-start)
	if !ok {
		return 0, false
	}

	return FunctionBodyEnd(buf, anchor, open)
}

// CountSections returns the number of section labels inside the generated
// region, or 0 when the region is absent.
func CountSections(buf LineBuffer) int {
	start, ok := RegionStart(buf)
	if !ok {
		return 0
	}

	end, ok := RegionEnd(buf)
	if !ok || end <= start {
		return 0
	}

	count := 0

	for line := start + 1; ; line++ {
		found, ok := buf.FindString(sectionMarkPrefix, line, end-line)
		if !ok {
			return count
		}

		count++
		line = found
	}
}
