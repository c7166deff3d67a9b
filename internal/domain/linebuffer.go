package domain

import (
	"regexp"
	"strings"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

var blankLinePattern = regexp.MustCompile(`^[ \t]*\r?\n[ \t]*$`)

// LineBuffer is an immutable snapshot of a source buffer split into lines.
// Every line keeps its terminator so that concatenating the lines yields the
// original text byte for byte. Mutations return a new snapshot; indices taken
// from one snapshot must not be reused against another.
type LineBuffer struct {
	lines []string
}

// NewLineBuffer splits text into a snapshot.
func NewLineBuffer(text string) LineBuffer {
	return LineBuffer{lines: splitLines(text)}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Len returns the number of lines.
func (b LineBuffer) Len() int {
	return len(b.lines)
}

// Line returns line i including its terminator, or "" when i is out of range.
func (b LineBuffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}

	return b.lines[i]
}

// Lines returns a copy of the lines.
func (b LineBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)

	return out
}

// Text reconstructs the full buffer text.
func (b LineBuffer) Text() string {
	return strings.Join(b.lines, "")
}

// FindString returns the index of the first line in [start, start+length)
// containing s.
func (b LineBuffer) FindString(s string, start, length int) (int, bool) {
	return b.find(start, length, func(line string) bool {
		return strings.Contains(line, s)
	})
}

// FindPattern returns the index of the first line in [start, start+length)
// matching re.
func (b LineBuffer) FindPattern(re *regexp.Regexp, start, length int) (int, bool) {
	return b.find(start, length, re.MatchString)
}

// FindPatternSpan returns the absolute byte span, within Text(), of the first
// match of re on a line in [start, start+length).
func (b LineBuffer) FindPatternSpan(re *regexp.Regexp, start, length int) (m.Span, bool) {
	if length <= 0 {
		return m.Span{}, false
	}

	offset := 0

	for i, line := range b.lines {
		if i >= start && i < start+length {
			if loc := re.FindStringIndex(line); loc != nil {
				return m.Span{Offset: offset + loc[0], Length: loc[1] - loc[0]}, true
			}
		}

		offset += len(line)
	}

	return m.Span{}, false
}

func (b LineBuffer) find(start, length int, match func(string) bool) (int, bool) {
	if length <= 0 {
		return 0, false
	}

	for i, line := range b.lines {
		if i >= start && i < start+length && match(line) {
			return i, true
		}
	}

	return 0, false
}

// Newline returns the buffer's line terminator: "\r\n" when the first line
// ends with it, "\n" otherwise.
func (b LineBuffer) Newline() string {
	if len(b.lines) > 0 && strings.HasSuffix(b.lines[0], "\r\n") {
		return "\r\n"
	}

	return "\n"
}

// terminated rewrites the "\n" terminators of inserted text to the buffer's own.
func (b LineBuffer) terminated(text string) string {
	newline := b.Newline()
	if newline == "\n" {
		return text
	}

	return strings.ReplaceAll(text, "\n", newline)
}

// Prepend returns a snapshot with text placed immediately before line target.
// A target outside the buffer leaves it unchanged. Inserted text uses "\n"
// terminators; they are converted to the buffer's terminator.
func (b LineBuffer) Prepend(target int, text string) LineBuffer {
	text = b.terminated(text)

	return b.rebuild(target, func(sb *strings.Builder, line string, _ bool) {
		sb.WriteString(text)
		sb.WriteString(line)
	})
}

// Replace returns a snapshot with line target substituted by text. An empty
// text deletes the line, terminator included.
func (b LineBuffer) Replace(target int, text string) LineBuffer {
	text = b.terminated(text)

	return b.rebuild(target, func(sb *strings.Builder, _ string, _ bool) {
		sb.WriteString(text)
	})
}

// PrependSeparated behaves like Prepend but first emits a blank line unless
// the line preceding target is already blank.
func (b LineBuffer) PrependSeparated(target int, text string) LineBuffer {
	newline := b.Newline()
	text = b.terminated(text)

	return b.rebuild(target, func(sb *strings.Builder, line string, previousBlank bool) {
		if !previousBlank {
			sb.WriteString(newline)
		}

		sb.WriteString(text)
		sb.WriteString(line)
	})
}

// rebuild walks every line once, handing the target line to edit, and
// re-splits the result into a new snapshot.
func (b LineBuffer) rebuild(target int, edit func(sb *strings.Builder, line string, previousBlank bool)) LineBuffer {
	if target < 0 || target >= len(b.lines) {
		return b
	}

	var sb strings.Builder

	previousBlank := false

	for i, line := range b.lines {
		if i == target {
			edit(&sb, line, previousBlank)
		} else {
			sb.WriteString(line)
		}

		previousBlank = blankLinePattern.MatchString(line)
	}

	return NewLineBuffer(sb.String())
}
