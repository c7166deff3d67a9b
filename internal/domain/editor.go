package domain

import (
	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// ScaffoldEditor rewrites a buffer so that every selected declaration is
// registered in the lifecycle stubs and owns a generated section.
type ScaffoldEditor interface {
	Scaffold(buf LineBuffer, selections []m.Selection) (LineBuffer, m.Report)
}

type scaffoldEditor struct{}

// NewScaffoldEditor constructs a ScaffoldEditor.
func NewScaffoldEditor() ScaffoldEditor {
	return &scaffoldEditor{}
}

// Scaffold runs scan, placeholder insertion, registration and placeholder
// removal in that order. Anchors are re-queried against the current snapshot
// before every edit. Any anchor that cannot be found skips the step that
// needs it; the call never fails.
func (e *scaffoldEditor) Scaffold(buf LineBuffer, selections []m.Selection) (LineBuffer, m.Report) {
	report := m.Report{}
	original := buf.Text()

	if len(selections) == 0 {
		return buf, report
	}

	anchor := selections[len(selections)-1]

	candidates := e.candidates(buf, selections, anchor, &report)

	if !HasRegion(buf) {
		if end, ok := EnclosingBlockEnd(buf, anchor); ok {
			buf = buf.PrependSeparated(end, regionTemplate)
			report.RegionCreated = true
		}
	}

	buf, inserted := e.insertPlaceholders(buf, anchor, &report)

	for _, name := range candidates {
		buf = e.register(buf, name)
		report.Registered = append(report.Registered, name)
	}

	buf = e.removePlaceholders(buf, inserted)

	report.Changed = buf.Text() != original

	return buf, report
}

// candidates returns the selected declaration names that have no section yet.
func (e *scaffoldEditor) candidates(buf LineBuffer, selections []m.Selection, anchor m.Selection, report *m.Report) []string {
	var names []string

	for _, decl := range ScanDeclarations(buf, selections) {
		if SectionExists(buf, anchor, decl.Name) {
			report.Skipped = append(report.Skipped, decl.Name)
			continue
		}

		names = append(names, decl.Name)
	}

	return names
}

func (e *scaffoldEditor) insertPlaceholders(buf LineBuffer, anchor m.Selection, report *m.Report) (LineBuffer, []stub) {
	inserted := make([]stub, 0, len(stubs))

	for _, s := range stubs {
		end, ok := stubBodyEnd(buf, anchor, s)
		if !ok {
			report.MissingStubs = append(report.MissingStubs, s.kind)
			continue
		}

		buf = buf.Prepend(end, placeholderLine(s))
		inserted = append(inserted, s)
	}

	return buf, inserted
}

// register adds the three registration lines for name and appends its section
// before the region's end sentinel.
func (e *scaffoldEditor) register(buf LineBuffer, name string) LineBuffer {
	for _, s := range stubs {
		if line, ok := buf.FindString(s.placeholder, 0, buf.Len()); ok {
			buf = buf.Prepend(line, registrationLine(s.kind, name))
		}
	}

	if end, ok := RegionEnd(buf); ok {
		buf = buf.PrependSeparated(end, sectionText(name))
	}

	return buf
}

func (e *scaffoldEditor) removePlaceholders(buf LineBuffer, inserted []stub) LineBuffer {
	for _, s := range inserted {
		if line, ok := buf.FindString(s.placeholder, 0, buf.Len()); ok {
			buf = buf.Replace(line, "")
		}
	}

	return buf
}
