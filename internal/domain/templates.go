package domain

import (
	"fmt"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// Literals below are part of the on-disk contract: later runs find the
// generated region, stubs and sections by matching them exactly.
const (
	RegionStartMark = "    // MARK: Begin View Hierarchy Construction"
	RegionEndMark   = "    // MARK: End View Hierarchy Construction"

	sectionMarkPrefix = "    // MARK: "

	bodyIndent = "        "
)

// stub ties a lifecycle override to the placeholder anchoring insertions in it.
type stub struct {
	kind        m.StubKind
	signature   string
	placeholder string
}

var stubs = []stub{
	{kind: m.StubInitialize, signature: "override func initializeViews() {", placeholder: "%INITIALIZE%"},
	{kind: m.StubAssemble, signature: "override func assembleViews() {", placeholder: "%ASSEMBLE%"},
	{kind: m.StubConstrain, signature: "override func constrainViews() {", placeholder: "%CONSTRAIN%"},
}

const regionTemplate = RegionStartMark + `

    override func initializeViews() {
        super.initializeViews()
    }

    override func assembleViews() {
        super.assembleViews()
    }

    override func constrainViews() {
        super.constrainViews()
    }

` + RegionEndMark + "\n"

func placeholderLine(s stub) string {
	return bodyIndent + s.placeholder + "\n"
}

// registrationLine returns the statement added to the given stub for name.
func registrationLine(kind m.StubKind, name string) string {
	switch kind {
	case m.StubInitialize:
		return fmt.Sprintf("%sinitialize%s()\n", bodyIndent, ProperName(name))
	case m.StubAssemble:
		return fmt.Sprintf("%saddSubview(%s)\n", bodyIndent, name)
	case m.StubConstrain:
		return fmt.Sprintf("%sconstrain%s()\n", bodyIndent, ProperName(name))
	}

	return ""
}

// SectionMark returns the label line that opens the section for name.
func SectionMark(name string) string {
	return sectionMarkPrefix + SectionLabel(name)
}

func sectionText(name string) string {
	proper := ProperName(name)
	initialize := fmt.Sprintf("    private func initialize%s() {\n\n    }", proper)
	constrain := fmt.Sprintf("    private func constrain%s() {\n\n    }", proper)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n", SectionMark(name), initialize, constrain)
}
