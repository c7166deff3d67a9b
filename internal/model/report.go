package model

// StubKind names one of the three lifecycle overrides of the generated region.
type StubKind string

const (
	// StubInitialize is the initializeViews override.
	StubInitialize StubKind = "initialize"
	// StubAssemble is the assembleViews override.
	StubAssemble StubKind = "assemble"
	// StubConstrain is the constrainViews override.
	StubConstrain StubKind = "constrain"
)

// Report describes what a single scaffolding run did to a buffer.
type Report struct {
	Path          Path       `yaml:"path"`
	RegionCreated bool       `yaml:"region_created"`
	Registered    []string   `yaml:"registered"`
	Skipped       []string   `yaml:"skipped"`
	MissingStubs  []StubKind `yaml:"missing_stubs,omitempty"`
	Changed       bool       `yaml:"changed"`
}

// FileStatus summarizes the scaffolding state of one file.
type FileStatus struct {
	Path       Path
	HasRegion  bool
	RegionLine int // 1-based, 0 when the region is absent
	Sections   int
	Pending    []string
}
