package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line     string
		wantKind LineKind
		wantName string
	}{
		{"    let centeringContainer = UIView()", LineDeclaration, "centeringContainer"},
		{"    var label=UILabel()", LineDeclaration, "label"},
		{"    private let stack_2 = UIStackView()\n", LineDeclaration, "stack_2"},
		{"    let label = UILabel(frame: .zero)", LineIgnored, ""},
		{"    var title: String { return \"\" }", LineIgnored, ""},
		{"    let view: UIView = UIView()", LineIgnored, ""},
		{"    let view = UIView.init()", LineIgnored, ""},
		{"", LineIgnored, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, name := ClassifyLine(tt.line)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestScanDeclarations(t *testing.T) {
	buf := NewLineBuffer(`class A: BaseView {
    let a = UIView()
    let b = UIView()
    let ignored = UILabel(frame: .zero)
    let c = UIView()
    let a = UIView()
    let d = UIView()
}
`)

	t.Run("single selection inclusive", func(t *testing.T) {
		got := ScanDeclarations(buf, []m.Selection{sel(1, 3)})
		assert.Equal(t, []m.Declaration{{Name: "a", Line: 1}, {Name: "b", Line: 2}}, got)
	})

	t.Run("multiple selections follow buffer order and keep duplicates", func(t *testing.T) {
		got := ScanDeclarations(buf, []m.Selection{sel(5, 5), sel(1, 1), sel(4, 4)})
		assert.Equal(t, []m.Declaration{
			{Name: "a", Line: 1},
			{Name: "c", Line: 4},
			{Name: "a", Line: 5},
		}, got)
	})

	t.Run("no selections", func(t *testing.T) {
		assert.Empty(t, ScanDeclarations(buf, nil))
	})

	t.Run("selection without declarations", func(t *testing.T) {
		assert.Empty(t, ScanDeclarations(buf, []m.Selection{sel(7, 7)}))
	})
}

// sel builds a selection over whole lines, 0-based.
func sel(start, end int) m.Selection {
	return m.Selection{
		Start: m.Position{Line: start},
		End:   m.Position{Line: end, Column: 1},
	}
}
