package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"x", "X"},
		{"fooView", "FooView"},
		{"centeringContainer", "CenteringContainer"},
		{"URLField", "URLField"},
		{"snake_case", "Snake_case"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProperName(tt.name))
		})
	}
}

func TestSectionLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"centeringContainer", "Centering Container"},
		{"fooView", "Foo View"},
		{"x", "X"},
		{"avatarImageView", "Avatar Image View"},
		{"urlField2", "Url Field2"},
		{"imageURL", "Image U R L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionLabel(tt.name))
		})
	}
}

func TestSectionMark(t *testing.T) {
	assert.Equal(t, "    // MARK: Centering Container", SectionMark("centeringContainer"))
}
