package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDiffAdapter_Unified(t *testing.T) {
	adapter := NewLocalDiffAdapter()

	t.Run("equal inputs produce no diff", func(t *testing.T) {
		diff, err := adapter.Unified("a", "b", "same\n", "same\n")
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("insertion is rendered as added lines", func(t *testing.T) {
		before := "class A {\n}\n"
		after := "class A {\n    // MARK: Begin View Hierarchy Construction\n}\n"

		diff, err := adapter.Unified("View.swift", "View.swift (scaffolded)", before, after)
		require.NoError(t, err)

		assert.Contains(t, diff, "--- View.swift\n")
		assert.Contains(t, diff, "+++ View.swift (scaffolded)\n")
		assert.Contains(t, diff, "+    // MARK: Begin View Hierarchy Construction\n")
		assert.Contains(t, diff, " class A {\n")
	})
}
