package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// KeyValueBlock
// ---------------------------------------------------------------------------

func TestKeyValueBlockContainsTitleAndPairs(t *testing.T) {
	result := KeyValueBlock("Head", [][2]string{
		{"Height", "#1,000"},
		{"Total fees", "12.50 TIA"},
	})
	assert.Contains(t, result, "Head")
	assert.Contains(t, result, "Height")
	assert.Contains(t, result, "#1,000")
	assert.Contains(t, result, "12.50 TIA")
}

func TestKeyValueBlockPreservesOrder(t *testing.T) {
	result := KeyValueBlock("", [][2]string{
		{"First", "AAA"},
		{"Second", "BBB"},
		{"Third", "CCC"},
	})
	i1, i2, i3 := strings.Index(result, "First"), strings.Index(result, "Second"), strings.Index(result, "Third")
	require.Greater(t, i1, -1)
	assert.Less(t, i1, i2)
	assert.Less(t, i2, i3)
}

func TestKeyValueBlockHasBorder(t *testing.T) {
	result := KeyValueBlock("Bordered", [][2]string{{"Key", "Val"}})
	// lipgloss RoundedBorder uses ╭ and ╰ for corners.
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

func TestTableRenderHeadersAndRows(t *testing.T) {
	tbl := NewTable(Column{Title: "HEIGHT", Width: 8}, Column{Title: "HASH", Width: 10})
	tbl.AddRow("100", "ABCDEF")
	tbl.AddRow("99", "012345")

	result := tbl.Render()
	for _, s := range []string{"HEIGHT", "HASH", "100", "ABCDEF", "99", "012345", "────────"} {
		assert.Contains(t, result, s)
	}
	assert.Less(t, strings.Index(result, "100"), strings.Index(result, "99"))
}

func TestTableRowShorterThanColumns(t *testing.T) {
	tbl := NewTable(Column{Title: "A", Width: 5}, Column{Title: "B", Width: 5})
	tbl.AddRow("only1")
	// Missing cells render as empty.
	assert.Contains(t, tbl.Render(), "only1")
}

func TestFitPadsLeftAndRight(t *testing.T) {
	assert.Equal(t, "ab   ", fit("ab", 5, false))
	assert.Equal(t, "   ab", fit("ab", 5, true))
	assert.Equal(t, "abcde", fit("abcde", 5, false))
}

func TestFitCutsLongCells(t *testing.T) {
	got := fit("abcdefghij", 5, false)
	assert.Equal(t, 5, lipgloss.Width(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}
