package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagaae/internal/core"
)

func sampleBills() []core.Bill {
	return []core.Bill{
		{ID: "1", Name: "Luz", DueDate: "2024-03-15", Amount: "120.50", Status: "pago", Category: "Casa", Row: 2},
		{ID: "2", Name: "Internet", DueDate: "", Amount: "", Status: "pending", Category: "Casa", Row: 3},
	}
}

func TestRenderWritesDeterministicFile(t *testing.T) {
	base := t.TempDir()
	g := NewGenerator(base)

	rep, err := g.Render(sampleBills(), "Marco", 2024)
	require.NoError(t, err)
	assert.Equal(t, "PagaAe_Marco_2024.pdf", rep.FileName)
	assert.Equal(t, filepath.Join(base, "2024", rep.FileName), rep.Path)

	info, err := os.Stat(rep.Path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Same month/year overwrites rather than accumulating files.
	_, err = g.Render(sampleBills(), "Marco", 2024)
	require.NoError(t, err)
	files, err := g.Reports("2024")
	require.NoError(t, err)
	assert.Equal(t, []string{"PagaAe_Marco_2024.pdf"}, files)
}

func TestArchiveListing(t *testing.T) {
	base := t.TempDir()
	g := NewGenerator(base)

	years, err := g.Years()
	require.NoError(t, err)
	assert.Empty(t, years)

	_, err = g.Render(sampleBills(), "Janeiro", 2023)
	require.NoError(t, err)
	_, err = g.Render(sampleBills(), "Fevereiro", 2024)
	require.NoError(t, err)

	years, err = g.Years()
	require.NoError(t, err)
	assert.Equal(t, []string{"2023", "2024"}, years)

	files, err := g.Reports("2023")
	require.NoError(t, err)
	assert.Equal(t, []string{"PagaAe_Janeiro_2023.pdf"}, files)

	files, err = g.Reports("1999")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilePath(t *testing.T) {
	base := t.TempDir()
	g := NewGenerator(base)
	rep, err := g.Render(sampleBills(), "Abril", 2024)
	require.NoError(t, err)

	path, ok, err := g.FilePath("2024", rep.FileName)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, rep.Path, path)

	_, ok, err = g.FilePath("2024", "nope.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = g.FilePath("2024", "../secret.pdf")
	assert.Error(t, err)

	_, _, err = g.FilePath("../2024", "a.pdf")
	assert.Error(t, err)
}
