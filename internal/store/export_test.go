package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBlock(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, testEntry(5, "Great day", ""))

	want := strings.Join([]string{
		"Date: Mar 5, 2024",
		"Rating: ★★★★★",
		"Nutshell: Great day",
		"Details: No additional details.",
		"--------------------------",
		"",
	}, "\n")
	assert.Equal(t, want, s.Export())
}

func TestExportOrderAndDetails(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Add(ctx, testEntry(2, "Long day", "overslept"))
	s.Add(ctx, testEntry(4, "Beach trip", ""))

	out := s.Export()
	blocks := strings.Count(out, blockDivider)
	require.Equal(t, 2, blocks)

	first := strings.Index(out, "Nutshell: Long day")
	second := strings.Index(out, "Nutshell: Beach trip")
	assert.True(t, first >= 0 && second > first, "entries out of order in export")
	assert.Contains(t, out, "Rating: ★★\n")
	assert.Contains(t, out, "Details: overslept\n")
}

func TestExportEmptyStore(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, "", s.Export())
}

func TestExportIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	s.Add(ctx, testEntry(3, "Fine day", "nothing much"))

	assert.Equal(t, s.Export(), s.Export())
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	// Export a backup from one store, restore it into a fresh one.
	src, _ := newTestStore(t)
	src.Add(ctx, testEntry(5, "Great day", ""))
	src.Add(ctx, testEntry(2, "Long day", "overslept"))
	backup := src.Entries()

	s, mem := newTestStore(t)
	imported := s.Import(ctx, backup)
	require.Equal(t, 2, imported)
	require.Equal(t, 2, s.Len())

	// IDs and dates carried verbatim, and the result is persisted.
	got := s.Entries()
	assert.Equal(t, backup[0].ID, got[0].ID)
	assert.True(t, backup[0].Date.Equal(got[0].Date))

	s2 := Open(ctx, mem)
	assert.Equal(t, 2, s2.Len())
}

func TestImportEmpty(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)

	require.Equal(t, 0, s.Import(ctx, nil))
	_, persisted := mem.Data[entriesKey]
	assert.False(t, persisted, "empty import should not persist")
}
