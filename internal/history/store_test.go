// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jack999Lab/content-api/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{DataDir: t.TempDir(), MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Record(ctx, types.GenerationResult{
		Content:         "# Doc\n\nBody text.",
		WordCount:       3,
		SEOScore:        63,
		UniquenessScore: 100,
		Topic:           "Storage",
		Keywords:        "sqlite, history",
		Tone:            types.ToneProfessional,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	entries, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "Storage", e.Topic)
	assert.Equal(t, "sqlite, history", e.Keywords)
	assert.Equal(t, types.ToneProfessional, e.Tone)
	assert.Equal(t, 3, e.WordCount)
	assert.Equal(t, 63, e.SEOScore)
	assert.Equal(t, 100.0, e.UniquenessScore)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, types.GenerationResult{
			Topic: fmt.Sprintf("Topic %d", i),
		})
		require.NoError(t, err)
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestContent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Record(ctx, types.GenerationResult{
		Topic:   "Bodies",
		Content: "# Bodies\n\nThe full stored document.",
	})
	require.NoError(t, err)

	content, err := s.Content(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "# Bodies\n\nThe full stored document.", content)
}

func TestContentUnknownID(t *testing.T) {
	s := testStore(t)
	_, err := s.Content(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{DataDir: dir}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	id, err := s.Record(context.Background(), types.GenerationResult{Topic: "Durable"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(cfg)
	require.NoError(t, err)
	defer s.Close()

	content, err := s.Content(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "", content)

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Durable", entries[0].Topic)
}
