package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBuilds_EmptyIsNotNil(t *testing.T) {
	s := createTestStore(t)

	builds, err := s.ListBuilds(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, builds)
	assert.Empty(t, builds)
}

func TestListBuilds_OrderedBySeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	sources := []string{"rule c", "rule a", "rule b"}
	for _, src := range sources {
		_, err := s.RecordBuild(ctx, createTestBuild(src, "manifest"))
		require.NoError(t, err)
	}

	builds, err := s.ListBuilds(ctx)
	require.NoError(t, err)
	require.Len(t, builds, 3)
	for i, b := range builds {
		assert.Equal(t, int64(i+1), b.Seq)
		assert.Equal(t, createTestBuild(sources[i], "manifest").SourceHash, b.SourceHash)
	}
}

func TestGetBuild_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := createTestBuild("rule grow", "obj")
	stored, err := s.RecordBuild(ctx, want)
	require.NoError(t, err)

	want.Seq = stored.Seq
	got, err := s.GetBuild(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetBuild_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetBuild(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
