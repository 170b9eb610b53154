package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleRun(id string, started time.Time) Run {
	return Run{
		ID:             id,
		StartedAt:      started,
		FinishedAt:     started.Add(3 * time.Second),
		DocsRoot:       "/docs/api",
		Commit:         "abc123",
		DocsScanned:    40,
		DocsRewritten:  12,
		LinksRewritten: 97,
		Status:         StatusSuccess,
	}
}

func TestStore_RecordAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	base := time.Now().Truncate(time.Second)
	require.NoError(t, store.Record(ctx, sampleRun(uuid.NewString(), base.Add(-time.Minute))))

	newest := sampleRun(uuid.NewString(), base)
	require.NoError(t, store.Record(ctx, newest))

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, newest.ID, runs[0].ID)
	require.Equal(t, 97, runs[0].LinksRewritten)
	require.Equal(t, StatusSuccess, runs[0].Status)
	require.Equal(t, "abc123", runs[0].Commit)
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, sampleRun(uuid.NewString(), base.Add(time.Duration(i)*time.Second))))
	}

	runs, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	require.NoError(t, err)
	id := uuid.NewString()
	require.NoError(t, store.Record(context.Background(), sampleRun(id, time.Now())))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, id, runs[0].ID)
}

func TestStore_RecordsFailedRunWithError(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	run := sampleRun(uuid.NewString(), time.Now())
	run.Status = StatusFailed
	run.Error = "read document: permission denied"
	require.NoError(t, store.Record(context.Background(), run))

	runs, err := store.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, StatusFailed, runs[0].Status)
	require.Contains(t, runs[0].Error, "permission denied")
}
