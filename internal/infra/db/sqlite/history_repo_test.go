package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/checkmycar/checkmycar/internal/domain/history"
)

func testRepo(t *testing.T) *HistoryRepository {
	t.Helper()
	db, err := Connect(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewHistoryRepository(db)
}

func TestHistoryRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	got, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "fresh store starts empty")

	entries := []domain.Entry{
		{
			ID:       "id-2",
			FileName: "engine.jpg",
			Detected: "엔진 계통 경고",
			Code:     "ENGINE",
			Source:   "ai",
			At:       time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:       "id-1",
			FileName: "tire.jpg",
			Detected: "타이어 공기압 경고",
			Code:     "TPMS",
			Source:   "local",
			At:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, repo.SaveHistory(ctx, entries))

	got, err = repo.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "id-2", got[0].ID, "order preserved, newest first")
	assert.Equal(t, "TPMS", got[1].Code)

	// Full rewrite, not a merge.
	require.NoError(t, repo.SaveHistory(ctx, nil))
	got, err = repo.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCorruptHistoryReadsAsEmpty(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.set(ctx, keyHistory, "{definitely-not-json"))

	got, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProfileRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	p, err := repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{}, p)

	want := domain.Profile{Email: "kim@example.com", CarModel: "Avante CN7", Authed: true}
	require.NoError(t, repo.SaveProfile(ctx, want))

	p, err = repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, p)

	want.Authed = false
	require.NoError(t, repo.SaveProfile(ctx, want))
	p, err = repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.False(t, p.Authed)
	assert.Equal(t, "kim@example.com", p.Email, "logout keeps profile fields")
}
