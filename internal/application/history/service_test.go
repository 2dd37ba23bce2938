package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysis "github.com/checkmycar/checkmycar/internal/domain/analysis"
	domain "github.com/checkmycar/checkmycar/internal/domain/history"
)

type memStore struct {
	entries []domain.Entry
	profile domain.Profile
}

func (m *memStore) LoadHistory(ctx context.Context) ([]domain.Entry, error) { return m.entries, nil }
func (m *memStore) SaveHistory(ctx context.Context, entries []domain.Entry) error {
	m.entries = entries
	return nil
}
func (m *memStore) LoadProfile(ctx context.Context) (domain.Profile, error) { return m.profile, nil }
func (m *memStore) SaveProfile(ctx context.Context, p domain.Profile) error {
	m.profile = p
	return nil
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func TestAppendPrepends(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	svc.Clock = fixedClock{at: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	ctx := context.Background()

	res := analysis.ClassifyFilename("tire.jpg")
	first, err := svc.Append(ctx, "tire.jpg", "", res)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "TPMS", first.Code)
	assert.Equal(t, "local", first.Source)
	assert.Equal(t, svc.Clock.Now(), first.At)

	second, err := svc.Append(ctx, "engine.jpg", "", analysis.ClassifyFilename("engine.jpg"))
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "newest first")
	assert.Equal(t, first.ID, entries[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestClear(t *testing.T) {
	store := &memStore{entries: []domain.Entry{{ID: "x"}}}
	svc := NewService(store)

	require.NoError(t, svc.Clear(context.Background()))
	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoginStub(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Login(ctx, "kim@example.com", "", true)
	require.Error(t, err, "signup requires a car model")

	p, err := svc.Login(ctx, "kim@example.com", "Avante CN7", true)
	require.NoError(t, err)
	assert.True(t, p.Authed)

	require.NoError(t, svc.Logout(ctx))
	p, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.False(t, p.Authed)
	assert.Equal(t, "kim@example.com", p.Email)
}
