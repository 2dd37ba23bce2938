package history

import "context"

// Store port (interface untuk persistence lokal). The history list is read
// once and rewritten as a whole on every mutation, mirroring the key-value
// storage the web client used.
type Store interface {
	LoadHistory(ctx context.Context) ([]Entry, error)
	SaveHistory(ctx context.Context, entries []Entry) error

	LoadProfile(ctx context.Context) (Profile, error)
	SaveProfile(ctx context.Context, p Profile) error
}
