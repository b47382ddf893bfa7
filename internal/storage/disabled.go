package storage

import "context"

// Disabled returns a Store for environments without persistent storage:
// reads report absence and writes succeed as no-ops, so callers keep working
// without branching.
func Disabled() Store {
	return disabledStore{}
}

type disabledStore struct{}

func (disabledStore) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (disabledStore) Set(context.Context, string, []byte) error { return nil }

func (disabledStore) Delete(context.Context, string) error { return nil }

func (disabledStore) List(context.Context) (map[string][]byte, error) {
	return map[string][]byte{}, nil
}

func (disabledStore) Clear(context.Context) error { return nil }
