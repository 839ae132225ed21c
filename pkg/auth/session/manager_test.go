package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "al:session:access:" + accessID
}

func newTestManager(store *fakeStore) *Manager {
	return &Manager{store: store, keyer: fakeKeyer{}, ttl: time.Hour}
}

func TestGenerateAndRotate(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	mgr := newTestManager(store)

	accessID := NewAccessID()
	token, err := mgr.Generate(ctx, accessID)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty refresh token")
	}

	newAccessID, newToken, err := mgr.Rotate(ctx, accessID, token)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	if newAccessID == accessID || newToken == token {
		t.Fatal("rotation must issue a fresh pair")
	}

	// old session must be gone
	if _, _, err := mgr.Rotate(ctx, accessID, token); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken for replayed token, got %v", err)
	}
}

func TestRotateRejectsMismatchedToken(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(newFakeStore())

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, _, err := mgr.Rotate(ctx, accessID, "forged-token"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRevokeAndHasSession(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(newFakeStore())

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	active, err := mgr.HasSession(ctx, accessID)
	if err != nil || !active {
		t.Fatalf("expected active session, got active=%v err=%v", active, err)
	}

	if err := mgr.Revoke(ctx, accessID); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	active, err = mgr.HasSession(ctx, accessID)
	if err != nil || active {
		t.Fatalf("expected revoked session, got active=%v err=%v", active, err)
	}
}
