package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/artlease-io/artlease-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

type cartBackend interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cartKeyer interface {
	CartKey(cartID string) string
}

// Store persists session carts in Redis with a sliding TTL. Carts never
// touch durable storage.
type Store struct {
	backend cartBackend
	keyer   cartKeyer
	ttl     time.Duration
}

// NewStore constructs a cart store backed by Redis.
func NewStore(client *redisclient.Client, ttl time.Duration) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &Store{backend: client, keyer: client, ttl: ttl}, nil
}

// Load returns the cart for the session, empty when none exists yet.
func (s *Store) Load(ctx context.Context, cartID string) (*Cart, error) {
	raw, err := s.backend.Get(ctx, s.keyer.CartKey(cartID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// Corrupt slot, start over rather than poisoning every request.
		return &Cart{}, nil
	}
	return &cart, nil
}

// Save writes the cart back and refreshes its TTL.
func (s *Store) Save(ctx context.Context, cartID string, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.backend.Set(ctx, s.keyer.CartKey(cartID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// Clear drops the cart slot. Clearing an absent cart is a no-op.
func (s *Store) Clear(ctx context.Context, cartID string) error {
	if err := s.backend.Del(ctx, s.keyer.CartKey(cartID)); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
