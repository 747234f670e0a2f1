// Package session persists per-conversation state in Redis with a sliding
// TTL. Sessions scope remote trip store calls; losing one is an
// inconvenience, not data loss, so expiry is acceptable.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"

	"wayfarer/pkg/models"
	"wayfarer/pkg/redis"
	"wayfarer/pkg/tracing"
)

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "wayfarer:session:"

// KV is the key/value surface the store needs. Satisfied by *redis.Client.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Store reads and writes sessions.
type Store struct {
	kv     KV
	logger ectologger.Logger
	ttl    time.Duration
}

// NewStore creates a session store. A zero ttl means DefaultTTL.
func NewStore(kv KV, logger ectologger.Logger, ttl time.Duration) *Store {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Store{kv: kv, logger: logger, ttl: ttl}
}

// Get fetches a session by id. A missing or expired session returns nil
// without error.
func (s *Store) Get(ctx context.Context, id string) (*models.Session, error) {
	ctx, span := tracing.StartSpan(ctx, "session.Store.Get")
	defer span.End()

	raw, err := s.kv.Get(ctx, keyPrefix+id)
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &sess, nil
}

// GetOrCreate fetches a session, creating and persisting a fresh one when
// none exists. webSessionID may be empty.
func (s *Store) GetOrCreate(ctx context.Context, id, webSessionID string) (*models.Session, error) {
	if id != "" {
		sess, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if sess != nil {
			return sess, nil
		}
	}

	now := time.Now().UTC()
	sess := &models.Session{
		ID:           uuid.NewString(),
		WebSessionID: webSessionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if id != "" {
		sess.ID = id
	}

	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Save persists the session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	ctx, span := tracing.StartSpan(ctx, "session.Store.Save")
	defer span.End()

	sess.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sess.ID, err)
	}

	if err := s.kv.Set(ctx, keyPrefix+sess.ID, string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to write session %s: %w", sess.ID, err)
	}
	return nil
}

// AppendMessage adds one transcript turn and persists.
func (s *Store) AppendMessage(ctx context.Context, sess *models.Session, role, content string) error {
	sess.Transcript = append(sess.Transcript, models.ChatMessage{Role: role, Content: content})
	return s.Save(ctx, sess)
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.kv.Del(ctx, keyPrefix+id)
}
