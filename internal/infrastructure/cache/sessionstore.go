package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tcworld/magadmin/internal/domain/admin"
)

// DefaultSessionPrefix namespaces admin login sessions.
const DefaultSessionPrefix = "magadmin:session:"

type sessionInfo struct {
	AdminID   string     `json:"admin_id"`
	Username  string     `json:"username"`
	Role      admin.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// RedisSessionStore keeps admin sessions in Redis. A key expires together
// with its session, so logout and expiry look the same to readers.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

var _ admin.SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	if prefix == "" {
		prefix = DefaultSessionPrefix
	}
	return &RedisSessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisSessionStore) buildKey(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *admin.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("session id cannot be empty")
	}
	ttl := session.TTL()
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	data, err := json.Marshal(sessionInfo{
		AdminID:   session.AdminID,
		Username:  session.Username,
		Role:      session.Role,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*admin.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	data, err := s.client.Get(ctx, s.buildKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var info sessionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &admin.Session{
		ID:        sessionID,
		AdminID:   info.AdminID,
		Username:  info.Username,
		Role:      info.Role,
		CreatedAt: info.CreatedAt,
		ExpiresAt: info.ExpiresAt,
	}, nil
}

// Delete removes the session and reports whether it existed.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	n, err := s.client.Del(ctx, s.buildKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return n > 0, nil
}
