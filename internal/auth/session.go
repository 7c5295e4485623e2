// Package auth implements the trusted-cookie session model: login validates
// an email, derives the role, and stores a session in Redis. No passwords —
// the event trusts school email addresses.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "makerfest:session:" // makerfest:session:{session_id}
	SessionTTL       = 7 * 24 * time.Hour
	CookieName       = "session_id"
)

// Roles carried by a session.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the authenticated identity attached to requests.
type Session struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps sessions in Redis with a 7-day TTL.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create stores a new session and returns its id.
func (s *SessionStore) Create(ctx context.Context, email, role string) (string, error) {
	sess := Session{Email: email, Role: role, CreatedAt: time.Now()}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	id := uuid.New().String()
	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return id, nil
}

// Get resolves a session id to its identity.
func (s *SessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
