package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"promasterBack/internal/models"
)

// SessionStore keeps refresh sessions in Redis, keyed by the refresh
// token itself. Entries expire with the session.
type SessionStore struct {
	RDB *redis.Client
}

func sessionKey(refreshToken string) string {
	return fmt.Sprintf("session:%s", refreshToken)
}

func (s *SessionStore) SetSession(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	return s.RDB.Set(ctx, sessionKey(session.RefreshToken), data, ttl).Err()
}

func (s *SessionStore) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	data, err := s.RDB.Get(ctx, sessionKey(refreshToken)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, refreshToken string) error {
	return s.RDB.Del(ctx, sessionKey(refreshToken)).Err()
}
