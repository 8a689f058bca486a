// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/yomitube/internal/platform/constants"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// # Key Layout
//
//	auth:session:<tokenHash>     JSON session, expires with the session
//	auth:user_sessions:<userID>  set of the user's live token hashes
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed [SessionRepository].
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func userSessionsKey(userID string) string {
	return constants.RedisPrefixUserSession + userID
}

/*
Create stores the session and indexes it under its user.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Create(context context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redis_session_already_expired: %s", session.ID)
	}

	_, err = repository.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Set(context, sessionKey(session.TokenHash), payload, ttl)
		pipe.SAdd(context, userSessionsKey(session.UserID), session.TokenHash)
		pipe.Expire(context, userSessionsKey(session.UserID), RefreshTokenTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	return nil
}

/*
FindByTokenHash loads a session.

Returns:
  - *Session: The stored session
  - error: dberr.ErrNotFound if the key is absent or expired
*/
func (repository *RedisSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dberr.ErrNotFound
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}

	return &session, nil
}

// Revoke deletes the session key and its index entry.
func (repository *RedisSessionRepository) Revoke(context context.Context, session *Session) error {
	_, err := repository.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Del(context, sessionKey(session.TokenHash))
		pipe.SRem(context, userSessionsKey(session.UserID), session.TokenHash)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}
	return nil
}

// RevokeOthers deletes every indexed session of the user but one.
func (repository *RedisSessionRepository) RevokeOthers(context context.Context, userID, keepTokenHash string) error {
	hashes, err := repository.client.SMembers(context, userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("redis_session_list_failed: %w", err)
	}

	_, err = repository.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		for _, hash := range hashes {
			if hash == keepTokenHash {
				continue
			}
			pipe.Del(context, sessionKey(hash))
			pipe.SRem(context, userSessionsKey(userID), hash)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_revoke_others_failed: %w", err)
	}

	return nil
}
