package lib

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/william000000/team-odd-bn-backend/src/config"
)

var redisClient *redis.Client

var ErrSessionNotFound = errors.New("session not found")

const SESSION_TTL = 24 * time.Hour

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	if config.REDIS_HOST == "" {
		return nil
	}
	opt, err := redis.ParseURL(config.REDIS_HOST)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

type SessionStore interface {
	Save(ctx context.Context, userID uint, token string) error
	Get(ctx context.Context, userID uint) (string, error)
	Delete(ctx context.Context, userID uint) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: SESSION_TTL}
}

func SessionKey(userID uint) string {
	return fmt.Sprintf("%d:session", userID)
}

func (s *RedisSessionStore) Save(ctx context.Context, userID uint, token string) error {
	if err := s.client.Set(ctx, SessionKey(userID), token, s.ttl).Err(); err != nil {
		log.Printf("[redis] Failed to save session for user %d: %s\n", userID, err.Error())
		return err
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, userID uint) (string, error) {
	val, err := s.client.Get(ctx, SessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		log.Printf("[redis] Error retrieving session for user %d: %s\n", userID, err.Error())
		return "", err
	}
	return val, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, SessionKey(userID)).Err()
}
