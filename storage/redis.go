package storage

import (
	"context"
	"net/http"
	"time"

	"github.com/dcode-github/nestora/backend/utils"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClientCookieName identifies a browser when slots live in redis.
const ClientCookieName = "real_Nestora_client"

// clientCookieTTL outlives any slot so the client id is not lost first.
const clientCookieTTL = 365 * 24 * time.Hour

// RedisStore keeps one client's slots in redis under nestora:<client>:<key>.
type RedisStore struct {
	client   *redis.Client
	ctx      context.Context
	clientID string
}

func NewRedisStore(ctx context.Context, client *redis.Client, clientID string) *RedisStore {
	return &RedisStore{client: client, ctx: ctx, clientID: clientID}
}

// RedisStoreForRequest resolves the client id from its cookie, minting
// and setting a new one when the browser has none.
func RedisStoreForRequest(w http.ResponseWriter, r *http.Request, client *redis.Client) *RedisStore {
	var clientID string
	if cookie, err := r.Cookie(ClientCookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			clientID = cookie.Value
		}
	}
	if clientID == "" {
		clientID = uuid.NewString()
		utils.WriteCookie(w, ClientCookieName, clientID, clientCookieTTL, utils.IsSecureRequest(r))
	}
	return NewRedisStore(r.Context(), client, clientID)
}

func (s *RedisStore) ClientID() string {
	return s.clientID
}

func (s *RedisStore) key(k string) string {
	return "nestora:" + s.clientID + ":" + k
}

func (s *RedisStore) Get(key string) (string, bool) {
	value, err := s.client.Get(s.ctx, s.key(key)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.Logger.WithError(err).Warnf("Redis GET failed for slot %s", key)
		}
		return "", false
	}
	return value, true
}

func (s *RedisStore) Set(key, value string, ttl time.Duration) {
	if ttl <= 0 {
		s.Remove(key)
		return
	}
	if err := s.client.Set(s.ctx, s.key(key), value, ttl).Err(); err != nil {
		utils.Logger.WithError(err).Errorf("Redis SET failed for slot %s", key)
	}
}

func (s *RedisStore) Remove(key string) {
	if err := s.client.Del(s.ctx, s.key(key)).Err(); err != nil {
		utils.Logger.WithError(err).Errorf("Redis DEL failed for slot %s", key)
	}
}
