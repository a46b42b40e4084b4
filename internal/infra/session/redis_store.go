package session

import (
	"context"
	"encoding/json"
	"time"

	"keebshop/internal/domain/model"
	domainrepo "keebshop/internal/repository"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient はRedisに接続してクライアントを返す。
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// 接続確認
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}

// Redis実装のSessionStore。
// トークンごとにJSONを1ドキュメント保存する。CASは使わない（last writer wins）。
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// DI
func NewRedisStore(client *redis.Client, ttl time.Duration) domainrepo.SessionStore {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) key(token string) string {
	return "sess:" + token
}

// トークンのセッションを取得。無ければ空のセッション。
func (s *redisStore) Load(ctx context.Context, token string) (model.Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return model.Session{Cart: model.Cart{}}, nil
	}
	if err != nil {
		return model.Session{}, err
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return model.Session{}, err
	}
	if sess.Cart == nil {
		sess.Cart = model.Cart{}
	}

	return sess, nil
}

// セッションを丸ごと保存
func (s *redisStore) Save(ctx context.Context, token string, sess model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.key(token), data, s.ttl).Err()
}

// セッションを削除
func (s *redisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
