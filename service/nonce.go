package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"nftmarket/model"
)

// ErrNoNonce no live nonce for the address
var ErrNoNonce = errors.New("nonce not found or expired")

// NonceStore single use sign-in challenges keyed by wallet
type NonceStore interface {
	Put(ctx context.Context, address, nonce string, ttl time.Duration) error
	// Take returns and removes the nonce
	Take(ctx context.Context, address string) (string, error)
}

// DBNonceStore keeps nonces in the nonces table
type DBNonceStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDBNonceStore(db *gorm.DB) *DBNonceStore {
	return &DBNonceStore{db: db, now: time.Now}
}

func (s *DBNonceStore) Put(ctx context.Context, address, nonce string, ttl time.Duration) error {
	n := model.Nonce{Address: address, Value: nonce, ExpiresAt: s.now().Add(ttl)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at"}),
	}).Create(&n).Error
	return errors.Wrap(err, "save nonce")
}

func (s *DBNonceStore) Take(ctx context.Context, address string) (string, error) {
	var n model.Nonce
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("address = ?", address).Take(&n).Error; err != nil {
			return err
		}
		return tx.Delete(&n).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNoNonce
	}
	if err != nil {
		return "", errors.Wrap(err, "take nonce")
	}
	if s.now().After(n.ExpiresAt) {
		return "", ErrNoNonce
	}
	return n.Value, nil
}

// RedisNonceStore keeps nonces in redis with a ttl
type RedisNonceStore struct {
	rdb *redis.Client
}

// NewRedisNonceStore connects to the redis url and checks the connection
func NewRedisNonceStore(url string) (*RedisNonceStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis URL")
	}
	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return &RedisNonceStore{rdb: rdb}, nil
}

func nonceKey(address string) string {
	return "nonce:" + address
}

func (s *RedisNonceStore) Put(ctx context.Context, address, nonce string, ttl time.Duration) error {
	return errors.Wrap(s.rdb.Set(ctx, nonceKey(address), nonce, ttl).Err(), "save nonce")
}

func (s *RedisNonceStore) Take(ctx context.Context, address string) (string, error) {
	v, err := s.rdb.GetDel(ctx, nonceKey(address)).Result()
	if err == redis.Nil {
		return "", ErrNoNonce
	}
	if err != nil {
		return "", errors.Wrap(err, "take nonce")
	}
	return v, nil
}

func (s *RedisNonceStore) Close() error {
	return s.rdb.Close()
}
