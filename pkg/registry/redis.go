package registry

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// RedisStore keeps schemas as JSON values of the hash <prefix>schemas,
// keyed by name.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, key: prefix + "schemas"}
}

// Key returns the hash key holding the schemas.
func (s *RedisStore) Key() string { return s.key }

func (s *RedisStore) Get(ctx context.Context, name string) (*record.Schema, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	b, err := s.client.HGet(ctx, s.key, name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	schema, err := record.ParseJSON(b)
	if err != nil {
		return nil, errors.Join(ErrCorruptSchema, err)
	}
	return schema, nil
}

func (s *RedisStore) Put(ctx context.Context, name string, schema *record.Schema) error {
	if err := checkName(name); err != nil {
		return err
	}
	if schema == nil {
		return ErrNilSchema
	}
	b, err := json.Marshal(schema)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if err := s.client.HSet(ctx, s.key, name, b).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	n, err := s.client.HDel(ctx, s.key, name).Result()
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if n == 0 {
		return notFound(name)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.HKeys(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	slices.Sort(names)
	return names, nil
}
