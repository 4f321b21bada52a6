package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var NilError = goredis.Nil

type Options = goredis.UniversalOptions

// RedisAdapter is the subset of redis commands the document store needs.
// Every key passed in is prefixed with the adapter's key prefix.
type RedisAdapter interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	MGet(ctx context.Context, keys ...string) ([][]byte, error)
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	SAdd(ctx context.Context, key string, members ...interface{}) error
	SRem(ctx context.Context, key string, members ...interface{}) error
	SMembers(ctx context.Context, key string) ([]string, error)
	TxPipelined(ctx context.Context, fn func(Pipeliner) error) error
	Ping(ctx context.Context) error
	Client() goredis.UniversalClient
	Close() error
}

// Pipeliner queues writes inside a MULTI/EXEC block with the adapter prefix applied.
type Pipeliner interface {
	Set(key string, value []byte, ttl time.Duration)
	Del(keys ...string)
	SAdd(key string, members ...interface{})
	SRem(key string, members ...interface{})
}

type redisAdapter struct {
	prefix string
	Conn   goredis.UniversalClient
}

func NewRedisAdapter(keysPrefix string, opts *goredis.UniversalOptions) (RedisAdapter, error) {
	c := goredis.NewUniversalClient(opts)
	if cmd := c.Ping(context.Background()); cmd.Err() != nil {
		_ = c.Close()
		return nil, cmd.Err()
	}

	return &redisAdapter{
		Conn:   c,
		prefix: keysPrefix,
	}, nil
}

func (r *redisAdapter) key(k string) string {
	return r.prefix + k
}

func (r *redisAdapter) keys(ks []string) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = r.prefix + k
	}
	return out
}

func (r *redisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Conn.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *redisAdapter) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	cmd := r.Conn.SetNX(ctx, r.key(key), value, ttl)
	if err := cmd.Err(); err != nil {
		return false, err
	}
	return cmd.Val(), nil
}

func (r *redisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	st := r.Conn.Get(ctx, r.key(key))
	if err := st.Err(); err != nil {
		return nil, err
	}
	return st.Bytes()
}

// MGet returns one slot per key; missing keys yield a nil slot.
func (r *redisAdapter) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	vals, err := r.Conn.MGet(ctx, r.keys(keys)...).Result()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		switch t := v.(type) {
		case nil:
		case string:
			out[i] = []byte(t)
		case []byte:
			out[i] = t
		default:
			return nil, fmt.Errorf("unexpected mget value type %T", v)
		}
	}
	return out, nil
}

func (r *redisAdapter) Del(ctx context.Context, keys ...string) error {
	return r.Conn.Del(ctx, r.keys(keys)...).Err()
}

func (r *redisAdapter) Incr(ctx context.Context, key string) (int64, error) {
	return r.Conn.Incr(ctx, r.key(key)).Result()
}

func (r *redisAdapter) SAdd(ctx context.Context, key string, members ...interface{}) error {
	return r.Conn.SAdd(ctx, r.key(key), members...).Err()
}

func (r *redisAdapter) SRem(ctx context.Context, key string, members ...interface{}) error {
	return r.Conn.SRem(ctx, r.key(key), members...).Err()
}

func (r *redisAdapter) SMembers(ctx context.Context, key string) ([]string, error) {
	return r.Conn.SMembers(ctx, r.key(key)).Result()
}

func (r *redisAdapter) TxPipelined(ctx context.Context, fn func(Pipeliner) error) error {
	cmds, err := r.Conn.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		return fn(&pipeliner{ctx: ctx, p: p, prefix: r.prefix})
	})
	if err != nil {
		return fmt.Errorf("redis transaction: %w", err)
	}
	for _, c := range cmds {
		if c != nil && c.Err() != nil {
			return fmt.Errorf("redis transaction command %s: %w", c.Name(), c.Err())
		}
	}
	return nil
}

func (r *redisAdapter) Ping(ctx context.Context) error {
	return r.Conn.Ping(ctx).Err()
}

func (r *redisAdapter) Client() goredis.UniversalClient {
	return r.Conn
}

func (r *redisAdapter) Close() error {
	return r.Conn.Close()
}

type pipeliner struct {
	ctx    context.Context
	p      goredis.Pipeliner
	prefix string
}

func (p *pipeliner) Set(key string, value []byte, ttl time.Duration) {
	p.p.Set(p.ctx, p.prefix+key, value, ttl)
}

func (p *pipeliner) Del(keys ...string) {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = p.prefix + k
	}
	p.p.Del(p.ctx, prefixed...)
}

func (p *pipeliner) SAdd(key string, members ...interface{}) {
	p.p.SAdd(p.ctx, p.prefix+key, members...)
}

func (p *pipeliner) SRem(key string, members ...interface{}) {
	p.p.SRem(p.ctx, p.prefix+key, members...)
}
