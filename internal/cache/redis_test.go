package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubClient implements redisClient for testing.
type stubClient struct {
	pingErr error
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func (s *stubClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(0, nil)
}

func (s *stubClient) Close() error { return nil }

func TestNewRedisClient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var opts *redis.Options
		stub := &stubClient{}
		redisNewClient = func(o *redis.Options) redisClient {
			opts = o
			return stub
		}
		defer func() { redisNewClient = func(o *redis.Options) redisClient { return redis.NewClient(o) } }()

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 1)
		require.NoError(t, err)
		require.Equal(t, stub, c)
		require.Equal(t, "127.0.0.1:6379", opts.Addr)
		require.Equal(t, "secret", opts.Password)
		require.Equal(t, 1, opts.DB)
	})

	t.Run("ping fail", func(t *testing.T) {
		redisNewClient = func(o *redis.Options) redisClient {
			return &stubClient{pingErr: errors.New("fail")}
		}
		defer func() { redisNewClient = func(o *redis.Options) redisClient { return redis.NewClient(o) } }()

		c, err := NewRedisClient("addr", "", 0)
		require.Error(t, err)
		require.Nil(t, c)
	})
}

func TestSuggestionsKey(t *testing.T) {
	require.Equal(t, "chart:suggestions:d4f0", SuggestionsKey("d4f0"))
}

func TestFakeCacheSuggestionsRoundTrip(t *testing.T) {
	key := SuggestionsKey("d4f0")
	payload := `{"numericColumns":["sales"],"textColumns":["city"],"suggestions":[],"totalRows":2}`
	f := &FakeCache{
		GetFn: func(_ context.Context, k string) *redis.StringCmd {
			require.Equal(t, key, k)
			return redis.NewStringResult(payload, nil)
		},
		SetFn: func(_ context.Context, k string, v any, ttl time.Duration) *redis.StatusCmd {
			require.Equal(t, key, k)
			require.Equal(t, payload, v)
			require.Equal(t, SuggestionsTTL, ttl)
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			require.Equal(t, []string{key}, keys)
			return redis.NewIntResult(1, nil)
		},
	}
	require.Equal(t, "OK", f.Set(context.Background(), key, payload, SuggestionsTTL).Val())
	require.Equal(t, payload, f.Get(context.Background(), key).Val())
	require.Equal(t, int64(1), f.Del(context.Background(), key).Val())
	require.NoError(t, f.Close())
}
