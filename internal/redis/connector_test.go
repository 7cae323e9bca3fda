package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekpss/quizapp/internal/config"
	"github.com/ekpss/quizapp/internal/logger"
)

func testOptions(addr string) ConnectOptions {
	return ConnectOptions{
		Addr:           addr,
		DialTimeout:    100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
		PoolSize:       2,
		ConnectTimeout: 300 * time.Millisecond,
		RetryInterval:  20 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    100 * time.Millisecond,
		WarnThreshold:  1,
	}
}

func TestNewConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), testOptions(mr.Addr()), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestNewGivesUpAfterTimeout(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	start := time.Now()
	_, err := New(context.Background(), testOptions(addr), logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis unavailable")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewStopsWhenContextIsDone(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	opts := testOptions(addr)
	opts.ConnectTimeout = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := New(ctx, opts, logger.Nop())
	assert.Error(t, err)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConnectOptions)
	}{
		{"connect timeout", func(o *ConnectOptions) { o.ConnectTimeout = 0 }},
		{"retry interval", func(o *ConnectOptions) { o.RetryInterval = 0 }},
		{"max wait", func(o *ConnectOptions) { o.MaxWait = -1 }},
		{"ping timeout", func(o *ConnectOptions) { o.PingTimeout = 0 }},
		{"warn threshold", func(o *ConnectOptions) { o.WarnThreshold = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions("localhost:0")
			tt.mutate(&opts)
			_, err := New(context.Background(), opts, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestValidateReportsEverySetting(t *testing.T) {
	err := ConnectOptions{WarnThreshold: -1}.Validate()
	require.Error(t, err)
	for _, name := range []string{"ConnectTimeout", "RetryInterval", "MaxWait", "PingTimeout", "WarnThreshold"} {
		assert.Contains(t, err.Error(), name)
	}

	assert.NoError(t, testOptions("localhost:6379").Validate())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		RedisAddr:           "redis:6379",
		RedisUser:           "default",
		RedisPassword:       "secret",
		RedisDB:             3,
		RedisPoolSize:       10,
		RedisConnectTimeout: 30 * time.Second,
		RedisRetryInterval:  2 * time.Second,
		RedisWarnThreshold:  3,
	}

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 10, opts.PoolSize)
	assert.Equal(t, 30*time.Second, opts.ConnectTimeout)
	assert.Equal(t, 2*time.Second, opts.RetryInterval)
	assert.Equal(t, 3, opts.WarnThreshold)
}
