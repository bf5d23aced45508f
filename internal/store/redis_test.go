package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSaveGet(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	r, err := NewRedis(ctx, mr.Addr(), time.Hour)
	require.NoError(t, err)
	defer r.Close()

	id, err := r.Save(ctx, "new-product", payload{Scenario: "new-product", Profit: 99})
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+id))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+id))

	rec, err := r.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new-product", rec.Kind)

	var got payload
	require.NoError(t, json.Unmarshal(rec.Payload, &got))
	assert.Equal(t, 99.0, got.Profit)
}

func TestRedisExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	r, err := NewRedis(ctx, mr.Addr(), time.Minute)
	require.NoError(t, err)
	defer r.Close()

	id, err := r.Save(ctx, "promotion", payload{})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = r.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisCorruptRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	r, err := NewRedis(ctx, mr.Addr(), time.Minute)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, mr.Set(keyPrefix+"bad", "{not json"))
	_, err = r.Get(ctx, "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedis(ctx, addr, time.Minute)
	assert.Error(t, err)
}
