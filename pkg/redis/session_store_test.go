package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "0000000000000000000000000000000000000000000000000000000000000000"

func newTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewSessionStore_KeyValidation(t *testing.T) {
	_, err := NewSessionStore("not-hex")
	require.Error(t, err)

	_, err = NewSessionStore("abcd")
	require.Error(t, err)

	store, err := NewSessionStore(testEncryptionKey)
	require.NoError(t, err)
	require.NotNil(t, store)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	mr := newTestRedis(t)
	store, err := NewSessionStore(testEncryptionKey)
	require.NoError(t, err)

	ctx := context.Background()
	data := &SessionData{AccessToken: "access", RefreshToken: "refresh"}
	require.NoError(t, store.CreateSession(ctx, "sid-1", data, time.Hour))

	// Stored value must not contain the plaintext tokens.
	raw, err := mr.Get("session:sid-1")
	require.NoError(t, err)
	require.False(t, strings.Contains(raw, "access"))

	got, err := store.GetSession(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, "access", got.AccessToken)
	require.Equal(t, "refresh", got.RefreshToken)

	require.NoError(t, store.DeleteSession(ctx, "sid-1"))
	_, err = store.GetSession(ctx, "sid-1")
	require.Error(t, err)
}

func TestSessionStore_TamperedCiphertext(t *testing.T) {
	mr := newTestRedis(t)
	store, err := NewSessionStore(testEncryptionKey)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.CreateSession(ctx, "sid-2", &SessionData{AccessToken: "a"}, time.Hour))
	require.NoError(t, mr.Set("session:sid-2", "deadbeef"))

	_, err = store.GetSession(ctx, "sid-2")
	require.Error(t, err)
}
