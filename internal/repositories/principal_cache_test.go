package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPrincipalCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewPrincipalCacheRepository(rdb, 2*time.Second)

	t.Run("set and get", func(t *testing.T) {
		want := models.CachedPrincipal{BrewerID: 42, Fingerprint: "9f2c"}
		err := repo.Set(ctx, "digest-1", want)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "digest-1")
		assert.NoError(t, err)
		assert.Equal(t, &want, got)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := repo.Get(ctx, "unknown")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("expires", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "digest-2", models.CachedPrincipal{BrewerID: 7, Fingerprint: "ab"}))
		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, "digest-2")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("garbage value", func(t *testing.T) {
		assert.NoError(t, rdb.Set(ctx, principalKey("digest-3"), "not-a-number", time.Minute).Err())

		_, err := repo.Get(ctx, "digest-3")
		assert.ErrorIs(t, err, ErrCorruptedEntry)
	})
}

func TestDecodePrincipal(t *testing.T) {
	tests := []struct {
		name    string
		val     string
		want    *models.CachedPrincipal
		wantErr bool
	}{
		{name: "id and fingerprint", val: "7:0a1b", want: &models.CachedPrincipal{BrewerID: 7, Fingerprint: "0a1b"}},
		{name: "bare id from an older entry", val: "7", wantErr: true},
		{name: "empty fingerprint", val: "7:", wantErr: true},
		{name: "bad id", val: "x:0a1b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodePrincipal(tt.val)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCorruptedEntry)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.val, encodePrincipal(*got))
		})
	}
}
