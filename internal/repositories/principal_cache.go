package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
)

// Principal cache errors.
var (
	ErrCacheMiss      = errors.New("principal not found in cache")
	ErrCorruptedEntry = errors.New("malformed cached principal")
)

// PrincipalCacheRepository maps a credential digest to a brewer id and
// password fingerprint in Redis, stored as "id:fingerprint".
type PrincipalCacheRepository struct {
	client *redis.Client
	exp    time.Duration // how long a verified principal is trusted
}

func NewPrincipalCacheRepository(client *redis.Client, expiration time.Duration) *PrincipalCacheRepository {
	return &PrincipalCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func principalKey(digest string) string {
	return fmt.Sprintf("principal:%s", digest)
}

func encodePrincipal(p models.CachedPrincipal) string {
	return strconv.FormatInt(p.BrewerID, 10) + ":" + p.Fingerprint
}

func decodePrincipal(val string) (*models.CachedPrincipal, error) {
	idPart, fingerprint, ok := strings.Cut(val, ":")
	if !ok || fingerprint == "" {
		return nil, ErrCorruptedEntry
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedEntry, err)
	}
	return &models.CachedPrincipal{BrewerID: id, Fingerprint: fingerprint}, nil
}

// Get returns the cached principal for the digest.
func (r *PrincipalCacheRepository) Get(ctx context.Context, digest string) (*models.CachedPrincipal, error) {
	key := principalKey(digest)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	p, err := decodePrincipal(val)
	logger.Log.Infow(
		"key", key,
		"result", p,
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Set caches the principal for the configured window.
func (r *PrincipalCacheRepository) Set(ctx context.Context, digest string, p models.CachedPrincipal) error {
	key := principalKey(digest)
	err := r.client.Set(ctx, key, encodePrincipal(p), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"brewer_id", p.BrewerID,
		"result", "ok",
		"error", err,
	)

	return err
}
