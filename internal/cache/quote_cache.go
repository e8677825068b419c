package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/SparkleCleanOps/cleaning-ops/internal/pricing"
)

const (
	quoteKeyPrefix  = "quote:"
	defaultQuoteTTL = 15 * time.Minute
)

// QuoteCache keeps calculator results in Redis so the public quote
// endpoint does not recompute identical requests. A nil *QuoteCache is a
// no-op; the API runs fine without Redis.
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection. An empty addr
// disables caching.
func New(addr, password string) (*QuoteCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &QuoteCache{client: client, ttl: defaultQuoteTTL}, nil
}

func (qc *QuoteCache) Close() error {
	if qc == nil {
		return nil
	}
	return qc.client.Close()
}

// Key hashes the canonical JSON of a quote request together with the
// pricing table version, so a table change invalidates everything.
func Key(version string, category pricing.Category, attributes any) (string, error) {
	payload, err := json.Marshal(struct {
		Version    string           `json:"version"`
		Category   pricing.Category `json:"category"`
		Attributes any              `json:"attributes"`
	}{version, category, attributes})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(payload)
	return quoteKeyPrefix + hex.EncodeToString(sum[:]), nil
}

func (qc *QuoteCache) Get(ctx context.Context, key string) (*pricing.Quote, bool) {
	if qc == nil {
		return nil, false
	}

	data, err := qc.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and transport errors both mean "go compute it".
		return nil, false
	}

	var q pricing.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, false
	}
	return &q, true
}

func (qc *QuoteCache) Set(ctx context.Context, key string, q pricing.Quote) {
	if qc == nil {
		return
	}

	data, err := json.Marshal(q)
	if err != nil {
		return
	}
	// Best effort; a failed write only costs a recomputation.
	_ = qc.client.Set(ctx, key, data, qc.ttl).Err()
}
