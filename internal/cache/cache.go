package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ratnakarguru/skysearch/internal/models"
)

// Cache stores constructed (pre-filter) itineraries keyed by the canonical
// fields of the specification that produced them.
type Cache interface {
	Get(ctx context.Context, spec models.SearchSpecification) ([]models.Itinerary, bool)
	Set(ctx context.Context, spec models.SearchSpecification, itineraries []models.Itinerary) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, spec models.SearchSpecification) ([]models.Itinerary, bool) {
	key := generateKey(spec)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var itineraries []models.Itinerary
	if err := json.Unmarshal(data, &itineraries); err != nil {
		return nil, false
	}

	return itineraries, true
}

func (c *RedisCache) Set(ctx context.Context, spec models.SearchSpecification, itineraries []models.Itinerary) error {
	key := generateKey(spec)

	data, err := json.Marshal(itineraries)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, spec models.SearchSpecification) ([]models.Itinerary, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, spec models.SearchSpecification, itineraries []models.Itinerary) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// generateKey hashes the canonical trip fields. Labels are display-only and
// excluded, so "Delhi (DEL)" and "DEL" resolve to the same entry.
func generateKey(spec models.SearchSpecification) string {
	type segKey struct {
		From string
		To   string
		Date string
	}
	keyData := struct {
		Type       string
		From       string
		To         string
		Date       string
		ReturnDate string
		Segments   []segKey
		Passengers models.Passengers
		CabinClass string
	}{
		Type:       spec.Type,
		From:       spec.From,
		To:         spec.To,
		Date:       spec.Date,
		ReturnDate: spec.ReturnDate,
		Passengers: spec.Passengers,
		CabinClass: spec.CabinClass,
	}
	for _, seg := range spec.Segments {
		keyData.Segments = append(keyData.Segments, segKey{From: seg.From, To: seg.To, Date: seg.Date})
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "itinerary:" + hex.EncodeToString(hash[:])
}
