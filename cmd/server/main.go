package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ratnakarguru/skysearch/internal/cache"
	"github.com/ratnakarguru/skysearch/internal/handler"
	"github.com/ratnakarguru/skysearch/internal/itinerary"
	"github.com/ratnakarguru/skysearch/internal/loader"
	"github.com/ratnakarguru/skysearch/internal/ratelimit"
	"github.com/ratnakarguru/skysearch/internal/source"
)

type Config struct {
	Port            string
	CacheEnabled    bool
	RedisHost       string
	RedisPort       string
	RedisTTL        time.Duration
	AirportsURL     string
	FlightsURL      string
	FetchTimeout    time.Duration
	MaxRetries      int
	MultiCityPolicy string
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	airports := source.NewAirportDirectory(cfg.AirportsURL, cfg.FetchTimeout)
	flights := source.NewFlightInventory(cfg.FlightsURL, cfg.FetchTimeout)

	rateLimiter := ratelimit.NewSourceLimiterWithDefaults()
	rateLimiter.SetSourceLimit(airports.Name(), 5, 10)
	rateLimiter.SetSourceLimit(flights.Name(), 5, 10)

	loaderConfig := loader.Config{
		Timeout:    cfg.FetchTimeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelays: []time.Duration{
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
		},
		RateLimiter: rateLimiter,
	}
	session := loader.NewSession(loader.New(airports, flights, loaderConfig))

	var itineraryCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		itineraryCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		itineraryCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	policy := itinerary.PolicyAllowSynthetic
	if cfg.MultiCityPolicy == "require_inventory" {
		policy = itinerary.PolicyRequireInventory
	}
	constructor := itinerary.New(policy)

	searchHandler := handler.NewSearchHandler(session, itineraryCache, constructor)

	api := e.Group("/api/v1")
	api.POST("/search", searchHandler.Search)
	api.GET("/airports/suggest", searchHandler.Suggest)
	api.GET("/calendar", searchHandler.Calendar)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flight search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", true),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisTTL:        getEnvDuration("REDIS_TTL", 5*time.Minute),
		AirportsURL:     getEnv("AIRPORTS_URL", source.DefaultAirportsURL),
		FlightsURL:      getEnv("FLIGHTS_URL", source.DefaultFlightsURL),
		FetchTimeout:    getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		MaxRetries:      getEnvInt("MAX_RETRIES", 3),
		MultiCityPolicy: getEnv("MULTI_CITY_POLICY", "allow_synthetic"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
