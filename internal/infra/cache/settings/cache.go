package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	cacheName = "restaurant_settings"
	keyPrefix = "availability:restaurant-settings:"
)

// SettingsSource источник настроек ресторана (репозиторий)
type SettingsSource interface {
	GetSettings(ctx context.Context, restaurantID uuid.UUID) (*domain.RestaurantSettings, error)
}

// Observer учитывает попадания и промахи кэша
type Observer interface {
	ObserveCache(cache, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache read-through кэш настроек ресторана в Redis
// Ошибки Redis не прерывают запрос: настройки читаются из источника
type Cache struct {
	source   SettingsSource
	client   redis.UniversalClient
	ttl      time.Duration
	observer Observer
	logger   Logger
}

// New создает кэш; при nil клиенте или ttl <= 0 все запросы идут в источник
func New(source SettingsSource, client redis.UniversalClient, ttl time.Duration, observer Observer, logger Logger) *Cache {
	return &Cache{
		source:   source,
		client:   client,
		ttl:      ttl,
		observer: observer,
		logger:   logger,
	}
}

// GetSettings возвращает настройки из кэша или из источника с последующим сохранением
func (c *Cache) GetSettings(ctx context.Context, restaurantID uuid.UUID) (*domain.RestaurantSettings, error) {
	if !c.enabled() {
		return c.source.GetSettings(ctx, restaurantID)
	}

	key := keyPrefix + restaurantID.String()

	if cached, ok := c.read(ctx, key); ok {
		c.observe("hit")
		return cached, nil
	}
	c.observe("miss")

	s, err := c.source.GetSettings(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	c.write(ctx, key, s)
	return s, nil
}

// Invalidate удаляет настройки ресторана из кэша
func (c *Cache) Invalidate(ctx context.Context, restaurantID uuid.UUID) error {
	if !c.enabled() {
		return nil
	}
	if err := c.client.Del(ctx, keyPrefix+restaurantID.String()).Err(); err != nil {
		return fmt.Errorf("settings.cache: invalidate %s: %w", restaurantID, err)
	}
	return nil
}

func (c *Cache) enabled() bool {
	return c.client != nil && c.ttl > 0
}

func (c *Cache) read(ctx context.Context, key string) (*domain.RestaurantSettings, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.observe("error")
			c.logger.Warn("settings.cache: get %s: %v", key, err)
		}
		return nil, false
	}

	var s domain.RestaurantSettings
	if err := json.Unmarshal(val, &s); err != nil {
		c.logger.Warn("settings.cache: decode %s: %v", key, err)
		return nil, false
	}
	return &s, true
}

func (c *Cache) write(ctx context.Context, key string, s *domain.RestaurantSettings) {
	data, err := json.Marshal(s)
	if err != nil {
		c.logger.Warn("settings.cache: encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.observe("error")
		c.logger.Warn("settings.cache: set %s: %v", key, err)
	}
}

func (c *Cache) observe(result string) {
	if c.observer != nil {
		c.observer.ObserveCache(cacheName, result)
	}
}
