package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheService хранит JSON-снимки ответов в Redis.
// С nil клиентом кэш выключен: Get всегда промахивается, Set и Delete ничего не делают.
type CacheService struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{redisClient: client, ttl: ttl}
}

func (c *CacheService) enabled() bool {
	return c != nil && c.redisClient != nil
}

// Get получает данные из кэша
func (c *CacheService) Get(ctx context.Context, key string, result interface{}) (bool, error) {
	if !c.enabled() {
		return false, nil
	}

	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("ошибка при получении данных из кэша: %w", err)
	}

	if err := json.Unmarshal(val, result); err != nil {
		return false, fmt.Errorf("ошибка при десериализации данных из кэша: %w", err)
	}

	return true, nil
}

// Set сохраняет данные в кэш
func (c *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if !c.enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации данных для кэша: %w", err)
	}

	if err := c.redisClient.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("ошибка при сохранении данных в кэш: %w", err)
	}

	return nil
}

// Delete удаляет ключи из кэша
func (c *CacheService) Delete(ctx context.Context, keys ...string) error {
	if !c.enabled() || len(keys) == 0 {
		return nil
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("ошибка при удалении данных из кэша: %w", err)
	}
	return nil
}

// CarsListKey генерирует ключ для кэша списка машин
func CarsListKey(onlyAvailable bool) string {
	return fmt.Sprintf("cars:list:available=%t", onlyAvailable)
}
