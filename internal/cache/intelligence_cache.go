package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lifetrack/internal/model"
)

// IntelligenceCache handles Redis operations for computed intelligence views.
// Entries expire by TTL; there is no explicit invalidation path because the
// views are cheap to recompute and tolerant of short staleness.
type IntelligenceCache interface {
	GetDashboard(ctx context.Context) (*model.DashboardView, error)
	SetDashboard(ctx context.Context, view *model.DashboardView) error

	GetCore(ctx context.Context) (*model.CoreView, error)
	SetCore(ctx context.Context, view *model.CoreView) error
}

type intelligenceCache struct {
	client       *redis.Client
	dashboardTTL time.Duration
	coreTTL      time.Duration
}

// NewIntelligenceCache creates a new intelligence view cache
func NewIntelligenceCache(client *redis.Client) IntelligenceCache {
	return &intelligenceCache{
		client:       client,
		dashboardTTL: 2 * time.Minute,
		coreTTL:      5 * time.Minute,
	}
}

// Key helpers
func (c *intelligenceCache) dashboardKey() string {
	return "intelligence:dashboard"
}

func (c *intelligenceCache) coreKey() string {
	return "intelligence:core"
}

func (c *intelligenceCache) GetDashboard(ctx context.Context) (*model.DashboardView, error) {
	data, err := c.client.Get(ctx, c.dashboardKey()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var view model.DashboardView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *intelligenceCache) SetDashboard(ctx context.Context, view *model.DashboardView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.dashboardKey(), data, c.dashboardTTL).Err()
}

func (c *intelligenceCache) GetCore(ctx context.Context) (*model.CoreView, error) {
	data, err := c.client.Get(ctx, c.coreKey()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var view model.CoreView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *intelligenceCache) SetCore(ctx context.Context, view *model.CoreView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.coreKey(), data, c.coreTTL).Err()
}
