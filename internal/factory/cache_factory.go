package factory

import (
	"github.com/mikey/email-triage/internal/adapters/cache"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"go.uber.org/zap"
)

// CacheFactory creates the classifier response cache based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateResponseCache creates the bounded in-memory cache, nil when caching is disabled
func (f *CacheFactory) CreateResponseCache() core.ResponseCache {
	cacheCfg := f.cfg.GetCache()
	if !cacheCfg.Enabled {
		f.logger.Info("Classifier cache disabled")
		return nil
	}
	return cache.NewMemoryCache(cacheCfg.MaxEntries, f.logger)
}
