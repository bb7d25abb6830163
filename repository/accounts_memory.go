package repository

import (
	"context"
	"sync"
	"time"

	"github.com/askdrjosh/postpilot/domains/publisher"
)

// AccountMemoryCache is the in-process fallback when no Valkey is configured.
type AccountMemoryCache struct {
	mu        sync.RWMutex
	accounts  []publisher.SocialAccount
	expiresAt time.Time
}

func NewAccountMemoryCache() *AccountMemoryCache {
	return &AccountMemoryCache{}
}

func (c *AccountMemoryCache) Get(ctx context.Context) ([]publisher.SocialAccount, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.accounts == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	out := make([]publisher.SocialAccount, len(c.accounts))
	copy(out, c.accounts)
	return out, true
}

func (c *AccountMemoryCache) Set(ctx context.Context, accounts []publisher.SocialAccount, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = make([]publisher.SocialAccount, len(accounts))
	copy(c.accounts, accounts)
	c.expiresAt = time.Now().Add(ttl)
	return nil
}

func (c *AccountMemoryCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = nil
	c.expiresAt = time.Time{}
	return nil
}
