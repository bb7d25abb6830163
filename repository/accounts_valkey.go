package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/askdrjosh/postpilot/domains/publisher"
	"github.com/askdrjosh/postpilot/infrastructure/valkey"
)

// AccountValkeyCache shares the platform account list across processes.
type AccountValkeyCache struct {
	client *valkey.Client
}

func NewAccountValkeyCache(client *valkey.Client) *AccountValkeyCache {
	return &AccountValkeyCache{client: client}
}

func (c *AccountValkeyCache) key() string {
	return c.client.Key("accounts")
}

func (c *AccountValkeyCache) Get(ctx context.Context) ([]publisher.SocialAccount, bool) {
	inner := c.client.Inner()
	raw, err := inner.Do(ctx, inner.B().Get().Key(c.key()).Build()).AsBytes()
	if err != nil {
		if !valkey.IsNil(err) {
			logrus.Warnf("[CACHE] account cache read failed: %v", err)
		}
		return nil, false
	}

	var accounts []publisher.SocialAccount
	if err := json.Unmarshal(raw, &accounts); err != nil {
		logrus.Warnf("[CACHE] corrupt account cache entry, dropping: %v", err)
		_ = c.Invalidate(ctx)
		return nil, false
	}
	return accounts, true
}

func (c *AccountValkeyCache) Set(ctx context.Context, accounts []publisher.SocialAccount, ttl time.Duration) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	inner := c.client.Inner()
	return inner.Do(ctx, inner.B().Set().Key(c.key()).Value(string(raw)).Ex(ttl).Build()).Error()
}

func (c *AccountValkeyCache) Invalidate(ctx context.Context) error {
	inner := c.client.Inner()
	return inner.Do(ctx, inner.B().Del().Key(c.key()).Build()).Error()
}
