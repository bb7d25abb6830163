package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domainPublisher "github.com/askdrjosh/postpilot/domains/publisher"
	"github.com/askdrjosh/postpilot/integrations/highlevel"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
)

const accountCacheTTL = 5 * time.Minute

type servicePublisher struct {
	client *highlevel.Client
	cache  domainPublisher.IAccountCache
}

func NewPublisherService(client *highlevel.Client, cache domainPublisher.IAccountCache) domainPublisher.IPublisherUsecase {
	return &servicePublisher{client: client, cache: cache}
}

// ListAccounts returns the connected accounts, served from cache when fresh.
// Platform failures degrade to an empty list so the console keeps working.
func (service *servicePublisher) ListAccounts(ctx context.Context, forceRefresh bool) []domainPublisher.SocialAccount {
	if !service.client.Configured() {
		return []domainPublisher.SocialAccount{}
	}

	if forceRefresh {
		if err := service.cache.Invalidate(ctx); err != nil {
			logrus.Warnf("[PUBLISHER] failed to invalidate account cache: %v", err)
		}
	} else if cached, ok := service.cache.Get(ctx); ok {
		logrus.Debugf("[PUBLISHER] account cache hit (%d accounts)", len(cached))
		return cached
	}

	accounts, err := service.client.ListAccounts(ctx)
	if err != nil {
		logrus.Errorf("[PUBLISHER] failed to fetch accounts: %v", err)
		return []domainPublisher.SocialAccount{}
	}
	if err := service.cache.Set(ctx, accounts, accountCacheTTL); err != nil {
		logrus.Warnf("[PUBLISHER] failed to cache accounts: %v", err)
	}
	return accounts
}

// CreatePost forwards to the platform. Unlike the list operations this
// surfaces errors, so a failed publish is visible to the caller.
func (service *servicePublisher) CreatePost(ctx context.Context, request domainPublisher.CreatePostRequest) (*domainPublisher.Post, error) {
	if !service.client.Configured() {
		return nil, pkgError.ValidationError("publishing platform credentials are not configured")
	}
	if len(request.AccountIDs) == 0 {
		return nil, pkgError.ValidationError("at least one account must be selected")
	}
	return service.client.CreatePost(ctx, request)
}

// ListPosts degrades to an empty list on platform failure.
func (service *servicePublisher) ListPosts(ctx context.Context, limit int) []domainPublisher.Post {
	if !service.client.Configured() {
		return []domainPublisher.Post{}
	}
	posts, err := service.client.ListPosts(ctx, limit)
	if err != nil {
		logrus.Errorf("[PUBLISHER] failed to fetch posts: %v", err)
		return []domainPublisher.Post{}
	}
	return posts
}
