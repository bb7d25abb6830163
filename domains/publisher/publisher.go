package publisher

import (
	"context"
	"time"
)

// SocialAccount is a read-only mirror of a connected account on the platform.
type SocialAccount struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Post is a read-only mirror of a post created on the platform.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	MediaURLs []string  `json:"mediaUrls"`
}

// CreatePostRequest is the payload for creating or scheduling a post.
type CreatePostRequest struct {
	Content       string     `json:"content"`
	MediaURLs     []string   `json:"mediaUrls"`
	AccountIDs    []string   `json:"accounts"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
}

// IAccountCache stores the platform account list between refreshes.
type IAccountCache interface {
	Get(ctx context.Context) ([]SocialAccount, bool)
	Set(ctx context.Context, accounts []SocialAccount, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// IPublisherUsecase wraps the platform client with caching and the
// degrade-to-empty policy: list operations never fail, they log and return
// empty results instead.
type IPublisherUsecase interface {
	ListAccounts(ctx context.Context, forceRefresh bool) []SocialAccount
	CreatePost(ctx context.Context, request CreatePostRequest) (*Post, error)
	ListPosts(ctx context.Context, limit int) []Post
}
