package highlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/askdrjosh/postpilot/domains/publisher"
)

const httpTimeout = 15 * time.Second

var httpClient = &http.Client{Timeout: httpTimeout}

// Client talks to the GoHighLevel social-media-posting API for one location.
type Client struct {
	baseURL    string
	apiKey     string
	locationID string
}

func NewClient(baseURL, apiKey, locationID string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		locationID: strings.TrimSpace(locationID),
	}
}

// Configured reports whether the client carries usable credentials.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.locationID != ""
}

type accountsResponse struct {
	Data []struct {
		ID       string `json:"id"`
		Platform string `json:"platform"`
		Type     string `json:"type"`
		Name     string `json:"name"`
	} `json:"data"`
}

// ListAccounts fetches the social accounts connected to the location.
func (c *Client) ListAccounts(ctx context.Context) ([]publisher.SocialAccount, error) {
	endpoint := fmt.Sprintf("%s/social-media-posting/%s/accounts", c.baseURL, c.locationID)

	var resp accountsResponse
	if err := c.jsonRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("list social accounts: %w", err)
	}

	accounts := make([]publisher.SocialAccount, 0, len(resp.Data))
	for _, a := range resp.Data {
		accountType := a.Type
		if accountType == "" {
			accountType = a.Platform
		}
		accounts = append(accounts, publisher.SocialAccount{
			ID:   a.ID,
			Type: accountType,
			Name: a.Name,
		})
	}
	logrus.Debugf("[HIGHLEVEL] fetched %d accounts", len(accounts))
	return accounts, nil
}

type createPostPayload struct {
	Content       string   `json:"content"`
	MediaURLs     []string `json:"mediaUrls"`
	Accounts      []string `json:"accounts,omitempty"`
	ScheduledTime string   `json:"scheduledTime,omitempty"`
}

type postEnvelope struct {
	Data postBody `json:"data"`
	// Some deployments return the post at the top level instead.
	postBody
}

type postBody struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Status      string   `json:"status"`
	MediaURLs   []string `json:"mediaUrls"`
	CreatedAt   string   `json:"createdAt"`
	ScheduledAt string   `json:"scheduledAt"`
}

// CreatePost publishes or schedules a post on the connected accounts.
func (c *Client) CreatePost(ctx context.Context, req publisher.CreatePostRequest) (*publisher.Post, error) {
	endpoint := fmt.Sprintf("%s/social-media-posting/%s/posts", c.baseURL, c.locationID)

	payload := createPostPayload{
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
		Accounts:  req.AccountIDs,
	}
	if payload.MediaURLs == nil {
		payload.MediaURLs = []string{}
	}
	if req.ScheduledTime != nil {
		payload.ScheduledTime = req.ScheduledTime.UTC().Format(time.RFC3339)
	}

	var resp postEnvelope
	if err := c.jsonRequest(ctx, http.MethodPost, endpoint, payload, &resp); err != nil {
		return nil, fmt.Errorf("create social post: %w", err)
	}

	post := resp.Data
	if post.ID == "" {
		post = resp.postBody
	}
	logrus.Infof("[HIGHLEVEL] created post %s (status %s)", post.ID, post.Status)
	return toPost(post), nil
}

type listPostsResponse struct {
	Data  []postBody `json:"data"`
	Posts []postBody `json:"posts"`
}

// ListPosts fetches the most recent posts for the location.
func (c *Client) ListPosts(ctx context.Context, limit int) ([]publisher.Post, error) {
	if limit <= 0 {
		limit = 10
	}
	endpoint := fmt.Sprintf("%s/social-media-posting/%s/posts/list", c.baseURL, c.locationID)

	payload := map[string]int{"limit": limit, "offset": 0}
	var resp listPostsResponse
	if err := c.jsonRequest(ctx, http.MethodPost, endpoint, payload, &resp); err != nil {
		return nil, fmt.Errorf("list social posts: %w", err)
	}

	raw := resp.Data
	if len(raw) == 0 {
		raw = resp.Posts
	}
	posts := make([]publisher.Post, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, *toPost(p))
	}
	return posts, nil
}

func toPost(p postBody) *publisher.Post {
	post := &publisher.Post{
		ID:        p.ID,
		Content:   p.Content,
		Status:    p.Status,
		MediaURLs: p.MediaURLs,
	}
	if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		post.CreatedAt = ts
	}
	return post
}

// jsonRequest builds, executes and decodes one authorized API call.
func (c *Client) jsonRequest(ctx context.Context, method, url string, body interface{}, dest interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed: status=%d body=%s", resp.StatusCode, string(data))
	}

	if dest != nil {
		return json.Unmarshal(data, dest)
	}
	return nil
}
