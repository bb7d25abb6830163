package template

import (
	"context"
	"time"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
)

// Template is a named, reusable topic+caption pair.
type Template struct {
	Name      string              `json:"name"`
	Topic     string              `json:"topic"`
	Caption   string              `json:"caption"`
	Style     domainContent.Style `json:"style"`
	CreatedAt time.Time           `json:"created_at"`
}

// ITemplateRepository persists templates as an append-only list. Duplicate
// names are allowed; lookups by name resolve to the most recently saved entry.
type ITemplateRepository interface {
	Load(ctx context.Context) ([]Template, error)
	Append(ctx context.Context, t Template) error
}

type SaveRequest struct {
	Name   string `json:"name"`
	ItemID uint   `json:"item_id"`
}

type ITemplateUsecase interface {
	Save(ctx context.Context, request SaveRequest) (Template, error)
	List(ctx context.Context) ([]Template, error)
	Apply(ctx context.Context, name string) (domainContent.ContentItem, error)
}
