package content

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Style is the enumerated tone/category driving template and prompt selection.
type Style string

const (
	StyleEducational   Style = "educational"
	StyleInspirational Style = "inspirational"
	StyleFunny         Style = "funny"
	StyleMixed         Style = "mixed"
)

// Styles lists every supported content style.
var Styles = []Style{StyleEducational, StyleInspirational, StyleFunny, StyleMixed}

// ParseStyle normalizes a user-supplied style string, defaulting to educational.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleInspirational:
		return StyleInspirational
	case StyleFunny:
		return StyleFunny
	case StyleMixed:
		return StyleMixed
	default:
		return StyleEducational
	}
}

// Stage tracks where an item sits in the generation pipeline.
type Stage string

const (
	StageIdle         Stage = "idle"
	StageTopicReady   Stage = "topic_ready"
	StageCaptionReady Stage = "caption_ready"
	StageImagePending Stage = "image_pending"
	StageImageReady   Stage = "image_ready"
	StagePublished    Stage = "published"
	StageScheduled    Stage = "scheduled"

	// StageFailed is reserved for publish failures reported by the platform;
	// generation itself always falls back and never enters it.
	StageFailed Stage = "failed"
)

// transitions maps each stage to the stages reachable from it.
var transitions = map[Stage][]Stage{
	StageIdle:         {StageTopicReady},
	StageTopicReady:   {StageCaptionReady},
	StageCaptionReady: {StageImagePending},
	StageImagePending: {StageImageReady, StageFailed},
	StageImageReady:   {StageImagePending, StagePublished, StageScheduled},
	StagePublished:    {},
	StageScheduled:    {StagePublished},
	StageFailed:       {StageImagePending},
}

// CanTransition reports whether moving from one stage to another is legal.
func CanTransition(from, to Stage) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ContentItem is one generated topic+caption+image bundle tracked in the library.
type ContentItem struct {
	ID             uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Topic          string     `json:"topic"`
	Caption        string     `json:"caption"`
	ImagePrompt    string     `json:"image_prompt,omitempty"`
	ImageRef       string     `json:"image_ref"`
	Style          Style      `json:"style" gorm:"type:text"`
	Stage          Stage      `json:"stage" gorm:"type:text"`
	Published      bool       `json:"published"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	ScheduledFor   *time.Time `json:"scheduled_for,omitempty"`
	PlatformPostID string     `json:"platform_post_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

// Advance moves the item to the given stage, validating the transition.
func (i *ContentItem) Advance(to Stage) error {
	if !CanTransition(i.Stage, to) {
		return fmt.Errorf("illegal stage transition %s -> %s for item %d", i.Stage, to, i.ID)
	}
	i.Stage = to
	return nil
}

// IContentRepository persists the content library. The sequence behind item IDs
// survives Reset so identifiers never collide with previously exported ones.
type IContentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, item *ContentItem) error
	Update(ctx context.Context, item *ContentItem) error
	GetByID(ctx context.Context, id uint) (*ContentItem, error)
	List(ctx context.Context) ([]ContentItem, error)
	Reset(ctx context.Context) error
}

type GenerateRequest struct {
	Style      string `json:"style"`
	Hashtags   int    `json:"hashtags"`
	UseGraphic bool   `json:"use_graphic"`
	SourceURL  string `json:"source_url,omitempty"`
}

type RegenerateCaptionRequest struct {
	ItemID   uint `json:"item_id"`
	Hashtags int  `json:"hashtags"`
}

type RegenerateImageRequest struct {
	ItemID     uint `json:"item_id"`
	UseGraphic bool `json:"use_graphic"`
}

type PublishRequest struct {
	ItemID       uint       `json:"item_id"`
	AccountIDs   []string   `json:"account_ids"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// IContentUsecase is the orchestrator over the generation pipeline and the
// content library.
type IContentUsecase interface {
	Generate(ctx context.Context, request GenerateRequest) (ContentItem, error)
	RegenerateCaption(ctx context.Context, request RegenerateCaptionRequest) (ContentItem, error)
	RegenerateImage(ctx context.Context, request RegenerateImageRequest) (ContentItem, error)
	Publish(ctx context.Context, request PublishRequest) (ContentItem, error)
	Schedule(ctx context.Context, request PublishRequest) (ContentItem, error)
	Get(ctx context.Context, id uint) (ContentItem, error)
	List(ctx context.Context) ([]ContentItem, error)
	Reset(ctx context.Context) error
	ExportCSV(ctx context.Context) ([]byte, error)
}
