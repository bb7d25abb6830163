package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainPublisher "github.com/askdrjosh/postpilot/domains/publisher"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
	"github.com/askdrjosh/postpilot/studio"
	"github.com/askdrjosh/postpilot/studio/graphic"
	"github.com/askdrjosh/postpilot/validations"
)

const defaultHashtags = 5

// StageNotifier receives every persisted stage change, for live UI updates.
type StageNotifier func(item domainContent.ContentItem)

type serviceContent struct {
	repo      domainContent.IContentRepository
	studio    *studio.Studio
	renderer  *graphic.Renderer
	publisher domainPublisher.IPublisherUsecase
	notify    StageNotifier
}

func NewContentService(
	repo domainContent.IContentRepository,
	contentStudio *studio.Studio,
	renderer *graphic.Renderer,
	publisherService domainPublisher.IPublisherUsecase,
	notify StageNotifier,
) domainContent.IContentUsecase {
	if notify == nil {
		notify = func(domainContent.ContentItem) {}
	}
	return &serviceContent{
		repo:      repo,
		studio:    contentStudio,
		renderer:  renderer,
		publisher: publisherService,
		notify:    notify,
	}
}

// Generate runs the full pipeline: topic, caption, then image, persisting and
// broadcasting after every stage.
func (service *serviceContent) Generate(ctx context.Context, request domainContent.GenerateRequest) (domainContent.ContentItem, error) {
	if err := validations.ValidateGenerate(ctx, request); err != nil {
		return domainContent.ContentItem{}, err
	}
	style := domainContent.ParseStyle(request.Style)
	hashtags := request.Hashtags
	if hashtags == 0 {
		hashtags = defaultHashtags
	}

	var topic string
	if request.SourceURL != "" {
		seed, err := studio.FetchArticleSeed(ctx, request.SourceURL)
		if err != nil {
			return domainContent.ContentItem{}, err
		}
		topic = service.studio.GenerateTopicFromSource(ctx, style, seed)
	} else {
		topic = service.studio.GenerateTopic(ctx, style)
	}

	item := domainContent.ContentItem{
		Topic: topic,
		Style: style,
		Stage: domainContent.StageTopicReady,
	}
	if err := service.repo.Create(ctx, &item); err != nil {
		return domainContent.ContentItem{}, err
	}
	logrus.Infof("[CONTENT] item %d: topic ready", item.ID)
	service.notify(item)

	item.Caption = service.studio.GenerateCaption(ctx, topic, style, hashtags)
	if err := service.advance(ctx, &item, domainContent.StageCaptionReady); err != nil {
		return domainContent.ContentItem{}, err
	}

	if err := service.generateImage(ctx, &item, request.UseGraphic); err != nil {
		return domainContent.ContentItem{}, err
	}
	return item, nil
}

func (service *serviceContent) generateImage(ctx context.Context, item *domainContent.ContentItem, useGraphic bool) error {
	if err := service.advance(ctx, item, domainContent.StageImagePending); err != nil {
		return err
	}

	if useGraphic {
		item.ImagePrompt = ""
		item.ImageRef = service.renderer.Render(item.Topic, item.Style)
	} else {
		item.ImagePrompt = studio.BuildImagePrompt(item.Topic)
		item.ImageRef = service.studio.GenerateImage(ctx, item.ImagePrompt, item.Style, false)
	}
	logrus.Infof("[CONTENT] item %d: image ready (%s)", item.ID, item.ImageRef)
	return service.advance(ctx, item, domainContent.StageImageReady)
}

// RegenerateCaption rewrites only the caption of an existing item, addressed
// by its ID.
func (service *serviceContent) RegenerateCaption(ctx context.Context, request domainContent.RegenerateCaptionRequest) (domainContent.ContentItem, error) {
	if err := validations.ValidateRegenerateCaption(ctx, request); err != nil {
		return domainContent.ContentItem{}, err
	}
	item, err := service.repo.GetByID(ctx, request.ItemID)
	if err != nil {
		return domainContent.ContentItem{}, err
	}
	if item.Topic == "" {
		return domainContent.ContentItem{}, pkgError.ValidationError(fmt.Sprintf("item %d has no topic yet", item.ID))
	}

	hashtags := request.Hashtags
	if hashtags == 0 {
		hashtags = defaultHashtags
	}
	item.Caption = service.studio.GenerateCaption(ctx, item.Topic, item.Style, hashtags)

	// Only a topic-stage item moves forward; anything further along keeps its
	// stage so a finished item stays publishable after a caption rewrite.
	if item.Stage == domainContent.StageTopicReady {
		if err := service.advance(ctx, item, domainContent.StageCaptionReady); err != nil {
			return domainContent.ContentItem{}, err
		}
		return *item, nil
	}
	if err := service.repo.Update(ctx, item); err != nil {
		return domainContent.ContentItem{}, err
	}
	service.notify(*item)
	return *item, nil
}

// RegenerateImage re-runs only the image stage of an existing item.
func (service *serviceContent) RegenerateImage(ctx context.Context, request domainContent.RegenerateImageRequest) (domainContent.ContentItem, error) {
	if err := validations.ValidateRegenerateImage(ctx, request); err != nil {
		return domainContent.ContentItem{}, err
	}
	item, err := service.repo.GetByID(ctx, request.ItemID)
	if err != nil {
		return domainContent.ContentItem{}, err
	}
	if !domainContent.CanTransition(item.Stage, domainContent.StageImagePending) {
		return domainContent.ContentItem{}, pkgError.ValidationError(
			fmt.Sprintf("item %d cannot regenerate image from stage %s", item.ID, item.Stage))
	}
	if err := service.generateImage(ctx, item, request.UseGraphic); err != nil {
		return domainContent.ContentItem{}, err
	}
	return *item, nil
}

// Publish sends the item to the platform immediately. The account list must
// be explicit; the platform is never called with zero accounts.
func (service *serviceContent) Publish(ctx context.Context, request domainContent.PublishRequest) (domainContent.ContentItem, error) {
	if err := validations.ValidatePublish(ctx, request); err != nil {
		return domainContent.ContentItem{}, err
	}
	return service.submit(ctx, request, nil)
}

// Schedule sends the item to the platform with a future publish time.
func (service *serviceContent) Schedule(ctx context.Context, request domainContent.PublishRequest) (domainContent.ContentItem, error) {
	if err := validations.ValidateSchedule(ctx, request); err != nil {
		return domainContent.ContentItem{}, err
	}
	if !request.ScheduledFor.After(time.Now()) {
		return domainContent.ContentItem{}, pkgError.ValidationError("scheduled_for: must be in the future.")
	}
	return service.submit(ctx, request, request.ScheduledFor)
}

func (service *serviceContent) submit(ctx context.Context, request domainContent.PublishRequest, scheduledFor *time.Time) (domainContent.ContentItem, error) {
	item, err := service.repo.GetByID(ctx, request.ItemID)
	if err != nil {
		return domainContent.ContentItem{}, err
	}
	if item.Stage != domainContent.StageImageReady {
		return domainContent.ContentItem{}, pkgError.ValidationError(
			fmt.Sprintf("item %d is not ready to publish (stage %s)", item.ID, item.Stage))
	}
	if strings.TrimSpace(item.Caption) == "" {
		return domainContent.ContentItem{}, pkgError.ValidationError(fmt.Sprintf("item %d has no caption", item.ID))
	}

	postReq := domainPublisher.CreatePostRequest{
		Content:       item.Caption,
		AccountIDs:    request.AccountIDs,
		ScheduledTime: scheduledFor,
	}
	// Local file paths are not reachable by the platform; only pass remote refs.
	if strings.HasPrefix(item.ImageRef, "http://") || strings.HasPrefix(item.ImageRef, "https://") {
		postReq.MediaURLs = []string{item.ImageRef}
	}

	post, err := service.publisher.CreatePost(ctx, postReq)
	if err != nil {
		return domainContent.ContentItem{}, err
	}

	item.PlatformPostID = post.ID
	if scheduledFor != nil {
		item.ScheduledFor = scheduledFor
		err = service.advance(ctx, item, domainContent.StageScheduled)
	} else {
		now := time.Now().UTC()
		item.Published = true
		item.PublishedAt = &now
		err = service.advance(ctx, item, domainContent.StagePublished)
	}
	if err != nil {
		return domainContent.ContentItem{}, err
	}
	return *item, nil
}

func (service *serviceContent) Get(ctx context.Context, id uint) (domainContent.ContentItem, error) {
	item, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return domainContent.ContentItem{}, err
	}
	return *item, nil
}

func (service *serviceContent) List(ctx context.Context) ([]domainContent.ContentItem, error) {
	return service.repo.List(ctx)
}

func (service *serviceContent) Reset(ctx context.Context) error {
	logrus.Warn("[CONTENT] resetting content library")
	return service.repo.Reset(ctx)
}

// ExportCSV renders the whole library as a CSV document.
func (service *serviceContent) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"id", "topic", "caption", "style", "stage", "image_ref", "created_at", "published", "published_at", "scheduled_for", "platform_post_id"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, item := range items {
		row := []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Topic,
			item.Caption,
			string(item.Style),
			string(item.Stage),
			item.ImageRef,
			item.CreatedAt.UTC().Format(time.RFC3339),
			strconv.FormatBool(item.Published),
			formatTime(item.PublishedAt),
			formatTime(item.ScheduledFor),
			item.PlatformPostID,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// advance persists a stage transition and notifies listeners.
func (service *serviceContent) advance(ctx context.Context, item *domainContent.ContentItem, to domainContent.Stage) error {
	if err := item.Advance(to); err != nil {
		return pkgError.ValidationError(err.Error())
	}
	if err := service.repo.Update(ctx, item); err != nil {
		return err
	}
	service.notify(*item)
	return nil
}
