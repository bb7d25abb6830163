package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainPublisher "github.com/askdrjosh/postpilot/domains/publisher"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
	"github.com/askdrjosh/postpilot/studio"
	"github.com/askdrjosh/postpilot/studio/graphic"
)

// --- fakes ---

type memContentRepo struct {
	items  map[uint]domainContent.ContentItem
	nextID uint
}

func newMemContentRepo() *memContentRepo {
	return &memContentRepo{items: make(map[uint]domainContent.ContentItem), nextID: 1}
}

func (r *memContentRepo) Init(ctx context.Context) error { return nil }

func (r *memContentRepo) Create(ctx context.Context, item *domainContent.ContentItem) error {
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

func (r *memContentRepo) Update(ctx context.Context, item *domainContent.ContentItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return pkgError.NotFoundError("missing item")
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memContentRepo) GetByID(ctx context.Context, id uint) (*domainContent.ContentItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, pkgError.NotFoundError("missing item")
	}
	return &item, nil
}

func (r *memContentRepo) List(ctx context.Context) ([]domainContent.ContentItem, error) {
	out := make([]domainContent.ContentItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *memContentRepo) Reset(ctx context.Context) error {
	r.items = make(map[uint]domainContent.ContentItem)
	return nil
}

type fakeText struct {
	out string
	err error
}

func (f fakeText) Complete(_ context.Context, _ studio.TextRequest) (string, error) {
	return f.out, f.err
}

type fakeImage struct {
	result studio.ImageResult
	err    error
}

func (f fakeImage) GenerateImage(_ context.Context, _ studio.ImageParams) (studio.ImageResult, error) {
	return f.result, f.err
}

type fakePublisher struct {
	post     *domainPublisher.Post
	err      error
	lastReq  *domainPublisher.CreatePostRequest
	accounts []domainPublisher.SocialAccount
}

func (f *fakePublisher) ListAccounts(ctx context.Context, forceRefresh bool) []domainPublisher.SocialAccount {
	return f.accounts
}

func (f *fakePublisher) CreatePost(ctx context.Context, req domainPublisher.CreatePostRequest) (*domainPublisher.Post, error) {
	f.lastReq = &req
	return f.post, f.err
}

func (f *fakePublisher) ListPosts(ctx context.Context, limit int) []domainPublisher.Post {
	return nil
}

// --- helpers ---

func newTestService(t *testing.T, text studio.TextProvider, image studio.ImageProvider, pub *fakePublisher, notify StageNotifier) (domainContent.IContentUsecase, *memContentRepo) {
	t.Helper()
	repo := newMemContentRepo()
	s := studio.New(studio.Options{
		Text:      text,
		Image:     image,
		Brand:     studio.Brand{Tone: "friendly", TargetAudience: "test audience", Handle: "askdrjosh"},
		TextModel: "gpt-4o",
		OutputDir: t.TempDir(),
	})
	renderer, err := graphic.NewRenderer("#4267B2", "#00b2ff", "#FFFFFF", t.TempDir(), "")
	require.NoError(t, err)
	return NewContentService(repo, s, renderer, pub, notify), repo
}

var errDown = errors.New("provider down")

// --- tests ---

func TestGeneratePipelineStages(t *testing.T) {
	var stages []domainContent.Stage
	service, _ := newTestService(t,
		fakeText{err: errDown},
		fakeImage{err: errDown},
		&fakePublisher{},
		func(item domainContent.ContentItem) { stages = append(stages, item.Stage) },
	)

	item, err := service.Generate(context.Background(), domainContent.GenerateRequest{Style: "educational", Hashtags: 4})
	require.NoError(t, err)

	require.NotZero(t, item.ID)
	require.NotEmpty(t, item.Topic)
	require.NotEmpty(t, item.Caption)
	require.Equal(t, domainContent.StageImageReady, item.Stage)
	require.True(t, strings.HasPrefix(item.ImageRef, "https://via.placeholder.com/"), "forced image failure must yield placeholder, got %q", item.ImageRef)
	require.NotEmpty(t, item.ImagePrompt)

	want := []domainContent.Stage{
		domainContent.StageTopicReady,
		domainContent.StageCaptionReady,
		domainContent.StageImagePending,
		domainContent.StageImageReady,
	}
	require.Equal(t, want, stages)
}

func TestGenerateWithGraphicSkipsImageAPI(t *testing.T) {
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, &fakePublisher{}, nil)

	item, err := service.Generate(context.Background(), domainContent.GenerateRequest{Style: "funny", UseGraphic: true})
	require.NoError(t, err)
	require.Empty(t, item.ImagePrompt)
	require.False(t, strings.HasPrefix(item.ImageRef, "https://"), "graphic must be rendered locally, got %q", item.ImageRef)
}

func TestRegenerateCaptionThreadsItemID(t *testing.T) {
	service, repo := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, &fakePublisher{}, nil)
	ctx := context.Background()

	first, err := service.Generate(ctx, domainContent.GenerateRequest{Style: "mixed"})
	require.NoError(t, err)
	second, err := service.Generate(ctx, domainContent.GenerateRequest{Style: "mixed"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	updated, err := service.RegenerateCaption(ctx, domainContent.RegenerateCaptionRequest{ItemID: first.ID, Hashtags: 2})
	require.NoError(t, err)
	require.Equal(t, first.ID, updated.ID)
	require.Contains(t, updated.Caption, first.Topic)

	// the sibling item is untouched
	other, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, second.Caption, other.Caption)
}

func TestRegenerateCaptionKeepsItemPublishable(t *testing.T) {
	pub := &fakePublisher{post: &domainPublisher.Post{ID: "post-2", Status: "published"}}
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, pub, nil)
	ctx := context.Background()

	item, err := service.Generate(ctx, domainContent.GenerateRequest{Style: "educational"})
	require.NoError(t, err)
	require.Equal(t, domainContent.StageImageReady, item.Stage)

	rewritten, err := service.RegenerateCaption(ctx, domainContent.RegenerateCaptionRequest{ItemID: item.ID, Hashtags: 3})
	require.NoError(t, err)
	require.Equal(t, domainContent.StageImageReady, rewritten.Stage, "caption rewrite must not move a finished item backwards")
	require.Equal(t, item.ImageRef, rewritten.ImageRef)

	published, err := service.Publish(ctx, domainContent.PublishRequest{ItemID: item.ID, AccountIDs: []string{"acc-1"}})
	require.NoError(t, err)
	require.Equal(t, domainContent.StagePublished, published.Stage)
	require.Equal(t, rewritten.Caption, pub.lastReq.Content)
}

func TestRegenerateCaptionMissingItem(t *testing.T) {
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, &fakePublisher{}, nil)

	_, err := service.RegenerateCaption(context.Background(), domainContent.RegenerateCaptionRequest{ItemID: 99})
	require.Error(t, err)
	var generic pkgError.GenericError
	require.ErrorAs(t, err, &generic)
	require.Equal(t, 404, generic.StatusCode())
}

func TestRegenerateImageFromReadyStage(t *testing.T) {
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, &fakePublisher{}, nil)
	ctx := context.Background()

	item, err := service.Generate(ctx, domainContent.GenerateRequest{})
	require.NoError(t, err)

	regenerated, err := service.RegenerateImage(ctx, domainContent.RegenerateImageRequest{ItemID: item.ID, UseGraphic: true})
	require.NoError(t, err)
	require.Equal(t, item.ID, regenerated.ID)
	require.Equal(t, domainContent.StageImageReady, regenerated.Stage)
	require.NotEqual(t, item.ImageRef, regenerated.ImageRef)
}

func TestPublishRejectsEmptyAccountList(t *testing.T) {
	pub := &fakePublisher{}
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, pub, nil)
	ctx := context.Background()

	item, err := service.Generate(ctx, domainContent.GenerateRequest{})
	require.NoError(t, err)

	_, err = service.Publish(ctx, domainContent.PublishRequest{ItemID: item.ID})
	require.Error(t, err)
	require.Nil(t, pub.lastReq, "platform must never be called with zero accounts")
}

func TestPublishSetsPlatformFields(t *testing.T) {
	pub := &fakePublisher{post: &domainPublisher.Post{ID: "post-1", Status: "published"}}
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, pub, nil)
	ctx := context.Background()

	item, err := service.Generate(ctx, domainContent.GenerateRequest{})
	require.NoError(t, err)

	published, err := service.Publish(ctx, domainContent.PublishRequest{ItemID: item.ID, AccountIDs: []string{"acc-1"}})
	require.NoError(t, err)
	require.True(t, published.Published)
	require.Equal(t, "post-1", published.PlatformPostID)
	require.NotNil(t, published.PublishedAt)
	require.Equal(t, domainContent.StagePublished, published.Stage)

	require.NotNil(t, pub.lastReq)
	require.Equal(t, item.Caption, pub.lastReq.Content)
	// placeholder ref is remote, so it rides along as media
	require.Len(t, pub.lastReq.MediaURLs, 1)
}

func TestPublishRequiresReadyStage(t *testing.T) {
	pub := &fakePublisher{post: &domainPublisher.Post{ID: "p"}}
	service, repo := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, pub, nil)
	ctx := context.Background()

	item, err := service.Generate(ctx, domainContent.GenerateRequest{})
	require.NoError(t, err)

	// publishing twice must fail: published is terminal
	_, err = service.Publish(ctx, domainContent.PublishRequest{ItemID: item.ID, AccountIDs: []string{"a"}})
	require.NoError(t, err)
	_, err = service.Publish(ctx, domainContent.PublishRequest{ItemID: item.ID, AccountIDs: []string{"a"}})
	require.Error(t, err)

	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, domainContent.StagePublished, stored.Stage)
}

func TestScheduleRequiresFutureTime(t *testing.T) {
	pub := &fakePublisher{post: &domainPublisher.Post{ID: "p"}}
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, pub, nil)
	ctx := context.Background()

	item, err := service.Generate(ctx, domainContent.GenerateRequest{})
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	_, err = service.Schedule(ctx, domainContent.PublishRequest{ItemID: item.ID, AccountIDs: []string{"a"}, ScheduledFor: &past})
	require.Error(t, err)

	future := time.Now().Add(time.Hour)
	scheduled, err := service.Schedule(ctx, domainContent.PublishRequest{ItemID: item.ID, AccountIDs: []string{"a"}, ScheduledFor: &future})
	require.NoError(t, err)
	require.Equal(t, domainContent.StageScheduled, scheduled.Stage)
	require.NotNil(t, scheduled.ScheduledFor)
	require.NotNil(t, pub.lastReq.ScheduledTime)
}

func TestExportCSV(t *testing.T) {
	service, _ := newTestService(t, fakeText{err: errDown}, fakeImage{err: errDown}, &fakePublisher{}, nil)
	ctx := context.Background()

	_, err := service.Generate(ctx, domainContent.GenerateRequest{})
	require.NoError(t, err)
	_, err = service.Generate(ctx, domainContent.GenerateRequest{Style: "funny"})
	require.NoError(t, err)

	raw, err := service.ExportCSV(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two rows")
	require.Equal(t, "id", records[0][0])
	require.Equal(t, "topic", records[0][1])
}
