package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainTemplate "github.com/askdrjosh/postpilot/domains/template"
	"github.com/askdrjosh/postpilot/repository"
)

func newTestTemplateService(t *testing.T) (domainTemplate.ITemplateUsecase, *memContentRepo) {
	t.Helper()
	repo := newMemContentRepo()
	store := repository.NewTemplateFileRepository(filepath.Join(t.TempDir(), "templates.jsonl"))
	return NewTemplateService(store, repo), repo
}

func TestTemplateSaveAndApply(t *testing.T) {
	service, contentRepo := newTestTemplateService(t)
	ctx := context.Background()

	item := domainContent.ContentItem{
		Topic:   "Original Topic",
		Caption: "Original Caption",
		Style:   domainContent.StyleInspirational,
		Stage:   domainContent.StageImageReady,
	}
	require.NoError(t, contentRepo.Create(ctx, &item))

	saved, err := service.Save(ctx, domainTemplate.SaveRequest{Name: "weekly", ItemID: item.ID})
	require.NoError(t, err)
	require.Equal(t, "Original Topic", saved.Topic)

	applied, err := service.Apply(ctx, "weekly")
	require.NoError(t, err)
	require.NotEqual(t, item.ID, applied.ID, "apply must create a fresh item")
	require.Equal(t, "Original Topic", applied.Topic)
	require.Equal(t, domainContent.StageCaptionReady, applied.Stage)
}

func TestTemplateApplyLatestWins(t *testing.T) {
	service, contentRepo := newTestTemplateService(t)
	ctx := context.Background()

	first := domainContent.ContentItem{Topic: "v1", Caption: "c1", Style: domainContent.StyleMixed, Stage: domainContent.StageCaptionReady}
	require.NoError(t, contentRepo.Create(ctx, &first))
	second := domainContent.ContentItem{Topic: "v2", Caption: "c2", Style: domainContent.StyleMixed, Stage: domainContent.StageCaptionReady}
	require.NoError(t, contentRepo.Create(ctx, &second))

	_, err := service.Save(ctx, domainTemplate.SaveRequest{Name: "dup", ItemID: first.ID})
	require.NoError(t, err)
	_, err = service.Save(ctx, domainTemplate.SaveRequest{Name: "dup", ItemID: second.ID})
	require.NoError(t, err)

	templates, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 2, "duplicate names are both kept")

	applied, err := service.Apply(ctx, "dup")
	require.NoError(t, err)
	require.Equal(t, "v2", applied.Topic)
}

func TestTemplateApplyMissing(t *testing.T) {
	service, _ := newTestTemplateService(t)

	_, err := service.Apply(context.Background(), "nope")
	require.Error(t, err)
}
