package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainTemplate "github.com/askdrjosh/postpilot/domains/template"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
	"github.com/askdrjosh/postpilot/validations"
)

type serviceTemplate struct {
	templates   domainTemplate.ITemplateRepository
	contentRepo domainContent.IContentRepository
}

func NewTemplateService(templates domainTemplate.ITemplateRepository, contentRepo domainContent.IContentRepository) domainTemplate.ITemplateUsecase {
	return &serviceTemplate{templates: templates, contentRepo: contentRepo}
}

// Save snapshots an item's topic and caption under a reusable name.
func (service *serviceTemplate) Save(ctx context.Context, request domainTemplate.SaveRequest) (domainTemplate.Template, error) {
	if err := validations.ValidateSaveTemplate(ctx, request); err != nil {
		return domainTemplate.Template{}, err
	}
	item, err := service.contentRepo.GetByID(ctx, request.ItemID)
	if err != nil {
		return domainTemplate.Template{}, err
	}
	if item.Topic == "" {
		return domainTemplate.Template{}, pkgError.ValidationError(fmt.Sprintf("item %d has no topic to save", item.ID))
	}

	t := domainTemplate.Template{
		Name:      request.Name,
		Topic:     item.Topic,
		Caption:   item.Caption,
		Style:     item.Style,
		CreatedAt: time.Now().UTC(),
	}
	if err := service.templates.Append(ctx, t); err != nil {
		return domainTemplate.Template{}, err
	}
	logrus.Infof("[TEMPLATES] saved %q from item %d", t.Name, item.ID)
	return t, nil
}

func (service *serviceTemplate) List(ctx context.Context) ([]domainTemplate.Template, error) {
	return service.templates.Load(ctx)
}

// Apply creates a new library item from the latest template with that name.
// The new item starts at the caption stage so images are regenerated fresh.
func (service *serviceTemplate) Apply(ctx context.Context, name string) (domainContent.ContentItem, error) {
	templates, err := service.templates.Load(ctx)
	if err != nil {
		return domainContent.ContentItem{}, err
	}

	var found *domainTemplate.Template
	for i := range templates {
		if templates[i].Name == name {
			found = &templates[i] // latest entry wins
		}
	}
	if found == nil {
		return domainContent.ContentItem{}, pkgError.NotFoundError(fmt.Sprintf("template %q not found", name))
	}

	item := domainContent.ContentItem{
		Topic:   found.Topic,
		Caption: found.Caption,
		Style:   found.Style,
		Stage:   domainContent.StageCaptionReady,
	}
	if err := service.contentRepo.Create(ctx, &item); err != nil {
		return domainContent.ContentItem{}, err
	}
	logrus.Infof("[TEMPLATES] applied %q as item %d", name, item.ID)
	return item, nil
}
