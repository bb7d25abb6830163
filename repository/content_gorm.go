package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/askdrjosh/postpilot/domains/content"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
)

// ContentGormRepository persists the content library in the relational store.
type ContentGormRepository struct {
	db *gorm.DB
}

func NewContentGormRepository(db *gorm.DB) *ContentGormRepository {
	return &ContentGormRepository{db: db}
}

func (r *ContentGormRepository) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&content.ContentItem{}); err != nil {
		return fmt.Errorf("migrate content_items: %w", err)
	}
	return nil
}

func (r *ContentGormRepository) Create(ctx context.Context, item *content.ContentItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create content item: %w", err)
	}
	return nil
}

func (r *ContentGormRepository) Update(ctx context.Context, item *content.ContentItem) error {
	if item.ID == 0 {
		return pkgError.ValidationError("cannot update content item without ID")
	}
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("update content item %d: %w", item.ID, err)
	}
	return nil
}

func (r *ContentGormRepository) GetByID(ctx context.Context, id uint) (*content.ContentItem, error) {
	var item content.ContentItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgError.NotFoundError(fmt.Sprintf("content item %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("load content item %d: %w", id, err)
	}
	return &item, nil
}

func (r *ContentGormRepository) List(ctx context.Context) ([]content.ContentItem, error) {
	var items []content.ContentItem
	if err := r.db.WithContext(ctx).Order("id desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	return items, nil
}

// Reset clears the library. Rows are deleted rather than the table dropped so
// the autoincrement sequence keeps counting and old IDs are never reissued.
func (r *ContentGormRepository) Reset(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&content.ContentItem{}).Error; err != nil {
		return fmt.Errorf("reset content library: %w", err)
	}
	return nil
}
