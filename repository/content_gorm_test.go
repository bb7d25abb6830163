package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/askdrjosh/postpilot/domains/content"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
)

func newTestContentRepo(t *testing.T) *ContentGormRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.db")
	db, err := gorm.Open(sqlite.Open("file:"+path+"?_journal_mode=WAL&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	repo := NewContentGormRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init repo: %v", err)
	}
	return repo
}

func TestContentRepositoryCRUD(t *testing.T) {
	repo := newTestContentRepo(t)
	ctx := context.Background()

	item := &content.ContentItem{
		Topic: "Gut Health And Thyroid",
		Style: content.StyleEducational,
		Stage: content.StageTopicReady,
	}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == 0 {
		t.Fatal("expected assigned ID after create")
	}

	item.Caption = "a caption"
	item.Stage = content.StageCaptionReady
	if err := repo.Update(ctx, item); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := repo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Caption != "a caption" || loaded.Stage != content.StageCaptionReady {
		t.Fatalf("unexpected item after update: %+v", loaded)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestContentRepositoryGetMissing(t *testing.T) {
	repo := newTestContentRepo(t)

	_, err := repo.GetByID(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error for missing item")
	}
	var generic pkgError.GenericError
	if !errors.As(err, &generic) || generic.StatusCode() != 404 {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestContentRepositoryUpdateWithoutID(t *testing.T) {
	repo := newTestContentRepo(t)

	err := repo.Update(context.Background(), &content.ContentItem{Topic: "x"})
	if err == nil {
		t.Fatal("expected validation error for missing ID")
	}
}

func TestContentRepositoryResetKeepsSequence(t *testing.T) {
	repo := newTestContentRepo(t)
	ctx := context.Background()

	first := &content.ContentItem{Topic: "one", Style: content.StyleMixed, Stage: content.StageTopicReady}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty library after reset, got %d items", len(items))
	}

	second := &content.ContentItem{Topic: "two", Style: content.StyleMixed, Stage: content.StageTopicReady}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create after reset: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("ID %d reissued after reset (previous max %d)", second.ID, first.ID)
	}
}
