package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askdrjosh/postpilot/domains/content"
	"github.com/askdrjosh/postpilot/domains/template"
)

func TestTemplateRepositoryAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.jsonl")
	repo := NewTemplateFileRepository(path)
	ctx := context.Background()

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded, "missing file must read as empty list")

	first := template.Template{Name: "weekly-gut", Topic: "Gut Health", Caption: "c1", Style: content.StyleEducational, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Append(ctx, first))

	second := template.Template{Name: "weekly-gut", Topic: "Gut Health v2", Caption: "c2", Style: content.StyleMixed, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Append(ctx, second))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2, "duplicate names must both be kept")
	require.Equal(t, "Gut Health", loaded[0].Topic)
	require.Equal(t, "Gut Health v2", loaded[1].Topic)
}

func TestTemplateRepositorySkipsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.jsonl")
	raw := `{"name":"good","topic":"t","caption":"c","style":"educational"}
not-json-at-all
{"name":"also-good","topic":"t2","caption":"c2","style":"funny"}
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	repo := NewTemplateFileRepository(path)
	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "good", loaded[0].Name)
	require.Equal(t, "also-good", loaded[1].Name)
}

func TestAccountMemoryCacheTTL(t *testing.T) {
	cache := NewAccountMemoryCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("empty cache must miss")
	}

	require.NoError(t, cache.Set(ctx, nil, time.Minute))
	if got, ok := cache.Get(ctx); !ok || len(got) != 0 {
		t.Fatalf("expected cached empty list, got %v ok=%v", got, ok)
	}

	require.NoError(t, cache.Set(ctx, nil, -time.Second))
	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expired entry must miss")
	}

	require.NoError(t, cache.Invalidate(ctx))
	if _, ok := cache.Get(ctx); ok {
		t.Fatal("invalidated cache must miss")
	}
}
