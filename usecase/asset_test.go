package usecase

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAssetStatsAndCleanup(t *testing.T) {
	dir := t.TempDir()
	service := NewAssetService(dir, t.TempDir())
	ctx := context.Background()

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.Files)

	oldPath := filepath.Join(dir, "old.png")
	newPath := filepath.Join(dir, "new.png")
	require.NoError(t, os.WriteFile(oldPath, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("fresh"), 0o644))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, stale, stale))

	stats, err = service.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Files)
	require.Equal(t, int64(8), stats.TotalSize)
	require.NotEmpty(t, stats.HumanSize)

	result, err := service.Cleanup(ctx, 24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, result.Removed)

	_, err = os.Stat(oldPath)
	require.True(t, os.IsNotExist(err), "stale file must be removed")
	_, err = os.Stat(newPath)
	require.NoError(t, err, "fresh file must survive")
}

func TestAssetStatsMissingDirectory(t *testing.T) {
	service := NewAssetService(filepath.Join(t.TempDir(), "does-not-exist"), t.TempDir())

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.Files)
}

func multipartLogo(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var png2 bytes.Buffer
	require.NoError(t, png.Encode(&png2, image.NewNRGBA(image.Rect(0, 0, 512, 512))))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("logo", filename)
	require.NoError(t, err)
	_, err = part.Write(png2.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&body, w.Boundary())
	form, err := reader.ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["logo"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveLogoResizes(t *testing.T) {
	statics := t.TempDir()
	service := NewAssetService(t.TempDir(), statics)

	path, err := service.SaveLogo(context.Background(), multipartLogo(t, "brand.png"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(statics, "logo.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.LessOrEqual(t, img.Bounds().Dx(), 256)
	require.LessOrEqual(t, img.Bounds().Dy(), 256)
}

func TestSaveLogoRejectsUnknownExtension(t *testing.T) {
	service := NewAssetService(t.TempDir(), t.TempDir())

	_, err := service.SaveLogo(context.Background(), multipartLogo(t, "brand.svg"))
	require.Error(t, err)
}
