package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	domainAsset "github.com/askdrjosh/postpilot/domains/asset"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

const logoSize = 256

type serviceAsset struct {
	generatedDir string
	staticsDir   string
}

func NewAssetService(generatedDir, staticsDir string) domainAsset.IAssetUsecase {
	return &serviceAsset{generatedDir: generatedDir, staticsDir: staticsDir}
}

// Stats summarizes the generated-asset directory.
func (service *serviceAsset) Stats(ctx context.Context) (domainAsset.Stats, error) {
	entries, err := os.ReadDir(service.generatedDir)
	if os.IsNotExist(err) {
		return domainAsset.Stats{HumanSize: humanize.Bytes(0)}, nil
	}
	if err != nil {
		return domainAsset.Stats{}, fmt.Errorf("read asset directory: %w", err)
	}

	stats := domainAsset.Stats{}
	var oldest, newest time.Time
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		stats.Files++
		stats.TotalSize += info.Size()
		mod := info.ModTime()
		if oldest.IsZero() || mod.Before(oldest) {
			oldest = mod
		}
		if mod.After(newest) {
			newest = mod
		}
	}
	stats.HumanSize = humanize.Bytes(uint64(stats.TotalSize))
	if !oldest.IsZero() {
		stats.Oldest = humanize.Time(oldest)
		stats.Newest = humanize.Time(newest)
	}
	return stats, nil
}

// Cleanup removes generated files older than the given age.
func (service *serviceAsset) Cleanup(ctx context.Context, olderThan time.Duration) (domainAsset.CleanupResult, error) {
	entries, err := os.ReadDir(service.generatedDir)
	if os.IsNotExist(err) {
		return domainAsset.CleanupResult{HumanSize: humanize.Bytes(0)}, nil
	}
	if err != nil {
		return domainAsset.CleanupResult{}, fmt.Errorf("read asset directory: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	result := domainAsset.CleanupResult{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(service.generatedDir, entry.Name())
		if err := os.Remove(path); err != nil {
			logrus.Warnf("[ASSETS] failed to remove %s: %v", path, err)
			continue
		}
		result.Removed++
		result.FreedSize += info.Size()
	}
	result.HumanSize = humanize.Bytes(uint64(result.FreedSize))
	logrus.Infof("[ASSETS] cleanup removed %d files (%s)", result.Removed, result.HumanSize)
	return result, nil
}

// SaveLogo stores an uploaded brand logo, resized to a square mark used by
// the graphic renderer.
func (service *serviceAsset) SaveLogo(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", pkgError.ValidationError("logo file is required")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return "", pkgError.ValidationError("logo must be a png or jpeg image")
	}

	if err := utils.CreateFolder(service.staticsDir); err != nil {
		return "", err
	}

	tmpPath := filepath.Join(service.staticsDir, "logo-upload"+ext)
	if err := fasthttp.SaveMultipartFile(file, tmpPath); err != nil {
		return "", fmt.Errorf("store uploaded logo: %w", err)
	}
	defer utils.RemoveFile(tmpPath)

	img, err := imaging.Open(tmpPath)
	if err != nil {
		return "", pkgError.ValidationError(fmt.Sprintf("uploaded logo is not a readable image: %v", err))
	}

	resized := imaging.Fit(img, logoSize, logoSize, imaging.Lanczos)
	logoPath := filepath.Join(service.staticsDir, "logo.png")
	if err := imaging.Save(resized, logoPath); err != nil {
		return "", fmt.Errorf("save logo: %w", err)
	}
	logrus.Infof("[ASSETS] brand logo updated at %s", logoPath)
	return logoPath, nil
}
