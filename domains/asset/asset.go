package asset

import (
	"context"
	"mime/multipart"
	"time"
)

// Stats summarizes the generated-asset directory.
type Stats struct {
	Files     int    `json:"files"`
	TotalSize int64  `json:"total_size"`
	HumanSize string `json:"human_size"`
	Oldest    string `json:"oldest,omitempty"`
	Newest    string `json:"newest,omitempty"`
}

// CleanupResult reports what a cleanup pass removed.
type CleanupResult struct {
	Removed   int    `json:"removed"`
	FreedSize int64  `json:"freed_size"`
	HumanSize string `json:"human_size"`
}

type IAssetUsecase interface {
	Stats(ctx context.Context) (Stats, error)
	Cleanup(ctx context.Context, olderThan time.Duration) (CleanupResult, error)
	SaveLogo(ctx context.Context, file *multipart.FileHeader) (string, error)
}
