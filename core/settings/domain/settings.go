package domain

import "context"

// Setting represents a dynamic configuration value stored in the database.
type Setting struct {
	Key   string
	Value string
}

// ISettingsRepository defines the contract for persisting dynamic settings.
type ISettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error

	// InitSchema creates the necessary tables
	InitSchema(ctx context.Context) error
}

// Common keys defined in the system
const (
	KeyBrandTone           = "brand_tone"
	KeyBrandAudience       = "brand_audience"
	KeyBrandHandle         = "brand_handle"
	KeyBrandPrimaryColor   = "brand_primary_color"
	KeyBrandSecondaryColor = "brand_secondary_color"
	KeyBrandBackground     = "brand_background_color"
)
