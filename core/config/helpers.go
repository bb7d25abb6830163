package config

import (
	"os"
	"strconv"
	"strings"
)

// GetAllSettings returns a map of the dynamic settings currently loaded in
// memory, used by the settings REST endpoint.
func GetAllSettings() map[string]any {
	if Global == nil {
		return map[string]any{}
	}
	return map[string]any{
		"app_version":           Global.App.Version,
		"app_debug":             Global.App.Debug,
		"ai_text_provider":      Global.AI.TextProvider,
		"ai_image_model":        Global.AI.ImageModel,
		"ai_image_quality":      Global.AI.ImageQuality,
		"ai_image_size":         Global.AI.ImageSize,
		"brand_tone":            Global.Brand.Tone,
		"brand_audience":        Global.Brand.TargetAudience,
		"brand_handle":          Global.Brand.Handle,
		"brand_primary_color":   Global.Brand.PrimaryColor,
		"brand_secondary_color": Global.Brand.SecondaryColor,
		"platform_configured":   Global.PlatformConfigured(),
	}
}

// Helpers
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		vLower := strings.ToLower(v)
		return vLower == "1" || vLower == "true" || vLower == "yes" || vLower == "on"
	}
	return fallback
}
