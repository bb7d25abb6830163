package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	MCP      MCPConfig
	Paths    PathsConfig
	Database DatabaseConfig
	Valkey   ValkeyConfig
	AI       AIConfig
	Platform PlatformConfig
	Brand    BrandConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	BasicAuth          []string
	BasePath           string
	TrustedProxies     []string
	BaseUrl            string
	CorsAllowedOrigins []string
}

type MCPConfig struct {
	Port string
	Host string
}

type PathsConfig struct {
	Statics   string
	Generated string
	Storages  string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string // File path for SQLite, DB name for Postgres
}

type ValkeyConfig struct {
	Enabled   bool
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

// AIConfig selects and configures the generative providers.
type AIConfig struct {
	TextProvider string // "openai" or "gemini"
	OpenAIKey    string
	GeminiKey    string
	TextModel    string
	ImageModel   string
	ImageQuality string
	ImageSize    string
	Temperature  float64
	MaxTokens    int
}

// PlatformConfig targets the marketing-automation REST API used for publishing.
// Credentials have no defaults and must come from the environment.
type PlatformConfig struct {
	APIKey     string
	BaseURL    string
	LocationID string
}

type BrandConfig struct {
	Tone           string
	TargetAudience string
	Handle         string
	PrimaryColor   string
	SecondaryColor string
	BackgroundHex  string
}

// Global provides access to the loaded configuration (set by LoadConfig).
var Global *Config

// LoadConfig loads configuration from environment variables or defaults.
// Credentials are never defaulted; see Validate.
func LoadConfig() (*Config, error) {
	debug := false
	if v := os.Getenv("APP_DEBUG"); v == "true" || v == "1" || v == "on" {
		debug = true
	}

	var basicAuth []string
	if v := os.Getenv("APP_BASIC_AUTH"); v != "" {
		basicAuth = strings.Split(v, ",")
	}

	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := os.Getenv("APP_CORS_ALLOWED_ORIGINS"); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	appCfg := AppConfig{
		Version:            "v1.2.0",
		Port:               getEnv("APP_PORT", "3000"),
		Debug:              debug,
		Environment:        getEnv("APP_ENV", "development"),
		BasicAuth:          basicAuth,
		BasePath:           getEnv("APP_BASE_PATH", ""),
		BaseUrl:            getEnv("APP_BASE_URL", "http://localhost:3000"),
		CorsAllowedOrigins: corsOrigins,
	}
	if v := os.Getenv("APP_TRUSTED_PROXIES"); v != "" {
		appCfg.TrustedProxies = strings.Split(v, ",")
	}

	statics := getEnv("PATH_STATICS", "statics")
	pathsCfg := PathsConfig{
		Statics:   statics,
		Generated: getEnv("PATH_GENERATED", filepath.Join(statics, "generated")),
		Storages:  getEnv("PATH_STORAGES", "storages"),
	}

	dbCfg := DatabaseConfig{
		Driver:   getEnv("DB_DRIVER", "sqlite"),
		Name:     getEnv("DB_NAME", filepath.Join(pathsCfg.Storages, "postpilot.db")),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
	}

	valkeyCfg := ValkeyConfig{
		Enabled:   getEnvBool("VALKEY_ENABLED", false),
		Address:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
		Password:  getEnv("VALKEY_PASSWORD", ""),
		DB:        getEnvInt("VALKEY_DB", 0),
		KeyPrefix: getEnv("VALKEY_KEY_PREFIX", "postpilot:"),
	}

	aiCfg := AIConfig{
		TextProvider: strings.ToLower(getEnv("AI_TEXT_PROVIDER", "openai")),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		GeminiKey:    os.Getenv("GEMINI_API_KEY"),
		TextModel:    getEnv("AI_TEXT_MODEL", ""),
		ImageModel:   getEnv("AI_IMAGE_MODEL", "gpt-image-1"),
		ImageQuality: getEnv("AI_IMAGE_QUALITY", "medium"),
		ImageSize:    getEnv("AI_IMAGE_SIZE", "1024x1024"),
		Temperature:  getEnvFloat("AI_TEMPERATURE", 0.7),
		MaxTokens:    getEnvInt("AI_MAX_TOKENS", 750),
	}

	platformCfg := PlatformConfig{
		APIKey:     os.Getenv("PLATFORM_API_KEY"),
		BaseURL:    strings.TrimRight(getEnv("PLATFORM_BASE_URL", "https://rest.gohighlevel.com/v1"), "/"),
		LocationID: os.Getenv("PLATFORM_LOCATION_ID"),
	}

	brandCfg := BrandConfig{
		Tone:           getEnv("BRAND_TONE", "friendly and professional"),
		TargetAudience: getEnv("BRAND_AUDIENCE", "women aged 30-50 who are frustrated with traditional medical approaches to hypothyroid issues"),
		Handle:         getEnv("BRAND_HANDLE", "askdrjosh"),
		PrimaryColor:   getEnv("BRAND_PRIMARY_COLOR", "#4267B2"),
		SecondaryColor: getEnv("BRAND_SECONDARY_COLOR", "#00b2ff"),
		BackgroundHex:  getEnv("BRAND_BACKGROUND_COLOR", "#FFFFFF"),
	}

	cfg := &Config{
		App:      appCfg,
		MCP:      MCPConfig{Port: getEnv("MCP_PORT", "8080"), Host: getEnv("MCP_HOST", "localhost")},
		Paths:    pathsCfg,
		Database: dbCfg,
		Valkey:   valkeyCfg,
		AI:       aiCfg,
		Platform: platformCfg,
		Brand:    brandCfg,
	}

	Global = cfg
	return cfg, nil
}

// Validate enforces that the selected generative provider has a credential.
// Platform credentials are optional at boot; publishing calls fail until both
// PLATFORM_API_KEY and PLATFORM_LOCATION_ID are supplied.
func (c *Config) Validate() error {
	switch c.AI.TextProvider {
	case "openai":
		if c.AI.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_TEXT_PROVIDER=openai")
		}
	case "gemini":
		if c.AI.GeminiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_TEXT_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("unsupported AI_TEXT_PROVIDER: %s", c.AI.TextProvider)
	}

	if c.Platform.APIKey != "" && c.Platform.LocationID == "" {
		return fmt.Errorf("PLATFORM_LOCATION_ID is required when PLATFORM_API_KEY is set")
	}
	return nil
}

// PlatformConfigured reports whether publishing credentials are present.
func (c *Config) PlatformConfigured() bool {
	return c.Platform.APIKey != "" && c.Platform.LocationID != ""
}
