package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/askdrjosh/postpilot/core/config"
	coreDB "github.com/askdrjosh/postpilot/core/database"
	settingsApp "github.com/askdrjosh/postpilot/core/settings/application"
	domainAsset "github.com/askdrjosh/postpilot/domains/asset"
	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainPublisher "github.com/askdrjosh/postpilot/domains/publisher"
	domainTemplate "github.com/askdrjosh/postpilot/domains/template"
	"github.com/askdrjosh/postpilot/infrastructure/valkey"
	"github.com/askdrjosh/postpilot/integrations/highlevel"
	"github.com/askdrjosh/postpilot/pkg/utils"
	"github.com/askdrjosh/postpilot/repository"
	"github.com/askdrjosh/postpilot/studio"
	"github.com/askdrjosh/postpilot/studio/graphic"
	"github.com/askdrjosh/postpilot/studio/providers"
	"github.com/askdrjosh/postpilot/ui/websocket"
	"github.com/askdrjosh/postpilot/usecase"
)

var (
	db       *gorm.DB
	vkClient *valkey.Client
	serverID string

	settingsSvc *settingsApp.SettingsService

	// Usecase
	contentUsecase   domainContent.IContentUsecase
	publisherUsecase domainPublisher.IPublisherUsecase
	templateUsecase  domainTemplate.ITemplateUsecase
	assetUsecase     domainAsset.IAssetUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "postpilot",
	Short: "Content generation console for the askdrjosh Instagram account",
	Long: `PostPilot generates Instagram topics, captions and images for a
hypothyroid-health brand, renders local branded graphics, and publishes
or schedules the results through the configured marketing platform.`,
}

func init() {
	// .env first so LoadConfig sees the values
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("[APP] Could not read .env file: %v", err)
	}

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initEnvConfig, initApp)
}

func initFlags() {
	rootCmd.PersistentFlags().StringP(
		"port", "p", "",
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolP(
		"debug", "d", false,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringSliceP(
		"basic-auth", "b", nil,
		"basic auth credential | -b=yourUsername:yourPassword",
	)
	rootCmd.PersistentFlags().String(
		"base-path", "",
		`base path for subpath deployment --base-path <string> | example: --base-path="/postpilot"`,
	)
	rootCmd.PersistentFlags().String(
		"db-name", "",
		`database file (sqlite) or database name (postgres) --db-name <string> | example: --db-name="storages/postpilot.db"`,
	)
	rootCmd.PersistentFlags().String(
		"text-provider", "",
		`generative text provider --text-provider <openai|gemini>`,
	)

	_ = viper.BindPFlag("app_port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("app_debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("app_basic_auth", rootCmd.PersistentFlags().Lookup("basic-auth"))
	_ = viper.BindPFlag("app_base_path", rootCmd.PersistentFlags().Lookup("base-path"))
	_ = viper.BindPFlag("db_name", rootCmd.PersistentFlags().Lookup("db-name"))
	_ = viper.BindPFlag("ai_text_provider", rootCmd.PersistentFlags().Lookup("text-provider"))
}

// initEnvConfig loads configuration from environment variables and applies
// command line overrides on top.
func initEnvConfig() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if v := viper.GetString("app_port"); v != "" {
		cfg.App.Port = v
	}
	if viper.GetBool("app_debug") {
		cfg.App.Debug = true
	}
	if v := viper.GetStringSlice("app_basic_auth"); len(v) > 0 {
		cfg.App.BasicAuth = v
	}
	if v := viper.GetString("app_base_path"); v != "" {
		cfg.App.BasePath = v
	}
	if v := viper.GetString("db_name"); v != "" {
		cfg.Database.Name = v
	}
	if v := viper.GetString("ai_text_provider"); v != "" {
		cfg.AI.TextProvider = strings.ToLower(v)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
}

func initApp() {
	cfg := config.Global

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := utils.CreateFolder(cfg.Paths.Statics, cfg.Paths.Generated, cfg.Paths.Storages); err != nil {
		logrus.Errorln(err)
	}

	ctx := context.Background()

	var err error
	db, err = coreDB.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open database: %v", err)
	}

	contentRepo := repository.NewContentGormRepository(db)
	if err := contentRepo.Init(ctx); err != nil {
		logrus.Fatalf("Failed to migrate content tables: %v", err)
	}

	settingsSvc = settingsApp.NewSettingsService(db)
	if err := settingsSvc.ImportLegacyFile(ctx, "brand_settings.json"); err != nil {
		logrus.Warnf("[SETTINGS] Legacy import failed: %v", err)
	}

	brand, err := settingsSvc.GetBrandSettings(ctx)
	if err != nil {
		logrus.Fatalf("Failed to resolve brand settings: %v", err)
	}

	serverID = uuid.NewString()

	// Valkey is optional; without it the account cache stays in memory.
	var accountCache domainPublisher.IAccountCache
	if cfg.Valkey.Enabled {
		vkClient, err = valkey.NewClient(valkey.Config{
			Address:   cfg.Valkey.Address,
			Password:  cfg.Valkey.Password,
			DB:        cfg.Valkey.DB,
			KeyPrefix: cfg.Valkey.KeyPrefix,
		})
		if err != nil {
			logrus.Warnf("[VALKEY] Connection failed, falling back to in-memory cache: %v", err)
			vkClient = nil
		}
	}
	if vkClient != nil {
		accountCache = repository.NewAccountValkeyCache(vkClient)
	} else {
		accountCache = repository.NewAccountMemoryCache()
	}

	textProvider, textModel := buildTextProvider(ctx, cfg)

	// Image generation always goes through OpenAI; Gemini installs cover text only.
	imageProvider := providers.NewOpenAI(cfg.AI.OpenAIKey)
	if cfg.AI.OpenAIKey == "" {
		logrus.Warn("[STUDIO] OPENAI_API_KEY not set, image generation will fall back to placeholders")
	}

	contentStudio := studio.New(studio.Options{
		Text:  textProvider,
		Image: imageProvider,
		Brand: studio.Brand{
			Tone:           brand.Tone,
			TargetAudience: brand.TargetAudience,
			Handle:         brand.Handle,
		},
		TextModel:    textModel,
		ImageModel:   cfg.AI.ImageModel,
		ImageQuality: cfg.AI.ImageQuality,
		ImageSize:    cfg.AI.ImageSize,
		Temperature:  cfg.AI.Temperature,
		MaxTokens:    cfg.AI.MaxTokens,
		OutputDir:    cfg.Paths.Generated,
	})

	renderer, err := graphic.NewRenderer(
		brand.PrimaryColor,
		brand.SecondaryColor,
		brand.Background,
		cfg.Paths.Generated,
		filepath.Join(cfg.Paths.Statics, "logo.png"),
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize graphic renderer: %v", err)
	}

	platformClient := highlevel.NewClient(cfg.Platform.BaseURL, cfg.Platform.APIKey, cfg.Platform.LocationID)
	if !platformClient.Configured() {
		logrus.Warn("[PLATFORM] PLATFORM_API_KEY/PLATFORM_LOCATION_ID not set, publishing is disabled")
	}

	publisherUsecase = usecase.NewPublisherService(platformClient, accountCache)
	contentUsecase = usecase.NewContentService(contentRepo, contentStudio, renderer, publisherUsecase, websocket.BroadcastStageEvent)

	templateRepo := repository.NewTemplateFileRepository(filepath.Join(cfg.Paths.Storages, "templates.jsonl"))
	templateUsecase = usecase.NewTemplateService(templateRepo, contentRepo)

	assetUsecase = usecase.NewAssetService(cfg.Paths.Generated, cfg.Paths.Statics)
}

// buildTextProvider selects the configured text backend. A Gemini client that
// fails to construct is fatal since every generation call would degrade to the
// canned fallbacks.
func buildTextProvider(ctx context.Context, cfg *config.Config) (studio.TextProvider, string) {
	switch cfg.AI.TextProvider {
	case "gemini":
		provider, err := providers.NewGemini(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logrus.Fatalf("Failed to create Gemini client: %v", err)
		}
		model := cfg.AI.TextModel
		if model == "" {
			model = "gemini-2.0-flash"
		}
		return provider, model
	default:
		model := cfg.AI.TextModel
		if model == "" {
			model = "gpt-4o"
		}
		return providers.NewOpenAI(cfg.AI.OpenAIKey), model
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// StopApp performs a clean shutdown of all database connections and services.
func StopApp() {
	logrus.Info("[APP] Stopping application...")

	if vkClient != nil {
		vkClient.Close()
	}

	if sqlDB, err := coreDB.GetSQLDB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("[APP] Error closing database: %v", err)
		}
	}

	logrus.Info("[APP] Application stopped cleanly.")
}
