package application

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/askdrjosh/postpilot/core/config"
	"github.com/askdrjosh/postpilot/core/settings/domain"
	"github.com/askdrjosh/postpilot/core/settings/infrastructure"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type SettingsService struct {
	repo domain.ISettingsRepository
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{
		repo: infrastructure.NewGlobalSettingsGormRepository(db),
	}
}

func NewSettingsServiceWithRepo(repo domain.ISettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// BrandSettings is the editable brand identity used across generation.
type BrandSettings struct {
	Tone           string `json:"tone"`
	TargetAudience string `json:"target_audience"`
	Handle         string `json:"handle"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Background     string `json:"background_color"`
}

// GetBrandSettings resolves brand settings from the store, falling back to the
// configured defaults for any key without a stored override.
func (s *SettingsService) GetBrandSettings(ctx context.Context) (*BrandSettings, error) {
	if err := s.repo.InitSchema(ctx); err != nil {
		return nil, err
	}

	base := config.Global.Brand
	bs := &BrandSettings{
		Tone:           base.Tone,
		TargetAudience: base.TargetAudience,
		Handle:         base.Handle,
		PrimaryColor:   base.PrimaryColor,
		SecondaryColor: base.SecondaryColor,
		Background:     base.BackgroundHex,
	}

	if v, _ := s.repo.Get(ctx, domain.KeyBrandTone); v != "" {
		bs.Tone = v
	}
	if v, _ := s.repo.Get(ctx, domain.KeyBrandAudience); v != "" {
		bs.TargetAudience = v
	}
	if v, _ := s.repo.Get(ctx, domain.KeyBrandHandle); v != "" {
		bs.Handle = v
	}
	if v, _ := s.repo.Get(ctx, domain.KeyBrandPrimaryColor); v != "" {
		bs.PrimaryColor = v
	}
	if v, _ := s.repo.Get(ctx, domain.KeyBrandSecondaryColor); v != "" {
		bs.SecondaryColor = v
	}
	if v, _ := s.repo.Get(ctx, domain.KeyBrandBackground); v != "" {
		bs.Background = v
	}

	return bs, nil
}

// UpdateBrandSettings persists the non-empty fields of the request.
func (s *SettingsService) UpdateBrandSettings(ctx context.Context, req BrandSettings) error {
	if err := s.repo.InitSchema(ctx); err != nil {
		return err
	}

	for _, c := range []string{req.PrimaryColor, req.SecondaryColor, req.Background} {
		if c != "" && !hexColorRe.MatchString(c) {
			return fmt.Errorf("invalid hex color: %s", c)
		}
	}

	pairs := map[string]string{
		domain.KeyBrandTone:           strings.TrimSpace(req.Tone),
		domain.KeyBrandAudience:       strings.TrimSpace(req.TargetAudience),
		domain.KeyBrandHandle:         strings.TrimSpace(strings.TrimPrefix(req.Handle, "@")),
		domain.KeyBrandPrimaryColor:   strings.TrimSpace(req.PrimaryColor),
		domain.KeyBrandSecondaryColor: strings.TrimSpace(req.SecondaryColor),
		domain.KeyBrandBackground:     strings.TrimSpace(req.Background),
	}
	for key, value := range pairs {
		if value == "" {
			continue
		}
		if err := s.repo.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// ImportLegacyFile reads a brand_settings.json file produced by earlier
// versions ({"primary_color": "#...", "secondary_color": "#..."}) and stores
// its values, without overwriting settings already present in the database.
func (s *SettingsService) ImportLegacyFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var legacy struct {
		PrimaryColor   string `json:"primary_color"`
		SecondaryColor string `json:"secondary_color"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := s.repo.InitSchema(ctx); err != nil {
		return err
	}

	imported := 0
	if legacy.PrimaryColor != "" && hexColorRe.MatchString(legacy.PrimaryColor) {
		if existing, _ := s.repo.Get(ctx, domain.KeyBrandPrimaryColor); existing == "" {
			if err := s.repo.Set(ctx, domain.KeyBrandPrimaryColor, legacy.PrimaryColor); err != nil {
				return err
			}
			imported++
		}
	}
	if legacy.SecondaryColor != "" && hexColorRe.MatchString(legacy.SecondaryColor) {
		if existing, _ := s.repo.Get(ctx, domain.KeyBrandSecondaryColor); existing == "" {
			if err := s.repo.Set(ctx, domain.KeyBrandSecondaryColor, legacy.SecondaryColor); err != nil {
				return err
			}
			imported++
		}
	}

	if imported > 0 {
		logrus.Infof("[SETTINGS] imported %d brand values from %s", imported, path)
	}
	return nil
}
