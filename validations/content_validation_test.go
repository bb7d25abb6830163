package validations

import (
	"context"
	"testing"
	"time"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainTemplate "github.com/askdrjosh/postpilot/domains/template"
)

func TestValidateGenerate(t *testing.T) {
	ctx := context.Background()

	if err := ValidateGenerate(ctx, domainContent.GenerateRequest{Style: "educational", Hashtags: 5}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := ValidateGenerate(ctx, domainContent.GenerateRequest{}); err != nil {
		t.Fatalf("empty request must pass with defaults: %v", err)
	}
	if err := ValidateGenerate(ctx, domainContent.GenerateRequest{Style: "ranty"}); err == nil {
		t.Fatal("unknown style must be rejected")
	}
	if err := ValidateGenerate(ctx, domainContent.GenerateRequest{Hashtags: 11}); err == nil {
		t.Fatal("hashtag count above 10 must be rejected")
	}
	if err := ValidateGenerate(ctx, domainContent.GenerateRequest{SourceURL: "not a url"}); err == nil {
		t.Fatal("malformed source URL must be rejected")
	}
}

func TestValidatePublish(t *testing.T) {
	ctx := context.Background()

	if err := ValidatePublish(ctx, domainContent.PublishRequest{ItemID: 1, AccountIDs: []string{"a"}}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := ValidatePublish(ctx, domainContent.PublishRequest{AccountIDs: []string{"a"}}); err == nil {
		t.Fatal("missing item ID must be rejected")
	}
	if err := ValidatePublish(ctx, domainContent.PublishRequest{ItemID: 1}); err == nil {
		t.Fatal("empty account list must be rejected")
	}
}

func TestValidateSchedule(t *testing.T) {
	ctx := context.Background()
	when := time.Now().Add(time.Hour)

	if err := ValidateSchedule(ctx, domainContent.PublishRequest{ItemID: 1, AccountIDs: []string{"a"}, ScheduledFor: &when}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := ValidateSchedule(ctx, domainContent.PublishRequest{ItemID: 1, AccountIDs: []string{"a"}}); err == nil {
		t.Fatal("missing schedule time must be rejected")
	}
}

func TestValidateSaveTemplate(t *testing.T) {
	ctx := context.Background()

	if err := ValidateSaveTemplate(ctx, domainTemplate.SaveRequest{Name: "weekly", ItemID: 3}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := ValidateSaveTemplate(ctx, domainTemplate.SaveRequest{ItemID: 3}); err == nil {
		t.Fatal("missing name must be rejected")
	}
}
