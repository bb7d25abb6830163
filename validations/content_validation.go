package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainTemplate "github.com/askdrjosh/postpilot/domains/template"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
)

func ValidateGenerate(ctx context.Context, request domainContent.GenerateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Style, validation.In("", "educational", "inspirational", "funny", "mixed")),
		validation.Field(&request.Hashtags, validation.Min(0), validation.Max(10)),
		validation.Field(&request.SourceURL, is.URL),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateRegenerateCaption(ctx context.Context, request domainContent.RegenerateCaptionRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.ItemID, validation.Required),
		validation.Field(&request.Hashtags, validation.Min(0), validation.Max(10)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateRegenerateImage(ctx context.Context, request domainContent.RegenerateImageRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.ItemID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidatePublish(ctx context.Context, request domainContent.PublishRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.ItemID, validation.Required),
		validation.Field(&request.AccountIDs, validation.Required, validation.Length(1, 0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateSchedule(ctx context.Context, request domainContent.PublishRequest) error {
	if err := ValidatePublish(ctx, request); err != nil {
		return err
	}
	if request.ScheduledFor == nil {
		return pkgError.ValidationError("scheduled_for: cannot be blank.")
	}
	return nil
}

func ValidateSaveTemplate(ctx context.Context, request domainTemplate.SaveRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&request.ItemID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
