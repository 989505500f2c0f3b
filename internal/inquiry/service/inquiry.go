package service

import (
	"context"
	"errors"

	inquiryerrors "nexusplater/internal/inquiry/errors"
	"nexusplater/internal/inquiry/repository"
	"nexusplater/internal/inquiry/validator"
	"nexusplater/internal/notify"
	"nexusplater/pkg/config"
	apperrors "nexusplater/pkg/errors"
	"nexusplater/pkg/messages"
	"nexusplater/pkg/model"
)

type InquiryService interface {
	Submit(ctx context.Context, raw *model.Submission) (*model.Inquiry, error)
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)
}

type inquiryService struct {
	repo      repository.InquiryRepository
	guard     *DuplicateGuard
	validator *validator.InquiryValidator
	publisher notify.Publisher
	catalog   messages.Catalog
	cfg       *config.Config
}

func NewInquiryService(
	repo repository.InquiryRepository,
	guard *DuplicateGuard,
	inquiryValidator *validator.InquiryValidator,
	publisher notify.Publisher,
	catalog messages.Catalog,
	cfg *config.Config,
) InquiryService {
	return &inquiryService{
		repo:      repo,
		guard:     guard,
		validator: inquiryValidator,
		publisher: publisher,
		catalog:   catalog,
		cfg:       cfg,
	}
}

// Submit runs the full pipeline: sanitize and validate the raw body,
// reject same-day duplicates by mobile number, persist, then notify.
// Only sanitized data ever reaches the store.
func (s *inquiryService) Submit(ctx context.Context, raw *model.Submission) (*model.Inquiry, error) {
	result := s.validator.Validate(raw)
	if !result.IsValid {
		s.cfg.Log.Warn("Inquiry validation failed", "fields", fieldNames(result.Errors))
		return nil, apperrors.Validation(s.catalog.Get(messages.ValidationFailed), fieldDetails(result.Errors))
	}

	data := result.SanitizedData

	if err := s.guard.Check(ctx, data.Mobile); err != nil {
		if errors.Is(err, inquiryerrors.ErrDuplicateToday) {
			return nil, apperrors.RateLimited(s.catalog.Get(messages.RateLimitExceeded))
		}
		s.cfg.Log.Error("Duplicate check failed", "error", err)
		return nil, err
	}

	inquiry := &model.Inquiry{
		Name:    data.Name,
		Mobile:  data.Mobile,
		Email:   data.Email,
		Message: data.Message,
		IsRead:  false,
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		s.cfg.Log.Error("Failed to persist inquiry", "error", err)
		return nil, apperrors.Internal("Failed to save inquiry", err)
	}

	s.cfg.Log.Info("Inquiry submitted successfully",
		"id", inquiry.ID,
		"mobile", inquiry.Mobile,
	)

	s.notifyAccepted(inquiry)

	return inquiry, nil
}

func (s *inquiryService) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Inquiry ID cannot be empty")
	}

	inquiry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, inquiryerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Inquiry", id)
		}
		if errors.Is(err, inquiryerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid inquiry ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve inquiry", err)
	}

	return inquiry, nil
}

// notifyAccepted publishes the inquiry-received event in the background.
// Failures are logged and never surfaced to the submitter.
func (s *inquiryService) notifyAccepted(inquiry *model.Inquiry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
		defer cancel()

		if err := s.publisher.PublishInquiryReceived(ctx, inquiry); err != nil {
			s.cfg.Log.Error("Failed to publish inquiry-received event",
				"id", inquiry.ID,
				"error", err,
			)
		}
	}()
}

func fieldNames(errs map[string]string) []string {
	names := make([]string, 0, len(errs))
	for field := range errs {
		names = append(names, field)
	}
	return names
}

func fieldDetails(errs map[string]string) map[string]any {
	details := make(map[string]any, len(errs))
	for field, msg := range errs {
		details[field] = msg
	}
	return details
}
