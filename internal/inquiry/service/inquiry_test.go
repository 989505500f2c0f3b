package service

import (
	"context"
	"errors"
	"testing"
	"time"

	inquiryerrors "nexusplater/internal/inquiry/errors"
	"nexusplater/internal/inquiry/validator"
	"nexusplater/internal/notify"
	"nexusplater/pkg/config"
	apperrors "nexusplater/pkg/errors"
	"nexusplater/pkg/messages"
	"nexusplater/pkg/model"
	"nexusplater/pkg/sanitizer"
)

type fakeRepo struct {
	created   []*model.Inquiry
	existing  *model.Inquiry
	createErr error
	findErr   error
}

func (f *fakeRepo) Create(_ context.Context, inquiry *model.Inquiry) error {
	if f.createErr != nil {
		return f.createErr
	}
	inquiry.ID = "65f1a2b3c4d5e6f7a8b9c0d1"
	inquiry.CreatedAt = time.Now().UTC()
	f.created = append(f.created, inquiry)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*model.Inquiry, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.existing != nil && f.existing.ID == id {
		return f.existing, nil
	}
	return nil, inquiryerrors.ErrNotFound
}

func (f *fakeRepo) FindByMobileBetween(_ context.Context, mobile string, start, end time.Time) (*model.Inquiry, error) {
	if f.existing != nil && f.existing.Mobile == mobile &&
		!f.existing.CreatedAt.Before(start) && f.existing.CreatedAt.Before(end) {
		return f.existing, nil
	}
	return nil, inquiryerrors.ErrNotFound
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeRepo) EnsureIndexes(_ context.Context) error {
	return nil
}

type fakePublisher struct {
	published chan *model.Inquiry
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{published: make(chan *model.Inquiry, 1)}
}

func (f *fakePublisher) PublishInquiryReceived(_ context.Context, inquiry *model.Inquiry) error {
	f.published <- inquiry
	return nil
}

func (f *fakePublisher) Close() error { return nil }

var _ notify.Publisher = (*fakePublisher)(nil)

func newTestService(repo *fakeRepo, pub notify.Publisher) InquiryService {
	cfg := &config.Config{
		Location:     time.UTC,
		WriteTimeout: time.Second,
		Log:          guardLogger(),
	}
	catalog := messages.Default()
	clean := sanitizer.New()
	v := validator.NewInquiryValidator(catalog, clean, false, cfg.Log)
	guard := NewDuplicateGuard(repo, time.UTC, cfg.Log)
	return NewInquiryService(repo, guard, v, pub, catalog, cfg)
}

func validSubmission() *model.Submission {
	return &model.Submission{
		Name:    "Ahmed Hassan",
		Mobile:  "0501234567",
		Email:   "ahmed@example.com",
		Message: "I would like to know more about your services.",
	}
}

func TestSubmitPersistsSanitizedInquiry(t *testing.T) {
	repo := &fakeRepo{}
	pub := newFakePublisher()
	svc := newTestService(repo, pub)

	raw := validSubmission()
	raw.Message = "  <b>Please</b> call me back about pricing.  "

	inquiry, err := svc.Submit(context.Background(), raw)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("persisted %d inquiries, want 1", len(repo.created))
	}
	saved := repo.created[0]
	if saved.Message != "Please call me back about pricing." {
		t.Errorf("persisted message = %q, markup and padding should be stripped", saved.Message)
	}
	if saved.IsRead {
		t.Error("new inquiry must be persisted unread")
	}
	if inquiry.ID == "" {
		t.Error("Submit() must return the assigned ID")
	}

	select {
	case evt := <-pub.published:
		if evt.ID != inquiry.ID {
			t.Errorf("published inquiry ID = %q, want %q", evt.ID, inquiry.ID)
		}
	case <-time.After(time.Second):
		t.Error("inquiry-received event was not published")
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, newFakePublisher())

	raw := validSubmission()
	raw.Mobile = "12345"
	raw.Email = "not-an-email"

	_, err := svc.Submit(context.Background(), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
	if _, ok := appErr.Details["mobile"]; !ok {
		t.Error("details missing mobile field error")
	}
	if _, ok := appErr.Details["email"]; !ok {
		t.Error("details missing email field error")
	}
	if len(repo.created) != 0 {
		t.Error("invalid submission must not be persisted")
	}
}

func TestSubmitSameDayDuplicateRejected(t *testing.T) {
	repo := &fakeRepo{
		existing: &model.Inquiry{
			ID:        "65f1a2b3c4d5e6f7a8b9c0d1",
			Mobile:    "0501234567",
			CreatedAt: time.Now().UTC(),
		},
	}
	svc := newTestService(repo, newFakePublisher())

	_, err := svc.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("expected duplicate rejection")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeRateLimited {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeRateLimited)
	}
	if len(repo.created) != 0 {
		t.Error("duplicate submission must not be persisted")
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection reset")}
	svc := newTestService(repo, newFakePublisher())

	_, err := svc.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("expected error when persistence fails")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInternal {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeInternal)
	}
}

func TestGetByID(t *testing.T) {
	existing := &model.Inquiry{
		ID:     "65f1a2b3c4d5e6f7a8b9c0d1",
		Name:   "Ahmed Hassan",
		Mobile: "0501234567",
	}
	repo := &fakeRepo{existing: existing}
	svc := newTestService(repo, newFakePublisher())

	inquiry, err := svc.GetByID(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if inquiry.Name != existing.Name {
		t.Errorf("Name = %q, want %q", inquiry.Name, existing.Name)
	}

	if _, err := svc.GetByID(context.Background(), "65f1a2b3c4d5e6f7a8b9c0d2"); err == nil {
		t.Error("expected not-found error for unknown ID")
	} else if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeNotFound {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeNotFound)
	}

	if _, err := svc.GetByID(context.Background(), ""); err == nil {
		t.Error("expected error for empty ID")
	}
}
