package service

import (
	"context"
	"errors"
	"time"

	inquiryerrors "nexusplater/internal/inquiry/errors"
	apperrors "nexusplater/pkg/errors"
	"nexusplater/pkg/logger"
	"nexusplater/pkg/model"
)

// InquiryLookup is the slice of the repository the duplicate guard needs,
// so it can be tested without a live store.
type InquiryLookup interface {
	FindByMobileBetween(ctx context.Context, mobile string, start, end time.Time) (*model.Inquiry, error)
}

// DuplicateGuard rejects a second submission from the same mobile number
// within one calendar day, bounded at local midnight rather than a
// rolling 24h window.
//
// The check-then-insert sequence is not atomic: two submissions racing
// inside the same instant can both pass and both persist. Accepted and
// documented; closing it would need a unique day-bucket index.
type DuplicateGuard struct {
	lookup InquiryLookup
	loc    *time.Location
	now    func() time.Time
	log    *logger.Logger
}

func NewDuplicateGuard(lookup InquiryLookup, loc *time.Location, log *logger.Logger) *DuplicateGuard {
	return &DuplicateGuard{
		lookup: lookup,
		loc:    loc,
		now:    time.Now,
		log:    log,
	}
}

// DayBounds returns the half-open interval [midnight, next midnight) of
// now's calendar day in loc. Built via Date/AddDate so DST transition
// days keep correct boundaries.
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// Check returns ErrDuplicateToday when mobile already has an accepted
// inquiry in the current calendar day. Must only run on a validated,
// sanitized mobile number.
func (g *DuplicateGuard) Check(ctx context.Context, mobile string) error {
	start, end := DayBounds(g.now(), g.loc)

	existing, err := g.lookup.FindByMobileBetween(ctx, mobile, start, end)
	if err != nil {
		if errors.Is(err, inquiryerrors.ErrNotFound) {
			return nil
		}
		return apperrors.Internal("Failed to check for duplicate inquiry", err)
	}

	g.log.Warn("Duplicate same-day inquiry rejected",
		"mobile", mobile,
		"existing_id", existing.ID,
		"existing_created_at", existing.CreatedAt,
	)
	return inquiryerrors.ErrDuplicateToday
}
