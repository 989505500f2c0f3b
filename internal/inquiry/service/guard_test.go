package service

import (
	"context"
	"errors"
	"testing"
	"time"

	inquiryerrors "nexusplater/internal/inquiry/errors"
	"nexusplater/pkg/logger"
	"nexusplater/pkg/model"
)

type fakeLookup struct {
	inquiries []*model.Inquiry
	err       error
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeLookup) FindByMobileBetween(_ context.Context, mobile string, start, end time.Time) (*model.Inquiry, error) {
	f.lastStart = start
	f.lastEnd = end
	if f.err != nil {
		return nil, f.err
	}
	for _, inq := range f.inquiries {
		if inq.Mobile == mobile && !inq.CreatedAt.Before(start) && inq.CreatedAt.Before(end) {
			return inq, nil
		}
	}
	return nil, inquiryerrors.ErrNotFound
}

func guardLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	now := time.Date(2024, 3, 15, 14, 30, 45, 0, loc)
	start, end := DayBounds(now, loc)

	wantStart := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2024, 3, 16, 0, 0, 0, 0, loc)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}

	// A UTC instant late in the UTC day can already be the next local
	// day in Dubai (UTC+4).
	utcEvening := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)
	start, _ = DayBounds(utcEvening, loc)
	if got := start.In(loc).Day(); got != 16 {
		t.Errorf("start day for late UTC evening = %d, want 16", got)
	}
}

func TestDuplicateGuardCheck(t *testing.T) {
	loc := time.UTC
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	now := today.Add(23 * time.Hour) // today 23:00

	tests := []struct {
		name     string
		existing *model.Inquiry
		wantDup  bool
	}{
		{
			name: "same mobile earlier today rejected",
			existing: &model.Inquiry{
				ID:        "abc123",
				Mobile:    "0501234567",
				CreatedAt: today.Add(9 * time.Hour), // today 09:00
			},
			wantDup: true,
		},
		{
			name: "same mobile yesterday accepted",
			existing: &model.Inquiry{
				ID:        "abc123",
				Mobile:    "0501234567",
				CreatedAt: today.Add(-1 * time.Minute), // yesterday 23:59
			},
			wantDup: false,
		},
		{
			name: "same mobile tomorrow accepted",
			existing: &model.Inquiry{
				ID:        "abc123",
				Mobile:    "0501234567",
				CreatedAt: today.Add(24*time.Hour + time.Minute), // tomorrow 00:01
			},
			wantDup: false,
		},
		{
			name: "different mobile today accepted",
			existing: &model.Inquiry{
				ID:        "abc123",
				Mobile:    "0551234567",
				CreatedAt: today.Add(9 * time.Hour),
			},
			wantDup: false,
		},
		{
			name:    "no prior inquiries accepted",
			wantDup: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := &fakeLookup{}
			if tt.existing != nil {
				lookup.inquiries = []*model.Inquiry{tt.existing}
			}

			guard := NewDuplicateGuard(lookup, loc, guardLogger())
			guard.now = func() time.Time { return now }

			err := guard.Check(context.Background(), "0501234567")
			gotDup := errors.Is(err, inquiryerrors.ErrDuplicateToday)
			if gotDup != tt.wantDup {
				t.Errorf("Check() duplicate = %v (err=%v), want %v", gotDup, err, tt.wantDup)
			}
			if !tt.wantDup && err != nil {
				t.Errorf("Check() unexpected error: %v", err)
			}
		})
	}
}

func TestDuplicateGuardQueriesCurrentDay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 3, 15, 23, 0, 0, 0, loc)

	lookup := &fakeLookup{}
	guard := NewDuplicateGuard(lookup, loc, guardLogger())
	guard.now = func() time.Time { return now }

	if err := guard.Check(context.Background(), "0501234567"); err != nil {
		t.Fatalf("Check() error: %v", err)
	}

	wantStart := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2024, 3, 16, 0, 0, 0, 0, loc)
	if !lookup.lastStart.Equal(wantStart) || !lookup.lastEnd.Equal(wantEnd) {
		t.Errorf("queried [%v, %v), want [%v, %v)", lookup.lastStart, lookup.lastEnd, wantStart, wantEnd)
	}
}

func TestDuplicateGuardLookupFailure(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("store unavailable")}
	guard := NewDuplicateGuard(lookup, time.UTC, guardLogger())

	err := guard.Check(context.Background(), "0501234567")
	if err == nil {
		t.Fatal("expected error when lookup fails")
	}
	if errors.Is(err, inquiryerrors.ErrDuplicateToday) {
		t.Fatal("lookup failure must not be reported as a duplicate")
	}
}
