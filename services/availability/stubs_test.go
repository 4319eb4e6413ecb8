package availability

import (
	"context"
	"time"

	"slotify/models"
)

// In-memory repository stubs used across the engine tests.

type stubServiceRepo struct {
	service *models.Service
	err     error
}

func (s *stubServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	return s.service, s.err
}

func (s *stubServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	if s.service == nil {
		return nil, s.err
	}
	return []models.Service{*s.service}, s.err
}

type stubStaffRepo struct {
	staff *models.StaffMember
	err   error
}

func (s *stubStaffRepo) GetByID(ctx context.Context, staffID string) (*models.StaffMember, error) {
	return s.staff, s.err
}

type stubBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (s *stubBookingRepo) GetActiveInRange(ctx context.Context, serviceID string, staffID *string, from, to time.Time) ([]models.Booking, error) {
	return s.bookings, s.err
}

func (s *stubBookingRepo) CountActiveOverlapping(ctx context.Context, serviceID string, staffID *string, start, end time.Time) (int64, error) {
	return int64(len(s.bookings)), s.err
}

type stubOverrideRepo struct {
	overrides []models.AvailabilityOverride
	err       error
	delay     time.Duration // simulates a slow store; honors ctx cancellation
}

func (s *stubOverrideRepo) GetInRange(ctx context.Context, serviceID string, staffID *string, from, to time.Time) ([]models.AvailabilityOverride, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.overrides, s.err
}
