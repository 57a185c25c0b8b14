// Package analytics reports sales figures to organizers. Everything is
// computed from completed bookings on every call.
package analytics

import (
	"context"
	"errors"
	"eventManager/internal/models"
	"fmt"
	"log/slog"
	"time"
)

var ErrForbidden = errors.New("access denied")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	EventByID(ctx context.Context, id string) (models.Event, error)
	Dashboard(ctx context.Context, organizerID string, now time.Time) (models.Dashboard, error)
	EventSales(ctx context.Context, eventID string) (models.EventSales, error)
}

type Service struct {
	log     *slog.Logger
	storage Storage
	now     func() time.Time
}

func New(log *slog.Logger, storage Storage) *Service {
	return &Service{
		log:     log.With(slog.String("component", "services/analytics")),
		storage: storage,
		now:     time.Now,
	}
}

func (s *Service) Dashboard(ctx context.Context, organizerID string) (models.Dashboard, error) {
	const op = "services.analytics.Dashboard"

	dashboard, err := s.storage.Dashboard(ctx, organizerID, s.now().UTC())
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	return dashboard, nil
}

func (s *Service) Event(ctx context.Context, organizerID, eventID string) (models.EventAnalytics, error) {
	const op = "services.analytics.Event"

	event, err := s.storage.EventByID(ctx, eventID)
	if err != nil {
		return models.EventAnalytics{}, fmt.Errorf("%s: %w", op, err)
	}

	if event.OrganizerID != organizerID {
		return models.EventAnalytics{}, ErrForbidden
	}

	sales, err := s.storage.EventSales(ctx, eventID)
	if err != nil {
		return models.EventAnalytics{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.EventAnalytics{
		Event: models.EventSummary{
			ID:        event.ID,
			EventName: event.EventName,
			EventDate: event.EventDate.Format(time.DateOnly),
			Status:    event.Status,
		},
		Overview: models.EventOverview{
			TotalRevenue:     sales.TotalRevenue,
			TotalTicketsSold: sales.TotalTicketsSold,
			TotalBookings:    sales.TotalBookings,
			TotalCapacity:    sales.TotalCapacity,
			PercentageSold:   percent(sales.TotalTicketsSold, sales.TotalCapacity),
			CheckedIn:        sales.CheckedIn,
			CheckInRate:      percent(sales.CheckedIn, sales.TotalBookings),
		},
		SalesByTicket: sales.SalesByTicket,
		SalesOverTime: sales.SalesOverTime,
	}, nil
}

// percent returns part/whole as a whole percentage rounded half up, or 0
// when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}

	return (200*part + whole) / (2 * whole)
}
