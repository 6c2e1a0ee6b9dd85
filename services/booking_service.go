package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/catalog"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

// BookingDraft is a filled booking form.
type BookingDraft struct {
	SalonID      int    `json:"salonId"`
	ServiceID    int    `json:"serviceId"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
}

// Confirmation is what the confirmation screen shows after a successful
// reservation.
type Confirmation struct {
	Booking   models.Booking `json:"booking"`
	SalonName string         `json:"salonName"`
	Service   string         `json:"service"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email,omitempty"`
	Message   string         `json:"message,omitempty"`
	Celebrate bool           `json:"celebrate"`
}

type BookingService struct {
	catalog  *catalog.Catalog
	bookings repository.BookingRepository
	reserver Reserver
	metrics  *Metrics
	loc      *time.Location
	now      func() time.Time
}

func NewBookingService(c *catalog.Catalog, bookings repository.BookingRepository, reserver Reserver, metrics *Metrics, loc *time.Location) *BookingService {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingService{
		catalog:  c,
		bookings: bookings,
		reserver: reserver,
		metrics:  metrics,
		loc:      loc,
		now:      time.Now,
	}
}

// Submit validates the draft, asks the reservation workflow for the slot and
// persists the booking only if the workflow accepted it.
//
// Errors: *ValidationError (no network call made), *SlotTakenError (workflow
// message verbatim), ErrReservationUnavailable (transport failure).
func (s *BookingService) Submit(ctx context.Context, userID uuid.UUID, draft BookingDraft) (*Confirmation, error) {
	draft = normalizeDraft(draft)

	salon, service, date, err := s.validate(draft)
	if err != nil {
		s.metrics.ObserveSubmission(OutcomeInvalid)
		return nil, err
	}

	req := ReservationRequest{
		SalonName:    salon.Name,
		Service:      service.Name,
		Date:         utils.DisplayDate(date),
		Time:         draft.Time,
		CustomerName: draft.CustomerName,
		Phone:        draft.Phone,
		Email:        draft.Email,
		Status:       string(models.StatusConfirmed),
	}

	start := time.Now()
	resp, err := s.reserver.Reserve(ctx, req)
	s.metrics.ObserveReservationLatency(time.Since(start).Seconds())
	if err != nil {
		s.metrics.ObserveSubmission(OutcomeUnavailable)
		slog.Error("reservation call failed", "salon_id", salon.ID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrReservationUnavailable, err)
	}

	outcome, message := ClassifyReservationResponse(resp.Body)
	if outcome == ReservationSlotTaken {
		s.metrics.ObserveSubmission(OutcomeSlotTaken)
		slog.Info("slot taken", "salon_id", salon.ID, "date", draft.Date, "time", draft.Time, "user_id", userID)
		return nil, &SlotTakenError{Message: message}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.metrics.ObserveSubmission(OutcomeUnavailable)
		slog.Error("reservation returned error status", "status", resp.StatusCode, "salon_id", salon.ID, "user_id", userID)
		return nil, fmt.Errorf("%w: status %d", ErrReservationUnavailable, resp.StatusCode)
	}

	booking := models.Booking{
		UserID:       userID,
		SalonID:      salon.ID,
		ServiceID:    service.ID,
		SalonName:    salon.Name,
		ServiceName:  service.Name,
		Date:         draft.Date,
		Time:         draft.Time,
		CustomerName: draft.CustomerName,
		Phone:        draft.Phone,
		Email:        draft.Email,
		Status:       models.StatusConfirmed,
	}
	// The workflow already holds the slot; a failed insert leaves it booked
	// upstream with no local record.
	if err := s.bookings.Create(ctx, &booking); err != nil {
		s.metrics.ObserveSubmission(OutcomeStoreFailed)
		return nil, err
	}
	s.metrics.ObserveSubmission(OutcomeConfirmed)
	slog.Info("booking confirmed", "booking_id", booking.ID, "salon_id", salon.ID, "user_id", userID)

	return &Confirmation{
		Booking:   booking,
		SalonName: salon.Name,
		Service:   service.Name,
		Date:      req.Date,
		Time:      draft.Time,
		Name:      draft.CustomerName,
		Phone:     draft.Phone,
		Email:     draft.Email,
		Message:   message,
		Celebrate: true,
	}, nil
}

func normalizeDraft(d BookingDraft) BookingDraft {
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	return d
}

func (s *BookingService) validate(d BookingDraft) (models.Salon, models.Service, time.Time, error) {
	verr := &ValidationError{}

	service := ""
	if d.ServiceID != 0 {
		service = "set"
	}
	verr.Missing = utils.MissingFields(
		"service", service,
		"date", d.Date,
		"time", d.Time,
		"name", d.CustomerName,
		"phone", d.Phone,
	)
	if !verr.empty() {
		return models.Salon{}, models.Service{}, time.Time{}, verr
	}

	salon, ok := s.catalog.Get(d.SalonID)
	if !ok {
		return models.Salon{}, models.Service{}, time.Time{}, fmt.Errorf("%w: %d", ErrUnknownSalon, d.SalonID)
	}

	svc, ok := salon.FindService(d.ServiceID)
	if !ok {
		verr.addf("service %d is not offered by %s", d.ServiceID, salon.Name)
	}
	if !models.ValidTimeSlot(d.Time) {
		verr.addf("time %q is not an available slot", d.Time)
	}

	date, err := utils.ParseDate(d.Date, s.loc)
	if err != nil {
		verr.addf("date must be YYYY-MM-DD")
	} else if date.Before(utils.BeginningOfDay(s.now().In(s.loc))) {
		verr.addf("date %s is in the past", d.Date)
	}

	if !utils.ValidatePhone(d.Phone) {
		verr.addf("phone number format is invalid")
	}

	if !verr.empty() {
		return models.Salon{}, models.Service{}, time.Time{}, verr
	}
	return salon, svc, date, nil
}

// IsValidation reports whether err is a draft validation failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
