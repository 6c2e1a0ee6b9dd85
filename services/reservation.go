package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxReservationBody = 64 << 10

// ReservationRequest is the body the reservation workflow expects.
type ReservationRequest struct {
	SalonName    string `json:"salonName"`
	Service      string `json:"service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

// ReservationResponse is the raw answer of the workflow.
type ReservationResponse struct {
	StatusCode int
	Body       string
}

// Reserver forwards a reservation attempt to the system of record.
type Reserver interface {
	Reserve(ctx context.Context, req ReservationRequest) (*ReservationResponse, error)
}

// HTTPReserver posts reservations to a webhook. It never retries.
type HTTPReserver struct {
	url    string
	client *http.Client
}

// NewHTTPReserver returns a reserver for url. A zero timeout leaves the
// request bounded only by the caller's context.
func NewHTTPReserver(url string, timeout time.Duration) *HTTPReserver {
	return &HTTPReserver{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (r *HTTPReserver) Reserve(ctx context.Context, req ReservationRequest) (*ReservationResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("reservation: encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("reservation: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("reservation: post: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReservationBody))
	if err != nil {
		return nil, fmt.Errorf("reservation: read response: %w", err)
	}

	return &ReservationResponse{StatusCode: resp.StatusCode, Body: string(body)}, nil
}

type ReservationOutcome int

const (
	ReservationSucceeded ReservationOutcome = iota
	ReservationSlotTaken
)

func (o ReservationOutcome) String() string {
	if o == ReservationSlotTaken {
		return "slot_taken"
	}
	return "success"
}

const failureGlyph = "❌"

// Phrases that always mean the slot was refused, whatever else the body says.
var slotTakenMarkers = []string{failureGlyph, "already booked"}

// A bare apology is weaker; a recognised structured success clears it.
const apologyPhrase = "sorry"

var (
	structuredSuccess   = map[string]bool{"success": true, "confirmed": true, "booked": true, "ok": true}
	structuredSlotTaken = map[string]bool{"slot_taken": true, "unavailable": true, "rejected": true, "failed": true, "taken": true}
)

// ClassifyReservationResponse decides whether the workflow accepted the
// slot and returns the message to show the user.
//
// The ❌ glyph or "already booked" (any case) anywhere in the body always
// means the slot was taken. A JSON object may carry a "status": a refusal
// status means taken, a success status clears a bare "sorry". Otherwise a
// "sorry" means taken and anything else is success. When the body is JSON
// with a "message" field, that field is the message.
func ClassifyReservationResponse(body string) (ReservationOutcome, string) {
	trimmed := strings.TrimSpace(body)
	lower := strings.ToLower(trimmed)
	message := trimmed

	var status string
	if strings.HasPrefix(trimmed, "{") {
		var structured struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(trimmed), &structured); err == nil {
			status = strings.ToLower(strings.TrimSpace(structured.Status))
			if structured.Message != "" {
				message = structured.Message
			}
		}
	}

	for _, marker := range slotTakenMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return ReservationSlotTaken, message
		}
	}

	switch {
	case structuredSlotTaken[status]:
		return ReservationSlotTaken, message
	case structuredSuccess[status]:
		return ReservationSucceeded, message
	case strings.Contains(lower, apologyPhrase):
		return ReservationSlotTaken, message
	}
	return ReservationSucceeded, message
}
