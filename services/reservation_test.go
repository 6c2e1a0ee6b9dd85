package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReservationResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    ReservationOutcome
		message string
	}{
		{"confirmation text", "Your appointment at Luxe Hair Studio is confirmed for October 20th, 2026 at 10:00 AM.", ReservationSucceeded, ""},
		{"empty body", "", ReservationSucceeded, ""},
		{"cross glyph", "❌ This slot is not available", ReservationSlotTaken, "❌ This slot is not available"},
		{"sorry any case", "SORRY! That time is gone.", ReservationSlotTaken, "SORRY! That time is gone."},
		{"already booked", "The 3:00 PM slot is Already Booked", ReservationSlotTaken, "The 3:00 PM slot is Already Booked"},
		{"structured success clears a bare apology", `{"status":"success","message":"Sorry for the wait, you're booked"}`, ReservationSucceeded, "Sorry for the wait, you're booked"},
		{"structured success cannot override already booked", `{"status":"success","message":"❌ Sorry, 3:00 PM is already booked"}`, ReservationSlotTaken, "❌ Sorry, 3:00 PM is already booked"},
		{"structured ok cannot override already booked", `{"status":"ok","message":"That slot is ALREADY BOOKED"}`, ReservationSlotTaken, "That slot is ALREADY BOOKED"},
		{"structured success cannot override cross glyph", `{"status":"booked","message":"❌"}`, ReservationSlotTaken, "❌"},
		{"structured slot taken", `{"status":"slot_taken","message":"Pick another time"}`, ReservationSlotTaken, "Pick another time"},
		{"structured without message", `{"status":"unavailable"}`, ReservationSlotTaken, `{"status":"unavailable"}`},
		{"unknown structured status falls back to text", `{"status":"queued","note":"sorry"}`, ReservationSlotTaken, `{"status":"queued","note":"sorry"}`},
		{"unknown structured status keeps message field", `{"status":"queued","message":"Sorry, fully booked today"}`, ReservationSlotTaken, "Sorry, fully booked today"},
		{"unknown structured status success keeps message field", `{"status":"queued","message":"See you at 3:00 PM"}`, ReservationSucceeded, "See you at 3:00 PM"},
		{"malformed json is text", `{"status": "success"`, ReservationSucceeded, `{"status": "success"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, message := ClassifyReservationResponse(tt.body)
			assert.Equal(t, tt.want, got)
			if tt.message != "" {
				assert.Equal(t, tt.message, message)
			}
		})
	}
}

func TestReservationOutcomeString(t *testing.T) {
	assert.Equal(t, "success", ReservationSucceeded.String())
	assert.Equal(t, "slot_taken", ReservationSlotTaken.String())
}

func TestHTTPReserverReturnsStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("queued"))
	}))
	defer server.Close()

	resp, err := NewHTTPReserver(server.URL, 0).Reserve(context.Background(), ReservationRequest{SalonName: "x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "queued", resp.Body)
}

func TestHTTPReserverTruncatesLargeBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", maxReservationBody+100)))
	}))
	defer server.Close()

	resp, err := NewHTTPReserver(server.URL, 0).Reserve(context.Background(), ReservationRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Body, maxReservationBody)
}

func TestHTTPReserverHonoursContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPReserver(server.URL, 0).Reserve(ctx, ReservationRequest{})
	assert.Error(t, err)
}
