package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/services"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

type BookingController struct {
	Bookings *services.BookingService
	Views    *services.BookingViews
}

// CreateBooking runs the reservation flow. A taken slot answers 409 with the
// workflow's own message and the draft so the form can stay filled in.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var draft services.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	confirmation, err := bc.Bookings.Submit(c.Request.Context(), userID, draft)
	if err != nil {
		var taken *services.SlotTakenError
		if errors.As(err, &taken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": taken.Message,
				"draft": draft,
			})
			return
		}
		respondServiceError(c, err, "Failed to save booking")
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}

func (bc *BookingController) ListBookings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := bc.Views.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := bc.Views.Cancel(c.Request.Context(), userID, bookingID); err != nil {
		respondServiceError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
