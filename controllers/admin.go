package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/services"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

const adminSetupPath = "/admin-setup"

type AdminController struct {
	Accounts repository.AccountRepository
	Views    *services.BookingViews
}

type AdminSetupInput struct {
	SalonName  string `json:"salonName"`
	Location   string `json:"location"`
	PriceRange string `json:"priceRange"`
}

type StatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

func denyAdmin(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":    message,
		"redirect": adminSetupPath,
	})
}

// RequireAdmin lets through only users holding the admin role. It stores the
// linked salon id (if any) under "salonId".
func (ac *AdminController) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()

		role, err := ac.Accounts.FindRole(ctx, userID, models.RoleAdmin)
		if err != nil {
			slog.Error("admin role lookup failed", "user_id", userID, "error", err)
			denyAdmin(c, "Could not verify admin access")
			return
		}
		if role == nil {
			denyAdmin(c, "Admin access required")
			return
		}

		profile, err := ac.Accounts.GetProfile(ctx, userID)
		if err != nil {
			slog.Error("admin profile lookup failed", "user_id", userID, "error", err)
			denyAdmin(c, "Could not verify admin access")
			return
		}
		if profile.SalonID != nil {
			c.Set("salonId", profile.SalonID.String())
		}

		c.Next()
	}
}

func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := ac.Views.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to load dashboard")
		return
	}

	response := gin.H{"stats": stats}
	if salonID := c.GetString("salonId"); salonID != "" {
		if id, err := uuid.Parse(salonID); err == nil {
			if salon, err := ac.Accounts.GetManagedSalon(c.Request.Context(), id); err == nil {
				response["salon"] = salon
			} else {
				slog.Warn("managed salon lookup failed", "salon_id", salonID, "error", err)
			}
		}
	}
	c.JSON(http.StatusOK, response)
}

func (ac *AdminController) ListBookings(c *gin.Context) {
	bookings, err := ac.Views.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus writes the new status and answers with the full,
// freshly read booking list.
func (ac *AdminController) UpdateBookingStatus(c *gin.Context) {
	bookingID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bookings, err := ac.Views.ChangeStatus(c.Request.Context(), bookingID, input.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update booking")
		return
	}
	slog.Info("booking status changed", "booking_id", bookingID, "status", input.Status, "user_id", c.GetString("userId"))
	c.JSON(http.StatusOK, bookings)
}

// Setup registers a salon for the caller and grants the admin role.
func (ac *AdminController) Setup(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input AdminSetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	input.SalonName = strings.TrimSpace(input.SalonName)
	input.Location = strings.TrimSpace(input.Location)
	if missing := utils.MissingFields("salonName", input.SalonName, "location", input.Location); len(missing) > 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	ctx := c.Request.Context()
	role, err := ac.Accounts.FindRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		respondServiceError(c, err, "Failed to set up admin")
		return
	}
	if role != nil {
		utils.RespondWithError(c, http.StatusConflict, "You are already an admin")
		return
	}

	salon := models.ManagedSalon{
		Name:       input.SalonName,
		Location:   input.Location,
		PriceRange: strings.TrimSpace(input.PriceRange),
	}
	if err := ac.Accounts.SetupAdmin(ctx, userID, &salon); err != nil {
		respondServiceError(c, err, "Failed to set up admin")
		return
	}

	slog.Info("admin setup completed", "user_id", userID, "salon_id", salon.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin account set up",
		"salon":   salon,
	})
}
