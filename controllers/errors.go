package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/services"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

// respondServiceError maps service and repository errors onto HTTP
// statuses. Unknown errors are logged and reported as 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   verr.Error(),
			"missing": verr.Missing,
		})
	case errors.Is(err, services.ErrUnknownSalon):
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrReservationUnavailable):
		utils.RespondWithError(c, http.StatusBadGateway, "We couldn't reach the booking system. Please try again.")
	default:
		slog.Error(fallback, "path", c.FullPath(), "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}

func salonIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID")
		return 0, false
	}
	return id, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := utils.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
	}
	return id, ok
}
