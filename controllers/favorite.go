package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/services"
)

type FavoriteController struct {
	Favorites *services.FavoriteService
}

func (fc *FavoriteController) ListFavorites(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ids, err := fc.Favorites.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch favorites")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salonIds": ids})
}

func (fc *FavoriteController) ToggleFavorite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	salonID, ok := salonIDParam(c, "salonId")
	if !ok {
		return
	}

	favorite, err := fc.Favorites.Toggle(c.Request.Context(), userID, salonID)
	if err != nil {
		respondServiceError(c, err, "Failed to update favorites")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salonId": salonID, "favorite": favorite})
}
