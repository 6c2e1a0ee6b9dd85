package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/catalog"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/services"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

// SalonController serves the catalog and its reviews.
type SalonController struct {
	Catalog *catalog.Catalog
	Reviews *services.ReviewService
}

// ListSalons supports ?q= (name or location), ?category= and
// ?sort=rating|price-low|price-high.
func (sc *SalonController) ListSalons(c *gin.Context) {
	salons := sc.Catalog.List(catalog.Query{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     catalog.ParseSortOrder(c.Query("sort")),
	})
	c.JSON(http.StatusOK, salons)
}

func (sc *SalonController) GetSalon(c *gin.Context) {
	id, ok := salonIDParam(c, "id")
	if !ok {
		return
	}
	salon, found := sc.Catalog.Get(id)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}
	c.JSON(http.StatusOK, salon)
}

func (sc *SalonController) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, models.TimeSlots)
}

func (sc *SalonController) ListReviews(c *gin.Context) {
	id, ok := salonIDParam(c, "id")
	if !ok {
		return
	}
	reviews, err := sc.Reviews.List(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (sc *SalonController) AddReview(c *gin.Context) {
	id, ok := salonIDParam(c, "id")
	if !ok {
		return
	}

	var input services.ReviewDraft
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	review, err := sc.Reviews.Add(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to save review")
		return
	}
	c.JSON(http.StatusCreated, review)
}
