package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

const minPasswordLength = 6

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionRevoker ends sessions before their token expires.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type AuthController struct {
	Accounts     repository.AccountRepository
	Sessions     SessionRevoker
	Secret       string
	TokenTTL     time.Duration
	SecureCookie bool
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if missing := utils.MissingFields(
		"name", input.Name,
		"email", input.Email,
		"password", input.Password,
		"confirmPassword", input.ConfirmPassword,
	); len(missing) > 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill in all fields: "+strings.Join(missing, ", "))
		return
	}
	if input.Password != input.ConfirmPassword {
		utils.RespondWithError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}
	if len(input.Password) < minPasswordLength {
		utils.RespondWithError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	profile := models.Profile{Name: input.Name, Email: input.Email, Password: hash}
	if err := ac.Accounts.CreateProfile(c.Request.Context(), &profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		slog.Error("signup failed", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	slog.Info("account created", "user_id", profile.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully! Please sign in.",
		"user":    userPayload(&profile, false),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx := c.Request.Context()
	profile, err := ac.Accounts.GetProfileByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			slog.Error("login lookup failed", "error", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, profile.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, _, err := utils.GenerateToken(ac.Secret, ac.TokenTTL, profile.ID.String())
	if err != nil {
		slog.Error("token generation failed", "error", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := ac.Accounts.TouchLastLogin(ctx, profile.ID, time.Now()); err != nil {
		slog.Warn("failed to record last login", "user_id", profile.ID, "error", err)
	}

	isAdmin := ac.isAdmin(ctx, profile.ID)
	c.SetCookie(utils.TokenCookie, token, int(ac.TokenTTL.Seconds()), "/", "", ac.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userPayload(profile, isAdmin),
	})
}

// Logout always succeeds; revocation failures are only logged.
func (ac *AuthController) Logout(c *gin.Context) {
	if tokenID := c.GetString("tokenId"); tokenID != "" && ac.Sessions != nil {
		ttl := ac.TokenTTL
		if expiry, ok := c.Get("tokenExpiry"); ok {
			if t, ok := expiry.(time.Time); ok {
				ttl = time.Until(t)
			}
		}
		if err := ac.Sessions.Revoke(c.Request.Context(), tokenID, ttl); err != nil {
			slog.Warn("failed to revoke session", "user_id", c.GetString("userId"), "error", err)
		}
	}

	c.SetCookie(utils.TokenCookie, "", -1, "/", "", ac.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := ac.Accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": userPayload(profile, ac.isAdmin(c.Request.Context(), userID)),
	})
}

func (ac *AuthController) isAdmin(ctx context.Context, userID uuid.UUID) bool {
	role, err := ac.Accounts.FindRole(ctx, userID, models.RoleAdmin)
	if err != nil {
		slog.Warn("role lookup failed", "user_id", userID, "error", err)
		return false
	}
	return role != nil
}

func userPayload(p *models.Profile, isAdmin bool) gin.H {
	return gin.H{
		"id":      p.ID,
		"name":    p.Name,
		"email":   p.Email,
		"salonId": p.SalonID,
		"isAdmin": isAdmin,
	}
}
