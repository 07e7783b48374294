package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/dto"
)

// ProfileHandler serves the caller's own profile and loyalty card.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Get handles GET /api/user/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	claims := CurrentClaims(c)
	user, err := h.facade.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// LoyaltyCard handles GET /api/user/loyalty-card.
func (h *ProfileHandler) LoyaltyCard(c *gin.Context) {
	claims := CurrentClaims(c)
	png, err := h.facade.LoyaltyCard(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "loyalty card not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
