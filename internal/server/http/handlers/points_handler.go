package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/errors"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/domain/model"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/dto"
)

// PointsHandler manages the merchant point-crediting endpoint.
type PointsHandler struct {
	facade LedgerFacade
}

// NewPointsHandler constructs PointsHandler.
func NewPointsHandler(facade LedgerFacade) *PointsHandler {
	return &PointsHandler{facade: facade}
}

// AddPoints handles POST /api/merchant/add-points.
func (h *PointsHandler) AddPoints(c *gin.Context) {
	claims := CurrentClaims(c)

	var req dto.AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "loyalty code and points required")
		return
	}
	if req.LoyaltyCode == "" || req.Points == nil {
		respondError(c, http.StatusBadRequest, "loyalty code and points required")
		return
	}

	user, err := h.facade.AddPoints(c.Request.Context(), model.Role(claims.Role), req.LoyaltyCode, *req.Points)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMerchantOnly):
			respondError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "customer not found")
		default:
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, dto.AddPointsResponse{
		Message:   fmt.Sprintf("Added %d points to %s", *req.Points, user.Email),
		NewPoints: user.Points,
	})
}
