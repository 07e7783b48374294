package handlers

import (
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/richicicero94/tessera-fedelt-ifonelab/internal/pkg/auth"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/dto"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/middleware"
)

// CurrentClaims extracts the authenticated identity from the request context.
func CurrentClaims(c *gin.Context) *pkgAuth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := val.(*pkgAuth.Claims)
	return claims
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}
