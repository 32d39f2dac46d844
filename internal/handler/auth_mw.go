package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/AnNhien/companion-service/internal/model"
	"github.com/AnNhien/companion-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	user, ok := profileFromHeader(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Set("user", *user)

	c.Next()
}

func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	if user, ok := profileFromHeader(c.GetHeader("Authorization")); ok {
		c.Set("user", *user)
	}

	c.Next()
}

func (h *Handler) adminMiddleware(c *gin.Context) {
	user, ok := profileFromHeader(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	if strings.ToLower(user.Role) != model.RoleAdmin {
		c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, "no access"))
		c.Abort()
		return
	}

	c.Set("user", *user)

	c.Next()
}

func profileFromHeader(header string) (*model.UserProfile, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	accessToken := strings.TrimPrefix(header, "Bearer ")
	if accessToken == "" {
		return nil, false
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, false
	}

	return profileFromClaims(claims), true
}

func profileFromClaims(claims jwt.MapClaims) *model.UserProfile {
	profile := model.UserProfile{Role: model.RoleUser}

	if name, ok := claims["name"].(string); ok {
		profile.Name = name
	}
	if isGuest, ok := claims["isGuest"].(bool); ok {
		profile.IsGuest = isGuest
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		profile.Role = role
	}

	return &profile
}
