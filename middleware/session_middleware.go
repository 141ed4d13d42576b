package middleware

import (
	authutils "talentflow-backend/lib/utils/auth-utils"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	return sub
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	name, _ := claims["name"].(string)
	return name
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	role, _ := claims["role"].(string)
	return models.UserRole(role)
}

// AdminRequired gates the admin route group; it runs after
// AuthorizationRequired so the token is already verified.
func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not allowed"))
		}
		return ctx.Next()
	}
}
