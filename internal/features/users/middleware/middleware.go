package users_middleware

import (
	"net/http"
	"strings"

	users_enums "jobtracker/internal/features/users/enums"
	users_models "jobtracker/internal/features/users/models"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/util/result"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the user in the context
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ExtractBearerToken(ctx)
		if token == "" {
			result.FailAndAbort(ctx, http.StatusUnauthorized, "authorization token required")
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			result.FailAndAbort(ctx, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

func RequireRole(requiredRole users_enums.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := GetUserFromContext(ctx)
		if !ok {
			result.FailAndAbort(ctx, http.StatusUnauthorized, "user not authenticated")
			return
		}

		if user.Role != requiredRole {
			result.FailAndAbort(ctx, http.StatusForbidden, "insufficient permissions")
			return
		}

		ctx.Next()
	}
}

// ExtractBearerToken returns the token of the Authorization header with or
// without the "Bearer " prefix.
func ExtractBearerToken(ctx *gin.Context) string {
	header := strings.TrimSpace(ctx.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return header
}

func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
