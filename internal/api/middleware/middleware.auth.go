// Package middleware - Xác thực Firebase ID token tại boundary và gắn AuthContext vào request.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/auth"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/logger"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/utility"
)

// authContextKey là key trong Locals chứa AuthContext của request.
const authContextKey = "auth_context"

// GetAuthContext trả về AuthContext đã được middleware gắn vào request.
// Trả về Anonymous nếu request chưa đi qua AuthMiddleware (route public).
func GetAuthContext(c fiber.Ctx) auth.AuthContext {
	if actx, ok := c.Locals(authContextKey).(auth.AuthContext); ok {
		return actx
	}
	return auth.Anonymous
}

// AuthMiddleware xác thực Bearer token Firebase cho Fiber.
// Token được verify MỘT LẦN tại đây và chuyển thành AuthContext typed;
// handler và service phía sau không chạm vào raw claim nữa.
// requireAdmin=true chặn luôn các user không có claim isAdmin.
func AuthMiddleware(requireAdmin bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Missing Authorization header")
			return handleAuthError(c, common.ErrTokenMissing)
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return handleAuthError(c, common.ErrTokenInvalid)
		}

		// Verify token qua Firebase Admin SDK
		token, err := utility.VerifyIDToken(c.Context(), parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Firebase token verification failed")
			return handleAuthError(c, common.ErrTokenInvalid)
		}

		actx := auth.FromFirebaseToken(token)

		if requireAdmin && !actx.IsAdmin {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
				"uid":  actx.UID,
			}).Warn("Admin-only route rejected non-admin user")
			return handleAuthError(c, common.ErrAdminOnly)
		}

		c.Locals(authContextKey, actx)
		return c.Next()
	}
}

// handleAuthError trả về response lỗi xác thực theo format chuẩn.
func handleAuthError(c fiber.Ctx, err error) error {
	customErr, ok := err.(*common.Error)
	if !ok {
		return c.Status(common.StatusUnauthorized).JSON(fiber.Map{
			"code":    common.ErrCodeAuth.Code,
			"message": err.Error(),
			"status":  "error",
		})
	}
	return c.Status(customErr.StatusCode).JSON(fiber.Map{
		"code":    customErr.Code.Code,
		"message": customErr.Message,
		"status":  "error",
	})
}
