// Package router đăng ký các route thuộc domain moderation: duyệt bài gửi cocktail theo nhóm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/middleware"
	moderationhdl "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/moderation/handler"
	apirouter "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/router"
)

// Register đăng ký tất cả route moderation lên v1. Chỉ dành cho quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := moderationhdl.NewModerationHandler()
	if err != nil {
		return fmt.Errorf("tạo ModerationHandler: %w", err)
	}

	adminMiddleware := middleware.AuthMiddleware(true)
	middlewares := []fiber.Handler{adminMiddleware}

	// POST /groups/:groupId/submissions/:submissionId/approve — duyệt bài, ghi cocktail mới
	apirouter.RegisterRouteWithMiddleware(v1, "/groups", "POST", "/:groupId/submissions/:submissionId/approve", middlewares, handler.HandleApprove)

	// POST /groups/:groupId/submissions/:submissionId/reject — từ chối bài. Body: {reason}
	apirouter.RegisterRouteWithMiddleware(v1, "/groups", "POST", "/:groupId/submissions/:submissionId/reject", middlewares, handler.HandleReject)

	return nil
}
