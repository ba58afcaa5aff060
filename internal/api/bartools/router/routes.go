// Package router đăng ký các route thuộc domain bar-tools: máy tính pha chế.
package router

import (
	"github.com/gofiber/fiber/v3"

	bartoolshdl "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/bartools/handler"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/middleware"
	apirouter "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/router"
)

// Register đăng ký tất cả route bar-tools lên v1.
// Các máy tính yêu cầu đăng nhập nhưng không yêu cầu quyền quản trị.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler := bartoolshdl.NewBarToolsHandler()

	authMiddleware := middleware.AuthMiddleware(false)
	middlewares := []fiber.Handler{authMiddleware}

	// POST /bar-tools/std-drinks — số standard drink từ abvPercent + volumeMl
	apirouter.RegisterRouteWithMiddleware(v1, "/bar-tools", "POST", "/std-drinks", middlewares, handler.HandleStdDrinks)

	// POST /bar-tools/cost-per-serve — giá vốn mỗi serve từ một chai
	apirouter.RegisterRouteWithMiddleware(v1, "/bar-tools", "POST", "/cost-per-serve", middlewares, handler.HandleCostPerServe)

	// POST /bar-tools/next-bottle-roi — lợi nhuận khi nhập thêm một chai
	apirouter.RegisterRouteWithMiddleware(v1, "/bar-tools", "POST", "/next-bottle-roi", middlewares, handler.HandleNextBottleROI)

	return nil
}
