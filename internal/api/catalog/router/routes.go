// Package router đăng ký các route thuộc domain catalog: cocktails, garnishes, humour lines.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/handler"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/middleware"
	apirouter "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
// Catalog đọc là public; nhập câu thoại hài chỉ dành cho quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	catalogHandler, err := cataloghdl.NewCatalogHandler()
	if err != nil {
		return fmt.Errorf("tạo CatalogHandler: %w", err)
	}
	humourHandler, err := cataloghdl.NewHumourLineHandler()
	if err != nil {
		return fmt.Errorf("tạo HumourLineHandler: %w", err)
	}

	// GET /cocktails/find — catalog công khai, sắp theo tên. Query: limit
	apirouter.RegisterRouteWithMiddleware(v1, "/cocktails", "GET", "/find", nil, catalogHandler.HandleFindCocktails)

	// GET /cocktails/by-garnish/:garnishId — lọc cocktail theo garnish
	apirouter.RegisterRouteWithMiddleware(v1, "/cocktails", "GET", "/by-garnish/:garnishId", nil, catalogHandler.HandleFindCocktailsByGarnish)

	// GET /garnishes/find — danh sách garnish công khai
	apirouter.RegisterRouteWithMiddleware(v1, "/garnishes", "GET", "/find", nil, catalogHandler.HandleFindGarnishes)

	// POST /humour-lines/import — nhập hàng loạt câu thoại. Body: {lines: []string}
	adminMiddleware := middleware.AuthMiddleware(true)
	apirouter.RegisterRouteWithMiddleware(v1, "/humour-lines", "POST", "/import", []fiber.Handler{adminMiddleware}, humourHandler.HandleImportLines)

	return nil
}
