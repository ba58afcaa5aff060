// Package cataloghdl - Handler catalog công khai: cocktails và garnishes.
package cataloghdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/base/handler"
	catalogvc "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/service"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
)

// CatalogHandler xử lý các route đọc catalog.
type CatalogHandler struct {
	basehdl.BaseHandler
	CocktailService *catalogvc.CocktailService
	GarnishService  *catalogvc.GarnishService
}

// NewCatalogHandler tạo CatalogHandler mới.
func NewCatalogHandler() (*CatalogHandler, error) {
	cocktailSvc, err := catalogvc.NewCocktailService()
	if err != nil {
		return nil, fmt.Errorf("tạo CocktailService: %w", err)
	}
	garnishSvc, err := catalogvc.NewGarnishService()
	if err != nil {
		return nil, fmt.Errorf("tạo GarnishService: %w", err)
	}
	return &CatalogHandler{
		CocktailService: cocktailSvc,
		GarnishService:  garnishSvc,
	}, nil
}

// parseLimit đọc query limit, mặc định 0 (service tự áp giới hạn).
func parseLimit(c fiber.Ctx) int {
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// HandleFindCocktails xử lý GET /cocktails/find.
func (h *CatalogHandler) HandleFindCocktails(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		cocktails, err := h.CocktailService.FindAll(c.Context(), parseLimit(c))
		h.HandleResponse(c, cocktails, err)
		return nil
	})
}

// HandleFindCocktailsByGarnish xử lý GET /cocktails/by-garnish/:garnishId.
func (h *CatalogHandler) HandleFindCocktailsByGarnish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		garnishID, err := primitive.ObjectIDFromHex(c.Params("garnishId"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"garnishId không hợp lệ",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		cocktails, err := h.CocktailService.FindByGarnish(c.Context(), garnishID, parseLimit(c))
		h.HandleResponse(c, cocktails, err)
		return nil
	})
}

// HandleFindGarnishes xử lý GET /garnishes/find.
func (h *CatalogHandler) HandleFindGarnishes(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		garnishes, err := h.GarnishService.FindAll(c.Context(), parseLimit(c))
		h.HandleResponse(c, garnishes, err)
		return nil
	})
}
