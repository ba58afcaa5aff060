// Package cataloghdl - Handler nhập hàng loạt câu thoại hài.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/base/handler"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/dto"
	catalogvc "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/service"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/middleware"
)

// HumourLineHandler xử lý route nhập câu thoại hài.
type HumourLineHandler struct {
	basehdl.BaseHandler
	Service *catalogvc.HumourLineService
}

// NewHumourLineHandler tạo HumourLineHandler mới.
func NewHumourLineHandler() (*HumourLineHandler, error) {
	svc, err := catalogvc.NewHumourLineService()
	if err != nil {
		return nil, fmt.Errorf("tạo HumourLineService: %w", err)
	}
	return &HumourLineHandler{Service: svc}, nil
}

// HandleImportLines xử lý POST /humour-lines/import.
func (h *HumourLineHandler) HandleImportLines(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ImportLinesInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor := middleware.GetAuthContext(c)
		result, err := h.Service.ImportLines(c.Context(), actor, input.Lines)
		h.HandleResponse(c, result, err)
		return nil
	})
}
