// Package bartoolshdl - Handler các máy tính pha chế.
package bartoolshdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/base/handler"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/bartools/dto"
	bartoolsvc "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/bartools/service"
)

// BarToolsHandler xử lý các route tính toán pha chế.
type BarToolsHandler struct {
	basehdl.BaseHandler
	Service *bartoolsvc.BarToolsService
}

// NewBarToolsHandler tạo BarToolsHandler mới.
func NewBarToolsHandler() *BarToolsHandler {
	return &BarToolsHandler{
		Service: bartoolsvc.NewBarToolsService(),
	}
}

// HandleStdDrinks xử lý POST /bar-tools/std-drinks.
func (h *BarToolsHandler) HandleStdDrinks(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.StdDrinksInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.Service.ComputeStandardDrinks(input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleCostPerServe xử lý POST /bar-tools/cost-per-serve.
func (h *BarToolsHandler) HandleCostPerServe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CostPerServeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.Service.ComputeCostPerServe(input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleNextBottleROI xử lý POST /bar-tools/next-bottle-roi.
func (h *BarToolsHandler) HandleNextBottleROI(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.NextBottleROIInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.Service.ComputeNextBottleROI(input)
		h.HandleResponse(c, result, err)
		return nil
	})
}
