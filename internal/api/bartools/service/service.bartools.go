// Package bartoolsvc - Các máy tính pha chế: standard drink, giá vốn mỗi serve, ROI chai kế tiếp.
// Toàn bộ là hàm thuần, không chạm database.
package bartoolsvc

import (
	"math"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/bartools/dto"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
)

// Chuẩn AU: một standard drink = 10g cồn nguyên chất.
// grams = volumeMl * (abvPercent/100) * 0.789 (tỷ trọng ethanol g/ml).
const (
	ethanolDensityGramsPerMl = 0.789
	gramsPerStandardDrink    = 10.0
)

// BarToolsService gom các phép tính pha chế.
type BarToolsService struct{}

// NewBarToolsService tạo BarToolsService mới.
func NewBarToolsService() *BarToolsService {
	return &BarToolsService{}
}

// round2 làm tròn 2 chữ số thập phân. Chỉ gọi MỘT LẦN tại output,
// các bước trung gian giữ nguyên độ chính xác.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// isPositiveFinite kiểm tra số hữu hạn và dương chặt.
func isPositiveFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}

// ComputeStandardDrinks tính số standard drink từ nồng độ cồn và thể tích.
func (s *BarToolsService) ComputeStandardDrinks(input dto.StdDrinksInput) (*dto.StdDrinksResponse, error) {
	if !isPositiveFinite(input.AbvPercent, input.VolumeMl) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"abvPercent và volumeMl phải là số dương",
			common.StatusBadRequest,
			nil,
		)
	}

	gramsAlcohol := input.VolumeMl * (input.AbvPercent / 100) * ethanolDensityGramsPerMl
	stdDrinks := gramsAlcohol / gramsPerStandardDrink

	return &dto.StdDrinksResponse{StdDrinks: round2(stdDrinks)}, nil
}

// ComputeCostPerServe tính số serve mỗi chai và giá vốn mỗi serve.
// costPerServe chia cho servesPerBottle CHƯA làm tròn.
func (s *BarToolsService) ComputeCostPerServe(input dto.CostPerServeInput) (*dto.CostPerServeResponse, error) {
	if !isPositiveFinite(input.BottlePrice, input.BottleVolumeMl, input.ServeMl) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"bottlePrice, bottleVolumeMl và serveMl phải là số dương",
			common.StatusBadRequest,
			nil,
		)
	}

	servesPerBottle := input.BottleVolumeMl / input.ServeMl
	costPerServe := input.BottlePrice / servesPerBottle

	return &dto.CostPerServeResponse{
		ServesPerBottle: round2(servesPerBottle),
		CostPerServe:    round2(costPerServe),
	}, nil
}

// ComputeNextBottleROI tính lợi nhuận mỗi serve, tổng lợi nhuận chai và hệ số ROI
// khi nhập thêm một chai với giá bán cho trước.
func (s *BarToolsService) ComputeNextBottleROI(input dto.NextBottleROIInput) (*dto.NextBottleROIResponse, error) {
	if !isPositiveFinite(input.BottlePrice, input.BottleVolumeMl, input.ServeMl, input.SellPricePerServe) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"bottlePrice, bottleVolumeMl, serveMl và sellPricePerServe phải là số dương",
			common.StatusBadRequest,
			nil,
		)
	}

	servesPerBottle := input.BottleVolumeMl / input.ServeMl
	costPerServe := input.BottlePrice / servesPerBottle
	profitPerServe := input.SellPricePerServe - costPerServe
	totalProfitPerBottle := profitPerServe * servesPerBottle
	roiMultiple := totalProfitPerBottle / input.BottlePrice

	return &dto.NextBottleROIResponse{
		ProfitPerServe:       round2(profitPerServe),
		TotalProfitPerBottle: round2(totalProfitPerBottle),
		RoiMultiple:          round2(roiMultiple),
	}, nil
}
