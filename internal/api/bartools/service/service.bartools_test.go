// Package bartoolsvc - Test các máy tính pha chế: làm tròn đúng 2 chữ số tại output và chặn input không dương.
package bartoolsvc

import (
	"errors"
	"math"
	"testing"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/bartools/dto"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
)

func TestComputeStandardDrinks_ChuanAU(t *testing.T) {
	svc := NewBarToolsService()

	// 30ml rượu 40%: grams = 30 * 0.4 * 0.789 = 9.468 → 0.9468 std → 0.95
	got, err := svc.ComputeStandardDrinks(dto.StdDrinksInput{AbvPercent: 40, VolumeMl: 30})
	if err != nil {
		t.Fatalf("ComputeStandardDrinks trả về lỗi: %v", err)
	}
	if got.StdDrinks != 0.95 {
		t.Errorf("stdDrinks = %v, muốn 0.95", got.StdDrinks)
	}
}

func TestComputeStandardDrinks_LonBiaChuan(t *testing.T) {
	svc := NewBarToolsService()

	// Lon bia 375ml 4.8%: grams = 375 * 0.048 * 0.789 = 14.202 → 1.4202 → 1.42
	got, err := svc.ComputeStandardDrinks(dto.StdDrinksInput{AbvPercent: 4.8, VolumeMl: 375})
	if err != nil {
		t.Fatalf("ComputeStandardDrinks trả về lỗi: %v", err)
	}
	if got.StdDrinks != 1.42 {
		t.Errorf("stdDrinks = %v, muốn 1.42", got.StdDrinks)
	}
}

func TestComputeStandardDrinks_InputKhongHopLe(t *testing.T) {
	svc := NewBarToolsService()

	cases := []dto.StdDrinksInput{
		{AbvPercent: 0, VolumeMl: 30},
		{AbvPercent: 40, VolumeMl: 0},
		{AbvPercent: -5, VolumeMl: 30},
		{AbvPercent: 40, VolumeMl: -30},
		{AbvPercent: math.NaN(), VolumeMl: 30},
		{AbvPercent: 40, VolumeMl: math.Inf(1)},
	}
	for _, in := range cases {
		_, err := svc.ComputeStandardDrinks(in)
		if err == nil {
			t.Errorf("input %+v phải bị từ chối", in)
			continue
		}
		var customErr *common.Error
		if !errors.As(err, &customErr) || customErr.Code.Code != common.ErrCodeValidationInput.Code {
			t.Errorf("input %+v: muốn lỗi VAL_001, nhận %v", in, err)
		}
		if customErr != nil && customErr.StatusCode != common.StatusBadRequest {
			t.Errorf("input %+v: muốn status 400, nhận %d", in, customErr.StatusCode)
		}
	}
}

func TestComputeCostPerServe_ChiaTrenGiaTriChuaLamTron(t *testing.T) {
	svc := NewBarToolsService()

	// Chai 700ml giá 60, serve 30ml: serves = 23.333... → 23.33;
	// costPerServe = 60 / 23.333... = 2.5714... → 2.57 (chia trên giá trị CHƯA làm tròn)
	got, err := svc.ComputeCostPerServe(dto.CostPerServeInput{BottlePrice: 60, BottleVolumeMl: 700, ServeMl: 30})
	if err != nil {
		t.Fatalf("ComputeCostPerServe trả về lỗi: %v", err)
	}
	if got.ServesPerBottle != 23.33 {
		t.Errorf("servesPerBottle = %v, muốn 23.33", got.ServesPerBottle)
	}
	if got.CostPerServe != 2.57 {
		t.Errorf("costPerServe = %v, muốn 2.57", got.CostPerServe)
	}
}

func TestComputeCostPerServe_InputKhongHopLe(t *testing.T) {
	svc := NewBarToolsService()

	cases := []dto.CostPerServeInput{
		{BottlePrice: 0, BottleVolumeMl: 700, ServeMl: 30},
		{BottlePrice: 60, BottleVolumeMl: 0, ServeMl: 30},
		{BottlePrice: 60, BottleVolumeMl: 700, ServeMl: 0},
		{BottlePrice: -60, BottleVolumeMl: 700, ServeMl: 30},
		{BottlePrice: 60, BottleVolumeMl: math.NaN(), ServeMl: 30},
	}
	for _, in := range cases {
		if _, err := svc.ComputeCostPerServe(in); err == nil {
			t.Errorf("input %+v phải bị từ chối", in)
		}
	}
}

func TestComputeNextBottleROI_TinhDungCacDauRa(t *testing.T) {
	svc := NewBarToolsService()

	// Chai 700ml giá 60, serve 30ml, bán 12/serve:
	// serves = 23.333..., cost = 2.5714..., profit = 9.4285... → 9.43
	// totalProfit = 9.4285... * 23.333... = 220 → 220
	// roi = 220 / 60 = 3.666... → 3.67
	got, err := svc.ComputeNextBottleROI(dto.NextBottleROIInput{
		BottlePrice:       60,
		BottleVolumeMl:    700,
		ServeMl:           30,
		SellPricePerServe: 12,
	})
	if err != nil {
		t.Fatalf("ComputeNextBottleROI trả về lỗi: %v", err)
	}
	if got.ProfitPerServe != 9.43 {
		t.Errorf("profitPerServe = %v, muốn 9.43", got.ProfitPerServe)
	}
	if got.TotalProfitPerBottle != 220 {
		t.Errorf("totalProfitPerBottle = %v, muốn 220", got.TotalProfitPerBottle)
	}
	if got.RoiMultiple != 3.67 {
		t.Errorf("roiMultiple = %v, muốn 3.67", got.RoiMultiple)
	}
}

func TestComputeNextBottleROI_GiaBanThapHonGiaVon(t *testing.T) {
	svc := NewBarToolsService()

	// Bán lỗ vẫn tính được, profit âm
	got, err := svc.ComputeNextBottleROI(dto.NextBottleROIInput{
		BottlePrice:       60,
		BottleVolumeMl:    700,
		ServeMl:           30,
		SellPricePerServe: 1,
	})
	if err != nil {
		t.Fatalf("ComputeNextBottleROI trả về lỗi: %v", err)
	}
	if got.ProfitPerServe >= 0 {
		t.Errorf("profitPerServe = %v, muốn âm khi bán dưới giá vốn", got.ProfitPerServe)
	}
}

func TestComputeNextBottleROI_SellPriceBangKhongBiTuChoi(t *testing.T) {
	svc := NewBarToolsService()

	// sellPricePerServe cũng phải dương chặt
	_, err := svc.ComputeNextBottleROI(dto.NextBottleROIInput{
		BottlePrice:       60,
		BottleVolumeMl:    700,
		ServeMl:           30,
		SellPricePerServe: 0,
	})
	if err == nil {
		t.Fatal("sellPricePerServe = 0 phải bị từ chối")
	}
}
