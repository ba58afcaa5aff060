// Package dto - DTO cho domain bar-tools (các máy tính phục vụ pha chế).
package dto

// StdDrinksInput là input tính số standard drink (chuẩn AU: 10g cồn).
type StdDrinksInput struct {
	AbvPercent float64 `json:"abvPercent"` // Nồng độ cồn (%)
	VolumeMl   float64 `json:"volumeMl"`   // Thể tích (ml)
}

// StdDrinksResponse là kết quả tính standard drink.
type StdDrinksResponse struct {
	StdDrinks float64 `json:"stdDrinks"`
}

// CostPerServeInput là input tính giá vốn mỗi serve từ một chai.
type CostPerServeInput struct {
	BottlePrice    float64 `json:"bottlePrice"`    // Giá chai
	BottleVolumeMl float64 `json:"bottleVolumeMl"` // Thể tích chai (ml)
	ServeMl        float64 `json:"serveMl"`        // Mỗi serve (ml)
}

// CostPerServeResponse là kết quả tính giá vốn mỗi serve.
type CostPerServeResponse struct {
	ServesPerBottle float64 `json:"servesPerBottle"`
	CostPerServe    float64 `json:"costPerServe"`
}

// NextBottleROIInput là input tính lợi nhuận khi nhập thêm một chai.
type NextBottleROIInput struct {
	BottlePrice       float64 `json:"bottlePrice"`
	BottleVolumeMl    float64 `json:"bottleVolumeMl"`
	ServeMl           float64 `json:"serveMl"`
	SellPricePerServe float64 `json:"sellPricePerServe"` // Giá bán mỗi serve
}

// NextBottleROIResponse là kết quả tính ROI cho chai kế tiếp.
type NextBottleROIResponse struct {
	ProfitPerServe       float64 `json:"profitPerServe"`
	TotalProfitPerBottle float64 `json:"totalProfitPerBottle"`
	RoiMultiple          float64 `json:"roiMultiple"`
}
