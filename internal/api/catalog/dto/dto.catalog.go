// Package dto - DTO cho domain catalog (cocktails, garnishes, humour lines).
package dto

// ImportLinesInput là body của route nhập hàng loạt câu thoại hài.
type ImportLinesInput struct {
	Lines []string `json:"lines"`
}

// ImportLinesResponse là kết quả nhập câu thoại hài.
type ImportLinesResponse struct {
	Ok       bool `json:"ok"`
	Imported int  `json:"imported"` // Số dòng thực nhập sau khi loại dòng trống
}
