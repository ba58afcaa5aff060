// Package dto - DTO cho domain moderation (duyệt bài gửi cocktail).
package dto

// ReviewParams là tham số URI của các route duyệt bài.
type ReviewParams struct {
	GroupID      string `uri:"groupId" validate:"required"`
	SubmissionID string `uri:"submissionId" validate:"required,object_id"`
}

// RejectInput là body của route từ chối bài gửi.
type RejectInput struct {
	Reason string `json:"reason"` // Lý do từ chối (tùy chọn, mặc định rỗng)
}

// ApproveResponse là kết quả duyệt bài thành công.
type ApproveResponse struct {
	Ok                 bool   `json:"ok"`
	ApprovedCocktailID string `json:"approvedCocktailId"`
}

// RejectResponse là kết quả từ chối bài thành công.
type RejectResponse struct {
	Ok bool `json:"ok"`
}
