// Package models - Trạng thái vòng đời bài gửi cocktail (group_submissions).
// Bài gửi chứa công thức free-form do thành viên nhóm nhập, nên document được
// xử lý dạng map; chỉ các field vòng đời dưới đây có schema cố định.
package models

// Trạng thái của một bài gửi. pending là trạng thái duy nhất cho phép duyệt/từ chối;
// approved và rejected là trạng thái cuối, không quay lại được.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Các field vòng đời trên document bài gửi và cocktail đã duyệt.
const (
	FieldID                 = "_id"
	FieldGroupID            = "groupId"
	FieldStatus             = "status"
	FieldReviewedBy         = "reviewedBy"
	FieldReviewedAt         = "reviewedAt"
	FieldReviewNotes        = "reviewNotes"
	FieldApprovedCocktailID = "approvedCocktailId"
	FieldSourceSubmissionID = "sourceSubmissionId"
	FieldApprovedBy         = "approvedBy"
	FieldApprovedAt         = "approvedAt"
	FieldCreatedAt          = "createdAt"
	FieldUpdatedAt          = "updatedAt"
)
