// Package moderationvc - Service duyệt bài gửi cocktail theo nhóm.
package moderationvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionStore trừu tượng hóa tầng lưu trữ của luồng duyệt bài.
// Service chỉ làm việc qua interface này; hiện thực MongoDB nằm ở store.mongo.go,
// test dùng bản in-memory.
type SubmissionStore interface {
	// FindSubmission đọc document bài gửi theo (groupId, submissionId).
	// Trả về common.ErrNotFound nếu không tồn tại.
	FindSubmission(ctx context.Context, groupID string, submissionID primitive.ObjectID) (map[string]interface{}, error)

	// InsertCocktail ghi cocktail đã duyệt vào group_cocktails, trả về _id mới.
	InsertCocktail(ctx context.Context, doc map[string]interface{}) (primitive.ObjectID, error)

	// MarkReviewed cập nhật bài gửi với điều kiện status còn là pending (compare-and-set).
	// Trả về common.ErrInvalidState nếu không còn document pending khớp —
	// tức là một reviewer khác đã xử lý trước.
	MarkReviewed(ctx context.Context, groupID string, submissionID primitive.ObjectID, update map[string]interface{}) error

	// WithTransaction chạy fn trong một transaction; mọi ghi bên trong fn
	// được commit trọn vẹn hoặc rollback toàn bộ khi fn trả lỗi.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
