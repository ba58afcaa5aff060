package moderationvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/auth"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/moderation/dto"
	moderationmodels "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/moderation/models"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/logger"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/utility"
)

// ReviewService xử lý luồng duyệt/từ chối bài gửi cocktail của nhóm.
// Chỉ quản trị viên được gọi; mọi chuyển trạng thái chỉ hợp lệ từ pending.
type ReviewService struct {
	store SubmissionStore
}

// NewReviewService tạo ReviewService trên store được inject.
func NewReviewService(store SubmissionStore) *ReviewService {
	return &ReviewService{store: store}
}

// NewReviewServiceMongo tạo ReviewService trên MongoDB store mặc định.
func NewReviewServiceMongo() (*ReviewService, error) {
	store, err := NewMongoSubmissionStore()
	if err != nil {
		return nil, fmt.Errorf("tạo MongoSubmissionStore: %w", err)
	}
	return NewReviewService(store), nil
}

// notPendingError tạo lỗi precondition nêu rõ trạng thái hiện tại của bài gửi.
func notPendingError(status string) error {
	return common.NewError(
		common.ErrCodeBusinessState,
		fmt.Sprintf("Bài gửi đang ở trạng thái %s, không phải pending", status),
		common.StatusPreconditionFailed,
		nil,
	)
}

// submissionStatus đọc trạng thái từ document bài gửi.
func submissionStatus(sub map[string]interface{}) string {
	status, _ := sub[moderationmodels.FieldStatus].(string)
	return status
}

// copyRecipeFields sao chép document bài gửi và loại bỏ các field vòng đời
// của luồng duyệt. Phần còn lại là công thức free-form, giữ nguyên.
func copyRecipeFields(sub map[string]interface{}) map[string]interface{} {
	doc := utility.CloneMap(sub)
	delete(doc, moderationmodels.FieldID)
	delete(doc, moderationmodels.FieldStatus)
	delete(doc, moderationmodels.FieldReviewedBy)
	delete(doc, moderationmodels.FieldReviewedAt)
	delete(doc, moderationmodels.FieldReviewNotes)
	delete(doc, moderationmodels.FieldApprovedCocktailID)
	delete(doc, moderationmodels.FieldUpdatedAt)
	return doc
}

// overlayApprovalFields gắn các field phê duyệt lên bản sao công thức.
// createdAt của bài gửi được giữ nguyên nếu có, để cocktail phản ánh thời điểm gửi gốc.
func overlayApprovalFields(doc map[string]interface{}, submissionID primitive.ObjectID, reviewerUID string, now int64) map[string]interface{} {
	doc[moderationmodels.FieldStatus] = moderationmodels.SubmissionStatusApproved
	doc[moderationmodels.FieldSourceSubmissionID] = submissionID
	doc[moderationmodels.FieldApprovedBy] = reviewerUID
	doc[moderationmodels.FieldApprovedAt] = now
	if _, ok := doc[moderationmodels.FieldCreatedAt]; !ok {
		doc[moderationmodels.FieldCreatedAt] = now
	}
	return doc
}

// Approve duyệt một bài gửi đang pending: ghi cocktail mới vào group_cocktails
// và đánh dấu bài gửi approved trong cùng một transaction.
func (s *ReviewService) Approve(ctx context.Context, actor auth.AuthContext, groupID string, submissionID primitive.ObjectID) (*dto.ApproveResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if groupID == "" || submissionID.IsZero() {
		return nil, common.ErrRequiredField
	}

	sub, err := s.store.FindSubmission(ctx, groupID, submissionID)
	if err != nil {
		return nil, err
	}
	if status := submissionStatus(sub); status != moderationmodels.SubmissionStatusPending {
		return nil, notPendingError(status)
	}

	now := utility.CurrentTimeInMilli()
	cocktail := overlayApprovalFields(copyRecipeFields(sub), submissionID, actor.UID, now)

	var cocktailID primitive.ObjectID
	err = s.store.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.store.InsertCocktail(txCtx, cocktail)
		if err != nil {
			return err
		}
		cocktailID = id

		return s.store.MarkReviewed(txCtx, groupID, submissionID, map[string]interface{}{
			moderationmodels.FieldStatus:             moderationmodels.SubmissionStatusApproved,
			moderationmodels.FieldReviewedBy:         actor.UID,
			moderationmodels.FieldReviewedAt:         now,
			moderationmodels.FieldApprovedCocktailID: id,
		})
	})
	if err != nil {
		// Thua CAS: reviewer khác đã xử lý trước, đọc lại để nêu trạng thái thật
		if customErr, ok := err.(*common.Error); ok && customErr.Code.Code == common.ErrCodeBusinessState.Code {
			if fresh, freshErr := s.store.FindSubmission(ctx, groupID, submissionID); freshErr == nil {
				return nil, notPendingError(submissionStatus(fresh))
			}
		}
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":       "approve_submission",
		"groupId":      groupID,
		"submissionId": submissionID.Hex(),
		"cocktailId":   cocktailID.Hex(),
		"reviewedBy":   actor.UID,
	}).Info("Đã duyệt bài gửi cocktail")

	return &dto.ApproveResponse{
		Ok:                 true,
		ApprovedCocktailID: cocktailID.Hex(),
	}, nil
}

// Reject từ chối một bài gửi đang pending, lưu lại lý do (mặc định rỗng).
func (s *ReviewService) Reject(ctx context.Context, actor auth.AuthContext, groupID string, submissionID primitive.ObjectID, reason string) (*dto.RejectResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if groupID == "" || submissionID.IsZero() {
		return nil, common.ErrRequiredField
	}

	sub, err := s.store.FindSubmission(ctx, groupID, submissionID)
	if err != nil {
		return nil, err
	}
	if status := submissionStatus(sub); status != moderationmodels.SubmissionStatusPending {
		return nil, notPendingError(status)
	}

	err = s.store.MarkReviewed(ctx, groupID, submissionID, map[string]interface{}{
		moderationmodels.FieldStatus:      moderationmodels.SubmissionStatusRejected,
		moderationmodels.FieldReviewNotes: reason,
		moderationmodels.FieldReviewedBy:  actor.UID,
		moderationmodels.FieldReviewedAt:  utility.CurrentTimeInMilli(),
	})
	if err != nil {
		if customErr, ok := err.(*common.Error); ok && customErr.Code.Code == common.ErrCodeBusinessState.Code {
			if fresh, freshErr := s.store.FindSubmission(ctx, groupID, submissionID); freshErr == nil {
				return nil, notPendingError(submissionStatus(fresh))
			}
		}
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":       "reject_submission",
		"groupId":      groupID,
		"submissionId": submissionID.Hex(),
		"reviewedBy":   actor.UID,
	}).Info("Đã từ chối bài gửi cocktail")

	return &dto.RejectResponse{Ok: true}, nil
}
