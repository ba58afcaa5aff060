// Package moderationhdl - Handler duyệt/từ chối bài gửi cocktail theo nhóm.
package moderationhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/base/handler"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/middleware"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/moderation/dto"
	moderationvc "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/moderation/service"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/utility"
)

// ModerationHandler xử lý các route duyệt bài.
type ModerationHandler struct {
	basehdl.BaseHandler
	ReviewService *moderationvc.ReviewService
}

// NewModerationHandler tạo ModerationHandler mới trên MongoDB store.
func NewModerationHandler() (*ModerationHandler, error) {
	svc, err := moderationvc.NewReviewServiceMongo()
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewService: %w", err)
	}
	return &ModerationHandler{ReviewService: svc}, nil
}

// parseReviewParams đọc và validate groupId + submissionId từ URI.
func (h *ModerationHandler) parseReviewParams(c fiber.Ctx) (string, primitive.ObjectID, error) {
	var params dto.ReviewParams
	if err := h.ParseRequestParams(c, &params); err != nil {
		return "", primitive.NilObjectID, err
	}

	submissionID := utility.String2ObjectID(params.SubmissionID)
	if submissionID.IsZero() {
		return "", primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"submissionId không hợp lệ",
			common.StatusBadRequest,
			nil,
		)
	}

	return params.GroupID, submissionID, nil
}

// HandleApprove xử lý POST /groups/:groupId/submissions/:submissionId/approve.
func (h *ModerationHandler) HandleApprove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		groupID, submissionID, err := h.parseReviewParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor := middleware.GetAuthContext(c)
		result, err := h.ReviewService.Approve(c.Context(), actor, groupID, submissionID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleReject xử lý POST /groups/:groupId/submissions/:submissionId/reject.
func (h *ModerationHandler) HandleReject(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		groupID, submissionID, err := h.parseReviewParams(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Body là tùy chọn, reason mặc định rỗng
		var input dto.RejectInput
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		actor := middleware.GetAuthContext(c)
		result, err := h.ReviewService.Reject(c.Context(), actor, groupID, submissionID, input.Reason)
		h.HandleResponse(c, result, err)
		return nil
	})
}
