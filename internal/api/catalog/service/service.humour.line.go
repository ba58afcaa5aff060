// Package catalogvc - Service nhập hàng loạt câu thoại hài (humour_lines).
package catalogvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/auth"
	basesvc "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/base/service"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/dto"
	catalogmodels "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/models"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/global"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/logger"
)

// HumourLineService xử lý nhập câu thoại hài hàng loạt.
type HumourLineService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.HumourLine]
}

// NewHumourLineService tạo HumourLineService mới.
func NewHumourLineService() (*HumourLineService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.HumourLines)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.HumourLines, common.ErrNotFound)
	}
	return &HumourLineService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.HumourLine](coll),
	}, nil
}

// sanitizeLines trim từng dòng và loại bỏ dòng trống, giữ nguyên thứ tự.
func sanitizeLines(lines []string) []string {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		cleaned = append(cleaned, text)
	}
	return cleaned
}

// ImportLines nhập hàng loạt câu thoại. Chỉ quản trị viên được gọi.
// Dòng trống bị loại; nếu không còn dòng nào thì trả về imported=0 mà không ghi gì.
func (s *HumourLineService) ImportLines(ctx context.Context, actor auth.AuthContext, lines []string) (*dto.ImportLinesResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Cần cung cấp lines: danh sách chuỗi không rỗng",
			common.StatusBadRequest,
			nil,
		)
	}

	cleaned := sanitizeLines(lines)
	if len(cleaned) == 0 {
		return &dto.ImportLinesResponse{Ok: true, Imported: 0}, nil
	}

	docs := make([]catalogmodels.HumourLine, 0, len(cleaned))
	for _, text := range cleaned {
		docs = append(docs, catalogmodels.HumourLine{
			Text:      text,
			CreatedBy: actor.UID,
		})
	}

	if _, err := s.InsertMany(ctx, docs); err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"action":    "import_humour_lines",
		"imported":  len(cleaned),
		"createdBy": actor.UID,
	}).Info("Đã nhập câu thoại hài")

	return &dto.ImportLinesResponse{Ok: true, Imported: len(cleaned)}, nil
}
