// Package catalogvc - Test nhập câu thoại hài: lọc dòng trống, chặn quyền, không ghi khi rỗng.
package catalogvc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/auth"
	basesvc "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/base/service"
	catalogmodels "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/models"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
)

var adminActor = auth.AuthContext{UID: "admin-1", IsAdmin: true}

// newTestService tạo service không có collection: mọi đường đi hợp lệ
// không được chạm database, nếu chạm sẽ panic và test fail.
func newTestService() *HumourLineService {
	return &HumourLineService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.HumourLine](nil),
	}
}

func TestSanitizeLines_TrimVaLoaiDongTrong(t *testing.T) {
	got := sanitizeLines([]string{"  ", "Good one", "", "Another", "\t\n", "  spaced  "})
	want := []string{"Good one", "Another", "spaced"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sanitizeLines = %v, muốn %v", got, want)
	}
}

func TestImportLines_KhongPhaiAdminBiChan(t *testing.T) {
	svc := newTestService()

	if _, err := svc.ImportLines(context.Background(), auth.Anonymous, []string{"a"}); !errors.Is(err, common.ErrTokenMissing) {
		t.Errorf("chưa đăng nhập: muốn ErrTokenMissing, nhận %v", err)
	}

	member := auth.AuthContext{UID: "member-1", IsAdmin: false}
	if _, err := svc.ImportLines(context.Background(), member, []string{"a"}); !errors.Is(err, common.ErrAdminOnly) {
		t.Errorf("không phải admin: muốn ErrAdminOnly, nhận %v", err)
	}
}

func TestImportLines_MangRongBiTuChoi(t *testing.T) {
	svc := newTestService()

	_, err := svc.ImportLines(context.Background(), adminActor, nil)
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Code.Code != common.ErrCodeValidationInput.Code {
		t.Errorf("lines rỗng: muốn lỗi VAL_001, nhận %v", err)
	}
}

func TestImportLines_ToanDongTrong_KhongGhiGi(t *testing.T) {
	svc := newTestService()

	// Collection là nil: nếu service cố ghi sẽ panic. Trả về imported=0 là đúng.
	resp, err := svc.ImportLines(context.Background(), adminActor, []string{"   ", "", "\t"})
	if err != nil {
		t.Fatalf("ImportLines trả về lỗi: %v", err)
	}
	if !resp.Ok || resp.Imported != 0 {
		t.Errorf("response = %+v, muốn ok=true imported=0", resp)
	}
}
