// Package moderationvc - Test luồng duyệt bài trên store in-memory:
// copy công thức + overlay phê duyệt, trạng thái cuối dính, race chỉ một bên thắng.
package moderationvc

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/auth"
	moderationmodels "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/moderation/models"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/utility"
)

// fakeSubmissionStore là bản in-memory của SubmissionStore cho test.
// WithTransaction snapshot rồi rollback khi fn lỗi, mô phỏng transaction thật.
type fakeSubmissionStore struct {
	mu          sync.Mutex
	txnMu       sync.Mutex
	submissions map[string]map[string]interface{} // key: groupID + "/" + submissionID.Hex()
	cocktails   map[primitive.ObjectID]map[string]interface{}
}

func newFakeStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{
		submissions: make(map[string]map[string]interface{}),
		cocktails:   make(map[primitive.ObjectID]map[string]interface{}),
	}
}

func subKey(groupID string, submissionID primitive.ObjectID) string {
	return groupID + "/" + submissionID.Hex()
}

func (f *fakeSubmissionStore) seedSubmission(groupID string, submissionID primitive.ObjectID, doc map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc[moderationmodels.FieldID] = submissionID
	doc[moderationmodels.FieldGroupID] = groupID
	f.submissions[subKey(groupID, submissionID)] = doc
}

func (f *fakeSubmissionStore) FindSubmission(ctx context.Context, groupID string, submissionID primitive.ObjectID) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.submissions[subKey(groupID, submissionID)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return utility.CloneMap(doc), nil
}

func (f *fakeSubmissionStore) InsertCocktail(ctx context.Context, doc map[string]interface{}) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := primitive.NewObjectID()
	stored := utility.CloneMap(doc)
	stored[moderationmodels.FieldID] = id
	f.cocktails[id] = stored
	return id, nil
}

func (f *fakeSubmissionStore) MarkReviewed(ctx context.Context, groupID string, submissionID primitive.ObjectID, update map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.submissions[subKey(groupID, submissionID)]
	if !ok {
		return common.ErrInvalidState
	}
	// Compare-and-set: chỉ cập nhật khi còn pending
	if status, _ := doc[moderationmodels.FieldStatus].(string); status != moderationmodels.SubmissionStatusPending {
		return common.ErrInvalidState
	}
	for k, v := range update {
		doc[k] = v
	}
	return nil
}

func (f *fakeSubmissionStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txnMu.Lock()
	defer f.txnMu.Unlock()

	f.mu.Lock()
	snapSubs := make(map[string]map[string]interface{}, len(f.submissions))
	for k, v := range f.submissions {
		snapSubs[k] = utility.CloneMap(v)
	}
	snapCocktails := make(map[primitive.ObjectID]map[string]interface{}, len(f.cocktails))
	for k, v := range f.cocktails {
		snapCocktails[k] = utility.CloneMap(v)
	}
	f.mu.Unlock()

	if err := fn(ctx); err != nil {
		f.mu.Lock()
		f.submissions = snapSubs
		f.cocktails = snapCocktails
		f.mu.Unlock()
		return err
	}
	return nil
}

var (
	adminActor  = auth.AuthContext{UID: "admin-1", Email: "admin@example.com", IsAdmin: true}
	memberActor = auth.AuthContext{UID: "member-1", IsAdmin: false}
)

func pendingSubmission() map[string]interface{} {
	return map[string]interface{}{
		moderationmodels.FieldStatus:    moderationmodels.SubmissionStatusPending,
		moderationmodels.FieldCreatedAt: int64(1700000000000),
		"name":                          "Negroni Sbagliato",
		"ingredients":                   []interface{}{"Campari", "Sweet Vermouth", "Prosecco"},
		"submittedBy":                   "member-1",
	}
}

func TestApprove_SaoChepCongThucVaGanFieldPheDuyet(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)
	resp, err := svc.Approve(context.Background(), adminActor, "group-1", subID)
	if err != nil {
		t.Fatalf("Approve trả về lỗi: %v", err)
	}
	if !resp.Ok || resp.ApprovedCocktailID == "" {
		t.Fatalf("Approve response không hợp lệ: %+v", resp)
	}

	// Cocktail mới: công thức giữ nguyên, overlay phê duyệt đầy đủ
	if len(store.cocktails) != 1 {
		t.Fatalf("số cocktail = %d, muốn 1", len(store.cocktails))
	}
	var cocktail map[string]interface{}
	for _, c := range store.cocktails {
		cocktail = c
	}
	if cocktail["name"] != "Negroni Sbagliato" {
		t.Errorf("cocktail không giữ công thức gốc: %v", cocktail["name"])
	}
	if cocktail[moderationmodels.FieldStatus] != moderationmodels.SubmissionStatusApproved {
		t.Errorf("cocktail status = %v, muốn approved", cocktail[moderationmodels.FieldStatus])
	}
	if cocktail[moderationmodels.FieldApprovedBy] != "admin-1" {
		t.Errorf("approvedBy = %v, muốn admin-1", cocktail[moderationmodels.FieldApprovedBy])
	}
	if cocktail[moderationmodels.FieldSourceSubmissionID] != subID {
		t.Errorf("sourceSubmissionId = %v, muốn %v", cocktail[moderationmodels.FieldSourceSubmissionID], subID)
	}
	if cocktail[moderationmodels.FieldCreatedAt] != int64(1700000000000) {
		t.Errorf("createdAt phải giữ từ bài gửi gốc, nhận %v", cocktail[moderationmodels.FieldCreatedAt])
	}
	// Field vòng đời của bài gửi không được rò sang cocktail
	if _, ok := cocktail[moderationmodels.FieldReviewNotes]; ok {
		t.Error("reviewNotes không được copy sang cocktail")
	}
	if _, ok := cocktail[moderationmodels.FieldApprovedCocktailID]; ok {
		t.Error("approvedCocktailId không được copy sang cocktail")
	}

	// Bài gửi: đánh dấu approved + back-reference về cocktail
	sub, err := store.FindSubmission(context.Background(), "group-1", subID)
	if err != nil {
		t.Fatalf("FindSubmission sau approve lỗi: %v", err)
	}
	if sub[moderationmodels.FieldStatus] != moderationmodels.SubmissionStatusApproved {
		t.Errorf("submission status = %v, muốn approved", sub[moderationmodels.FieldStatus])
	}
	if sub[moderationmodels.FieldReviewedBy] != "admin-1" {
		t.Errorf("reviewedBy = %v, muốn admin-1", sub[moderationmodels.FieldReviewedBy])
	}
	backRef, _ := sub[moderationmodels.FieldApprovedCocktailID].(primitive.ObjectID)
	if backRef.Hex() != resp.ApprovedCocktailID {
		t.Errorf("approvedCocktailId = %v, muốn %v", backRef.Hex(), resp.ApprovedCocktailID)
	}
}

func TestApprove_KhongPhaiAdminBiChan(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)

	if _, err := svc.Approve(context.Background(), auth.Anonymous, "group-1", subID); !errors.Is(err, common.ErrTokenMissing) {
		t.Errorf("chưa đăng nhập: muốn ErrTokenMissing, nhận %v", err)
	}
	if _, err := svc.Approve(context.Background(), memberActor, "group-1", subID); !errors.Is(err, common.ErrAdminOnly) {
		t.Errorf("không phải admin: muốn ErrAdminOnly, nhận %v", err)
	}
	if len(store.cocktails) != 0 {
		t.Error("không được ghi cocktail khi bị chặn quyền")
	}
}

func TestApprove_KhongTimThayBaiGui(t *testing.T) {
	svc := NewReviewService(newFakeStore())
	_, err := svc.Approve(context.Background(), adminActor, "group-1", primitive.NewObjectID())
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("muốn ErrNotFound, nhận %v", err)
	}
}

func TestApprove_HaiLan_TrangThaiCuoiDinh(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)
	if _, err := svc.Approve(context.Background(), adminActor, "group-1", subID); err != nil {
		t.Fatalf("lần duyệt đầu lỗi: %v", err)
	}

	_, err := svc.Approve(context.Background(), adminActor, "group-1", subID)
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusPreconditionFailed {
		t.Fatalf("duyệt lần hai: muốn lỗi 412, nhận %v", err)
	}
	if !strings.Contains(customErr.Message, moderationmodels.SubmissionStatusApproved) {
		t.Errorf("thông báo lỗi phải nêu trạng thái thật (approved): %q", customErr.Message)
	}
	if len(store.cocktails) != 1 {
		t.Errorf("số cocktail = %d, muốn vẫn là 1", len(store.cocktails))
	}
}

func TestApprove_SauKhiReject_BiChan(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)
	if _, err := svc.Reject(context.Background(), adminActor, "group-1", subID, "không đạt"); err != nil {
		t.Fatalf("Reject lỗi: %v", err)
	}

	_, err := svc.Approve(context.Background(), adminActor, "group-1", subID)
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusPreconditionFailed {
		t.Fatalf("approve sau reject: muốn lỗi 412, nhận %v", err)
	}
	if !strings.Contains(customErr.Message, moderationmodels.SubmissionStatusRejected) {
		t.Errorf("thông báo lỗi phải nêu trạng thái rejected: %q", customErr.Message)
	}
	if len(store.cocktails) != 0 {
		t.Error("không được ghi cocktail cho bài đã rejected")
	}
}

func TestReject_LuuLyDoVaNguoiDuyet(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)
	resp, err := svc.Reject(context.Background(), adminActor, "group-1", subID, "thiếu định lượng")
	if err != nil {
		t.Fatalf("Reject lỗi: %v", err)
	}
	if !resp.Ok {
		t.Error("Reject phải trả về ok=true")
	}

	sub, _ := store.FindSubmission(context.Background(), "group-1", subID)
	if sub[moderationmodels.FieldStatus] != moderationmodels.SubmissionStatusRejected {
		t.Errorf("status = %v, muốn rejected", sub[moderationmodels.FieldStatus])
	}
	if sub[moderationmodels.FieldReviewNotes] != "thiếu định lượng" {
		t.Errorf("reviewNotes = %v, muốn 'thiếu định lượng'", sub[moderationmodels.FieldReviewNotes])
	}
	if sub[moderationmodels.FieldReviewedBy] != "admin-1" {
		t.Errorf("reviewedBy = %v, muốn admin-1", sub[moderationmodels.FieldReviewedBy])
	}
}

func TestReject_LyDoRongMacDinhChuoiRong(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)
	if _, err := svc.Reject(context.Background(), adminActor, "group-1", subID, ""); err != nil {
		t.Fatalf("Reject lỗi: %v", err)
	}

	sub, _ := store.FindSubmission(context.Background(), "group-1", subID)
	if notes, ok := sub[moderationmodels.FieldReviewNotes].(string); !ok || notes != "" {
		t.Errorf("reviewNotes = %v, muốn chuỗi rỗng", sub[moderationmodels.FieldReviewNotes])
	}
}

func TestReject_SauKhiApprove_BiChan(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)
	if _, err := svc.Approve(context.Background(), adminActor, "group-1", subID); err != nil {
		t.Fatalf("Approve lỗi: %v", err)
	}

	_, err := svc.Reject(context.Background(), adminActor, "group-1", subID, "đổi ý")
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusPreconditionFailed {
		t.Fatalf("reject sau approve: muốn lỗi 412, nhận %v", err)
	}
}

func TestApprove_DongThoi_ChiMotBenThang(t *testing.T) {
	store := newFakeStore()
	subID := primitive.NewObjectID()
	store.seedSubmission("group-1", subID, pendingSubmission())

	svc := NewReviewService(store)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = svc.Approve(context.Background(), adminActor, "group-1", subID)
		}(i)
	}
	wg.Wait()

	success := 0
	for _, err := range errs {
		if err == nil {
			success++
		}
	}
	if success != 1 {
		t.Errorf("số lần duyệt thành công = %d, muốn đúng 1", success)
	}
	if len(store.cocktails) != 1 {
		t.Errorf("số cocktail = %d, muốn đúng 1 (transaction phải rollback bên thua)", len(store.cocktails))
	}
}
