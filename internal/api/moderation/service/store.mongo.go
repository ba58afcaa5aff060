package moderationvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	moderationmodels "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/moderation/models"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/global"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/utility"
)

// MongoSubmissionStore là hiện thực MongoDB của SubmissionStore
// trên hai collection group_submissions và group_cocktails.
type MongoSubmissionStore struct {
	submissions *mongo.Collection
	cocktails   *mongo.Collection
}

// NewMongoSubmissionStore tạo store từ các collection đã đăng ký.
func NewMongoSubmissionStore() (*MongoSubmissionStore, error) {
	submissions, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GroupSubmissions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.GroupSubmissions, common.ErrNotFound)
	}
	cocktails, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GroupCocktails)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.GroupCocktails, common.ErrNotFound)
	}
	return &MongoSubmissionStore{
		submissions: submissions,
		cocktails:   cocktails,
	}, nil
}

// FindSubmission đọc document bài gửi theo (groupId, submissionId).
func (s *MongoSubmissionStore) FindSubmission(ctx context.Context, groupID string, submissionID primitive.ObjectID) (map[string]interface{}, error) {
	filter := bson.M{
		moderationmodels.FieldID:      submissionID,
		moderationmodels.FieldGroupID: groupID,
	}

	var doc map[string]interface{}
	err := s.submissions.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return doc, nil
}

// InsertCocktail ghi cocktail đã duyệt vào group_cocktails.
func (s *MongoSubmissionStore) InsertCocktail(ctx context.Context, doc map[string]interface{}) (primitive.ObjectID, error) {
	doc[moderationmodels.FieldUpdatedAt] = utility.CurrentTimeInMilli()

	result, err := s.cocktails.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, common.ConvertMongoError(err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, common.ErrMongoWrite
	}
	return id, nil
}

// MarkReviewed cập nhật bài gửi với compare-and-set trên status=pending.
// MatchedCount=0 nghĩa là một reviewer khác đã xử lý trước (hoặc bài gửi biến mất).
func (s *MongoSubmissionStore) MarkReviewed(ctx context.Context, groupID string, submissionID primitive.ObjectID, update map[string]interface{}) error {
	filter := bson.M{
		moderationmodels.FieldID:      submissionID,
		moderationmodels.FieldGroupID: groupID,
		moderationmodels.FieldStatus:  moderationmodels.SubmissionStatusPending,
	}

	set := bson.M{}
	for k, v := range update {
		set[k] = v
	}
	set[moderationmodels.FieldUpdatedAt] = utility.CurrentTimeInMilli()

	result, err := s.submissions.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrInvalidState
	}
	return nil
}

// WithTransaction chạy fn trong một MongoDB transaction.
// Cần replica set hoặc sharded cluster; standalone server sẽ trả lỗi từ driver.
func (s *MongoSubmissionStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	client := s.submissions.Database().Client()

	sess, err := client.StartSession()
	if err != nil {
		return common.ConvertMongoError(err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		// Lỗi nghiệp vụ từ fn giữ nguyên, lỗi driver mới convert
		var customErr *common.Error
		if errors.As(err, &customErr) {
			return err
		}
		return common.ConvertMongoError(err)
	}
	return nil
}
