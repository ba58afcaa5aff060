// Package database - Index cho các collection nghiệp vụ (compound, multikey) tạo lúc khởi động.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/global"
)

// CreateBarIndexes tạo các index cho các collection của hệ thống.
// Gọi một lần lúc khởi động, sau khi đã kết nối MongoDB.
func CreateBarIndexes(ctx context.Context, db *mongo.Database) error {
	// group_submissions: (groupId, status) — truy vấn duyệt bài theo nhóm + filter CAS status=pending
	groupSubmissions := db.Collection(global.MongoDB_ColNames.GroupSubmissions)
	if _, err := groupSubmissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "groupId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("group_submission_group_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// group_cocktails: (groupId) — liệt kê cocktail đã duyệt theo nhóm
	groupCocktails := db.Collection(global.MongoDB_ColNames.GroupCocktails)
	if _, err := groupCocktails.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "groupId", Value: 1},
		},
		Options: options.Index().SetName("group_cocktail_group"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// group_cocktails: (sourceSubmissionId) sparse — truy ngược từ bài gửi gốc
	if _, err := groupCocktails.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sourceSubmissionId", Value: 1},
		},
		Options: options.Index().SetName("group_cocktail_source_submission").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cocktails: (name) — catalog công khai sắp xếp theo tên
	cocktails := db.Collection(global.MongoDB_ColNames.Cocktails)
	if _, err := cocktails.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("cocktail_name"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// cocktails: (garnishIds) multikey — lọc theo garnish membership
	if _, err := cocktails.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "garnishIds", Value: 1},
		},
		Options: options.Index().SetName("cocktail_garnish_ids"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// garnishes: (name) — danh sách garnish sắp xếp theo tên
	garnishes := db.Collection(global.MongoDB_ColNames.Garnishes)
	if _, err := garnishes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("garnish_name"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// humour_lines: (createdAt) — liệt kê câu thoại mới nhất trước
	humourLines := db.Collection(global.MongoDB_ColNames.HumourLines)
	if _, err := humourLines.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("humour_line_created_at"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
