// Package catalogvc - Service catalog công khai: cocktails và garnishes.
package catalogvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/base/service"
	catalogmodels "github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/api/catalog/models"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/global"
)

// CocktailService xử lý truy vấn catalog cocktail công khai.
type CocktailService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Cocktail]
}

// NewCocktailService tạo CocktailService mới.
func NewCocktailService() (*CocktailService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cocktails)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Cocktails, common.ErrNotFound)
	}
	return &CocktailService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Cocktail](coll),
	}, nil
}

// FindAll trả về toàn bộ cocktail, sắp xếp theo tên.
func (s *CocktailService) FindAll(ctx context.Context, limit int) ([]catalogmodels.Cocktail, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := mongoopts.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "name", Value: 1}})
	return s.Find(ctx, bson.M{}, opts)
}

// FindByGarnish trả về các cocktail có chứa garnish, sắp xếp theo tên.
func (s *CocktailService) FindByGarnish(ctx context.Context, garnishID primitive.ObjectID, limit int) ([]catalogmodels.Cocktail, error) {
	if limit <= 0 {
		limit = 100
	}
	// garnishIds là mảng, filter bằng membership (multikey index)
	filter := bson.M{"garnishIds": garnishID}
	opts := mongoopts.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "name", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// GarnishService xử lý truy vấn danh sách garnish.
type GarnishService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Garnish]
}

// NewGarnishService tạo GarnishService mới.
func NewGarnishService() (*GarnishService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Garnishes)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Garnishes, common.ErrNotFound)
	}
	return &GarnishService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Garnish](coll),
	}, nil
}

// FindAll trả về toàn bộ garnish, sắp xếp theo tên.
func (s *GarnishService) FindAll(ctx context.Context, limit int) ([]catalogmodels.Garnish, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := mongoopts.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "name", Value: 1}})
	return s.Find(ctx, bson.M{}, opts)
}
