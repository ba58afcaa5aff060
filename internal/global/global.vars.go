package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/config"
	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/registry"
)

// MongoDB_Bar_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Bar_CollectionName struct {
	GroupSubmissions string // Tên collection cho bài gửi công thức theo nhóm (chờ duyệt)
	GroupCocktails   string // Tên collection cho cocktail đã duyệt theo nhóm
	Cocktails        string // Tên collection cho catalog cocktail công khai
	Garnishes        string // Tên collection cho đồ trang trí (garnish)
	HumourLines      string // Tên collection cho các câu thoại vui
}

// Các biến toàn cục
var Validate *validator.Validate                                                  // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                 // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                    // Cấu hình của server
var MongoDB_ColNames MongoDB_Bar_CollectionName = *new(MongoDB_Bar_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
