// Package auth - Danh tính đã xác thực (AuthContext) truyền theo giá trị vào các service.
package auth

import (
	firebaseauth "firebase.google.com/go/v4/auth"

	"github.com/wolfmediapro-lgtm/shelf2shaker-prod/internal/common"
)

// AuthContext là danh tính đã được verify một lần tại middleware boundary.
// Các service nhận AuthContext theo giá trị, không đọc lại claim từ token.
type AuthContext struct {
	UID     string // Firebase UID của người gọi
	Email   string // Email (nếu có trong token)
	IsAdmin bool   // Custom claim isAdmin
}

// Anonymous là danh tính rỗng cho request không có token.
var Anonymous = AuthContext{}

// FromFirebaseToken chuyển token Firebase đã verify thành AuthContext.
// Claim isAdmin chỉ được tin khi đúng kiểu bool và bằng true.
func FromFirebaseToken(token *firebaseauth.Token) AuthContext {
	actx := AuthContext{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		actx.Email = email
	}
	if isAdmin, ok := token.Claims["isAdmin"].(bool); ok {
		actx.IsAdmin = isAdmin
	}
	return actx
}

// RequireAuthenticated kiểm tra người gọi đã đăng nhập chưa.
func (a AuthContext) RequireAuthenticated() error {
	if a.UID == "" {
		return common.ErrTokenMissing
	}
	return nil
}

// RequireAdmin kiểm tra người gọi đã đăng nhập và có quyền quản trị.
func (a AuthContext) RequireAdmin() error {
	if err := a.RequireAuthenticated(); err != nil {
		return err
	}
	if !a.IsAdmin {
		return common.ErrAdminOnly
	}
	return nil
}
