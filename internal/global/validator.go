package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("object_id", validateObjectIDHex)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateObjectIDHex kiểm tra chuỗi có đúng định dạng ObjectID hex 24 ký tự không
func validateObjectIDHex(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 24 {
		return false
	}
	for _, ch := range value {
		isDigit := ch >= '0' && ch <= '9'
		isLower := ch >= 'a' && ch <= 'f'
		isUpper := ch >= 'A' && ch <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}
