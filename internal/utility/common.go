// Package utility chứa các helper nhỏ dùng chung.
package utility

import (
	"regexp"
	"time"

	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

// CurrentTimeInMilli trả về timestamp hiện tại tính bằng mili giây.
// Mọi field createdAt/updatedAt trong hệ thống dùng đơn vị này.
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}

// UnixMilli trả về mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra định dạng email
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// Contains kiểm tra một slice chuỗi có chứa giá trị cho trước không
func Contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
