// Package common chứa hệ thống mã lỗi và error chuẩn dùng chung cho toàn bộ API.
package common

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status codes sử dụng trong toàn hệ thống
const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Category của mã lỗi
const (
	CategorySystem     = "SYS"
	CategoryAuth       = "AUTH"
	CategoryValidation = "VAL"
	CategoryDatabase   = "DB"
	CategoryBusiness   = "BIZ"
)

// ErrorCode định nghĩa một mã lỗi có cấu trúc phân cấp (category -> sub category)
type ErrorCode struct {
	Code        string // Mã lỗi đầy đủ, ví dụ: AUTH_001
	Category    string // Nhóm lỗi: SYS, AUTH, VAL, DB, BIZ
	SubCategory string // Nhóm con, ví dụ: CREDENTIALS, TOKEN
	Description string // Mô tả ngắn gọn về loại lỗi
}

// Danh sách mã lỗi chuẩn của hệ thống
var (
	// Hệ thống
	ErrCodeSystem = ErrorCode{Code: "SYS_001", Category: CategorySystem, SubCategory: "INTERNAL", Description: "Lỗi hệ thống nội bộ"}

	// Xác thực & phân quyền
	ErrCodeAuthCredentials = ErrorCode{Code: "AUTH_001", Category: CategoryAuth, SubCategory: "CREDENTIALS", Description: "Thông tin đăng nhập không hợp lệ"}
	ErrCodeAuthToken       = ErrorCode{Code: "AUTH_002", Category: CategoryAuth, SubCategory: "TOKEN", Description: "Token không hợp lệ hoặc đã hết hạn"}
	ErrCodeAuthRole        = ErrorCode{Code: "AUTH_003", Category: CategoryAuth, SubCategory: "ROLE", Description: "Không có quyền thực hiện thao tác"}

	// Validation
	ErrCodeValidationInput  = ErrorCode{Code: "VAL_001", Category: CategoryValidation, SubCategory: "INPUT", Description: "Dữ liệu đầu vào không hợp lệ"}
	ErrCodeValidationFormat = ErrorCode{Code: "VAL_002", Category: CategoryValidation, SubCategory: "FORMAT", Description: "Định dạng dữ liệu không hợp lệ"}

	// Database
	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: CategoryDatabase, SubCategory: "CONNECTION", Description: "Không thể kết nối cơ sở dữ liệu"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: CategoryDatabase, SubCategory: "QUERY", Description: "Lỗi truy vấn cơ sở dữ liệu"}
	ErrCodeDatabaseNotFound   = ErrorCode{Code: "DB_003", Category: CategoryDatabase, SubCategory: "NOT_FOUND", Description: "Không tìm thấy dữ liệu"}
	ErrCodeDatabaseDuplicate  = ErrorCode{Code: "DB_004", Category: CategoryDatabase, SubCategory: "DUPLICATE", Description: "Dữ liệu đã tồn tại"}

	// Business logic
	ErrCodeBusinessLogic    = ErrorCode{Code: "BIZ_001", Category: CategoryBusiness, SubCategory: "LOGIC", Description: "Vi phạm quy tắc nghiệp vụ"}
	ErrCodeBusinessConflict = ErrorCode{Code: "BIZ_002", Category: CategoryBusiness, SubCategory: "CONFLICT", Description: "Xung đột dữ liệu nghiệp vụ"}
)

// Error là error chuẩn của toàn hệ thống, mang mã lỗi, thông điệp và HTTP status
type Error struct {
	Code       ErrorCode              // Mã lỗi có cấu trúc
	Message    string                 // Thông điệp hiển thị cho người dùng
	StatusCode int                    // HTTP status code tương ứng
	Details    map[string]interface{} // Chi tiết bổ sung (danh sách field lỗi, id liên quan, ...)
}

// Error implement interface error
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code.Code, e.Message)
}

// NewError tạo một Error mới
func NewError(code ErrorCode, message string, statusCode int, details map[string]interface{}) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Các sentinel error dùng chung. Service so sánh bằng errors.Is hoặc trả thẳng về handler.
var (
	ErrNotFound           = NewError(ErrCodeDatabaseNotFound, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate          = NewError(ErrCodeDatabaseDuplicate, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Tên đăng nhập hoặc mật khẩu không đúng", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Thiếu token xác thực", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Token đã hết hạn", StatusUnauthorized, nil)
	ErrPermissionDenied   = NewError(ErrCodeAuthRole, "Không có quyền thực hiện thao tác này", StatusForbidden, nil)
	ErrInvalidInput       = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat      = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrInvalidEmail       = NewError(ErrCodeValidationFormat, "Địa chỉ email không hợp lệ", StatusBadRequest, nil)
	ErrWeakPassword       = NewError(ErrCodeValidationInput, "Mật khẩu quá yếu", StatusBadRequest, nil)
	ErrDatabaseConnection = NewError(ErrCodeDatabaseConnection, "Không thể kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)
)

// IsNotFound kiểm tra err có phải lỗi "không tìm thấy dữ liệu" (DB_003).
// Dùng để phân biệt dữ liệu không tồn tại với lỗi kết nối/truy vấn.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code.Code == ErrCodeDatabaseNotFound.Code
}

// NewValidationError tạo lỗi validation kèm danh sách field lỗi (fail-fast, trả về trước khi ghi dữ liệu)
func NewValidationError(message string, fieldErrors map[string]interface{}) *Error {
	return NewError(ErrCodeValidationInput, message, StatusBadRequest, fieldErrors)
}

// NewConflictError tạo lỗi xung đột nghiệp vụ (trùng tên, trigger condition đã được gán, ...)
func NewConflictError(message string, details map[string]interface{}) *Error {
	return NewError(ErrCodeBusinessConflict, message, StatusConflict, details)
}

// NewNotFoundError tạo lỗi không tìm thấy cho một entity cụ thể
func NewNotFoundError(entity string) *Error {
	return NewError(ErrCodeDatabaseNotFound, fmt.Sprintf("Không tìm thấy %s", entity), StatusNotFound, nil)
}

// ConvertMongoError chuyển lỗi của mongo driver về Error chuẩn của hệ thống.
// Handler không bao giờ trả lỗi thô của driver ra ngoài.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Đã là Error chuẩn thì giữ nguyên
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(ErrCodeDatabaseConnection, "Truy vấn cơ sở dữ liệu quá thời gian cho phép", StatusServiceUnavailable, nil)
	case mongo.IsNetworkError(err):
		return ErrDatabaseConnection
	case mongo.IsTimeout(err):
		return NewError(ErrCodeDatabaseConnection, "Kết nối cơ sở dữ liệu quá thời gian cho phép", StatusServiceUnavailable, nil)
	default:
		return NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn cơ sở dữ liệu: "+err.Error(), StatusInternalServerError, nil)
	}
}
