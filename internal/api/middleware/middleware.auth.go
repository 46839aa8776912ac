// Package middleware chứa middleware xác thực và phân quyền cho Fiber.
package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	authsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/service"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/utility"
)

// AuthManager quản lý xác thực, dùng chung một instance cho mọi route
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			panic(err)
		}
		authManagerInstance = &AuthManager{
			UserCRUD: userService,
			Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInstance
}

// roleSatisfies kiểm tra role của user có đủ quyền so với role yêu cầu không.
// admin > manager > employee.
func roleSatisfies(userRole, requiredRole string) bool {
	rank := map[string]int{
		authmodels.RoleEmployee: 1,
		authmodels.RoleManager:  2,
		authmodels.RoleAdmin:    3,
	}
	return rank[userRole] >= rank[requiredRole]
}

// AuthMiddleware middleware xác thực Bearer token.
// requiredRole = "" thì chỉ cần đăng nhập; khác rỗng thì user phải có role đủ cấp.
func AuthMiddleware(requiredRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		am := GetAuthManager()

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			return HandleAuthError(c, common.ErrTokenMissing)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return HandleAuthError(c, common.ErrTokenInvalid)
		}
		token := parts[1]

		// Kiểm tra chữ ký và hạn trước khi chạm vào database
		if err := authsvc.VerifyToken(token); err != nil {
			return HandleAuthError(c, err)
		}

		// Token hợp lệ vẫn phải là token hiện hành của user (logout làm mất hiệu lực)
		user, err := am.lookupUserByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("Token không gắn với user nào")
			return HandleAuthError(c, common.ErrTokenInvalid)
		}

		if user.IsBlock {
			return HandleAuthError(c, common.NewError(common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil))
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("username", user.Username)
		c.Locals("user_role", user.Role)

		if requiredRole != "" && !roleSatisfies(user.Role, requiredRole) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"username":      user.Username,
				"role":          user.Role,
				"required_role": requiredRole,
				"path":          c.Path(),
			}).Warn("Không đủ quyền truy cập")
			return HandleAuthError(c, common.ErrPermissionDenied)
		}

		return c.Next()
	}
}

// lookupUserByToken tìm user theo token, có cache 5 phút để giảm tải database
func (am *AuthManager) lookupUserByToken(ctx context.Context, token string) (authmodels.User, error) {
	cacheKey := "user_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(authmodels.User), nil
	}

	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		return authmodels.User{}, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}
