// Package authsvc chứa nghiệp vụ người dùng và đăng nhập.
package authsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	authdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/dto"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/utility"
)

// UserService service người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserService tạo UserService từ collection đã đăng ký
func NewUserService() (*UserService, error) {
	col, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.Users)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](col),
	}, nil
}

// InsertOne kiểm tra định dạng email trước khi ghi người dùng mới
func (s *UserService) InsertOne(ctx context.Context, user authmodels.User) (authmodels.User, error) {
	if user.Email != "" {
		if err := utility.ValidateEmail(user.Email); err != nil {
			return user, err
		}
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, user)
}

// tokenClaims claims của JWT phát hành khi đăng nhập
type tokenClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// Login xác thực username/password và phát hành token.
// So khớp phân biệt hoa thường, chỉ tài khoản status = active mới đăng nhập được.
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	user, err := s.FindOne(ctx, bson.M{
		"username": input.Username,
		"status":   authmodels.UserStatusActive,
	}, nil)
	if err != nil {
		// Không phân biệt "không tồn tại" với "sai mật khẩu" trong response
		return nil, common.ErrInvalidCredentials
	}

	if user.Password != input.Password {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, err
	}

	// Lưu token mới nhất lên user, token cũ hết hiệu lực
	_, err = s.UpdateById(ctx, user.ID, bson.M{
		"token":       token,
		"lastLoginAt": utility.CurrentTimeInMilli(),
	})
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithField("username", user.Username).Info("Người dùng đăng nhập")

	return &authdto.LoginResult{
		Token:          token,
		Username:       user.Username,
		UserRole:       user.Role,
		UserDepartment: utility.ObjectID2String(user.DepartmentID),
	}, nil
}

// Logout xóa token hiện tại của user
func (s *UserService) Logout(ctx context.Context, userID interface{}) error {
	_, err := s.UpdateById(ctx, userID, bson.M{"token": ""})
	return err
}

// issueToken phát hành JWT HS256 với hạn theo cấu hình (mặc định 7 ngày,
// khớp hạn cookie phía client)
func (s *UserService) issueToken(user *authmodels.User) (string, error) {
	cfg := global.MongoDB_ServerConfig
	claims := tokenClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Role:     user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(cfg.JwtExpiryHours) * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeSystem, "Không phát hành được token", common.StatusInternalServerError, nil)
	}
	return signed, nil
}

// VerifyToken kiểm tra chữ ký và hạn của JWT
func VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if verr, ok := err.(*jwt.ValidationError); ok && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return common.ErrTokenExpired
		}
		return common.ErrTokenInvalid
	}
	if !token.Valid {
		return common.ErrTokenInvalid
	}
	return nil
}
