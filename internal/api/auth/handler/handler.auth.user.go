// Package authhdl chứa handler HTTP của domain auth.
package authhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/dto"
	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	authsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/service"
	basehdl "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/handler"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/common"
)

// UserHandler handler CRUD + đăng nhập cho người dùng
type UserHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo UserHandler
func NewUserHandler() (*UserHandler, error) {
	service, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput](service),
		userService: service,
	}, nil
}

// Login POST /auth/login (route công khai)
func (h *UserHandler) Login(c fiber.Ctx) error {
	var input authdto.LoginInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.userService.Login(c.Context(), &input)
	return basehdl.HandleResponse(c, result, err)
}

// Logout POST /auth/logout (yêu cầu đăng nhập)
func (h *UserHandler) Logout(c fiber.Ctx) error {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return basehdl.HandleErrorResponse(c, common.ErrTokenInvalid)
	}

	err := h.userService.Logout(c.Context(), user.ID)
	return basehdl.HandleResponse(c, fiber.Map{"loggedOut": err == nil}, err)
}

// Me GET /auth/me: thông tin user hiện tại từ token
func (h *UserHandler) Me(c fiber.Ctx) error {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return basehdl.HandleErrorResponse(c, common.ErrTokenInvalid)
	}
	return basehdl.HandleResponse(c, user, nil)
}

// BlockUser POST /auth/users/block (admin)
func (h *UserHandler) BlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.userService.UpdateOne(c.Context(), bson.M{"username": input.Username}, bson.M{
		"isBlock":   true,
		"blockNote": input.Note,
		"token":     "",
	})
	return basehdl.HandleResponse(c, result, err)
}

// UnblockUser POST /auth/users/unblock (admin)
func (h *UserHandler) UnblockUser(c fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required"`
	}
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleErrorResponse(c, err)
	}

	result, err := h.userService.UpdateOne(c.Context(), bson.M{"username": input.Username}, bson.M{
		"isBlock":   false,
		"blockNote": "",
	})
	return basehdl.HandleResponse(c, result, err)
}
