package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "rentku_backend/internals/features/users/user/dto"
	"rentku_backend/internals/features/users/user/service"
	helper "rentku_backend/internals/helpers"
)

type UserController struct {
	Svc *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Svc: service.NewUserService(db)}
}

// GET /api/v1/users
func (uc *UserController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[userDTO.ListUsersQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := uc.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Users fetched", userDTO.ToUserResponses(list), total, p)
}

// GET /api/v1/users/:id
func (uc *UserController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	u, err := uc.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "User fetched", userDTO.ToUserResponse(*u))
}

// POST /api/v1/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[userDTO.CreateUserRequest](c)
	if err != nil {
		return err
	}
	u, err := uc.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "User created", userDTO.ToUserResponse(*u))
}

// PUT /api/v1/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[userDTO.UpdateUserRequest](c)
	if err != nil {
		return err
	}
	u, err := uc.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "User updated", userDTO.ToUserResponse(*u))
}
