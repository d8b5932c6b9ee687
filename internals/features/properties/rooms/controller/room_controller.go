package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomDTO "rentku_backend/internals/features/properties/rooms/dto"
	"rentku_backend/internals/features/properties/rooms/service"
	helper "rentku_backend/internals/helpers"
)

type RoomController struct {
	Svc *service.RoomService
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{Svc: service.NewRoomService(db)}
}

// GET /api/v1/rooms
func (rc *RoomController) List(c *fiber.Ctx) error {
	q, err := helper.BindQuery[roomDTO.ListRoomsQuery](c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)
	list, total, err := rc.Svc.List(c.UserContext(), q, p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "Rooms fetched", list, total, p)
}

// GET /api/v1/rooms/:id
func (rc *RoomController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := rc.Svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Room fetched", m)
}

// POST /api/v1/rooms
func (rc *RoomController) Create(c *fiber.Ctx) error {
	in, err := helper.BindBody[roomDTO.CreateRoomRequest](c)
	if err != nil {
		return err
	}
	m, err := rc.Svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Room created", m)
}

// PUT /api/v1/rooms/:id
func (rc *RoomController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	in, err := helper.BindUpdate[roomDTO.UpdateRoomRequest](c)
	if err != nil {
		return err
	}
	m, err := rc.Svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Room updated", m)
}

// DELETE /api/v1/rooms/:id
func (rc *RoomController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := rc.Svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Room deleted", fiber.Map{"id": id})
}
