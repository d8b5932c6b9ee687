package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "rentku_backend/internals/databases"
	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
	contractDTO "rentku_backend/internals/features/properties/contracts/dto"
	contractModel "rentku_backend/internals/features/properties/contracts/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/helpers/dbtime"
)

const msgContractNotFound = "Contract not found"

type ContractService struct {
	DB  *gorm.DB
	UoW database.UnitOfWork
	Now func() time.Time
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{DB: db, UoW: database.NewUnitOfWork(db), Now: dbtime.Now}
}

func loadType(tx *gorm.DB, id uuid.UUID) (*contractTypeModel.ContractTypeModel, error) {
	var ct contractTypeModel.ContractTypeModel
	if err := tx.First(&ct, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Contract type not found")
	}
	return &ct, nil
}

func checkDates(created, expiry time.Time) error {
	if !expiry.After(created) {
		return helper.NewValidationError("expiry_date", "expiry_date must be after created_date")
	}
	return nil
}

// overlapping reports another contract on the room still active at t.
func overlapping(tx *gorm.DB, roomID, except uuid.UUID, t time.Time) error {
	var n int64
	if err := tx.Model(&contractModel.ContractModel{}).
		Where("room_id = ? AND id <> ? AND expiry_date > ?", roomID, except, t).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return helper.BadRequest("Room already has an active contract")
	}
	return nil
}

func (s *ContractService) Create(ctx context.Context, in contractDTO.CreateContractRequest) (*contractModel.ContractModel, error) {
	var c contractModel.ContractModel
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var t tenantModel.TenantModel
		if err := tx.First(&t, "id = ?", in.TenantID).Error; err != nil {
			return helper.NotFoundOr(err, "Tenant not found")
		}
		var room roomModel.RoomModel
		if err := tx.First(&room, "id = ?", in.RoomID).Error; err != nil {
			return helper.NotFoundOr(err, "Room not found")
		}
		if t.RoomID != room.ID {
			return helper.BadRequest("Tenant does not live in this room")
		}
		ct, err := loadType(tx, in.ContractTypeID)
		if err != nil {
			return err
		}

		created := s.Now().UTC()
		if in.CreatedDate != nil {
			created = in.CreatedDate.UTC()
		}
		expiry := dbtime.AddMonths(created, ct.Duration)
		if in.ExpiryDate != nil {
			expiry = in.ExpiryDate.UTC()
		}
		if err := checkDates(created, expiry); err != nil {
			return err
		}
		if err := overlapping(tx, room.ID, uuid.Nil, created); err != nil {
			return err
		}

		c = contractModel.ContractModel{
			TenantID:       t.ID,
			RoomID:         room.ID,
			ContractTypeID: ct.ID,
			CreatedDate:    created,
			ExpiryDate:     expiry,
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		c.ContractType = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*contractModel.ContractModel, error) {
	var c contractModel.ContractModel
	if err := s.DB.WithContext(ctx).Preload("ContractType").First(&c, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgContractNotFound)
	}
	return &c, nil
}

func (s *ContractService) List(ctx context.Context, q contractDTO.ListContractsQuery, p helper.Params) ([]contractModel.ContractModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&contractModel.ContractModel{})
	if q.TenantID != "" {
		tx = tx.Where("tenant_id = ?", q.TenantID)
	}
	if q.RoomID != "" {
		tx = tx.Where("room_id = ?", q.RoomID)
	}
	now := s.Now().UTC()
	switch q.Active {
	case "true":
		tx = tx.Where("expiry_date > ?", now)
	case "false":
		tx = tx.Where("expiry_date <= ?", now)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []contractModel.ContractModel
	if err := tx.Preload("ContractType").
		Order("created_date DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update renews or re-plans a contract. Switching the type without an
// explicit expiry recomputes expiry from created_date.
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, in contractDTO.UpdateContractRequest) (*contractModel.ContractModel, error) {
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var c contractModel.ContractModel
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return helper.NotFoundOr(err, msgContractNotFound)
		}

		created, expiry := c.CreatedDate, c.ExpiryDate
		updates := map[string]any{}
		if in.CreatedDate != nil {
			created = in.CreatedDate.UTC()
			updates["created_date"] = created
		}
		if in.ContractTypeID != nil && *in.ContractTypeID != c.ContractTypeID {
			ct, err := loadType(tx, *in.ContractTypeID)
			if err != nil {
				return err
			}
			updates["contract_type_id"] = ct.ID
			if in.ExpiryDate == nil {
				expiry = dbtime.AddMonths(created, ct.Duration)
				updates["expiry_date"] = expiry
			}
		}
		if in.ExpiryDate != nil {
			expiry = in.ExpiryDate.UTC()
			updates["expiry_date"] = expiry
		}
		if err := checkDates(created, expiry); err != nil {
			return err
		}
		if expiry.After(s.Now()) {
			if err := overlapping(tx, c.RoomID, c.ID, created); err != nil {
				return err
			}
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&contractModel.ContractModel{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&contractModel.ContractModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.NotFound(msgContractNotFound)
	}
	return nil
}
