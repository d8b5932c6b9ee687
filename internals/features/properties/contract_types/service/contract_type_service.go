package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contractTypeDTO "rentku_backend/internals/features/properties/contract_types/dto"
	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
	contractModel "rentku_backend/internals/features/properties/contracts/model"
	helper "rentku_backend/internals/helpers"
)

const msgNameTaken = "Contract type name already exists"

type ContractTypeService struct {
	DB *gorm.DB
}

func NewContractTypeService(db *gorm.DB) *ContractTypeService {
	return &ContractTypeService{DB: db}
}

func (s *ContractTypeService) Create(ctx context.Context, in contractTypeDTO.CreateContractTypeRequest) (*contractTypeModel.ContractTypeModel, error) {
	m := contractTypeModel.ContractTypeModel{
		Name:       in.Name,
		Duration:   in.Duration,
		Price:      in.Price,
		Facilities: contractTypeModel.Facilities(in.Facilities),
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, helper.DuplicateOr(err, msgNameTaken)
	}
	return &m, nil
}

func (s *ContractTypeService) Get(ctx context.Context, id uuid.UUID) (*contractTypeModel.ContractTypeModel, error) {
	var m contractTypeModel.ContractTypeModel
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Contract type not found")
	}
	return &m, nil
}

func (s *ContractTypeService) List(ctx context.Context, q contractTypeDTO.ListContractTypesQuery, p helper.Params) ([]contractTypeModel.ContractTypeModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&contractTypeModel.ContractTypeModel{})
	if v := strings.TrimSpace(q.Search); v != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []contractTypeModel.ContractTypeModel
	if err := tx.Order("duration ASC, name ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update is a single-row write. A new price only affects bills generated
// afterwards; existing contracts keep their dates.
func (s *ContractTypeService) Update(ctx context.Context, id uuid.UUID, in contractTypeDTO.UpdateContractTypeRequest) (*contractTypeModel.ContractTypeModel, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Facilities != nil {
		updates["facilities"] = contractTypeModel.Facilities(*in.Facilities)
	}
	if err := s.DB.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, helper.DuplicateOr(err, msgNameTaken)
	}
	return s.Get(ctx, id)
}

func (s *ContractTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	var n int64
	if err := s.DB.WithContext(ctx).Model(&contractModel.ContractModel{}).
		Where("contract_type_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return helper.BadRequest("Contract type is used by existing contracts")
	}
	return s.DB.WithContext(ctx).Delete(&contractTypeModel.ContractTypeModel{}, "id = ?", id).Error
}
