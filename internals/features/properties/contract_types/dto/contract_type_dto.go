package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CreateContractTypeRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	Duration   int             `json:"duration" validate:"required,gte=1,lte=120"`
	Price      decimal.Decimal `json:"price" validate:"gte=0"`
	Facilities []string        `json:"facilities" validate:"omitempty,dive,required,max=100"`
}

func (r *CreateContractTypeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Facilities = cleanFacilities(r.Facilities)
}

type UpdateContractTypeRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Duration   *int             `json:"duration" validate:"omitempty,gte=1,lte=120"`
	Price      *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Facilities *[]string        `json:"facilities"`
}

func (r *UpdateContractTypeRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Facilities != nil {
		v := cleanFacilities(*r.Facilities)
		r.Facilities = &v
	}
}

func (r UpdateContractTypeRequest) HasAnyField() bool {
	return r.Name != nil || r.Duration != nil || r.Price != nil || r.Facilities != nil
}

type ListContractTypesQuery struct {
	Search string `query:"search" validate:"omitempty,max=100"`
}

// cleanFacilities trims entries and drops blanks and repeats.
func cleanFacilities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, f := range in {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		k := strings.ToLower(f)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, f)
	}
	return out
}
