package dto

import (
	"github.com/shopspring/decimal"
)

// MonthQuery: both default to the current month in the app timezone.
type MonthQuery struct {
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
	Year  int `query:"year" validate:"omitempty,min=2000,max=2100"`
}

type StatusBucket struct {
	Status string          `json:"status"`
	Count  int64           `json:"count"`
	Total  decimal.Decimal `json:"total_amount"`
}

type StatusByMonthResponse struct {
	Period  string         `json:"period"`
	Buckets []StatusBucket `json:"buckets"`
}

type RevenuePoint struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total_amount"`
	Bills int64           `json:"bills"`
}

type RevenueResponse struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Points []RevenuePoint `json:"points"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
