package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	analyticsDTO "rentku_backend/internals/features/analytics/dto"
	billingModel "rentku_backend/internals/features/billing/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	"rentku_backend/internals/helpers/dbtime"
)

// RevenueWindow is the number of months in the revenue chart.
const RevenueWindow = 4

type AnalyticsService struct {
	DB  *gorm.DB
	Now func() time.Time
	Loc *time.Location
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db, Now: dbtime.Now, Loc: dbtime.Location()}
}

// month resolves the query into a period, filling blanks from Now.
func (s *AnalyticsService) month(q analyticsDTO.MonthQuery) dbtime.Period {
	now := s.Now().In(s.Loc)
	y, m := now.Year(), now.Month()
	if q.Year != 0 {
		y = q.Year
	}
	if q.Month != 0 {
		m = time.Month(q.Month)
	}
	return dbtime.PeriodOf(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC))
}

/* =========================================================
   Bills by invoice status
========================================================= */

// StatusByMonth splits the bills of one billing period by invoice status.
// Every status is present, empty ones with zero count and amount.
func (s *AnalyticsService) StatusByMonth(ctx context.Context, q analyticsDTO.MonthQuery) (analyticsDTO.StatusByMonthResponse, error) {
	period := s.month(q)

	var rows []analyticsDTO.StatusBucket
	err := s.DB.WithContext(ctx).
		Model(&billingModel.BillModel{}).
		Select("invoices.status AS status, COUNT(bills.id) AS count, COALESCE(SUM(bills.total_amount), 0) AS total").
		Joins("JOIN invoices ON invoices.bill_id = bills.id").
		Where("bills.billing_period = ?", period).
		Group("invoices.status").
		Scan(&rows).Error
	if err != nil {
		return analyticsDTO.StatusByMonthResponse{}, err
	}

	byStatus := make(map[string]analyticsDTO.StatusBucket, len(rows))
	for _, r := range rows {
		byStatus[r.Status] = r
	}
	out := analyticsDTO.StatusByMonthResponse{Period: period.String()}
	for _, st := range constants.InvoiceStatuses {
		b, ok := byStatus[st]
		if !ok {
			b = analyticsDTO.StatusBucket{Status: st, Total: decimal.Zero}
		}
		out.Buckets = append(out.Buckets, b)
	}
	return out, nil
}

/* =========================================================
   Revenue over the last four months
========================================================= */

// RevenueByMonth sums total_amount by creation month over the four months
// ending with the requested one, oldest first.
func (s *AnalyticsService) RevenueByMonth(ctx context.Context, q analyticsDTO.MonthQuery) (analyticsDTO.RevenueResponse, error) {
	last := s.month(q)
	first := last
	for i := 1; i < RevenueWindow; i++ {
		first = dbtime.PeriodOf(first.AddDate(0, -1, 0))
	}
	start, _ := first.Window(s.Loc)
	_, end := last.Window(s.Loc)

	var bills []billingModel.BillModel
	if err := s.DB.WithContext(ctx).
		Select("id", "total_amount", "created_at").
		Where("created_at >= ? AND created_at < ?", start.UTC(), end.UTC()).
		Find(&bills).Error; err != nil {
		return analyticsDTO.RevenueResponse{}, err
	}

	points := make([]analyticsDTO.RevenuePoint, 0, RevenueWindow)
	index := make(map[string]int, RevenueWindow)
	for p, i := first, 0; i < RevenueWindow; p, i = p.Next(), i+1 {
		index[p.String()] = i
		points = append(points, analyticsDTO.RevenuePoint{Month: p.String(), Total: decimal.Zero})
	}
	for _, b := range bills {
		label := b.CreatedAt.In(s.Loc).Format(constants.PeriodLayout)
		i, ok := index[label]
		if !ok {
			continue
		}
		points[i].Total = points[i].Total.Add(b.TotalAmount)
		points[i].Bills++
	}

	return analyticsDTO.RevenueResponse{
		From:   first.String(),
		To:     last.String(),
		Points: points,
	}, nil
}

/* =========================================================
   Counts
========================================================= */

// ContractTypeTenants counts contracts per contract type, including types
// nobody has signed yet.
func (s *AnalyticsService) ContractTypeTenants(ctx context.Context) ([]analyticsDTO.NamedCount, error) {
	out := []analyticsDTO.NamedCount{}
	err := s.DB.WithContext(ctx).
		Table("contract_types").
		Select("contract_types.name AS name, COUNT(contracts.id) AS count").
		Joins("LEFT JOIN contracts ON contracts.contract_type_id = contract_types.id").
		Group("contract_types.id, contract_types.name").
		Order("contract_types.name ASC").
		Scan(&out).Error
	return out, err
}

// RoomStatusCounts counts rooms per status, zero-filled.
func (s *AnalyticsService) RoomStatusCounts(ctx context.Context) ([]analyticsDTO.NamedCount, error) {
	var rows []analyticsDTO.NamedCount
	if err := s.DB.WithContext(ctx).
		Model(&roomModel.RoomModel{}).
		Select("status AS name, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Name] = r.Count
	}
	out := make([]analyticsDTO.NamedCount, 0, len(constants.RoomStatuses))
	for _, st := range constants.RoomStatuses {
		out = append(out, analyticsDTO.NamedCount{Name: st, Count: counts[st]})
	}
	return out, nil
}
