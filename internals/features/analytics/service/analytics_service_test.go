package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/databases/dbtest"
	analyticsDTO "rentku_backend/internals/features/analytics/dto"
	invoiceService "rentku_backend/internals/features/billing/invoices/service"
	billingModel "rentku_backend/internals/features/billing/model"
	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
	contractModel "rentku_backend/internals/features/properties/contracts/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	"rentku_backend/internals/helpers/dbtime"
)

var fixedNow = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*AnalyticsService, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	return &AnalyticsService{DB: db, Now: func() time.Time { return fixedNow }, Loc: time.UTC}, db
}

func addRoom(t *testing.T, db *gorm.DB, status string) roomModel.RoomModel {
	t.Helper()
	room := roomModel.RoomModel{RoomNo: uuid.NewString()[:8], Floor: 1, Status: status}
	require.NoError(t, db.Create(&room).Error)
	return room
}

// addBill inserts a bill with its invoice group, then forces the invoice
// status and the creation time.
func addBill(t *testing.T, db *gorm.DB, period string, total int64, status string, createdAt time.Time) {
	t.Helper()
	room := addRoom(t, db, constants.RoomStatusRented)
	p, err := dbtime.ParsePeriod(period)
	require.NoError(t, err)

	bill := billingModel.BillModel{
		RoomID:        room.ID,
		BillingPeriod: p,
		RentalFee:     decimal.NewFromInt(total),
		TotalAmount:   decimal.NewFromInt(total),
		DueDate:       createdAt.AddDate(0, 0, 7),
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&bill).Error)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		inv, err := invoiceService.CreateForBill(tx, bill.ID)
		if err != nil {
			return err
		}
		return tx.Model(inv).Update("status", status).Error
	}))
}

func bucket(t *testing.T, res analyticsDTO.StatusByMonthResponse, status string) analyticsDTO.StatusBucket {
	t.Helper()
	for _, b := range res.Buckets {
		if b.Status == status {
			return b
		}
	}
	t.Fatalf("no bucket for %s", status)
	return analyticsDTO.StatusBucket{}
}

func TestStatusByMonth(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	addBill(t, db, "2026-05", 100000, constants.InvoiceStatusPaid, fixedNow)
	addBill(t, db, "2026-05", 50000, constants.InvoiceStatusPaid, fixedNow)
	addBill(t, db, "2026-05", 70000, constants.InvoiceStatusPending, fixedNow)
	addBill(t, db, "2026-04", 99999, constants.InvoiceStatusOverdue, fixedNow.AddDate(0, -1, 0))

	res, err := svc.StatusByMonth(ctx, analyticsDTO.MonthQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2026-05", res.Period)
	require.Len(t, res.Buckets, len(constants.InvoiceStatuses))

	paid := bucket(t, res, constants.InvoiceStatusPaid)
	assert.EqualValues(t, 2, paid.Count)
	assert.True(t, paid.Total.Equal(decimal.NewFromInt(150000)), "paid total %s", paid.Total)

	pending := bucket(t, res, constants.InvoiceStatusPending)
	assert.EqualValues(t, 1, pending.Count)

	overdue := bucket(t, res, constants.InvoiceStatusOverdue)
	assert.Zero(t, overdue.Count)
	assert.True(t, overdue.Total.IsZero())

	april, err := svc.StatusByMonth(ctx, analyticsDTO.MonthQuery{Month: 4, Year: 2026})
	require.NoError(t, err)
	assert.EqualValues(t, 1, bucket(t, april, constants.InvoiceStatusOverdue).Count)
}

func TestRevenueByMonth(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	addBill(t, db, "2026-05", 100000, constants.InvoiceStatusPending, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC))
	addBill(t, db, "2026-05", 20000, constants.InvoiceStatusPaid, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
	addBill(t, db, "2026-03", 30000, constants.InvoiceStatusPaid, time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC))
	// outside the window
	addBill(t, db, "2026-01", 77777, constants.InvoiceStatusPaid, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))

	res, err := svc.RevenueByMonth(ctx, analyticsDTO.MonthQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2026-02", res.From)
	assert.Equal(t, "2026-05", res.To)
	require.Len(t, res.Points, RevenueWindow)

	months := []string{}
	for _, p := range res.Points {
		months = append(months, p.Month)
	}
	assert.Equal(t, []string{"2026-02", "2026-03", "2026-04", "2026-05"}, months)

	assert.True(t, res.Points[0].Total.IsZero())
	assert.True(t, res.Points[1].Total.Equal(decimal.NewFromInt(30000)))
	assert.True(t, res.Points[2].Total.IsZero())
	assert.True(t, res.Points[3].Total.Equal(decimal.NewFromInt(120000)))
	assert.EqualValues(t, 2, res.Points[3].Bills)
}

func TestContractTypeTenants(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	popular := contractTypeModel.ContractTypeModel{Name: "Monthly", Duration: 1, Price: decimal.NewFromInt(300000)}
	unused := contractTypeModel.ContractTypeModel{Name: "Yearly", Duration: 12, Price: decimal.NewFromInt(250000)}
	require.NoError(t, db.Create(&popular).Error)
	require.NoError(t, db.Create(&unused).Error)

	for i := 0; i < 2; i++ {
		room := addRoom(t, db, constants.RoomStatusRented)
		tenant := tenantModel.TenantModel{Name: "T", Email: "t@example.com", NRC: uuid.NewString(), PhoneNo: "09", RoomID: room.ID}
		require.NoError(t, db.Create(&tenant).Error)
		require.NoError(t, db.Create(&contractModel.ContractModel{
			TenantID: tenant.ID, RoomID: room.ID, ContractTypeID: popular.ID,
			CreatedDate: fixedNow, ExpiryDate: fixedNow.AddDate(0, 1, 0),
		}).Error)
	}

	got, err := svc.ContractTypeTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []analyticsDTO.NamedCount{
		{Name: "Monthly", Count: 2},
		{Name: "Yearly", Count: 0},
	}, got)
}

func TestRoomStatusCounts(t *testing.T) {
	svc, db := newTestService(t)

	addRoom(t, db, constants.RoomStatusRented)
	addRoom(t, db, constants.RoomStatusRented)
	addRoom(t, db, constants.RoomStatusAvailable)

	got, err := svc.RoomStatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []analyticsDTO.NamedCount{
		{Name: constants.RoomStatusAvailable, Count: 1},
		{Name: constants.RoomStatusRented, Count: 2},
		{Name: constants.RoomStatusInMaintenance, Count: 0},
		{Name: constants.RoomStatusPurchased, Count: 0},
	}, got)
}
