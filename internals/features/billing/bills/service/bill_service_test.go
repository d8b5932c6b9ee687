package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/databases/dbtest"
	billDTO "rentku_backend/internals/features/billing/bills/dto"
	billingModel "rentku_backend/internals/features/billing/model"
	contractTypeModel "rentku_backend/internals/features/properties/contract_types/model"
	contractModel "rentku_backend/internals/features/properties/contracts/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/helpers/dbtime"
	"rentku_backend/internals/helpers/mailer"
)

var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func newTestService(t *testing.T) (*BillService, *gorm.DB, *fakeMailer) {
	t.Helper()
	db := dbtest.Open(t)
	m := &fakeMailer{}
	svc := NewBillService(db, m)
	svc.Now = func() time.Time { return fixedNow }
	svc.DueDays = 7
	return svc, db, m
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

// rentedRoom creates a Rented room with a tenant and, when price > 0, an
// active contract at that price.
func rentedRoom(t *testing.T, db *gorm.DB, roomNo string, price int64) (roomModel.RoomModel, tenantModel.TenantModel) {
	t.Helper()
	room := roomModel.RoomModel{RoomNo: roomNo, Floor: 1, Status: constants.RoomStatusRented}
	require.NoError(t, db.Create(&room).Error)
	tenant := tenantModel.TenantModel{
		Name: "Tenant " + roomNo, Email: roomNo + "@example.com", NRC: uuid.NewString(), PhoneNo: "0933", RoomID: room.ID,
	}
	require.NoError(t, db.Create(&tenant).Error)

	if price > 0 {
		ct := contractTypeModel.ContractTypeModel{Name: "Plan " + roomNo, Duration: 6, Price: decimal.NewFromInt(price)}
		require.NoError(t, db.Create(&ct).Error)
		c := contractModel.ContractModel{
			TenantID: tenant.ID, RoomID: room.ID, ContractTypeID: ct.ID,
			CreatedDate: fixedNow.AddDate(0, -1, 0),
			ExpiryDate:  fixedNow.AddDate(0, 5, 0),
		}
		require.NoError(t, db.Create(&c).Error)
	}
	return room, tenant
}

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

/* ===================== create ===================== */

func TestCreateUsesContractRental(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	room, _ := rentedRoom(t, db, "R-1", 280000)

	bill, err := svc.Create(ctx, billDTO.CreateBillRequest{
		RoomID:         room.ID,
		ElectricityFee: dec(25000),
		WaterFee:       dec(8000),
		ServiceFee:     dec(5000),
		GroundFee:      dec(2000),
		CarParkingFee:  dec(10000),
		WifiFee:        dec(15000),
		FineFee:        dec(0),
		TotalAmount:    dec(1),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, bill.ID)
	require.NoError(t, err)
	assert.True(t, got.RentalFee.Equal(decimal.NewFromInt(280000)), "rental %s", got.RentalFee)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(345000)), "total %s", got.TotalAmount)
	assert.Equal(t, "2026-03", got.BillingPeriod.String())
	assert.True(t, got.DueDate.Equal(fixedNow.AddDate(0, 0, 7)))

	require.NotNil(t, got.TotalUnits)
	assert.Equal(t, "50", got.TotalUnits.ElectricityUnits.String())
	assert.Equal(t, "26.67", got.TotalUnits.WaterUnits.String())

	require.NotNil(t, got.Invoice)
	assert.Equal(t, constants.InvoiceStatusPending, got.Invoice.Status)
	require.NotNil(t, got.Invoice.Receipt)
	assert.Nil(t, got.Invoice.Receipt.PaidDate)
	assert.Equal(t, constants.PaymentMethodCash, got.Invoice.Receipt.PaymentMethod)

	assert.EqualValues(t, 1, countRows(t, db, &billingModel.TotalUnitsModel{}, "bill_id = ?", bill.ID))
	assert.EqualValues(t, 1, countRows(t, db, &billingModel.InvoiceModel{}, "bill_id = ?", bill.ID))
	assert.EqualValues(t, 1, countRows(t, db, &billingModel.ReceiptModel{}, "invoice_id = ?", got.Invoice.ID))
}

func TestCreateWithoutContractKeepsSuppliedRental(t *testing.T) {
	svc, db, _ := newTestService(t)
	room, _ := rentedRoom(t, db, "R-2", 0)

	bill, err := svc.Create(context.Background(), billDTO.CreateBillRequest{
		RoomID:        room.ID,
		BillingPeriod: "2026-02",
		RentalFee:     dec(150000),
		WaterFee:      dec(3000),
	})
	require.NoError(t, err)
	assert.True(t, bill.RentalFee.Equal(decimal.NewFromInt(150000)))
	assert.True(t, bill.TotalAmount.Equal(decimal.NewFromInt(153000)))
	assert.Equal(t, "2026-02", bill.BillingPeriod.String())
	assert.Equal(t, "10", bill.TotalUnits.WaterUnits.String())
}

func TestCreateRejectsDuplicatePeriod(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	room, _ := rentedRoom(t, db, "R-3", 0)

	_, err := svc.Create(ctx, billDTO.CreateBillRequest{RoomID: room.ID, RentalFee: dec(100)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, billDTO.CreateBillRequest{RoomID: room.ID, RentalFee: dec(200)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBillExists)
	assert.EqualValues(t, 1, countRows(t, db, &billingModel.BillModel{}, "room_id = ?", room.ID))
	assert.EqualValues(t, 1, countRows(t, db, &billingModel.InvoiceModel{}, "1 = 1"))
}

func TestCreateUnknownRoom(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Create(context.Background(), billDTO.CreateBillRequest{RoomID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

func TestCreateRollsBackOnFailure(t *testing.T) {
	svc, db, _ := newTestService(t)
	room, _ := rentedRoom(t, db, "R-4", 0)

	// receipt insert gagal, seluruh grup harus batal
	boom := errors.New("receipt insert failed")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_receipts", func(tx *gorm.DB) {
		if tx.Statement.Table == "receipts" {
			_ = tx.AddError(boom)
		}
	}))

	_, err := svc.Create(context.Background(), billDTO.CreateBillRequest{RoomID: room.ID, RentalFee: dec(100), WaterFee: dec(3000)})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	assert.Zero(t, countRows(t, db, &billingModel.BillModel{}, "room_id = ?", room.ID))
	assert.Zero(t, countRows(t, db, &billingModel.TotalUnitsModel{}, "1 = 1"))
	assert.Zero(t, countRows(t, db, &billingModel.InvoiceModel{}, "1 = 1"))
	assert.Zero(t, countRows(t, db, &billingModel.ReceiptModel{}, "1 = 1"))
}

/* ===================== update ===================== */

func TestUpdateRecomputesTotalAndUnits(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	room, _ := rentedRoom(t, db, "R-4", 0)

	bill, err := svc.Create(ctx, billDTO.CreateBillRequest{
		RoomID: room.ID, RentalFee: dec(100000), ElectricityFee: dec(5000),
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, bill.ID, billDTO.UpdateBillRequest{
		ElectricityFee: dec(10000),
		FineFee:        dec(2000),
		TotalAmount:    dec(9),
	})
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(112000)), "total %s", got.TotalAmount)
	assert.Equal(t, "20", got.TotalUnits.ElectricityUnits.String())
	assert.True(t, got.TotalUnits.WaterUnits.IsZero())
}

func TestUpdateKeepsUnitsWhenUtilitiesUntouched(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	room, _ := rentedRoom(t, db, "R-5", 0)

	bill, err := svc.Create(ctx, billDTO.CreateBillRequest{
		RoomID: room.ID, ElectricityFee: dec(5000), ElectricityUnits: dec(12),
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, bill.ID, billDTO.UpdateBillRequest{WifiFee: dec(15000)})
	require.NoError(t, err)
	assert.Equal(t, "12", got.TotalUnits.ElectricityUnits.String())
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(20000)))
}

func TestUpdateRejectsRoomChange(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	room, _ := rentedRoom(t, db, "R-6", 0)
	other, _ := rentedRoom(t, db, "R-7", 0)

	bill, err := svc.Create(ctx, billDTO.CreateBillRequest{RoomID: room.ID, RentalFee: dec(100)})
	require.NoError(t, err)

	_, err = svc.Update(ctx, bill.ID, billDTO.UpdateBillRequest{RoomID: &other.ID, RentalFee: dec(999)})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusOf(t, err))

	// same room is accepted
	got, err := svc.Update(ctx, bill.ID, billDTO.UpdateBillRequest{RoomID: &room.ID, RentalFee: dec(300)})
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.RoomID)
	assert.True(t, got.RentalFee.Equal(decimal.NewFromInt(300)))
}

func TestUpdateUnknownBill(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Update(context.Background(), uuid.New(), billDTO.UpdateBillRequest{FineFee: dec(1)})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

/* ===================== queries ===================== */

func TestListFilters(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	a, _ := rentedRoom(t, db, "L-1", 0)
	b, _ := rentedRoom(t, db, "L-2", 0)

	for _, in := range []billDTO.CreateBillRequest{
		{RoomID: a.ID, BillingPeriod: "2026-01", RentalFee: dec(1)},
		{RoomID: a.ID, BillingPeriod: "2026-02", RentalFee: dec(1)},
		{RoomID: b.ID, BillingPeriod: "2026-02", RentalFee: dec(1)},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}
	p := helper.Params{Page: 1, PerPage: 10}

	_, total, err := svc.List(ctx, billDTO.ListBillsQuery{RoomID: a.ID.String()}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	list, total, err := svc.List(ctx, billDTO.ListBillsQuery{BillingPeriod: "2026-02"}, p)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, bill := range list {
		assert.NotNil(t, bill.Invoice)
		assert.NotNil(t, bill.TotalUnits)
	}

	_, total, err = svc.List(ctx, billDTO.ListBillsQuery{Status: constants.InvoiceStatusPaid}, p)
	require.NoError(t, err)
	assert.Zero(t, total)

	list, total, err = svc.List(ctx, billDTO.ListBillsQuery{}, helper.Params{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, list, 1)
}

func TestTenantBills(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	room, tenant := rentedRoom(t, db, "T-1", 0)

	_, err := svc.LatestForTenant(ctx, tenant.ID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	_, _, err = svc.HistoryForTenant(ctx, tenant.ID, helper.Params{Page: 1, PerPage: 10})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	require.NoError(t, db.Model(&tenantModel.TenantModel{}).Where("id = ?", tenant.ID).
		Update("moved_in_at", fixedNow.AddDate(0, -2, 0)).Error)

	// billed to the previous tenant of the room
	before, err := svc.Create(ctx, billDTO.CreateBillRequest{RoomID: room.ID, BillingPeriod: "2025-12", RentalFee: dec(9)})
	require.NoError(t, err)
	require.NoError(t, db.Model(&billingModel.BillModel{}).Where("id = ?", before.ID).
		Update("created_at", fixedNow.AddDate(0, -3, 0)).Error)

	_, err = svc.LatestForTenant(ctx, tenant.ID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))

	first, err := svc.Create(ctx, billDTO.CreateBillRequest{RoomID: room.ID, BillingPeriod: "2026-01", RentalFee: dec(1)})
	require.NoError(t, err)
	second, err := svc.Create(ctx, billDTO.CreateBillRequest{RoomID: room.ID, BillingPeriod: "2026-02", RentalFee: dec(2)})
	require.NoError(t, err)
	// created_at decides "latest"
	require.NoError(t, db.Model(&billingModel.BillModel{}).Where("id = ?", first.ID).
		Update("created_at", fixedNow.AddDate(0, -1, 0)).Error)

	latest, err := svc.LatestForTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	list, total, err := svc.HistoryForTenant(ctx, tenant.ID, helper.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	_, err = svc.LatestForTenant(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, statusOf(t, err))
}

/* ===================== auto-generate ===================== */

func TestAutoGenerate(t *testing.T) {
	svc, db, m := newTestService(t)
	ctx := context.Background()

	withContract, _ := rentedRoom(t, db, "G-1", 250000)
	carried, _ := rentedRoom(t, db, "G-2", 0)
	already, _ := rentedRoom(t, db, "G-3", 0)
	vacant := roomModel.RoomModel{RoomNo: "G-4", Floor: 1, Status: constants.RoomStatusAvailable}
	require.NoError(t, db.Create(&vacant).Error)

	// previous month for the carried room
	_, err := svc.Create(ctx, billDTO.CreateBillRequest{
		RoomID: carried.ID, BillingPeriod: "2026-02",
		RentalFee: dec(120000), ServiceFee: dec(5000), WifiFee: dec(15000),
		ElectricityFee: dec(9000), FineFee: dec(1000),
	})
	require.NoError(t, err)
	// current month already billed by hand
	_, err = svc.Create(ctx, billDTO.CreateBillRequest{RoomID: already.ID, BillingPeriod: "2026-03", RentalFee: dec(1)})
	require.NoError(t, err)

	period, err := dbtime.ParsePeriod("2026-03")
	require.NoError(t, err)
	res, err := svc.AutoGenerate(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Generated)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0, res.Failed)
	assert.Len(t, res.BillIDs, 2)

	var fromContract billingModel.BillModel
	require.NoError(t, db.First(&fromContract, "room_id = ? AND billing_period = ?", withContract.ID, "2026-03").Error)
	assert.True(t, fromContract.RentalFee.Equal(decimal.NewFromInt(250000)))
	assert.True(t, fromContract.TotalAmount.Equal(decimal.NewFromInt(250000)))

	var fromPrevious billingModel.BillModel
	require.NoError(t, db.First(&fromPrevious, "room_id = ? AND billing_period = ?", carried.ID, "2026-03").Error)
	assert.True(t, fromPrevious.RentalFee.Equal(decimal.NewFromInt(120000)))
	assert.True(t, fromPrevious.WifiFee.Equal(decimal.NewFromInt(15000)))
	assert.True(t, fromPrevious.ElectricityFee.IsZero())
	assert.True(t, fromPrevious.FineFee.IsZero())
	assert.True(t, fromPrevious.TotalAmount.Equal(decimal.NewFromInt(140000)))

	assert.Zero(t, countRows(t, db, &billingModel.BillModel{}, "room_id = ?", vacant.ID))
	assert.Len(t, m.sent, 2)

	// a second run is a no-op
	again, err := svc.AutoGenerate(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Generated)
	assert.Equal(t, 3, again.Skipped)
}

func TestAutoGenerateDefaultsToCurrentPeriod(t *testing.T) {
	svc, db, _ := newTestService(t)
	room, _ := rentedRoom(t, db, "D-1", 0)

	res, err := svc.AutoGenerate(context.Background(), dbtime.Period{})
	require.NoError(t, err)
	assert.Equal(t, "2026-03", res.Period.String())
	assert.Equal(t, 1, res.Generated)
	assert.EqualValues(t, 1, countRows(t, db, &billingModel.BillModel{}, "room_id = ? AND billing_period = ?", room.ID, "2026-03"))
}

func TestAutoGenerateStopsOnCancel(t *testing.T) {
	svc, db, _ := newTestService(t)
	rentedRoom(t, db, "C-1", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.AutoGenerate(ctx, dbtime.Period{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
