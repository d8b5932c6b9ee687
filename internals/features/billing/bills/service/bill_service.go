package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentku_backend/internals/configs"
	"rentku_backend/internals/constants"
	database "rentku_backend/internals/databases"
	billDTO "rentku_backend/internals/features/billing/bills/dto"
	"rentku_backend/internals/features/billing/calculator"
	invoiceService "rentku_backend/internals/features/billing/invoices/service"
	billingModel "rentku_backend/internals/features/billing/model"
	"rentku_backend/internals/features/billing/notification"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/helpers/dbtime"
	"rentku_backend/internals/helpers/mailer"
	"rentku_backend/internals/helpers/metrics"
)

const (
	msgBillNotFound   = "Bill not found"
	msgBillExists     = "A bill already exists for this room and billing period."
	msgRoomImmutable  = "room_id cannot be changed once a bill is created."
	msgNoTenantBills  = "No bills found for this tenant"
	msgTenantNotFound = "Tenant not found"
)

// ErrBillExists rejects a second bill for the same room and period.
var ErrBillExists = helper.BadRequest(msgBillExists)

type BillService struct {
	DB       *gorm.DB
	UoW      database.UnitOfWork
	Notifier *notification.Notifier
	Now      func() time.Time
	DueDays  int
}

func NewBillService(db *gorm.DB, m mailer.Mailer) *BillService {
	return &BillService{
		DB:       db,
		UoW:      database.NewUnitOfWork(db),
		Notifier: notification.New(m),
		Now:      dbtime.Now,
		DueDays:  configs.BillDueDays,
	}
}

// draft is everything needed to insert one bill group.
type draft struct {
	RoomID  uuid.UUID
	Period  dbtime.Period
	Fees    calculator.Fees
	Units   *calculator.Units
	DueDate time.Time
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *BillService) dueDate(now time.Time) time.Time {
	days := s.DueDays
	if days <= 0 {
		days = 7
	}
	return now.AddDate(0, 0, days).UTC()
}

/* =========================================================
   CREATE
========================================================= */

// insert writes Bill, TotalUnits, Invoice and Receipt in one transaction.
func (s *BillService) insert(ctx context.Context, d draft) (*billingModel.BillModel, error) {
	f := d.Fees
	bill := billingModel.BillModel{
		RoomID:         d.RoomID,
		BillingPeriod:  d.Period,
		RentalFee:      orZero(f.Rental),
		ElectricityFee: orZero(f.Electricity),
		WaterFee:       orZero(f.Water),
		FineFee:        orZero(f.Fine),
		ServiceFee:     orZero(f.Service),
		GroundFee:      orZero(f.Ground),
		CarParkingFee:  orZero(f.CarParking),
		WifiFee:        orZero(f.Wifi),
		TotalAmount:    calculator.CalculateTotalAmount(f),
		DueDate:        d.DueDate,
	}

	units := calculator.DeriveUnitsFromFees(bill.ElectricityFee, bill.WaterFee)
	if d.Units != nil {
		units = *d.Units
	}

	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&billingModel.BillModel{}).
			Where("room_id = ? AND billing_period = ?", d.RoomID, d.Period).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrBillExists
		}

		if err := tx.Create(&bill).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrBillExists
			}
			return err
		}

		tu := billingModel.TotalUnitsModel{
			BillID:           bill.ID,
			ElectricityUnits: units.Electricity,
			WaterUnits:       units.Water,
		}
		if err := tx.Create(&tu).Error; err != nil {
			return err
		}
		bill.TotalUnits = &tu

		inv, err := invoiceService.CreateForBill(tx, bill.ID)
		if err != nil {
			return err
		}
		bill.Invoice = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// Create bills a room for one period. Rental comes from the active
// contract when there is one; total_amount from the client is ignored.
func (s *BillService) Create(ctx context.Context, in billDTO.CreateBillRequest) (*billingModel.BillModel, error) {
	now := s.Now()

	var room roomModel.RoomModel
	if err := s.DB.WithContext(ctx).First(&room, "id = ?", in.RoomID).Error; err != nil {
		return nil, helper.NotFoundOr(err, "Room not found")
	}

	fees := in.Fees()
	rental, err := calculator.DeriveRentalFeeFromContract(ctx, s.DB, room.ID, now, in.RentalFee)
	if err != nil {
		return nil, err
	}
	fees.Rental = rental

	period := dbtime.PeriodOf(now)
	if in.BillingPeriod != "" {
		if period, err = dbtime.ParsePeriod(in.BillingPeriod); err != nil {
			return nil, helper.NewValidationError("billing_period", "billing_period must be YYYY-MM")
		}
	}

	d := draft{RoomID: room.ID, Period: period, Fees: fees, DueDate: s.dueDate(now)}
	if in.DueDate != nil {
		d.DueDate = in.DueDate.UTC()
	}
	if in.ElectricityUnits != nil || in.WaterUnits != nil {
		u := calculator.DeriveUnitsFromFees(orZero(fees.Electricity), orZero(fees.Water))
		if in.ElectricityUnits != nil {
			u.Electricity = *in.ElectricityUnits
		}
		if in.WaterUnits != nil {
			u.Water = *in.WaterUnits
		}
		d.Units = &u
	}

	bill, err := s.insert(ctx, d)
	if err != nil {
		return nil, err
	}
	metrics.BillsGenerated.WithLabelValues(constants.BillSourceManual).Inc()
	bill.Room = &room
	return bill, nil
}

/* =========================================================
   UPDATE
========================================================= */

// Update merges the supplied fees into the bill, recomputes the total and,
// when a utility fee changed, the derived units. room_id is immutable.
func (s *BillService) Update(ctx context.Context, id uuid.UUID, in billDTO.UpdateBillRequest) (*billingModel.BillModel, error) {
	err := s.UoW.Do(ctx, func(tx *gorm.DB) error {
		var bill billingModel.BillModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bill, "id = ?", id).Error; err != nil {
			return helper.NotFoundOr(err, msgBillNotFound)
		}
		if in.RoomID != nil && *in.RoomID != bill.RoomID {
			return helper.BadRequest(msgRoomImmutable)
		}

		merged := calculator.Fees{
			Rental:      pick(in.RentalFee, bill.RentalFee),
			Electricity: pick(in.ElectricityFee, bill.ElectricityFee),
			Water:       pick(in.WaterFee, bill.WaterFee),
			Service:     pick(in.ServiceFee, bill.ServiceFee),
			Ground:      pick(in.GroundFee, bill.GroundFee),
			CarParking:  pick(in.CarParkingFee, bill.CarParkingFee),
			Wifi:        pick(in.WifiFee, bill.WifiFee),
			Fine:        pick(in.FineFee, bill.FineFee),
		}

		updates := map[string]any{
			"rental_fee":      *merged.Rental,
			"electricity_fee": *merged.Electricity,
			"water_fee":       *merged.Water,
			"service_fee":     *merged.Service,
			"ground_fee":      *merged.Ground,
			"car_parking_fee": *merged.CarParking,
			"wifi_fee":        *merged.Wifi,
			"fine_fee":        *merged.Fine,
			"total_amount":    calculator.CalculateTotalAmount(merged),
		}
		if in.DueDate != nil {
			updates["due_date"] = in.DueDate.UTC()
		}
		if err := tx.Model(&billingModel.BillModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if in.ElectricityFee == nil && in.WaterFee == nil {
			return nil
		}
		units := calculator.DeriveUnitsFromFees(*merged.Electricity, *merged.Water)
		return upsertUnits(tx, id, units)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func pick(in *decimal.Decimal, current decimal.Decimal) *decimal.Decimal {
	if in != nil {
		return in
	}
	return &current
}

func upsertUnits(tx *gorm.DB, billID uuid.UUID, u calculator.Units) error {
	res := tx.Model(&billingModel.TotalUnitsModel{}).
		Where("bill_id = ?", billID).
		Updates(map[string]any{
			"electricity_units": u.Electricity,
			"water_units":       u.Water,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return tx.Create(&billingModel.TotalUnitsModel{
		BillID:           billID,
		ElectricityUnits: u.Electricity,
		WaterUnits:       u.Water,
	}).Error
}

/* =========================================================
   QUERIES
========================================================= */

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Room").Preload("TotalUnits").Preload("Invoice.Receipt")
}

func (s *BillService) Get(ctx context.Context, id uuid.UUID) (*billingModel.BillModel, error) {
	var bill billingModel.BillModel
	if err := withRelations(s.DB.WithContext(ctx)).First(&bill, "bills.id = ?", id).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgBillNotFound)
	}
	return &bill, nil
}

func (s *BillService) List(ctx context.Context, q billDTO.ListBillsQuery, p helper.Params) ([]billingModel.BillModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&billingModel.BillModel{})
	if q.RoomID != "" {
		tx = tx.Where("bills.room_id = ?", q.RoomID)
	}
	if q.BillingPeriod != "" {
		tx = tx.Where("bills.billing_period = ?", q.BillingPeriod)
	}
	if q.Status != "" {
		tx = tx.Joins("JOIN invoices ON invoices.bill_id = bills.id").
			Where("invoices.status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []billingModel.BillModel
	if err := withRelations(tx).
		Order("bills.created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// tenantScope narrows bills to the tenant's current room, counting only
// bills created since the tenant moved in. Earlier bills of that room
// belong to whoever rented it before.
func (s *BillService) tenantScope(ctx context.Context, tenantID uuid.UUID) (*gorm.DB, error) {
	var t tenantModel.TenantModel
	if err := s.DB.WithContext(ctx).Select("id", "room_id", "moved_in_at").First(&t, "id = ?", tenantID).Error; err != nil {
		return nil, helper.NotFoundOr(err, msgTenantNotFound)
	}
	return s.DB.WithContext(ctx).Model(&billingModel.BillModel{}).
		Where("bills.room_id = ? AND bills.created_at >= ?", t.RoomID, t.MovedInAt), nil
}

// LatestForTenant returns the most recent bill of the tenant's tenancy.
func (s *BillService) LatestForTenant(ctx context.Context, tenantID uuid.UUID) (*billingModel.BillModel, error) {
	tx, err := s.tenantScope(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var bill billingModel.BillModel
	err = withRelations(tx).
		Order("bills.created_at DESC").
		Take(&bill).Error
	if err != nil {
		return nil, helper.NotFoundOr(err, msgNoTenantBills)
	}
	return &bill, nil
}

// HistoryForTenant pages through the bills of the tenant's tenancy.
// An empty history is a 404.
func (s *BillService) HistoryForTenant(ctx context.Context, tenantID uuid.UUID, p helper.Params) ([]billingModel.BillModel, int64, error) {
	tx, err := s.tenantScope(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, helper.NotFound(msgNoTenantBills)
	}
	var list []billingModel.BillModel
	if err := withRelations(tx).
		Order("bills.created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

