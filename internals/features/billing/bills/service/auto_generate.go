package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"rentku_backend/internals/constants"
	"rentku_backend/internals/features/billing/calculator"
	billingModel "rentku_backend/internals/features/billing/model"
	"rentku_backend/internals/features/billing/notification"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	"rentku_backend/internals/helpers/dbtime"
	"rentku_backend/internals/helpers/metrics"
)

// GenerationResult summarizes one auto-generation run.
type GenerationResult struct {
	Period    dbtime.Period
	Generated int
	Skipped   int
	Failed    int
	BillIDs   []uuid.UUID
}

// AutoGenerate bills every Rented room once for period. Rooms already
// billed for the period are skipped, so re-running a period is harmless.
// Rental comes from the active contract; the flat fees (service, ground,
// parking, wifi) carry over from the room's previous bill. Utility fees
// start at zero and are filled in by a later update.
func (s *BillService) AutoGenerate(ctx context.Context, period dbtime.Period) (GenerationResult, error) {
	now := s.Now()
	if period.IsZero() {
		period = dbtime.PeriodOf(now)
	}
	res := GenerationResult{Period: period, BillIDs: []uuid.UUID{}}

	var rooms []roomModel.RoomModel
	if err := s.DB.WithContext(ctx).
		Where("status = ?", constants.RoomStatusRented).
		Order("room_no ASC").
		Find(&rooms).Error; err != nil {
		metrics.AutoGenerationRuns.WithLabelValues("error").Inc()
		return res, err
	}

	for _, room := range rooms {
		if err := ctx.Err(); err != nil {
			metrics.AutoGenerationRuns.WithLabelValues("cancelled").Inc()
			return res, err
		}

		bill, err := s.generateForRoom(ctx, room, period)
		switch {
		case errors.Is(err, ErrBillExists):
			res.Skipped++
			continue
		case err != nil:
			res.Failed++
			slog.ErrorContext(ctx, "auto-generate bill", "room_id", room.ID, "period", period.String(), "error", err)
			continue
		}

		res.Generated++
		res.BillIDs = append(res.BillIDs, bill.ID)
		metrics.BillsGenerated.WithLabelValues(constants.BillSourceAuto).Inc()
		s.notifyInvoice(ctx, room, bill)
	}

	outcome := "ok"
	if res.Failed > 0 {
		outcome = "partial"
	}
	metrics.AutoGenerationRuns.WithLabelValues(outcome).Inc()
	slog.InfoContext(ctx, "auto-generate bills done",
		"period", period.String(),
		"generated", res.Generated,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)
	return res, nil
}

func (s *BillService) generateForRoom(ctx context.Context, room roomModel.RoomModel, period dbtime.Period) (*billingModel.BillModel, error) {
	now := s.Now()

	var prev billingModel.BillModel
	if err := s.DB.WithContext(ctx).
		Where("room_id = ?", room.ID).
		Order("created_at DESC").
		Limit(1).
		Find(&prev).Error; err != nil {
		return nil, err
	}
	fees := calculator.Fees{}
	if prev.ID != uuid.Nil {
		fees.Rental = calculator.Ptr(prev.RentalFee)
		fees.Service = calculator.Ptr(prev.ServiceFee)
		fees.Ground = calculator.Ptr(prev.GroundFee)
		fees.CarParking = calculator.Ptr(prev.CarParkingFee)
		fees.Wifi = calculator.Ptr(prev.WifiFee)
	}
	rental, err := calculator.DeriveRentalFeeFromContract(ctx, s.DB, room.ID, now, fees.Rental)
	if err != nil {
		return nil, err
	}
	fees.Rental = rental

	return s.insert(ctx, draft{
		RoomID:  room.ID,
		Period:  period,
		Fees:    fees,
		DueDate: s.dueDate(now),
	})
}

// notifyInvoice is best effort; a failed mail never undoes the bill.
func (s *BillService) notifyInvoice(ctx context.Context, room roomModel.RoomModel, bill *billingModel.BillModel) {
	if bill.Invoice == nil {
		return
	}
	tenant, err := notification.Recipient(ctx, s.DB, room.ID)
	if err != nil {
		slog.WarnContext(ctx, "invoice mail skipped", "room_id", room.ID, "error", err)
		return
	}
	msg := notification.InvoiceMessage(*tenant, room, *bill, *bill.Invoice)
	if err := s.Notifier.Send(ctx, "invoice", msg); err != nil {
		slog.WarnContext(ctx, "invoice mail failed", "room_id", room.ID, "to", msg.To, "error", err)
	}
}
