// Package notification builds and sends the billing e-mails.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billingModel "rentku_backend/internals/features/billing/model"
	roomModel "rentku_backend/internals/features/properties/rooms/model"
	tenantModel "rentku_backend/internals/features/properties/tenants/model"
	helper "rentku_backend/internals/helpers"
	"rentku_backend/internals/helpers/mailer"
	"rentku_backend/internals/helpers/metrics"
)

type Notifier struct {
	Mailer mailer.Mailer
}

func New(m mailer.Mailer) *Notifier {
	if m == nil {
		m = mailer.LogMailer{}
	}
	return &Notifier{Mailer: m}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func writeFees(b *strings.Builder, bill billingModel.BillModel) {
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Rental", bill.RentalFee},
		{"Electricity", bill.ElectricityFee},
		{"Water", bill.WaterFee},
		{"Service", bill.ServiceFee},
		{"Ground", bill.GroundFee},
		{"Car parking", bill.CarParkingFee},
		{"Wi-Fi", bill.WifiFee},
		{"Fine", bill.FineFee},
	}
	for _, r := range rows {
		if r.value.IsZero() {
			continue
		}
		fmt.Fprintf(b, "  %-12s %14s\n", r.label, money(r.value))
	}
	fmt.Fprintf(b, "  %-12s %14s\n", "Total", money(bill.TotalAmount))
}

// InvoiceMessage announces a new bill to the tenant.
func InvoiceMessage(tenant tenantModel.TenantModel, room roomModel.RoomModel, bill billingModel.BillModel, inv billingModel.InvoiceModel) mailer.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", tenant.Name)
	fmt.Fprintf(&b, "Your bill for room %s, period %s, is ready.\n\n", room.RoomNo, bill.BillingPeriod)
	fmt.Fprintf(&b, "Invoice: %s\n", inv.InvoiceNo)
	writeFees(&b, bill)
	fmt.Fprintf(&b, "\nPlease pay before %s.\n", bill.DueDate.Format("02 Jan 2006"))
	return mailer.Message{
		To:      tenant.Email,
		Subject: fmt.Sprintf("Invoice %s for room %s (%s)", inv.InvoiceNo, room.RoomNo, bill.BillingPeriod),
		Body:    b.String(),
	}
}

// ReceiptMessage confirms a recorded payment.
func ReceiptMessage(tenant tenantModel.TenantModel, room roomModel.RoomModel, bill billingModel.BillModel, inv billingModel.InvoiceModel, rc billingModel.ReceiptModel) mailer.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", tenant.Name)
	fmt.Fprintf(&b, "We received your payment for invoice %s (room %s, period %s).\n\n", inv.InvoiceNo, room.RoomNo, bill.BillingPeriod)
	writeFees(&b, bill)
	if rc.PaidDate != nil {
		fmt.Fprintf(&b, "\nPaid on %s by %s.\n", rc.PaidDate.Format("02 Jan 2006"), strings.ReplaceAll(rc.PaymentMethod, "_", " "))
	}
	return mailer.Message{
		To:      tenant.Email,
		Subject: fmt.Sprintf("Receipt for invoice %s", inv.InvoiceNo),
		Body:    b.String(),
	}
}

// Send delivers msg and counts failures under kind ("invoice", "receipt").
func (n *Notifier) Send(ctx context.Context, kind string, msg mailer.Message) error {
	if err := n.Mailer.Send(ctx, msg); err != nil {
		metrics.MailFailures.WithLabelValues(kind).Inc()
		return err
	}
	return nil
}

// Recipient resolves the tenant living in a room together with the room.
// A room without a tenant yields a 400, there is nobody to mail.
func Recipient(ctx context.Context, db *gorm.DB, roomID uuid.UUID) (*tenantModel.TenantModel, error) {
	var t tenantModel.TenantModel
	err := db.WithContext(ctx).
		Preload("Room").
		Where("room_id = ?", roomID).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.BadRequest("Room has no tenant to notify")
	}
	if err != nil {
		return nil, err
	}
	if t.Room == nil {
		t.Room = &roomModel.RoomModel{ID: roomID}
	}
	return &t, nil
}
