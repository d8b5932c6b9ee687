package constants

import "github.com/shopspring/decimal"

// Per-unit tariffs used to approximate consumption from a fee amount.
// These are not meter readings.
var (
	ElectricityRate = decimal.NewFromInt(500)
	WaterRate       = decimal.NewFromInt(300)
)

// UnitsPrecision is the number of decimal places kept on derived units.
const UnitsPrecision int32 = 2

const (
	InvoiceStatusPending = "Pending"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"
)

var InvoiceStatuses = []string{
	InvoiceStatusPaid,
	InvoiceStatusPending,
	InvoiceStatusOverdue,
}

const (
	PaymentMethodCash          = "Cash"
	PaymentMethodMobileBanking = "Mobile_Banking"
)

const (
	RoomStatusAvailable     = "Available"
	RoomStatusRented        = "Rented"
	RoomStatusInMaintenance = "InMaintenance"
	RoomStatusPurchased     = "Purchased"
)

var RoomStatuses = []string{
	RoomStatusAvailable,
	RoomStatusRented,
	RoomStatusInMaintenance,
	RoomStatusPurchased,
}

const (
	TicketStatusPending  = "Pending"
	TicketStatusOngoing  = "Ongoing"
	TicketStatusResolved = "Resolved"
)

const (
	TicketCategoryComplain    = "Complain"
	TicketCategoryMaintenance = "Maintenance"
	TicketCategoryOther       = "Other"
)

const (
	TicketPriorityHigh   = "High"
	TicketPriorityMedium = "Medium"
	TicketPriorityLow    = "Low"
)

// Bill generation sources, used as a metrics label.
const (
	BillSourceManual = "manual"
	BillSourceAuto   = "auto"
)

// InvoiceNoPrefix is prepended to 8 hex characters.
const InvoiceNoPrefix = "INV-"

// PeriodLayout formats billing periods and analytics month labels.
const PeriodLayout = "2006-01"
