package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingType classifies a monetary movement on an account.
type BookingType string

const (
	BookingTypeCredit BookingType = "credit"
	BookingTypeDebit  BookingType = "debit"
)

// Valid reports whether t is a known booking type.
func (t BookingType) Valid() bool {
	return t == BookingTypeCredit || t == BookingTypeDebit
}

// BookingEntry holds the fields every booking carries.
type BookingEntry struct {
	ID     string
	Type   BookingType
	Amount decimal.Decimal // always positive; direction comes from Type
	Reason string
	Date   time.Time
}

// Booking is a recorded movement on an account. Implemented by
// CreditBooking and DebitBooking.
type Booking interface {
	Entry() BookingEntry
	// Signed returns the effect of the booking on the account balance.
	Signed() decimal.Decimal
}

// CreditBooking pays an amount out to a creditor.
type CreditBooking struct {
	BookingEntry
	Creditor Creditor
}

// NewCreditBooking returns a CreditBooking with Type set.
func NewCreditBooking(id string, amount decimal.Decimal, reason string, date time.Time, creditor Creditor) CreditBooking {
	return CreditBooking{
		BookingEntry: BookingEntry{
			ID:     id,
			Type:   BookingTypeCredit,
			Amount: amount,
			Reason: reason,
			Date:   date,
		},
		Creditor: creditor,
	}
}

func (b CreditBooking) Entry() BookingEntry { return b.BookingEntry }

func (b CreditBooking) Signed() decimal.Decimal { return b.Amount.Neg() }

// DebitBooking is money arriving on the account.
type DebitBooking struct {
	BookingEntry
}

// NewDebitBooking returns a DebitBooking with Type set.
func NewDebitBooking(id string, amount decimal.Decimal, reason string, date time.Time) DebitBooking {
	return DebitBooking{
		BookingEntry: BookingEntry{
			ID:     id,
			Type:   BookingTypeDebit,
			Amount: amount,
			Reason: reason,
			Date:   date,
		},
	}
}

func (b DebitBooking) Entry() BookingEntry { return b.BookingEntry }

func (b DebitBooking) Signed() decimal.Decimal { return b.Amount }
