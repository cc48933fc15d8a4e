package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account holds a balance and the ordered bookings that produced it.
type Account struct {
	ID       string
	Holder   string
	Balance  decimal.Decimal
	Bookings []Booking // oldest first, append-only
}

// LastBooking returns the newest booking, or nil if there are none.
func (a Account) LastBooking() Booking {
	if len(a.Bookings) == 0 {
		return nil
	}
	return a.Bookings[len(a.Bookings)-1]
}

// SumBookings returns the sum of the signed booking amounts.
func (a Account) SumBookings() decimal.Decimal {
	sum := decimal.Zero
	for _, b := range a.Bookings {
		sum = sum.Add(b.Signed())
	}
	return sum
}

// WithBooking returns a copy of a with b appended and the balance moved by
// b's signed amount. a itself is not modified.
func (a Account) WithBooking(b Booking) Account {
	bookings := make([]Booking, len(a.Bookings), len(a.Bookings)+1)
	copy(bookings, a.Bookings)

	out := a
	out.Bookings = append(bookings, b)
	out.Balance = a.Balance.Add(b.Signed())
	return out
}

// ValidationError describes a single invariant violation on an account.
type ValidationError struct {
	BookingID   string // empty for account-level violations
	Description string
}

func (e ValidationError) Error() string {
	if e.BookingID == "" {
		return e.Description
	}
	return fmt.Sprintf("[%s] %s", e.BookingID, e.Description)
}

// Validate checks the account invariants:
//   - balance equals the sum of signed booking amounts
//   - every booking has a known type and a positive amount
//   - credit bookings carry a valid creditor
//   - bookings are in non-decreasing date order
func (a Account) Validate() []ValidationError {
	var errs []ValidationError

	if sum := a.SumBookings(); !sum.Equal(a.Balance) {
		errs = append(errs, ValidationError{
			Description: fmt.Sprintf("balance (%s) != sum of bookings (%s)", a.Balance.StringFixed(2), sum.StringFixed(2)),
		})
	}

	for i, b := range a.Bookings {
		e := b.Entry()

		if !e.Type.Valid() {
			errs = append(errs, ValidationError{
				BookingID:   e.ID,
				Description: fmt.Sprintf("unknown booking type %q", e.Type),
			})
		}

		if !e.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				BookingID:   e.ID,
				Description: fmt.Sprintf("amount %s must be positive", e.Amount.StringFixed(2)),
			})
		}

		if cb, ok := b.(CreditBooking); ok {
			if err := cb.Creditor.Validate(); err != nil {
				errs = append(errs, ValidationError{
					BookingID:   e.ID,
					Description: err.Error(),
				})
			}
		}

		if i > 0 && e.Date.Before(a.Bookings[i-1].Entry().Date) {
			errs = append(errs, ValidationError{
				BookingID:   e.ID,
				Description: "booked before its predecessor",
			})
		}
	}

	return errs
}
