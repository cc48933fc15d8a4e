package assertions

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/expressivetesting/accounting/internal/model"
)

// AccountAssert checks a model.Account.
type AccountAssert struct {
	described
	t      TestingT
	actual *model.Account
}

// AssertThat starts a chain of checks on actual.
func AssertThat(t TestingT, actual *model.Account) *AccountAssert {
	return &AccountAssert{t: t, actual: actual}
}

// DescribedAs labels failure messages.
func (a *AccountAssert) DescribedAs(description string) *AccountAssert {
	a.description = description
	return a
}

func (a *AccountAssert) present() bool {
	a.t.Helper()
	return assert.NotNil(a.t, a.actual, a.msg("expected an account but was nil"))
}

// IsNotNil checks that there is an account.
func (a *AccountAssert) IsNotNil() *AccountAssert {
	a.t.Helper()
	a.present()
	return a
}

// HasBalance compares the balance numerically, so 0.1 equals 0.10.
func (a *AccountAssert) HasBalance(want decimal.Decimal) *AccountAssert {
	a.t.Helper()
	if !a.present() {
		return a
	}
	assert.True(a.t, want.Equal(a.actual.Balance),
		a.msg("expected balance %s but was %s", want.String(), a.actual.Balance.String()))
	return a
}

// HasBookingCount checks the number of bookings.
func (a *AccountAssert) HasBookingCount(want int) *AccountAssert {
	a.t.Helper()
	if !a.present() {
		return a
	}
	assert.Len(a.t, a.actual.Bookings, want, a.msg("booking count"))
	return a
}

// IsConsistent checks that the balance matches the bookings and that every
// booking is valid.
func (a *AccountAssert) IsConsistent() *AccountAssert {
	a.t.Helper()
	if !a.present() {
		return a
	}
	assert.Empty(a.t, a.actual.Validate(), a.msg("expected a consistent account"))
	return a
}

// Bookings switches to checks on the booking sequence.
func (a *AccountAssert) Bookings() *BookingsAssert {
	var bookings []model.Booking
	if a.actual != nil {
		bookings = a.actual.Bookings
	}
	return &BookingsAssert{described: a.child("bookings"), t: a.t, actual: bookings}
}

// LastBooking switches to checks on the newest booking.
func (a *AccountAssert) LastBooking() *BookingAssert {
	return a.Bookings().Last()
}

// BookingsAssert checks an ordered booking sequence.
type BookingsAssert struct {
	described
	t      TestingT
	actual []model.Booking
}

// DescribedAs labels failure messages.
func (a *BookingsAssert) DescribedAs(description string) *BookingsAssert {
	a.description = description
	return a
}

// HasSize checks the number of bookings.
func (a *BookingsAssert) HasSize(want int) *BookingsAssert {
	a.t.Helper()
	assert.Len(a.t, a.actual, want, a.msg("size"))
	return a
}

// IsEmpty checks that there are no bookings.
func (a *BookingsAssert) IsEmpty() *BookingsAssert {
	a.t.Helper()
	assert.Empty(a.t, a.actual, a.msg("expected no bookings"))
	return a
}

// Last switches to checks on the newest booking. With no bookings the
// returned assert holds nil.
func (a *BookingsAssert) Last() *BookingAssert {
	var last model.Booking
	if n := len(a.actual); n > 0 {
		last = a.actual[n-1]
	}
	return &BookingAssert{described: a.child("last"), t: a.t, actual: last}
}
