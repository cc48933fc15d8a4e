package assertions

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/expressivetesting/accounting/internal/model"
)

// BookingAssert checks a single model.Booking of any type.
type BookingAssert struct {
	described
	t      TestingT
	actual model.Booking
}

// AssertThatBooking starts a chain of checks on actual.
func AssertThatBooking(t TestingT, actual model.Booking) *BookingAssert {
	return &BookingAssert{t: t, actual: actual}
}

// DescribedAs labels failure messages.
func (a *BookingAssert) DescribedAs(description string) *BookingAssert {
	a.description = description
	return a
}

func (a *BookingAssert) present() bool {
	a.t.Helper()
	return assert.NotNil(a.t, a.actual, a.msg("expected a booking but was nil"))
}

// IsNotNil checks that there is a booking.
func (a *BookingAssert) IsNotNil() *BookingAssert {
	a.t.Helper()
	a.present()
	return a
}

// IsCreditBooking checks the concrete type and switches to credit checks.
// On mismatch the returned assert holds no booking and every further check
// fails.
func (a *BookingAssert) IsCreditBooking() *CreditBookingAssert {
	a.t.Helper()
	out := &CreditBookingAssert{described: a.described, t: a.t}
	if !a.present() {
		return out
	}
	cb, ok := a.actual.(model.CreditBooking)
	if !assert.True(a.t, ok, a.msg("expected a credit booking but was %T", a.actual)) {
		return out
	}
	out.actual = &cb
	return out
}

// IsDebitBooking checks the concrete type.
func (a *BookingAssert) IsDebitBooking() *BookingAssert {
	a.t.Helper()
	if !a.present() {
		return a
	}
	_, ok := a.actual.(model.DebitBooking)
	assert.True(a.t, ok, a.msg("expected a debit booking but was %T", a.actual))
	return a
}

// HasType checks the booking type.
func (a *BookingAssert) HasType(want model.BookingType) *BookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.Entry()).hasType(want)
	}
	return a
}

// HasAmount compares the amount numerically.
func (a *BookingAssert) HasAmount(want decimal.Decimal) *BookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.Entry()).hasAmount(want)
	}
	return a
}

// HasReason checks the reason text.
func (a *BookingAssert) HasReason(want string) *BookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.Entry()).hasReason(want)
	}
	return a
}

// HasDateBetween checks from <= date <= to.
func (a *BookingAssert) HasDateBetween(from, to time.Time) *BookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.Entry()).hasDateBetween(from, to)
	}
	return a
}

// Satisfies runs fn on the booking if there is one.
func (a *BookingAssert) Satisfies(fn func(model.Booking)) *BookingAssert {
	a.t.Helper()
	if a.present() {
		fn(a.actual)
	}
	return a
}

// CreditBookingAssert checks a model.CreditBooking.
type CreditBookingAssert struct {
	described
	t      TestingT
	actual *model.CreditBooking
}

// DescribedAs labels failure messages.
func (a *CreditBookingAssert) DescribedAs(description string) *CreditBookingAssert {
	a.description = description
	return a
}

func (a *CreditBookingAssert) present() bool {
	a.t.Helper()
	return assert.NotNil(a.t, a.actual, a.msg("expected a credit booking but was nil"))
}

// HasType checks the booking type.
func (a *CreditBookingAssert) HasType(want model.BookingType) *CreditBookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.BookingEntry).hasType(want)
	}
	return a
}

// HasAmount compares the amount numerically.
func (a *CreditBookingAssert) HasAmount(want decimal.Decimal) *CreditBookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.BookingEntry).hasAmount(want)
	}
	return a
}

// HasReason checks the reason text.
func (a *CreditBookingAssert) HasReason(want string) *CreditBookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.BookingEntry).hasReason(want)
	}
	return a
}

// HasDateBetween checks from <= date <= to.
func (a *CreditBookingAssert) HasDateBetween(from, to time.Time) *CreditBookingAssert {
	a.t.Helper()
	if a.present() {
		checkEntry(a.t, a.described, a.actual.BookingEntry).hasDateBetween(from, to)
	}
	return a
}

// HasCreditor checks the creditor against every condition.
func (a *CreditBookingAssert) HasCreditor(conditions ...CreditorCondition) *CreditBookingAssert {
	a.t.Helper()
	if a.present() {
		a.Creditor().Has(AllOf(conditions...))
	}
	return a
}

// Creditor switches to checks on the creditor.
func (a *CreditBookingAssert) Creditor() *CreditorAssert {
	out := &CreditorAssert{described: a.child("creditor"), t: a.t}
	if a.actual != nil {
		c := a.actual.Creditor
		out.actual = &c
	}
	return out
}

// Satisfies runs fn on the credit booking if there is one.
func (a *CreditBookingAssert) Satisfies(fn func(model.CreditBooking)) *CreditBookingAssert {
	a.t.Helper()
	if a.present() {
		fn(*a.actual)
	}
	return a
}

// entryCheck holds the checks shared by every booking assert.
type entryCheck struct {
	described
	t     TestingT
	entry model.BookingEntry
}

func checkEntry(t TestingT, d described, e model.BookingEntry) entryCheck {
	return entryCheck{described: d, t: t, entry: e}
}

func (c entryCheck) hasType(want model.BookingType) {
	c.t.Helper()
	assert.Equal(c.t, want, c.entry.Type, c.msg("type"))
}

func (c entryCheck) hasAmount(want decimal.Decimal) {
	c.t.Helper()
	assert.True(c.t, want.Equal(c.entry.Amount),
		c.msg("expected amount %s but was %s", want.String(), c.entry.Amount.String()))
}

func (c entryCheck) hasReason(want string) {
	c.t.Helper()
	assert.Equal(c.t, want, c.entry.Reason, c.msg("reason"))
}

func (c entryCheck) hasDateBetween(from, to time.Time) {
	c.t.Helper()
	assert.WithinRange(c.t, c.entry.Date, from, to, c.msg("date"))
}
