// Package builder provides fixture builders for accounts and creditors.
//
//	acct := builder.Account(builder.AnyAccount()).
//		Balance(decimal.RequireFromString("100.00"), builder.ResultingFrom(3).Bookings()).
//		Build()
package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expressivetesting/accounting/internal/id"
	"github.com/expressivetesting/accounting/internal/model"
)

// AccountSpec is the starting point for an AccountBuilder.
type AccountSpec struct {
	ID     string
	Holder string
}

// AnyAccount returns a spec with a random account ID and a fixed holder.
func AnyAccount() AccountSpec {
	return AccountSpec{
		ID:     "ACC-" + uuid.NewString()[:8],
		Holder: "Erika Mustermann",
	}
}

// BookingSpecification says how many bookings produce a balance.
type BookingSpecification struct {
	count int
}

// ResultingFrom starts a BookingSpecification for n bookings.
func ResultingFrom(n int) BookingSpecification {
	return BookingSpecification{count: n}
}

// Booking reads as ResultingFrom(1).Booking().
func (s BookingSpecification) Booking() BookingSpecification { return s }

// Bookings reads as ResultingFrom(3).Bookings().
func (s BookingSpecification) Bookings() BookingSpecification { return s }

// AccountBuilder builds consistent model.Account fixtures.
type AccountBuilder struct {
	spec     AccountSpec
	balance  decimal.Decimal
	count    int
	extra    []model.Booking
	now      time.Time
	interval time.Duration
}

// Account starts a builder from spec.
func Account(spec AccountSpec) *AccountBuilder {
	return &AccountBuilder{
		spec:     spec,
		balance:  decimal.Zero,
		now:      time.Now(),
		interval: 24 * time.Hour,
	}
}

// ID overrides the account ID.
func (b *AccountBuilder) ID(accountID string) *AccountBuilder {
	b.spec.ID = accountID
	return b
}

// Holder overrides the account holder.
func (b *AccountBuilder) Holder(holder string) *AccountBuilder {
	b.spec.Holder = holder
	return b
}

// Balance sets the balance the generated bookings must sum to.
func (b *AccountBuilder) Balance(balance decimal.Decimal, from BookingSpecification) *AccountBuilder {
	b.balance = balance
	b.count = from.count
	return b
}

// WithBookings appends explicit bookings after the generated ones. Their
// signed amounts are added to the balance.
func (b *AccountBuilder) WithBookings(bookings ...model.Booking) *AccountBuilder {
	b.extra = append(b.extra, bookings...)
	return b
}

// Now sets the reference time; generated bookings are dated before it.
func (b *AccountBuilder) Now(now time.Time) *AccountBuilder {
	b.now = now
	return b
}

// Build returns the account. It panics if the balance cannot be produced
// by the requested number of bookings, which is a broken fixture.
func (b *AccountBuilder) Build() model.Account {
	if b.count < 0 {
		panic(fmt.Sprintf("builder: negative booking count %d", b.count))
	}
	if b.count == 0 && !b.balance.IsZero() {
		panic(fmt.Sprintf("builder: balance %s needs at least one booking", b.balance))
	}

	acct := model.Account{
		ID:      b.spec.ID,
		Holder:  b.spec.Holder,
		Balance: decimal.Zero,
	}

	amounts := splitBalance(b.balance, b.count)
	start := b.now.Add(-time.Duration(b.count+1) * b.interval)
	for i, amt := range amounts {
		bookingID := id.FormatBookingID(acct.ID, i+1)
		date := start.Add(time.Duration(i) * b.interval)
		if amt.IsNegative() {
			acct = acct.WithBooking(model.NewCreditBooking(bookingID, amt.Neg(), "Fixture", date, AnyCreditor()))
			continue
		}
		acct = acct.WithBooking(model.NewDebitBooking(bookingID, amt, "Fixture", date))
	}

	for _, bk := range b.extra {
		acct = acct.WithBooking(bk)
	}
	return acct
}

// splitBalance returns n positive booking amounts of at least one cent
// that sum to balance. A non-positive balance is reached with a closing
// negative amount. The result has n elements.
func splitBalance(balance decimal.Decimal, n int) []decimal.Decimal {
	if n == 0 {
		return nil
	}

	cent := decimal.New(1, -2)
	if balance.IsPositive() && balance.GreaterThanOrEqual(cent.Mul(decimal.NewFromInt(int64(n)))) {
		return evenSplit(balance, n)
	}

	if n == 1 {
		if !balance.IsNegative() {
			panic(fmt.Sprintf("builder: balance %s cannot result from 1 booking", balance))
		}
		return []decimal.Decimal{balance}
	}

	// n-1 deposits of 10.00 followed by one payment down to balance.
	deposit := decimal.NewFromInt(10)
	deposits := deposit.Mul(decimal.NewFromInt(int64(n - 1)))
	out := make([]decimal.Decimal, 0, n)
	for i := 0; i < n-1; i++ {
		out = append(out, deposit)
	}
	return append(out, balance.Sub(deposits))
}

// evenSplit divides balance into n cent-precise parts; the remainder goes
// to the last part.
func evenSplit(balance decimal.Decimal, n int) []decimal.Decimal {
	part := balance.DivRound(decimal.NewFromInt(int64(n)), 2).Truncate(2)
	if part.Mul(decimal.NewFromInt(int64(n))).GreaterThan(balance) {
		part = part.Sub(decimal.New(1, -2))
	}
	out := make([]decimal.Decimal, n)
	rest := balance
	for i := 0; i < n-1; i++ {
		out[i] = part
		rest = rest.Sub(part)
	}
	out[n-1] = rest
	return out
}
