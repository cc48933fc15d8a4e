package builder

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expressivetesting/accounting/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccount_BalanceResultingFrom(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		count   int
	}{
		{"one booking", "100.00", 1},
		{"three bookings", "100.00", 3},
		{"uneven split", "0.05", 3},
		{"fewer cents than bookings", "0.02", 3},
		{"zero", "0.00", 2},
		{"negative single", "-5.00", 1},
		{"negative several", "-12.34", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := Account(AnyAccount()).
				Balance(dec(tt.balance), ResultingFrom(tt.count).Bookings()).
				Build()

			require.Len(t, acct.Bookings, tt.count)
			assert.True(t, dec(tt.balance).Equal(acct.Balance), "balance = %s", acct.Balance)
			assert.Empty(t, acct.Validate())
		})
	}
}

func TestAccount_BookingsDatedBeforeNow(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	acct := Account(AnyAccount()).
		Now(now).
		Balance(dec("100.00"), ResultingFrom(3).Bookings()).
		Build()

	for _, b := range acct.Bookings {
		assert.True(t, b.Entry().Date.Before(now), "booking %s dated %s", b.Entry().ID, b.Entry().Date)
	}
}

func TestAccount_IDsAndHolder(t *testing.T) {
	acct := Account(AnyAccount()).
		ID("ACC-42").
		Holder("Max Mustermann").
		Balance(dec("10.00"), ResultingFrom(2).Bookings()).
		Build()

	assert.Equal(t, "ACC-42", acct.ID)
	assert.Equal(t, "Max Mustermann", acct.Holder)
	assert.Equal(t, "ACC-42-001", acct.Bookings[0].Entry().ID)
	assert.Equal(t, "ACC-42-002", acct.Bookings[1].Entry().ID)
}

func TestAccount_WithBookings(t *testing.T) {
	extra := model.NewCreditBooking("x", dec("3.00"), "Miete", time.Now(), AnyCreditor())
	acct := Account(AnyAccount()).
		Balance(dec("10.00"), ResultingFrom(1).Booking()).
		WithBookings(extra).
		Build()

	require.Len(t, acct.Bookings, 2)
	assert.True(t, dec("7.00").Equal(acct.Balance))
	assert.Equal(t, extra, acct.LastBooking())
}

func TestAccount_Empty(t *testing.T) {
	acct := Account(AnyAccount()).Build()
	assert.Empty(t, acct.Bookings)
	assert.True(t, acct.Balance.IsZero())
}

func TestAccount_ImpossibleBalancePanics(t *testing.T) {
	assert.Panics(t, func() {
		Account(AnyAccount()).Balance(dec("1.00"), ResultingFrom(0).Bookings()).Build()
	})
	assert.Panics(t, func() {
		Account(AnyAccount()).Balance(dec("0"), ResultingFrom(1).Booking()).Build()
	})
}

func TestAnyAccount_Unique(t *testing.T) {
	assert.NotEqual(t, AnyAccount().ID, AnyAccount().ID)
}

func TestCreditor(t *testing.T) {
	c := Creditor().Name("Vattenfall Europe").ReferenceID("VE1234").Build()
	assert.Equal(t, model.Creditor{Name: "Vattenfall Europe", ReferenceID: "VE1234"}, c)
}

func TestAnyCreditor(t *testing.T) {
	c := AnyCreditor()
	require.NoError(t, c.Validate())
	assert.NotEqual(t, c.ReferenceID, AnyCreditor().ReferenceID)
}
