package statement

import (
	"bytes"
	"strings"
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

var vattenfall = model.Creditor{Name: "Vattenfall Europe", ReferenceID: "VE1234"}

func testAccount() model.Account {
	acct := model.Account{ID: "ACC-1"}
	acct = acct.WithBooking(model.NewDebitBooking("ACC-1-001", dec("100.00"), "Gehalt", time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)))
	acct = acct.WithBooking(model.NewCreditBooking("ACC-1-002", dec("99.99"), "Strom Abschlag, Januar", time.Date(2025, 1, 2, 9, 30, 15, 500, time.UTC), vattenfall))
	return acct
}

func TestRoundTrip(t *testing.T) {
	acct := testAccount()

	var buf bytes.Buffer
	require.NoError(t, WriteAccount(&buf, acct, 2))

	got, err := ReadAccount(&buf)
	require.NoError(t, err)

	assert.Equal(t, "ACC-1", got.ID)
	assert.True(t, dec("0.01").Equal(got.Balance), "balance = %s", got.Balance)
	require.Len(t, got.Bookings, 2)

	debit, ok := got.Bookings[0].(model.DebitBooking)
	require.True(t, ok)
	assert.Equal(t, "Gehalt", debit.Reason)

	credit, ok := got.Bookings[1].(model.CreditBooking)
	require.True(t, ok)
	assert.Equal(t, "ACC-1-002", credit.ID)
	assert.Equal(t, vattenfall, credit.Creditor)
	assert.Equal(t, "Strom Abschlag, Januar", credit.Reason)
	assert.True(t, credit.Date.Equal(acct.Bookings[1].Entry().Date))
	assert.Empty(t, got.Validate())
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccount(&buf, testAccount(), 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "ACC-1,ACC-1-001,2025-01-01T08:00:00Z,debit,100.00,Gehalt,,", lines[1])
	assert.Equal(t, `ACC-1,ACC-1-002,2025-01-02T09:30:15.0000005Z,credit,99.99,"Strom Abschlag, Januar",Vattenfall Europe,VE1234`, lines[2])
}

func TestReadAccount_Empty(t *testing.T) {
	got, err := ReadAccount(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got.Bookings)

	got, err = ReadAccount(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got.Bookings)
	assert.True(t, got.Balance.IsZero())
}

func TestReadAccount_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad date", "ACC,ACC-001,yesterday,debit,1.00,x,,", "parsing date"},
		{"bad amount", "ACC,ACC-001,2025-01-01T00:00:00Z,debit,lots,x,,", "parsing amount"},
		{"bad type", "ACC,ACC-001,2025-01-01T00:00:00Z,refund,1.00,x,,", `unknown booking type "refund"`},
		{"debit with creditor", "ACC,ACC-001,2025-01-01T00:00:00Z,debit,1.00,x,Vattenfall Europe,VE1234", "has a creditor"},
		{"field count", "ACC,ACC-001,2025-01-01T00:00:00Z,debit", "wrong number of fields"},
		{"malformed booking id", "ACC,ACC,2025-01-01T00:00:00Z,debit,1.00,x,,", "invalid booking ID format"},
		{"foreign booking id", "ACC,OTHER-001,2025-01-01T00:00:00Z,debit,1.00,x,,", `booking OTHER-001 does not belong to account "ACC"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAccount(strings.NewReader(Header + "\n" + tt.row + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadAccount_MixedAccounts(t *testing.T) {
	in := Header + "\n" +
		"ACC-1,ACC-1-001,2025-01-01T00:00:00Z,debit,1.00,x,,\n" +
		"ACC-2,ACC-2-001,2025-01-02T00:00:00Z,debit,1.00,x,,\n"
	_, err := ReadAccount(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row 3: account "ACC-2" does not match "ACC-1"`)
}

func TestWriteScale(t *testing.T) {
	acct := model.Account{ID: "ACC-1"}
	acct = acct.WithBooking(model.NewDebitBooking("ACC-1-001", dec("1.005"), "Zinsen", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	acct = acct.WithBooking(model.NewDebitBooking("ACC-1-002", dec("2"), "Zinsen", time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))

	tests := []struct {
		scale     int32
		wantFirst string
		wantLast  string
	}{
		{3, "1.005", "2.000"},
		{0, "1.005", "2"},
		{2, "1.005", "2.00"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteAccount(&buf, acct, tt.scale))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, tt.wantFirst, strings.Split(lines[1], ",")[4], "scale %d", tt.scale)
		assert.Equal(t, tt.wantLast, strings.Split(lines[2], ",")[4], "scale %d", tt.scale)

		got, err := ReadAccount(&buf)
		require.NoError(t, err)
		assert.True(t, dec("3.005").Equal(got.Balance), "scale %d: balance = %s", tt.scale, got.Balance)
	}
}
