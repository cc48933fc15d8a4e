// Package statement reads and writes account statements as CSV.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expressivetesting/accounting/internal/id"
	"github.com/expressivetesting/accounting/internal/model"
)

// Header is the CSV header of a statement.
const Header = "account_id,booking_id,date,type,amount,reason,creditor_name,creditor_reference"

const (
	numFields   = 8
	dateFormat  = time.RFC3339Nano
	colAcctID   = 0
	colID       = 1
	colDate     = 2
	colType     = 3
	colAmount   = 4
	colReason   = 5
	colCredName = 6
	colCredRef  = 7
)

// ReadAccount reads a statement. The balance is the sum of the bookings,
// and every booking ID must carry the account ID as its prefix.
// An empty statement yields an account with no ID.
func ReadAccount(r io.Reader) (model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return model.Account{}, fmt.Errorf("reading statement CSV: %w", err)
	}

	var acct model.Account
	if len(records) <= 1 {
		return acct, nil
	}

	for i, rec := range records[1:] {
		b, err := UnmarshalBooking(rec)
		if err != nil {
			return model.Account{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		if i == 0 {
			acct.ID = rec[colAcctID]
		} else if rec[colAcctID] != acct.ID {
			return model.Account{}, fmt.Errorf("row %d: account %q does not match %q", i+2, rec[colAcctID], acct.ID)
		}
		owner, _, err := id.ParseBookingID(rec[colID])
		if err != nil {
			return model.Account{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		if owner != acct.ID {
			return model.Account{}, fmt.Errorf("row %d: booking %s does not belong to account %q", i+2, rec[colID], acct.ID)
		}
		acct = acct.WithBooking(b)
	}
	return acct, nil
}

// WriteAccount writes a statement, header included. Amounts are padded to
// scale decimal places; digits beyond scale are kept, never rounded away.
func WriteAccount(w io.Writer, acct model.Account, scale int32) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range acct.Bookings {
		if err := cw.Write(MarshalBooking(acct.ID, b, scale)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalBooking converts a booking to a CSV row.
func MarshalBooking(accountID string, b model.Booking, scale int32) []string {
	e := b.Entry()
	row := make([]string, numFields)
	row[colAcctID] = accountID
	row[colID] = e.ID
	row[colDate] = e.Date.Format(dateFormat)
	row[colType] = string(e.Type)
	row[colAmount] = formatAmount(e.Amount, scale)
	row[colReason] = e.Reason
	if cb, ok := b.(model.CreditBooking); ok {
		row[colCredName] = cb.Creditor.Name
		row[colCredRef] = cb.Creditor.ReferenceID
	}
	return row
}

func formatAmount(d decimal.Decimal, scale int32) string {
	if !d.Equal(d.Round(scale)) {
		return d.String()
	}
	return d.StringFixed(scale)
}

// UnmarshalBooking converts a CSV row to a CreditBooking or DebitBooking.
func UnmarshalBooking(record []string) (model.Booking, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	switch t := model.BookingType(record[colType]); t {
	case model.BookingTypeCredit:
		creditor := model.Creditor{Name: record[colCredName], ReferenceID: record[colCredRef]}
		return model.NewCreditBooking(record[colID], amount, record[colReason], date, creditor), nil
	case model.BookingTypeDebit:
		if record[colCredName] != "" || record[colCredRef] != "" {
			return nil, fmt.Errorf("debit booking %s has a creditor", record[colID])
		}
		return model.NewDebitBooking(record[colID], amount, record[colReason], date), nil
	default:
		return nil, fmt.Errorf("unknown booking type %q", t)
	}
}
