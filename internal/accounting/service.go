// Package accounting applies bookings to accounts.
package accounting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expressivetesting/accounting/internal/id"
	"github.com/expressivetesting/accounting/internal/model"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidCreditor   = errors.New("invalid creditor")
	ErrEmptyReason       = errors.New("reason is empty")
	ErrInconsistent      = errors.New("account is inconsistent")
	ErrMissingAccountID  = errors.New("account has no ID")
	ErrBookingDate       = errors.New("booking date precedes the last booking")
)

// DefaultScale is the number of decimal places amounts are rounded to.
const DefaultScale = 2

// Service books credits and debits onto accounts. It holds no account
// state; every call returns a new Account.
type Service struct {
	now    func() time.Time
	scale  int32
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used to date new bookings.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithScale sets the number of decimal places amounts are rounded to.
func WithScale(scale int32) Option {
	return func(s *Service) { s.scale = scale }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		now:   time.Now,
		scale: DefaultScale,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Credit pays amount from account to creditor. The returned account holds
// the original bookings plus one CreditBooking at the end, and its balance
// is reduced by amount. The balance is not required to cover the credit.
// The new booking is numbered by its position and dated by the service
// clock, which must not be behind the last booking.
func (s *Service) Credit(ctx context.Context, account model.Account, amount decimal.Decimal, creditor model.Creditor, reason string) (model.Account, error) {
	if err := creditor.Validate(); err != nil {
		return model.Account{}, fmt.Errorf("%w: %w", ErrInvalidCreditor, err)
	}

	return s.book(ctx, account, amount, reason, func(bookingID string, amount decimal.Decimal, date time.Time) model.Booking {
		return model.NewCreditBooking(bookingID, amount, reason, date, creditor)
	})
}

// Debit books amount onto account. The returned account holds the original
// bookings plus one DebitBooking at the end, and its balance is increased
// by amount.
func (s *Service) Debit(ctx context.Context, account model.Account, amount decimal.Decimal, reason string) (model.Account, error) {
	return s.book(ctx, account, amount, reason, func(bookingID string, amount decimal.Decimal, date time.Time) model.Booking {
		return model.NewDebitBooking(bookingID, amount, reason, date)
	})
}

type newBookingFunc func(bookingID string, amount decimal.Decimal, date time.Time) model.Booking

func (s *Service) book(ctx context.Context, account model.Account, amount decimal.Decimal, reason string, newBooking newBookingFunc) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return model.Account{}, err
	}

	amount = amount.Round(s.scale)
	if !amount.IsPositive() {
		return model.Account{}, fmt.Errorf("%w: got %s", ErrNonPositiveAmount, amount.StringFixed(s.scale))
	}
	if strings.TrimSpace(reason) == "" {
		return model.Account{}, ErrEmptyReason
	}

	if account.ID == "" {
		return model.Account{}, ErrMissingAccountID
	}

	if verrs := account.Validate(); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.Account{}, fmt.Errorf("%w: %s", ErrInconsistent, strings.Join(msgs, "; "))
	}

	date := s.now()
	if last := account.LastBooking(); last != nil && date.Before(last.Entry().Date) {
		return model.Account{}, fmt.Errorf("%w: %s is before %s",
			ErrBookingDate, date.Format(time.RFC3339), last.Entry().Date.Format(time.RFC3339))
	}

	bookingID := id.FormatBookingID(account.ID, len(account.Bookings)+1)
	booking := newBooking(bookingID, amount, date)
	result := account.WithBooking(booking)

	s.logger.DebugContext(ctx, "booking applied",
		slog.String("account_id", account.ID),
		slog.String("booking_id", bookingID),
		slog.String("type", string(booking.Entry().Type)),
		slog.String("amount", amount.StringFixed(s.scale)),
		slog.String("balance", result.Balance.StringFixed(s.scale)),
	)

	return result, nil
}
