package model

import (
	"errors"
	"strings"
)

// Creditor is the counterparty a credit booking pays out to.
type Creditor struct {
	Name        string
	ReferenceID string
}

// Validate reports whether the creditor can be referenced by a booking.
func (c Creditor) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("creditor name is empty"))
	}
	if strings.TrimSpace(c.ReferenceID) == "" {
		errs = append(errs, errors.New("creditor reference id is empty"))
	}
	return errors.Join(errs...)
}

// String returns "Name (ReferenceID)".
func (c Creditor) String() string {
	return c.Name + " (" + c.ReferenceID + ")"
}
