package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBookingID returns a booking ID like "ACC-42-003" for the third
// booking on account "ACC-42".
func FormatBookingID(accountID string, seq int) string {
	return fmt.Sprintf("%s-%03d", accountID, seq)
}

// ParseBookingID splits "ACC-42-003" into account ID and sequence.
func ParseBookingID(id string) (accountID string, seq int, err error) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", 0, fmt.Errorf("invalid booking ID format: %q", id)
	}

	seq, err = strconv.Atoi(id[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in booking ID %q: %w", id, err)
	}
	if seq < 1 {
		return "", 0, fmt.Errorf("invalid sequence in booking ID %q: must be >= 1", id)
	}

	return id[:i], seq, nil
}
