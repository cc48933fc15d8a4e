// Package assertions is a fluent assertion DSL for accounts and bookings.
// Failures are reported through testify's assert package, so a failed
// check marks the test failed and the chain continues.
//
//	assertions.AssertThat(t, &acct).DescribedAs("account").
//		IsNotNil().
//		HasBalance(decimal.RequireFromString("0.01"))
package assertions

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// TestingT is the subset of testing.TB the assertions report to.
type TestingT interface {
	assert.TestingT
	Helper()
}

// described carries the label printed in front of failure messages.
type described struct {
	description string
}

func (d described) msg(format string, args ...any) string {
	m := fmt.Sprintf(format, args...)
	if d.description == "" {
		return m
	}
	return "[" + d.description + "] " + m
}

// child derives the label of a nested subject, e.g. "account" -> "account:bookings".
func (d described) child(name string) described {
	if d.description == "" {
		return described{description: name}
	}
	return described{description: d.description + ":" + name}
}
