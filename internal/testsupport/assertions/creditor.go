package assertions

import (
	"strconv"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/expressivetesting/accounting/internal/model"
)

// CreditorCondition is a named predicate on a creditor.
type CreditorCondition struct {
	Description string
	Matches     func(model.Creditor) bool
}

// Name matches creditors with exactly this name.
func Name(name string) CreditorCondition {
	return CreditorCondition{
		Description: "name " + strconv.Quote(name),
		Matches:     func(c model.Creditor) bool { return c.Name == name },
	}
}

// ReferenceID matches creditors with exactly this reference.
func ReferenceID(ref string) CreditorCondition {
	return CreditorCondition{
		Description: "referenceId " + strconv.Quote(ref),
		Matches:     func(c model.Creditor) bool { return c.ReferenceID == ref },
	}
}

// AllOf matches when every condition matches. An empty AllOf matches
// everything.
func AllOf(conditions ...CreditorCondition) CreditorCondition {
	descs := make([]string, len(conditions))
	for i, c := range conditions {
		descs[i] = c.Description
	}
	return CreditorCondition{
		Description: "all of [" + strings.Join(descs, ", ") + "]",
		Matches: func(cr model.Creditor) bool {
			for _, c := range conditions {
				if !c.Matches(cr) {
					return false
				}
			}
			return true
		},
	}
}

// CreditorAssert checks a model.Creditor.
type CreditorAssert struct {
	described
	t      TestingT
	actual *model.Creditor
}

// AssertThatCreditor starts a chain of checks on actual.
func AssertThatCreditor(t TestingT, actual model.Creditor) *CreditorAssert {
	return &CreditorAssert{t: t, actual: &actual}
}

// DescribedAs labels failure messages.
func (a *CreditorAssert) DescribedAs(description string) *CreditorAssert {
	a.description = description
	return a
}

func (a *CreditorAssert) present() bool {
	a.t.Helper()
	return assert.NotNil(a.t, a.actual, a.msg("expected a creditor but was nil"))
}

// IsNotNil checks that there is a creditor.
func (a *CreditorAssert) IsNotNil() *CreditorAssert {
	a.t.Helper()
	a.present()
	return a
}

// Has checks the creditor against condition.
func (a *CreditorAssert) Has(condition CreditorCondition) *CreditorAssert {
	a.t.Helper()
	if !a.present() {
		return a
	}
	assert.True(a.t, condition.Matches(*a.actual),
		a.msg("expected creditor %s to have %s", a.actual.String(), condition.Description))
	return a
}

// IsEqualTo compares every field.
func (a *CreditorAssert) IsEqualTo(want model.Creditor) *CreditorAssert {
	a.t.Helper()
	if !a.present() {
		return a
	}
	assert.Equal(a.t, want, *a.actual, a.msg("creditor"))
	return a
}
