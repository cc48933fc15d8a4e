package builder

import (
	"strings"

	"github.com/google/uuid"

	"github.com/expressivetesting/accounting/internal/model"
)

// CreditorBuilder builds model.Creditor fixtures.
type CreditorBuilder struct {
	creditor model.Creditor
}

// Creditor starts an empty CreditorBuilder.
func Creditor() *CreditorBuilder {
	return &CreditorBuilder{}
}

// Name sets the creditor name.
func (b *CreditorBuilder) Name(name string) *CreditorBuilder {
	b.creditor.Name = name
	return b
}

// ReferenceID sets the creditor reference.
func (b *CreditorBuilder) ReferenceID(ref string) *CreditorBuilder {
	b.creditor.ReferenceID = ref
	return b
}

// Build returns the creditor.
func (b *CreditorBuilder) Build() model.Creditor {
	return b.creditor
}

// AnyCreditor returns a valid creditor with a random reference.
func AnyCreditor() model.Creditor {
	return Creditor().
		Name("Any Creditor GmbH").
		ReferenceID("CR" + strings.ToUpper(uuid.NewString()[:6])).
		Build()
}
