// Package entity defines the domain models for the onboarding feature.
package entity

import (
	"fmt"

	"twala_backend/internal/feature/onboarding/domain"
)

// Kind identifies an onboarding prerequisite.
// The declaration order is the display priority.
type Kind int

const (
	KindCustody Kind = iota
	KindTransactions
)

// Kinds lists every prerequisite kind in priority order.
var Kinds = []Kind{KindCustody, KindTransactions}

// KindConfig is the constant presentation record attached to each kind.
type KindConfig struct {
	Title            string
	Description      string
	Icon             string
	ActionLabel      string
	LaterLabel       string
	Destination      string // Route the call-to-action navigates to
	SatisfiedTitle   string // Toast shown once the prerequisite is met
	SatisfiedMessage string
}

var (
	custodyConfig = KindConfig{
		Title:            "Adicione uma conta de custódia",
		Description:      "Para registar transações e acompanhar a sua carteira na BODIVA, associe primeiro a conta de custódia onde os seus títulos estão depositados.",
		Icon:             "landmark",
		ActionLabel:      "Adicionar conta de custódia",
		LaterLabel:       "Decidir mais tarde",
		Destination:      "/custody-accounts/new",
		SatisfiedTitle:   "Conta de custódia adicionada",
		SatisfiedMessage: "Já pode registar as suas transações.",
	}
	transactionsConfig = KindConfig{
		Title:            "Registe a sua primeira transação",
		Description:      "Os indicadores da carteira ficam disponíveis assim que registar pelo menos uma compra ou venda.",
		Icon:             "receipt",
		ActionLabel:      "Registar transação",
		LaterLabel:       "Decidir mais tarde",
		Destination:      "/transactions/new",
		SatisfiedTitle:   "Primeira transação registada",
		SatisfiedMessage: "Os indicadores da sua carteira estão disponíveis.",
	}
)

// Config returns the presentation record of the kind.
func (k Kind) Config() KindConfig {
	switch k {
	case KindCustody:
		return custodyConfig
	case KindTransactions:
		return transactionsConfig
	}
	panic(fmt.Sprintf("onboarding: no config for kind %d", int(k)))
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCustody:
		return "custody"
	case KindTransactions:
		return "transactions"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind parses a wire name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler so kinds can be JSON map keys.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
