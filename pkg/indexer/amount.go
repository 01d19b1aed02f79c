package indexer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountDecimal parses the transfer amount without losing precision.
func (t TokenTransfer) AmountDecimal() (decimal.Decimal, error) {
	return parseAmount(t.Amount)
}

// AmountDecimal parses the balance amount without losing precision.
func (b TokenBalance) AmountDecimal() (decimal.Decimal, error) {
	return parseAmount(b.Amount)
}

// SumAmounts adds the amounts of transfers. It fails on the first amount that
// is not a decimal string.
func SumAmounts(transfers []TokenTransfer) (decimal.Decimal, error) {
	total := decimal.Zero
	for index, transfer := range transfers {
		amount, err := transfer.AmountDecimal()
		if err != nil {
			return decimal.Zero, fmt.Errorf("transfer %d: %w", index, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return amount, nil
}
