package indexer

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSumAmounts(t *testing.T) {
	transfers := []TokenTransfer{
		{Amount: "100000000000000000000.000000000000000001"},
		{Amount: "0.000000000000000002"},
	}

	total, err := SumAmounts(transfers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := decimal.RequireFromString("100000000000000000000.000000000000000003")
	if !total.Equal(expected) {
		t.Fatalf("expected %s, got %s", expected, total)
	}
}

func TestSumAmountsRejectsInvalidAmount(t *testing.T) {
	_, err := SumAmounts([]TokenTransfer{{Amount: "1"}, {Amount: "one"}})
	if err == nil {
		t.Fatal("expected error for invalid amount")
	}
}

func TestBalanceAmountDecimal(t *testing.T) {
	amount, err := TokenBalance{Amount: "42.50"}.AmountDecimal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount.String() != "42.5" {
		t.Fatalf("unexpected amount: %s", amount)
	}
}
