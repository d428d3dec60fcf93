package accounting

import (
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of fractional digits monetary amounts
// carry through storage and computation (minor-currency-unit convention).
const AmountPrecision = 2

// NetBalance computes the signed net balance of a set of transactions:
// the sum of income amounts minus the sum of expense amounts. It is a
// pure function and independent of transaction order.
func NetBalance(transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range transactions {
		if txn.Kind == domain.Income {
			balance = balance.Add(txn.Amount)
		} else {
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// NormalizeAmount rounds an amount to the fixed monetary precision.
// Amounts are normalized once at the service boundary so that stored
// values and computed balances round-trip exactly.
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPrecision)
}
