package trading

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
)

// generateAccounts opens one account per base record for random users.
// The available balance never exceeds the balance.
func (g *Generator) generateAccounts(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	f := g.faker
	accounts := make([]Account, 0, g.records)

	for range g.records {
		balance := f.Decimal(1000, 100000, 2)
		accounts = append(accounts, Account{
			AccountID:        f.UUID(),
			UserID:           datagen.Choose(f, g.users).UserID,
			AccountNumber:    fmt.Sprintf("ACC%d", f.Int(100000, 999999)),
			AccountType:      datagen.Choose(f, accountTypes),
			CurrencyCode:     datagen.Choose(f, currencies),
			Balance:          balance,
			AvailableBalance: scale(balance, f.Decimal(0.9, 1, 2), 2),
			CreatedAt:        f.Timestamp(),
			LastUpdated:      f.Timestamp(),
			Status:           datagen.Choose(f, accountStatuses),
			BrokerAccountID: g.maybeText(0.7, 100, func() string {
				return "BR" + f.Digits(6)
			}),
			LeverageRatio:   decimal.NewFromInt(datagen.Choose(f, leverageChoices)),
			MarginCallLevel: f.Decimal(50, 80, 2),
			StopOutLevel:    f.Decimal(20, 40, 2),
			CreditLimit:     g.maybeDecimal(0.3, 0, 10000, 2),
		})
	}

	if err := save(ctx, g, "accounts", accounts); err != nil {
		return 0, err
	}
	g.accounts = accounts
	return len(accounts), nil
}
