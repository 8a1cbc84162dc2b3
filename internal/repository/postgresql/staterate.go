package postgresql

import (
	"context"
	"fmt"

	"github.com/eventops/eventops-backend-go/internal/pkg/database"
	"github.com/eventops/eventops-backend-go/internal/pkg/staterate"
)

type stateRateRepository struct {
	db *database.DB
}

func NewStateRateRepository(db *database.DB) *stateRateRepository {
	return &stateRateRepository{db: db}
}

// GetAll loads operator-configured wage rule overrides, merged over the
// built-in table at boot.
func (r *stateRateRepository) GetAll(ctx context.Context) (map[string]staterate.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT state_code, base_rate, rest_break_applies, flat_commission
		FROM state_wage_rules
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get state wage rules: %w", err)
	}
	defer rows.Close()

	rules := make(map[string]staterate.Rule)
	for rows.Next() {
		var code string
		var rule staterate.Rule
		if err := rows.Scan(&code, &rule.BaseRate, &rule.RestBreakApplies, &rule.FlatCommission); err != nil {
			return nil, fmt.Errorf("failed to scan state wage rule: %w", err)
		}
		rules[staterate.Normalize(code)] = rule
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read state wage rule rows: %w", err)
	}

	return rules, nil
}
