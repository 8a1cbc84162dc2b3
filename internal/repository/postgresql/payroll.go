package postgresql

import (
	"context"
	"fmt"

	"github.com/eventops/eventops-backend-go/internal/domain/payroll"
	"github.com/eventops/eventops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payroll.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetVendorPaymentRows(ctx context.Context, eventID string) ([]payroll.VendorPaymentRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, event_id, vendor_id,
			   first_in, last_out,
			   first_meal_start, last_meal_end,
			   second_meal_start, second_meal_end,
			   created_at, updated_at
		FROM vendor_payment_rows
		WHERE event_id = $1
		ORDER BY vendor_id
	`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor payment rows: %w", err)
	}
	defer rows.Close()

	var result []payroll.VendorPaymentRow
	for rows.Next() {
		var row payroll.VendorPaymentRow
		if err := rows.Scan(
			&row.ID, &row.EventID, &row.VendorID,
			&row.Span.FirstIn, &row.Span.LastOut,
			&row.Span.FirstMealStart, &row.Span.LastMealEnd,
			&row.Span.SecondMealStart, &row.Span.SecondMealEnd,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vendor payment row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vendor payment rows: %w", err)
	}

	return result, nil
}

func (r *paymentRepository) GetAdjustments(ctx context.Context, eventID string) (map[string]payroll.PaymentAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	// Latest adjustment per vendor wins.
	query := `
		SELECT DISTINCT ON (vendor_id)
			   id, event_id, vendor_id, adjustment, reimbursement, note,
			   created_by, created_at, updated_at
		FROM payment_adjustments
		WHERE event_id = $1
		ORDER BY vendor_id, updated_at DESC
	`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment adjustments: %w", err)
	}
	defer rows.Close()

	result := make(map[string]payroll.PaymentAdjustment)
	for rows.Next() {
		var adj payroll.PaymentAdjustment
		if err := rows.Scan(
			&adj.ID, &adj.EventID, &adj.VendorID, &adj.Adjustment, &adj.Reimbursement,
			&adj.Note, &adj.CreatedBy, &adj.CreatedAt, &adj.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment adjustment: %w", err)
		}
		result[adj.VendorID] = adj
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payment adjustment rows: %w", err)
	}

	return result, nil
}

func (r *paymentRepository) UpsertAdjustment(ctx context.Context, adj payroll.PaymentAdjustment) (payroll.PaymentAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	// The (event_id, vendor_id) unique constraint serializes concurrent
	// writes per key so edits cannot lose updates.
	query := `
		INSERT INTO payment_adjustments (id, event_id, vendor_id, adjustment, reimbursement, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_id, vendor_id) DO UPDATE SET
			adjustment = EXCLUDED.adjustment,
			reimbursement = EXCLUDED.reimbursement,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING id, event_id, vendor_id, adjustment, reimbursement, note,
			created_by, created_at, updated_at
	`

	var saved payroll.PaymentAdjustment
	err := q.QueryRow(ctx, query,
		uuid.New().String(), adj.EventID, adj.VendorID, adj.Adjustment, adj.Reimbursement, adj.Note, adj.CreatedBy,
	).Scan(
		&saved.ID, &saved.EventID, &saved.VendorID, &saved.Adjustment, &saved.Reimbursement,
		&saved.Note, &saved.CreatedBy, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return payroll.PaymentAdjustment{}, fmt.Errorf("failed to upsert payment adjustment: %w", err)
	}

	return saved, nil
}
