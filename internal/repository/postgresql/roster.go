package postgresql

import (
	"context"
	"fmt"

	"github.com/eventops/eventops-backend-go/internal/domain/roster"
	"github.com/eventops/eventops-backend-go/internal/pkg/database"
)

type rosterRepository struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) GetByEventID(ctx context.Context, eventID string) ([]roster.TeamMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT vendor_id, event_id, name, division, status, created_at, updated_at
		FROM event_team_members
		WHERE event_id = $1
		ORDER BY name, vendor_id
	`

	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster for event: %w", err)
	}
	defer rows.Close()

	var members []roster.TeamMember
	for rows.Next() {
		var m roster.TeamMember
		var rawDivision, rawStatus string
		if err := rows.Scan(
			&m.VendorID, &m.EventID, &m.Name, &rawDivision, &rawStatus,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		// Division is resolved to the closed variant set here, once;
		// nothing downstream touches the raw string again.
		m.Division = roster.ParseDivision(rawDivision)
		m.Status = roster.MemberStatus(rawStatus)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster rows: %w", err)
	}

	return members, nil
}
