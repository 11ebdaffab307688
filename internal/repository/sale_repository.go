package repository

import (
	"context"
	"database/sql"
	"strings"
)

// SaleRepo reads sold seats from the 'seat_sales' table, one row per sold
// seat index of a match.
type SaleRepo struct{ DB *sql.DB }

func NewSaleRepo(db *sql.DB) *SaleRepo { return &SaleRepo{DB: db} }

// SoldIndices returns the sold seat indices of a match in ascending order.
func (r *SaleRepo) SoldIndices(ctx context.Context, matchID string) ([]int, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, ErrInvalidMatch
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT seat_index FROM seat_sales WHERE match_id=? ORDER BY seat_index",
		matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int, 0, 64)
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, rows.Err()
}
