// README: Pricing store loads surge and airport tables from PostgreSQL.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEmptyRules = errors.New("pricing tables are empty")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadRules reads venue_surges and airports once. ErrEmptyRules means both
// tables are empty and the caller should use DefaultRules.
func (s *Store) LoadRules(ctx context.Context) (Rules, error) {
	rows, err := s.db.Query(ctx, `
		SELECT venue_name, multiplier, is_event_venue
		FROM venue_surges
		ORDER BY venue_name`)
	if err != nil {
		return Rules{}, fmt.Errorf("query venue_surges: %w", err)
	}
	var surges []VenueSurge
	for rows.Next() {
		var v VenueSurge
		if err := rows.Scan(&v.Venue, &v.Multiplier, &v.EventVenue); err != nil {
			rows.Close()
			return Rules{}, fmt.Errorf("scan venue_surges: %w", err)
		}
		surges = append(surges, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Rules{}, fmt.Errorf("read venue_surges: %w", err)
	}

	rows, err = s.db.Query(ctx, `
		SELECT name, code, fee
		FROM airports
		ORDER BY priority, code`)
	if err != nil {
		return Rules{}, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()
	var airports []Airport
	for rows.Next() {
		var a Airport
		if err := rows.Scan(&a.Name, &a.Code, &a.Fee); err != nil {
			return Rules{}, fmt.Errorf("scan airports: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return Rules{}, fmt.Errorf("read airports: %w", err)
	}

	if len(surges) == 0 && len(airports) == 0 {
		return Rules{}, ErrEmptyRules
	}
	return NewRules(surges, airports)
}
