// README: Venue store loads the catalog from PostgreSQL.
package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEmptyCatalog = errors.New("venue catalog is empty")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadCatalog reads every venue in position order. ErrEmptyCatalog means the
// caller should use DefaultCatalog.
func (s *Store) LoadCatalog(ctx context.Context) (*Catalog, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, address, lat, lng, category
		FROM venues
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query venues: %w", err)
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		var category string
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Coordinate.Lat, &v.Coordinate.Lng, &category); err != nil {
			return nil, fmt.Errorf("scan venues: %w", err)
		}
		v.Category = Category(category)
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read venues: %w", err)
	}
	if len(venues) == 0 {
		return nil, ErrEmptyCatalog
	}
	return NewCatalog(venues)
}
