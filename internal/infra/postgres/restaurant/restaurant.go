package infra_postgres_restaurant

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/babmate/core/internal/model"
)

// Driver resolves recommended restaurant ids against local storage and
// precomputes review averages for candidate rows.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type restaurantDTO struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Category string    `db:"category"`
}

func (d *Driver) ByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Restaurant, error) {
	var rows []restaurantDTO

	query := `
		SELECT id, name, category
		FROM restaurants
		WHERE id = ANY($1)
	`

	if err := d.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	restaurants := make([]model.Restaurant, 0, len(rows))
	for _, r := range rows {
		restaurants = append(restaurants, model.Restaurant{
			ID:       r.ID,
			Name:     r.Name,
			Category: r.Category,
		})
	}
	return restaurants, nil
}

func (d *Driver) AvgRatingByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]float64, error) {
	var rows []struct {
		RestaurantID uuid.UUID `db:"restaurant_id"`
		AvgRating    float64   `db:"avg_rating"`
	}

	query := `
		SELECT restaurant_id, AVG(rating) AS avg_rating
		FROM reviews
		WHERE restaurant_id = ANY($1)
		GROUP BY restaurant_id
	`

	if err := d.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	ratings := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		ratings[r.RestaurantID] = r.AvgRating
	}
	return ratings, nil
}
