package infra_postgres_preference

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/babmate/core/internal/model"
)

// Driver reads the food-category preference mappings that feed the
// aggregated like/dislike signal of a recommendation request.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

func (d *Driver) CategoryNames(ctx context.Context) ([]string, error) {
	var names []string

	query := `
		SELECT name
		FROM food_categories
		ORDER BY name
	`

	if err := d.db.SelectContext(ctx, &names, query); err != nil {
		return nil, err
	}
	return names, nil
}

func (d *Driver) MappingsByMembers(ctx context.Context, memberIDs []uuid.UUID) ([]model.CategoryMapping, error) {
	var rows []struct {
		MemberID uuid.UUID `db:"member_id"`
		Category string    `db:"category"`
		Relation string    `db:"relation"`
	}

	query := `
		SELECT m.member_id, c.name AS category, m.relation
		FROM member_category_mappings m
		JOIN food_categories c ON c.id = m.category_id
		WHERE m.member_id = ANY($1)
	`

	if err := d.db.SelectContext(ctx, &rows, query, pq.Array(memberIDs)); err != nil {
		return nil, err
	}

	mappings := make([]model.CategoryMapping, 0, len(rows))
	for _, r := range rows {
		mappings = append(mappings, model.CategoryMapping{
			MemberID: r.MemberID,
			Category: r.Category,
			Relation: model.PreferenceRelation(r.Relation),
		})
	}
	return mappings, nil
}
