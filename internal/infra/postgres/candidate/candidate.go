package infra_postgres_candidate

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/babmate/core/internal/model"
	usecase_vote "github.com/babmate/core/internal/usecase/vote"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type candidateDTO struct {
	ID           uuid.UUID `db:"id"`
	VoteID       uuid.UUID `db:"vote_id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Name         string    `db:"name"`
	Position     int       `db:"ordinal"`
	Distance     int       `db:"distance_m"`
	Rating       float64   `db:"rating"`
	AIScore      float64   `db:"ai_score"`
	LikeCount    int       `db:"like_count"`
	DislikeCount int       `db:"dislike_count"`
	NeutralCount int       `db:"neutral_count"`
	FinalRank    *int      `db:"final_rank"`
}

func (d candidateDTO) toModel() model.Candidate {
	return model.Candidate{
		ID:           d.ID,
		VoteID:       d.VoteID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Position:     d.Position,
		Distance:     d.Distance,
		Rating:       d.Rating,
		AIScore:      d.AIScore,
		LikeCount:    d.LikeCount,
		DislikeCount: d.DislikeCount,
		NeutralCount: d.NeutralCount,
		FinalRank:    d.FinalRank,
	}
}

const candidateColumns = `
	id, vote_id, restaurant_id, name, ordinal, distance_m,
	rating, ai_score, like_count, dislike_count, neutral_count, final_rank
`

func (d *Driver) ByVote(ctx context.Context, voteID uuid.UUID) ([]model.Candidate, error) {
	var rows []candidateDTO

	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE vote_id = $1
		ORDER BY ordinal
	`

	if err := d.db.SelectContext(ctx, &rows, query, voteID); err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(rows))
	for _, r := range rows {
		candidates = append(candidates, r.toModel())
	}
	return candidates, nil
}

func (d *Driver) ByIDAndVote(ctx context.Context, candidateID, voteID uuid.UUID) (model.Candidate, error) {
	var row candidateDTO

	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE id = $1 AND vote_id = $2
	`

	err := d.db.GetContext(ctx, &row, query, candidateID, voteID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Candidate{}, usecase_vote.ErrCandidateNotFound
		}
		return model.Candidate{}, err
	}

	return row.toModel(), nil
}

func (d *Driver) IDsByVote(ctx context.Context, voteID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	var found []uuid.UUID

	query := `
		SELECT id
		FROM candidates
		WHERE vote_id = $1 AND id = ANY($2)
	`

	if err := d.db.SelectContext(ctx, &found, query, voteID, pq.Array(ids)); err != nil {
		return nil, err
	}
	return found, nil
}

func (d *Driver) ExistsByVote(ctx context.Context, voteID uuid.UUID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE vote_id = $1)`

	if err := d.db.GetContext(ctx, &exists, query, voteID); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Driver) Top3(ctx context.Context, voteID uuid.UUID) ([]model.Candidate, error) {
	var rows []candidateDTO

	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE vote_id = $1 AND final_rank IS NOT NULL
		ORDER BY final_rank
	`

	if err := d.db.SelectContext(ctx, &rows, query, voteID); err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(rows))
	for _, r := range rows {
		candidates = append(candidates, r.toModel())
	}
	return candidates, nil
}

func (d *Driver) DeleteByVote(ctx context.Context, voteID uuid.UUID) error {
	query := `DELETE FROM candidates WHERE vote_id = $1`

	_, err := d.db.ExecContext(ctx, query, voteID)
	return err
}

// ReplaceForRounds rewrites the candidate sets of both rounds in one
// transaction: delete then insert, never a partial merge. Either both
// rounds get their new candidates or neither does.
func (d *Driver) ReplaceForRounds(ctx context.Context, round1VoteID, round2VoteID uuid.UUID, round1, round2 []model.Candidate) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery := `DELETE FROM candidates WHERE vote_id = $1`
	if _, err := tx.ExecContext(ctx, deleteQuery, round1VoteID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, round2VoteID); err != nil {
		return err
	}

	if err := insertCandidates(ctx, tx, round1); err != nil {
		return err
	}
	if err := insertCandidates(ctx, tx, round2); err != nil {
		return err
	}

	return tx.Commit()
}

func insertCandidates(ctx context.Context, tx *sqlx.Tx, candidates []model.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	query := `
		INSERT INTO candidates (
			id, vote_id, restaurant_id, name, ordinal, distance_m,
			rating, ai_score, like_count, dislike_count, neutral_count, final_rank
		)
		VALUES (
			:id, :vote_id, :restaurant_id, :name, :ordinal, :distance_m,
			:rating, :ai_score, :like_count, :dislike_count, :neutral_count, :final_rank
		)
	`

	dtos := make([]candidateDTO, 0, len(candidates))
	for _, c := range candidates {
		dtos = append(dtos, candidateDTO{
			ID:           c.ID,
			VoteID:       c.VoteID,
			RestaurantID: c.RestaurantID,
			Name:         c.Name,
			Position:     c.Position,
			Distance:     c.Distance,
			Rating:       c.Rating,
			AIScore:      c.AIScore,
			LikeCount:    c.LikeCount,
			DislikeCount: c.DislikeCount,
			NeutralCount: c.NeutralCount,
			FinalRank:    c.FinalRank,
		})
	}

	_, err := tx.NamedExecContext(ctx, query, dtos)
	return err
}

// ApplyResults writes the counted tallies and the final ranks in one
// transaction so a reader never sees half-counted results.
func (d *Driver) ApplyResults(ctx context.Context, voteID uuid.UUID, results []model.CandidateResult) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE candidates
		SET like_count = $1, dislike_count = $2, neutral_count = $3, final_rank = $4
		WHERE id = $5 AND vote_id = $6
	`

	for _, r := range results {
		if _, err := tx.ExecContext(ctx, query,
			r.Tally.Like, r.Tally.Dislike, r.Tally.Neutral, r.FinalRank, r.CandidateID, voteID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
