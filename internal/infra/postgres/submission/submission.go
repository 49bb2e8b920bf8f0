package infra_postgres_submission

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/babmate/core/internal/model"
)

// Driver stores ballots. Submissions are immutable: inserted once per
// (vote, participant, candidate) and never updated or deleted. Tallies
// are derived from them at counting time, not maintained incrementally.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type submissionDTO struct {
	ID            uuid.UUID `db:"id"`
	VoteID        uuid.UUID `db:"vote_id"`
	ParticipantID uuid.UUID `db:"participant_id"`
	CandidateID   uuid.UUID `db:"candidate_id"`
	Choice        string    `db:"choice"`
}

func (d *Driver) HasSubmitted(ctx context.Context, voteID, participantID uuid.UUID) (bool, error) {
	var exists bool

	query := `
		SELECT EXISTS(
			SELECT 1 FROM submissions
			WHERE vote_id = $1 AND participant_id = $2
		)
	`

	if err := d.db.GetContext(ctx, &exists, query, voteID, participantID); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Driver) InsertBatch(ctx context.Context, voteID, participantID uuid.UUID, ballots []model.Ballot) error {
	if len(ballots) == 0 {
		return nil
	}

	query := `
		INSERT INTO submissions (id, vote_id, participant_id, candidate_id, choice)
		VALUES (:id, :vote_id, :participant_id, :candidate_id, :choice)
	`

	dtos := make([]submissionDTO, 0, len(ballots))
	for _, b := range ballots {
		dtos = append(dtos, submissionDTO{
			ID:            uuid.New(),
			VoteID:        voteID,
			ParticipantID: participantID,
			CandidateID:   b.CandidateID,
			Choice:        string(b.Choice),
		})
	}

	_, err := d.db.NamedExecContext(ctx, query, dtos)
	return err
}

func (d *Driver) CountDistinctParticipants(ctx context.Context, voteID uuid.UUID) (int, error) {
	var count int

	query := `
		SELECT COUNT(DISTINCT participant_id)
		FROM submissions
		WHERE vote_id = $1
	`

	if err := d.db.GetContext(ctx, &count, query, voteID); err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Driver) TalliesByVote(ctx context.Context, voteID uuid.UUID) (map[uuid.UUID]model.Tally, error) {
	var rows []struct {
		CandidateID uuid.UUID `db:"candidate_id"`
		Like        int       `db:"like_count"`
		Dislike     int       `db:"dislike_count"`
		Neutral     int       `db:"neutral_count"`
	}

	query := `
		SELECT
			candidate_id,
			COUNT(*) FILTER (WHERE choice = 'LIKE') AS like_count,
			COUNT(*) FILTER (WHERE choice = 'DISLIKE') AS dislike_count,
			COUNT(*) FILTER (WHERE choice = 'NEUTRAL') AS neutral_count
		FROM submissions
		WHERE vote_id = $1
		GROUP BY candidate_id
	`

	if err := d.db.SelectContext(ctx, &rows, query, voteID); err != nil {
		return nil, err
	}

	tallies := make(map[uuid.UUID]model.Tally, len(rows))
	for _, r := range rows {
		tallies[r.CandidateID] = model.Tally{
			Like:    r.Like,
			Dislike: r.Dislike,
			Neutral: r.Neutral,
		}
	}
	return tallies, nil
}
