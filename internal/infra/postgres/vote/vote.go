package infra_postgres_vote

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/babmate/core/internal/model"
	usecase_vote "github.com/babmate/core/internal/usecase/vote"
)

// Driver persists votes and owns every status transition. Transitions
// that can race are conditional updates on the current status; callers
// learn from the affected-row count whether they won.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type voteDTO struct {
	ID          uuid.UUID  `db:"id"`
	MeetingID   uuid.UUID  `db:"meeting_id"`
	Round       int        `db:"round"`
	Status      string     `db:"status"`
	GeneratedAt *time.Time `db:"generated_at"`
	CountedAt   *time.Time `db:"counted_at"`
}

func (d voteDTO) toModel() model.Vote {
	return model.Vote{
		ID:          d.ID,
		MeetingID:   d.MeetingID,
		Round:       d.Round,
		Status:      model.VoteStatus(d.Status),
		GeneratedAt: d.GeneratedAt,
		CountedAt:   d.CountedAt,
	}
}

func (d *Driver) ByID(ctx context.Context, voteID uuid.UUID) (model.Vote, error) {
	var vote voteDTO

	query := `
		SELECT id, meeting_id, round, status, generated_at, counted_at
		FROM votes
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &vote, query, voteID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Vote{}, usecase_vote.ErrVoteNotFound
		}
		return model.Vote{}, err
	}

	return vote.toModel(), nil
}

func (d *Driver) ByMeetingAndRound(ctx context.Context, meetingID uuid.UUID, round int) (model.Vote, error) {
	var vote voteDTO

	query := `
		SELECT id, meeting_id, round, status, generated_at, counted_at
		FROM votes
		WHERE meeting_id = $1 AND round = $2
	`

	err := d.db.GetContext(ctx, &vote, query, meetingID, round)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Vote{}, usecase_vote.ErrVoteNotFound
		}
		return model.Vote{}, err
	}

	return vote.toModel(), nil
}

// CreatePair inserts both rounds in GENERATING within one transaction.
// The unique (meeting_id, round) constraint makes concurrent creators
// collide here instead of double-generating.
func (d *Driver) CreatePair(ctx context.Context, meetingID uuid.UUID) (model.Vote, model.Vote, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Vote{}, model.Vote{}, err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO votes (id, meeting_id, round, status)
		VALUES ($1, $2, $3, $4)
	`

	v1 := model.Vote{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Round:     model.RoundPrimary,
		Status:    model.VoteStatusGenerating,
	}
	v2 := model.Vote{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Round:     model.RoundReserve,
		Status:    model.VoteStatusGenerating,
	}

	if _, err := tx.ExecContext(ctx, query, v1.ID, v1.MeetingID, v1.Round, string(v1.Status)); err != nil {
		return model.Vote{}, model.Vote{}, err
	}
	if _, err := tx.ExecContext(ctx, query, v2.ID, v2.MeetingID, v2.Round, string(v2.Status)); err != nil {
		return model.Vote{}, model.Vote{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Vote{}, model.Vote{}, err
	}
	return v1, v2, nil
}

func (d *Driver) UpdateStatusIfMatch(ctx context.Context, voteID uuid.UUID, from, to model.VoteStatus) (bool, error) {
	query := `
		UPDATE votes
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	result, err := d.db.ExecContext(ctx, query, string(to), voteID, string(from))
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (d *Driver) MarkOpen(ctx context.Context, voteID uuid.UUID, at time.Time) (bool, error) {
	return d.markGenerated(ctx, voteID, model.VoteStatusOpen, at)
}

func (d *Driver) MarkReserved(ctx context.Context, voteID uuid.UUID, at time.Time) (bool, error) {
	return d.markGenerated(ctx, voteID, model.VoteStatusReserved, at)
}

func (d *Driver) markGenerated(ctx context.Context, voteID uuid.UUID, to model.VoteStatus, at time.Time) (bool, error) {
	query := `
		UPDATE votes
		SET status = $1, generated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := d.db.ExecContext(ctx, query, string(to), at, voteID, string(model.VoteStatusGenerating))
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (d *Driver) MarkOpenFromReserved(ctx context.Context, voteID uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE votes
		SET status = $1, generated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := d.db.ExecContext(ctx, query, string(model.VoteStatusOpen), at, voteID, string(model.VoteStatusReserved))
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (d *Driver) MarkCounted(ctx context.Context, voteID uuid.UUID, at time.Time) error {
	query := `
		UPDATE votes
		SET status = $1, counted_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := d.db.ExecContext(ctx, query, string(model.VoteStatusCounted), at, voteID, string(model.VoteStatusCounting))
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_vote.ErrVoteNotFound
	}

	return nil
}

// MarkFailed is the compensation write. It is unconditional and tolerates
// a vote that no longer exists: the caller's own failure handling must
// not fail on a missing row.
func (d *Driver) MarkFailed(ctx context.Context, voteID uuid.UUID) error {
	query := `
		UPDATE votes
		SET status = $1
		WHERE id = $2
	`

	_, err := d.db.ExecContext(ctx, query, string(model.VoteStatusFailed), voteID)
	return err
}
