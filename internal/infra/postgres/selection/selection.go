package infra_postgres_selection

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/babmate/core/internal/model"
	usecase_vote "github.com/babmate/core/internal/usecase/vote"
)

// Driver stores the final selection of a meeting: one row per meeting,
// first writer wins, no update path.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type selectionDTO struct {
	MeetingID   uuid.UUID `db:"meeting_id"`
	CandidateID uuid.UUID `db:"candidate_id"`
	SelectedAt  time.Time `db:"selected_at"`
}

func (d *Driver) Exists(ctx context.Context, meetingID uuid.UUID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM final_selections WHERE meeting_id = $1)`

	if err := d.db.GetContext(ctx, &exists, query, meetingID); err != nil {
		return false, err
	}
	return exists, nil
}

func (d *Driver) Create(ctx context.Context, meetingID, candidateID uuid.UUID, at time.Time) error {
	query := `
		INSERT INTO final_selections (meeting_id, candidate_id, selected_at)
		VALUES ($1, $2, $3)
	`

	_, err := d.db.ExecContext(ctx, query, meetingID, candidateID, at)
	if err != nil {
		// A concurrent finalizer beat us to the insert; the first
		// selection stands and this call reports success.
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return nil
		}
		return err
	}
	return nil
}

func (d *Driver) ByMeeting(ctx context.Context, meetingID uuid.UUID) (model.FinalSelection, error) {
	var row selectionDTO

	query := `
		SELECT meeting_id, candidate_id, selected_at
		FROM final_selections
		WHERE meeting_id = $1
	`

	err := d.db.GetContext(ctx, &row, query, meetingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.FinalSelection{}, usecase_vote.ErrFinalSelectionNotFound
		}
		return model.FinalSelection{}, err
	}

	return model.FinalSelection{
		MeetingID:   row.MeetingID,
		CandidateID: row.CandidateID,
		SelectedAt:  row.SelectedAt,
	}, nil
}
