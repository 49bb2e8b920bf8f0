package infra_postgres_meeting

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/babmate/core/internal/model"
	usecase_vote "github.com/babmate/core/internal/usecase/vote"
)

// Driver reads meetings and their participants. Meeting and member CRUD
// lives elsewhere; the vote core only consumes these lookups.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type meetingDTO struct {
	ID              uuid.UUID `db:"id"`
	HostMemberID    uuid.UUID `db:"host_member_id"`
	Title           string    `db:"title"`
	ScheduledAt     time.Time `db:"scheduled_at"`
	VoteDeadlineAt  time.Time `db:"vote_deadline_at"`
	Timezone        string    `db:"timezone"`
	LocationLat     float64   `db:"location_lat"`
	LocationLng     float64   `db:"location_lng"`
	SearchRadius    int       `db:"search_radius_m"`
	TargetHeadcount int       `db:"target_headcount"`
	SwipeCount      int       `db:"swipe_count"`
}

type participantDTO struct {
	ID        uuid.UUID `db:"id"`
	MeetingID uuid.UUID `db:"meeting_id"`
	MemberID  uuid.UUID `db:"member_id"`
	Status    string    `db:"status"`
}

func (d *Driver) ByID(ctx context.Context, meetingID uuid.UUID) (model.Meeting, error) {
	var meeting meetingDTO

	query := `
		SELECT id, host_member_id, title, scheduled_at, vote_deadline_at, timezone,
			location_lat, location_lng, search_radius_m, target_headcount, swipe_count
		FROM meetings
		WHERE id = $1 AND is_deleted = false
	`

	err := d.db.GetContext(ctx, &meeting, query, meetingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Meeting{}, usecase_vote.ErrMeetingNotFound
		}
		return model.Meeting{}, err
	}

	return model.Meeting{
		ID:              meeting.ID,
		HostMemberID:    meeting.HostMemberID,
		Title:           meeting.Title,
		ScheduledAt:     meeting.ScheduledAt,
		VoteDeadlineAt:  meeting.VoteDeadlineAt,
		Timezone:        meeting.Timezone,
		LocationLat:     meeting.LocationLat,
		LocationLng:     meeting.LocationLng,
		SearchRadius:    meeting.SearchRadius,
		TargetHeadcount: meeting.TargetHeadcount,
		SwipeCount:      meeting.SwipeCount,
	}, nil
}

func (d *Driver) ParticipantByMember(ctx context.Context, meetingID, memberID uuid.UUID) (model.Participant, error) {
	var participant participantDTO

	query := `
		SELECT id, meeting_id, member_id, status
		FROM participants
		WHERE meeting_id = $1 AND member_id = $2
	`

	err := d.db.GetContext(ctx, &participant, query, meetingID, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Participant{}, usecase_vote.ErrNotParticipant
		}
		return model.Participant{}, err
	}

	return model.Participant{
		ID:        participant.ID,
		MeetingID: participant.MeetingID,
		MemberID:  participant.MemberID,
		Status:    model.ParticipantStatus(participant.Status),
	}, nil
}

func (d *Driver) ActiveParticipantCount(ctx context.Context, meetingID uuid.UUID) (int, error) {
	var count int

	query := `
		SELECT COUNT(id)
		FROM participants
		WHERE meeting_id = $1 AND status = $2
	`

	if err := d.db.GetContext(ctx, &count, query, meetingID, string(model.ParticipantStatusActive)); err != nil {
		return 0, err
	}
	return count, nil
}

func (d *Driver) ActiveMemberIDs(ctx context.Context, meetingID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := `
		SELECT member_id
		FROM participants
		WHERE meeting_id = $1 AND status = $2
	`

	if err := d.db.SelectContext(ctx, &ids, query, meetingID, string(model.ParticipantStatusActive)); err != nil {
		return nil, err
	}
	return ids, nil
}
