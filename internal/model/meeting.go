package model

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	ID           uuid.UUID
	HostMemberID uuid.UUID
	Title        string

	ScheduledAt    time.Time
	VoteDeadlineAt time.Time
	Timezone       string

	LocationLat  float64
	LocationLng  float64
	SearchRadius int

	TargetHeadcount int
	SwipeCount      int
}

type ParticipantStatus string

const (
	ParticipantStatusActive ParticipantStatus = "ACTIVE"
	ParticipantStatusLeft   ParticipantStatus = "LEFT"
)

type Participant struct {
	ID        uuid.UUID
	MeetingID uuid.UUID
	MemberID  uuid.UUID
	Status    ParticipantStatus
}

// FinalSelection concludes a meeting's decision process. At most one
// exists per meeting; the first writer wins.
type FinalSelection struct {
	MeetingID   uuid.UUID
	CandidateID uuid.UUID
	SelectedAt  time.Time
}
