package model

import (
	"time"

	"github.com/google/uuid"
)

type VoteStatus string

const (
	VoteStatusGenerating VoteStatus = "GENERATING"
	VoteStatusOpen       VoteStatus = "OPEN"
	VoteStatusCounting   VoteStatus = "COUNTING"
	VoteStatusCounted    VoteStatus = "COUNTED"
	VoteStatusReserved   VoteStatus = "RESERVED"
	VoteStatusFailed     VoteStatus = "FAILED"
)

const (
	RoundPrimary = 1
	RoundReserve = 2
)

// Vote is one voting round of a meeting. Exactly two rounds exist per
// meeting: the primary round and the pre-generated reserve round.
type Vote struct {
	ID        uuid.UUID
	MeetingID uuid.UUID
	Round     int
	Status    VoteStatus

	GeneratedAt *time.Time
	CountedAt   *time.Time
}

type Choice string

const (
	ChoiceLike    Choice = "LIKE"
	ChoiceDislike Choice = "DISLIKE"
	ChoiceNeutral Choice = "NEUTRAL"
)

func (c Choice) Valid() bool {
	switch c {
	case ChoiceLike, ChoiceDislike, ChoiceNeutral:
		return true
	}
	return false
}

// Ballot is one participant's choice for one candidate.
type Ballot struct {
	CandidateID uuid.UUID
	Choice      Choice
}

// Tally holds the aggregated choices of one candidate.
type Tally struct {
	Like    int
	Dislike int
	Neutral int
}

// VoteProgress is the polling surface of a vote.
type VoteProgress struct {
	Status    VoteStatus
	Submitted int
	Total     int
}

// GenerationJob is dispatched to the generation worker once the
// transaction that created (or reset) the two vote rows has committed.
type GenerationJob struct {
	MeetingID    uuid.UUID
	Round1VoteID uuid.UUID
	Round2VoteID uuid.UUID
}
