package model

import "github.com/google/uuid"

// Candidate is a restaurant proposed for one vote round. Position is the
// candidate's index in the recommendation response and is the explicit
// tie-break order when like counts are equal.
type Candidate struct {
	ID           uuid.UUID
	VoteID       uuid.UUID
	RestaurantID uuid.UUID

	Name     string
	Position int
	Distance int
	Rating   float64
	AIScore  float64

	LikeCount    int
	DislikeCount int
	NeutralCount int

	FinalRank *int
}

// CandidateResult is the outcome of counting for one candidate.
type CandidateResult struct {
	CandidateID uuid.UUID
	Tally       Tally
	FinalRank   *int
}

type Restaurant struct {
	ID       uuid.UUID
	Name     string
	Category string
}
