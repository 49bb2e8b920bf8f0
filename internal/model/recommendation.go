package model

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationRequest is the payload of the single provider call that
// yields candidates for both rounds at once.
type RecommendationRequest struct {
	RequestID    string
	HostMemberID uuid.UUID

	StartTime time.Time
	Headcount int

	Lat     float64
	Lng     float64
	RadiusM int

	CardLimit int

	Like    map[string]int
	Dislike map[string]int
}

type RecommendedRestaurant struct {
	ID       uuid.UUID
	Name     string
	Category string
	Distance int
	Score    float64
	Rank     *int
}

type Recommendation struct {
	RequestID   string
	Restaurants []RecommendedRestaurant
}

type PreferenceRelation string

const (
	PreferenceRelationLike    PreferenceRelation = "PREFERENCE"
	PreferenceRelationDislike PreferenceRelation = "DISLIKE"
)

// CategoryMapping links one member to one food category with a relation.
type CategoryMapping struct {
	MemberID uuid.UUID
	Category string
	Relation PreferenceRelation
}
