package usecase_generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/babmate/core/internal/model"
)

var (
	ErrVoteNotFound         = errors.New("vote not found")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrNoActiveParticipants = errors.New("no active participants")

	// Gateway errors. Every provider-side failure collapses into one of
	// these so the vote ends up in the same retry-eligible FAILED state.
	ErrNoRestaurants        = errors.New("no restaurants recommended")
	ErrRecommendationFailed = errors.New("recommendation call failed")
	ErrInvalidResponse      = errors.New("recommendation response invalid")
)

//go:generate mockery --name=VoteRepository --output=../../../mocks/generation --filename=votes.go
type VoteRepository interface {
	ByID(ctx context.Context, voteID uuid.UUID) (model.Vote, error)

	// MarkOpen and MarkReserved are guarded on status GENERATING so a
	// stale generator cannot reopen a vote that moved on.
	MarkOpen(ctx context.Context, voteID uuid.UUID, at time.Time) (bool, error)
	MarkReserved(ctx context.Context, voteID uuid.UUID, at time.Time) (bool, error)

	// MarkFailed is unconditional and tolerates a missing vote.
	MarkFailed(ctx context.Context, voteID uuid.UUID) error
}

//go:generate mockery --name=MeetingRepository --output=../../../mocks/generation --filename=meetings.go
type MeetingRepository interface {
	ByID(ctx context.Context, meetingID uuid.UUID) (model.Meeting, error)
	ActiveMemberIDs(ctx context.Context, meetingID uuid.UUID) ([]uuid.UUID, error)
}

//go:generate mockery --name=PreferenceRepository --output=../../../mocks/generation --filename=preferences.go
type PreferenceRepository interface {
	CategoryNames(ctx context.Context) ([]string, error)
	MappingsByMembers(ctx context.Context, memberIDs []uuid.UUID) ([]model.CategoryMapping, error)
}

//go:generate mockery --name=RestaurantRepository --output=../../../mocks/generation --filename=restaurants.go
type RestaurantRepository interface {
	ByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Restaurant, error)
	AvgRatingByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]float64, error)
}

//go:generate mockery --name=CandidateRepository --output=../../../mocks/generation --filename=candidates.go
type CandidateRepository interface {
	// ReplaceForRounds deletes both votes' candidates and inserts the new
	// sets in a single transaction. Candidates are never merged.
	ReplaceForRounds(ctx context.Context, round1VoteID, round2VoteID uuid.UUID, round1, round2 []model.Candidate) error
}

//go:generate mockery --name=Recommender --output=../../../mocks/generation --filename=recommender.go
type Recommender interface {
	Recommend(ctx context.Context, req model.RecommendationRequest) (model.Recommendation, error)
}

type Usecase struct {
	votes       VoteRepository
	meetings    MeetingRepository
	preferences PreferenceRepository
	restaurants RestaurantRepository
	candidates  CandidateRepository
	recommender Recommender

	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	votes VoteRepository,
	meetings MeetingRepository,
	preferences PreferenceRepository,
	restaurants RestaurantRepository,
	candidates CandidateRepository,
	recommender Recommender,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		votes:       votes,
		meetings:    meetings,
		preferences: preferences,
		restaurants: restaurants,
		candidates:  candidates,
		recommender: recommender,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Generate performs the single recommendation call for both rounds,
// replaces the candidates of each round with one half of the response and
// advances round 1 to OPEN and round 2 to RESERVED. Any failure marks
// both votes FAILED before the error is returned.
func (u *Usecase) Generate(ctx context.Context, job model.GenerationJob) error {
	if err := u.generate(ctx, job); err != nil {
		u.logger.Error("candidate generation failed",
			slog.String("meeting_id", job.MeetingID.String()),
			slog.String("vote1_id", job.Round1VoteID.String()),
			slog.String("vote2_id", job.Round2VoteID.String()),
			slog.String("error", err.Error()))

		u.markVotesFailed(ctx, job.Round1VoteID, job.Round2VoteID)
		return err
	}
	return nil
}

func (u *Usecase) generate(ctx context.Context, job model.GenerationJob) error {
	v1, err := u.votes.ByID(ctx, job.Round1VoteID)
	if err != nil {
		return fmt.Errorf("%w: round1", ErrVoteNotFound)
	}
	v2, err := u.votes.ByID(ctx, job.Round2VoteID)
	if err != nil {
		return fmt.Errorf("%w: round2", ErrVoteNotFound)
	}

	meeting, err := u.meetings.ByID(ctx, job.MeetingID)
	if err != nil {
		return ErrMeetingNotFound
	}

	memberIDs, err := u.meetings.ActiveMemberIDs(ctx, job.MeetingID)
	if err != nil {
		return err
	}
	// A participant leaving between creation and generation can drain the
	// meeting; fail fast instead of recommending for nobody.
	if len(memberIDs) == 0 {
		return ErrNoActiveParticipants
	}

	like, dislike, err := u.aggregatePreferences(ctx, memberIDs)
	if err != nil {
		return err
	}

	req := model.RecommendationRequest{
		RequestID:    requestID(job.MeetingID, job.Round1VoteID),
		HostMemberID: meeting.HostMemberID,
		StartTime:    localizeStart(meeting, u.logger),
		Headcount:    meeting.TargetHeadcount,
		Lat:          meeting.LocationLat,
		Lng:          meeting.LocationLng,
		RadiusM:      meeting.SearchRadius,
		CardLimit:    meeting.SwipeCount,
		Like:         like,
		Dislike:      dislike,
	}

	u.logger.Info("recommendation request",
		slog.String("request_id", req.RequestID),
		slog.String("meeting_id", job.MeetingID.String()),
		slog.Int("card_limit", req.CardLimit),
		slog.Int("headcount", req.Headcount),
		slog.Int("radius_m", req.RadiusM))

	rec, err := u.recommender.Recommend(ctx, req)
	if err != nil {
		return err
	}
	if len(rec.Restaurants) == 0 {
		return ErrNoRestaurants
	}

	expected := meeting.SwipeCount * 2
	if len(rec.Restaurants) != expected {
		return fmt.Errorf("%w: expected=%d, actual=%d", ErrInvalidResponse, expected, len(rec.Restaurants))
	}

	half := expected / 2
	round1, err := u.buildCandidates(ctx, v1.ID, rec.Restaurants[:half], 0)
	if err != nil {
		return err
	}
	round2, err := u.buildCandidates(ctx, v2.ID, rec.Restaurants[half:], half)
	if err != nil {
		return err
	}

	if len(round1) != half {
		return fmt.Errorf("%w: round1 saved=%d, expected=%d", ErrInvalidResponse, len(round1), half)
	}
	if len(round2) != half {
		return fmt.Errorf("%w: round2 saved=%d, expected=%d", ErrInvalidResponse, len(round2), half)
	}

	if err := u.candidates.ReplaceForRounds(ctx, v1.ID, v2.ID, round1, round2); err != nil {
		return err
	}

	now := time.Now()
	if _, err := u.votes.MarkOpen(ctx, v1.ID, now); err != nil {
		return err
	}
	if _, err := u.votes.MarkReserved(ctx, v2.ID, now); err != nil {
		return err
	}

	u.logger.Info("candidates generated",
		slog.String("meeting_id", job.MeetingID.String()),
		slog.Int("round1_saved", len(round1)),
		slog.Int("round2_saved", len(round2)))
	return nil
}

// aggregatePreferences builds the two frequency maps the provider
// expects. Every known category is seeded at zero; mappings to unknown
// categories are ignored.
func (u *Usecase) aggregatePreferences(ctx context.Context, memberIDs []uuid.UUID) (map[string]int, map[string]int, error) {
	categories, err := u.preferences.CategoryNames(ctx)
	if err != nil {
		return nil, nil, err
	}

	like := make(map[string]int, len(categories))
	dislike := make(map[string]int, len(categories))
	for _, c := range categories {
		like[c] = 0
		dislike[c] = 0
	}

	mappings, err := u.preferences.MappingsByMembers(ctx, memberIDs)
	if err != nil {
		return nil, nil, err
	}
	for _, m := range mappings {
		if _, ok := like[m.Category]; !ok {
			continue
		}
		switch m.Relation {
		case model.PreferenceRelationLike:
			like[m.Category]++
		case model.PreferenceRelationDislike:
			dislike[m.Category]++
		}
	}

	return like, dislike, nil
}

// buildCandidates resolves recommended restaurants against local storage
// and attaches the precomputed average rating. Unresolvable restaurants
// are skipped with a warning; the caller enforces the expected count.
func (u *Usecase) buildCandidates(ctx context.Context, voteID uuid.UUID, items []model.RecommendedRestaurant, positionOffset int) ([]model.Candidate, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	restaurants, err := u.restaurants.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}

	ratings, err := u.restaurants.AvgRatingByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(items))
	for i, it := range items {
		restaurant, ok := byID[it.ID]
		if !ok {
			u.logger.Warn("recommended restaurant not found, skipping",
				slog.String("restaurant_id", it.ID.String()))
			continue
		}

		candidates = append(candidates, model.Candidate{
			ID:           uuid.New(),
			VoteID:       voteID,
			RestaurantID: restaurant.ID,
			Name:         restaurant.Name,
			Position:     positionOffset + i,
			Distance:     it.Distance,
			Rating:       roundRating(ratings[it.ID]),
			AIScore:      it.Score,
		})
	}

	return candidates, nil
}

// markVotesFailed is the failure compensation step. It must survive the
// failed generation attempt, so it runs on a context detached from the
// caller's cancellation and each write commits independently.
func (u *Usecase) markVotesFailed(ctx context.Context, voteID1, voteID2 uuid.UUID) {
	detached := context.WithoutCancel(ctx)

	for _, id := range []uuid.UUID{voteID1, voteID2} {
		if err := u.votes.MarkFailed(detached, id); err != nil {
			u.logger.Error("failed to mark vote FAILED",
				slog.String("vote_id", id.String()),
				slog.String("error", err.Error()))
		}
	}
}

func requestID(meetingID, voteID uuid.UUID) string {
	return fmt.Sprintf("vote_%s_%s", meetingID, voteID)
}

func localizeStart(meeting model.Meeting, logger *slog.Logger) time.Time {
	loc, err := time.LoadLocation(meeting.Timezone)
	if err != nil {
		logger.Warn("unknown meeting timezone, using stored time as-is",
			slog.String("timezone", meeting.Timezone))
		return meeting.ScheduledAt
	}
	return meeting.ScheduledAt.In(loc)
}

func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
