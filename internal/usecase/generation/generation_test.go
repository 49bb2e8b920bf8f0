package usecase_generation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/babmate/core/internal/model"
	mocks "github.com/babmate/core/mocks/generation"
)

type UsecaseGenerationUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase     *Usecase
	votes       *mocks.VoteRepository
	meetings    *mocks.MeetingRepository
	preferences *mocks.PreferenceRepository
	restaurants *mocks.RestaurantRepository
	candidates  *mocks.CandidateRepository
	recommender *mocks.Recommender
	ctx         context.Context
}

func initResources(t provider.T) *resources {
	votes := mocks.NewVoteRepository(t)
	meetings := mocks.NewMeetingRepository(t)
	preferences := mocks.NewPreferenceRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	candidates := mocks.NewCandidateRepository(t)
	recommender := mocks.NewRecommender(t)

	return &resources{
		usecase:     New(votes, meetings, preferences, restaurants, candidates, recommender),
		votes:       votes,
		meetings:    meetings,
		preferences: preferences,
		restaurants: restaurants,
		candidates:  candidates,
		recommender: recommender,
		ctx:         context.Background(),
	}
}

type world struct {
	job     model.GenerationJob
	meeting model.Meeting
	v1      model.Vote
	v2      model.Vote

	members     []uuid.UUID
	restaurants []model.Restaurant
	rec         model.Recommendation
}

// validWorld builds a meeting with swipe count 2, so the provider must
// return exactly 4 restaurants: 2 per round.
func validWorld() *world {
	meetingID := uuid.New()
	v1ID := uuid.New()
	v2ID := uuid.New()

	restaurants := make([]model.Restaurant, 4)
	recommended := make([]model.RecommendedRestaurant, 4)
	for i := range restaurants {
		id := uuid.New()
		restaurants[i] = model.Restaurant{
			ID:       id,
			Name:     "restaurant",
			Category: "korean",
		}
		recommended[i] = model.RecommendedRestaurant{
			ID:       id,
			Name:     "restaurant",
			Category: "korean",
			Distance: 100 * (i + 1),
			Score:    0.9,
		}
	}

	return &world{
		job: model.GenerationJob{
			MeetingID:    meetingID,
			Round1VoteID: v1ID,
			Round2VoteID: v2ID,
		},
		meeting: model.Meeting{
			ID:              meetingID,
			HostMemberID:    uuid.New(),
			ScheduledAt:     time.Now().Add(48 * time.Hour),
			Timezone:        "Asia/Seoul",
			LocationLat:     37.5,
			LocationLng:     127.0,
			SearchRadius:    500,
			TargetHeadcount: 2,
			SwipeCount:      2,
		},
		v1: model.Vote{ID: v1ID, MeetingID: meetingID, Round: model.RoundPrimary, Status: model.VoteStatusGenerating},
		v2: model.Vote{ID: v2ID, MeetingID: meetingID, Round: model.RoundReserve, Status: model.VoteStatusGenerating},

		members:     []uuid.UUID{uuid.New(), uuid.New()},
		restaurants: restaurants,
		rec: model.Recommendation{
			Restaurants: recommended,
		},
	}
}

func (w *world) ratings() map[uuid.UUID]float64 {
	ratings := make(map[uuid.UUID]float64, len(w.restaurants))
	for _, r := range w.restaurants {
		ratings[r.ID] = 4.25
	}
	return ratings
}

func (r *resources) expectPreferences(w *world) {
	r.preferences.On("CategoryNames", r.ctx).
		Return([]string{"korean", "japanese"}, nil).Once()
	r.preferences.On("MappingsByMembers", r.ctx, w.members).
		Return([]model.CategoryMapping{
			{MemberID: w.members[0], Category: "korean", Relation: model.PreferenceRelationLike},
			{MemberID: w.members[1], Category: "japanese", Relation: model.PreferenceRelationDislike},
			{MemberID: w.members[1], Category: "extinct", Relation: model.PreferenceRelationLike},
		}, nil).Once()
}

func (r *resources) expectLoad(w *world) {
	r.votes.On("ByID", r.ctx, w.v1.ID).Return(w.v1, nil).Once()
	r.votes.On("ByID", r.ctx, w.v2.ID).Return(w.v2, nil).Once()
	r.meetings.On("ByID", r.ctx, w.job.MeetingID).Return(w.meeting, nil).Once()
	r.meetings.On("ActiveMemberIDs", r.ctx, w.job.MeetingID).Return(w.members, nil).Once()
}

func (r *resources) expectFailureMarks(w *world) {
	r.votes.On("MarkFailed", mock.Anything, w.v1.ID).Return(nil).Once()
	r.votes.On("MarkFailed", mock.Anything, w.v2.ID).Return(nil).Once()
}

func (suite *UsecaseGenerationUnitSuite) TestGenerate(t provider.T) {
	t.Parallel()

	t.Run("Should split the response across both rounds and open round 1", func(t provider.T) {
		r := initResources(t)
		w := validWorld()

		r.expectLoad(w)
		r.expectPreferences(w)

		r.recommender.On("Recommend", r.ctx, mock.MatchedBy(func(req model.RecommendationRequest) bool {
			return req.RequestID == requestID(w.job.MeetingID, w.v1.ID) &&
				req.CardLimit == w.meeting.SwipeCount &&
				req.Headcount == w.meeting.TargetHeadcount &&
				req.Like["korean"] == 1 && req.Like["japanese"] == 0 &&
				req.Dislike["japanese"] == 1
		})).Return(w.rec, nil).Once()

		ids1 := []uuid.UUID{w.restaurants[0].ID, w.restaurants[1].ID}
		ids2 := []uuid.UUID{w.restaurants[2].ID, w.restaurants[3].ID}
		r.restaurants.On("ByIDs", r.ctx, ids1).Return(w.restaurants[:2], nil).Once()
		r.restaurants.On("AvgRatingByIDs", r.ctx, ids1).Return(w.ratings(), nil).Once()
		r.restaurants.On("ByIDs", r.ctx, ids2).Return(w.restaurants[2:], nil).Once()
		r.restaurants.On("AvgRatingByIDs", r.ctx, ids2).Return(w.ratings(), nil).Once()

		r.candidates.On("ReplaceForRounds", r.ctx, w.v1.ID, w.v2.ID,
			mock.MatchedBy(func(round1 []model.Candidate) bool {
				return len(round1) == 2 &&
					round1[0].Position == 0 && round1[1].Position == 1 &&
					round1[0].VoteID == w.v1.ID &&
					round1[0].Rating == 4.3
			}),
			mock.MatchedBy(func(round2 []model.Candidate) bool {
				return len(round2) == 2 &&
					round2[0].Position == 2 && round2[1].Position == 3 &&
					round2[0].VoteID == w.v2.ID
			})).Return(nil).Once()

		r.votes.On("MarkOpen", r.ctx, w.v1.ID, mock.AnythingOfType("time.Time")).
			Return(true, nil).Once()
		r.votes.On("MarkReserved", r.ctx, w.v2.ID, mock.AnythingOfType("time.Time")).
			Return(true, nil).Once()

		err := r.usecase.Generate(r.ctx, w.job)

		assert.NoError(t, err)
	})

	t.Run("Should fail both votes when the provider returns nothing", func(t provider.T) {
		r := initResources(t)
		w := validWorld()

		r.expectLoad(w)
		r.expectPreferences(w)
		r.recommender.On("Recommend", r.ctx, mock.AnythingOfType("model.RecommendationRequest")).
			Return(model.Recommendation{}, nil).Once()
		r.expectFailureMarks(w)

		err := r.usecase.Generate(r.ctx, w.job)

		assert.ErrorIs(t, err, ErrNoRestaurants)
	})

	t.Run("Should fail both votes when the response size is off", func(t provider.T) {
		r := initResources(t)
		w := validWorld()
		w.rec.Restaurants = w.rec.Restaurants[:3]

		r.expectLoad(w)
		r.expectPreferences(w)
		r.recommender.On("Recommend", r.ctx, mock.AnythingOfType("model.RecommendationRequest")).
			Return(w.rec, nil).Once()
		r.expectFailureMarks(w)

		err := r.usecase.Generate(r.ctx, w.job)

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("Should fail both votes when a recommended restaurant is unknown locally", func(t provider.T) {
		r := initResources(t)
		w := validWorld()

		r.expectLoad(w)
		r.expectPreferences(w)
		r.recommender.On("Recommend", r.ctx, mock.AnythingOfType("model.RecommendationRequest")).
			Return(w.rec, nil).Once()

		ids1 := []uuid.UUID{w.restaurants[0].ID, w.restaurants[1].ID}
		// Only one of the two round-1 restaurants resolves.
		r.restaurants.On("ByIDs", r.ctx, ids1).Return(w.restaurants[:1], nil).Once()
		r.restaurants.On("AvgRatingByIDs", r.ctx, ids1).Return(w.ratings(), nil).Once()
		r.expectFailureMarks(w)

		err := r.usecase.Generate(r.ctx, w.job)

		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("Should fail both votes when the provider call fails", func(t provider.T) {
		r := initResources(t)
		w := validWorld()

		r.expectLoad(w)
		r.expectPreferences(w)
		r.recommender.On("Recommend", r.ctx, mock.AnythingOfType("model.RecommendationRequest")).
			Return(model.Recommendation{}, ErrRecommendationFailed).Once()
		r.expectFailureMarks(w)

		err := r.usecase.Generate(r.ctx, w.job)

		assert.ErrorIs(t, err, ErrRecommendationFailed)
	})

	t.Run("Should fail fast when every participant left", func(t provider.T) {
		r := initResources(t)
		w := validWorld()

		r.votes.On("ByID", r.ctx, w.v1.ID).Return(w.v1, nil).Once()
		r.votes.On("ByID", r.ctx, w.v2.ID).Return(w.v2, nil).Once()
		r.meetings.On("ByID", r.ctx, w.job.MeetingID).Return(w.meeting, nil).Once()
		r.meetings.On("ActiveMemberIDs", r.ctx, w.job.MeetingID).Return(nil, nil).Once()
		r.expectFailureMarks(w)

		err := r.usecase.Generate(r.ctx, w.job)

		assert.ErrorIs(t, err, ErrNoActiveParticipants)
	})

	t.Run("Should compensate even when a vote row disappeared", func(t provider.T) {
		r := initResources(t)
		w := validWorld()

		r.votes.On("ByID", r.ctx, w.v1.ID).Return(model.Vote{}, ErrVoteNotFound).Once()
		r.expectFailureMarks(w)

		err := r.usecase.Generate(r.ctx, w.job)

		assert.ErrorIs(t, err, ErrVoteNotFound)
	})
}

func (suite *UsecaseGenerationUnitSuite) TestAggregatePreferences(t provider.T) {
	t.Parallel()

	r := initResources(t)
	members := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	r.preferences.On("CategoryNames", r.ctx).
		Return([]string{"korean", "japanese", "western"}, nil).Once()
	r.preferences.On("MappingsByMembers", r.ctx, members).
		Return([]model.CategoryMapping{
			{MemberID: members[0], Category: "korean", Relation: model.PreferenceRelationLike},
			{MemberID: members[1], Category: "korean", Relation: model.PreferenceRelationLike},
			{MemberID: members[2], Category: "korean", Relation: model.PreferenceRelationDislike},
			{MemberID: members[0], Category: "unknown", Relation: model.PreferenceRelationLike},
		}, nil).Once()

	like, dislike, err := r.usecase.aggregatePreferences(r.ctx, members)

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"korean": 2, "japanese": 0, "western": 0}, like)
	assert.Equal(t, map[string]int{"korean": 1, "japanese": 0, "western": 0}, dislike)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseGenerationUnitSuite))
}
