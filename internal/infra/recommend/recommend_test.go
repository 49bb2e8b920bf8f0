package infra_recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babmate/core/internal/config"
	"github.com/babmate/core/internal/model"
	usecase_generation "github.com/babmate/core/internal/usecase/generation"
)

const testBaseURL = "http://recommend.test"

func newTestClient(t *testing.T) *Client {
	t.Helper()

	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return New(
		config.Recommendation{BaseURL: testBaseURL, TimeoutMS: 5000},
		WithHTTPClient(httpClient),
	)
}

func validRequest() model.RecommendationRequest {
	return model.RecommendationRequest{
		RequestID:    "vote_m_v",
		HostMemberID: uuid.New(),
		Headcount:    4,
		Lat:          37.5,
		Lng:          127.0,
		RadiusM:      500,
		CardLimit:    3,
		Like:         map[string]int{"korean": 2},
		Dislike:      map[string]int{"japanese": 1},
	}
}

func TestRecommend_Success(t *testing.T) {
	client := newTestClient(t)

	restaurantID := uuid.New()
	rank := 1
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/recommendations",
		func(req *http.Request) (*http.Response, error) {
			var body requestDTO
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "vote_m_v", body.RequestID)
			assert.Equal(t, 3, body.Swipe.CardLimit)
			assert.Equal(t, 500, body.Location.RadiusM)
			assert.Equal(t, map[string]int{"korean": 2}, body.Preferences.Like)

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"request_id": body.RequestID,
				"top_n":      6,
				"restaurants": []map[string]any{
					{
						"id":              restaurantID,
						"name":            "golden pot",
						"category_mapped": "korean",
						"distance_m":      240,
						"final_score":     0.92,
						"rank":            rank,
					},
				},
			})
		})

	rec, err := client.Recommend(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "vote_m_v", rec.RequestID)
	require.Len(t, rec.Restaurants, 1)
	got := rec.Restaurants[0]
	assert.Equal(t, restaurantID, got.ID)
	assert.Equal(t, "golden pot", got.Name)
	assert.Equal(t, "korean", got.Category)
	assert.Equal(t, 240, got.Distance)
	assert.InDelta(t, 0.92, got.Score, 0.001)
	require.NotNil(t, got.Rank)
	assert.Equal(t, rank, *got.Rank)
}

func TestRecommend_NotFoundMeansNoRestaurants(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/recommendations",
		httpmock.NewStringResponder(http.StatusNotFound, `{"detail":"no restaurants"}`))

	_, err := client.Recommend(context.Background(), validRequest())

	assert.ErrorIs(t, err, usecase_generation.ErrNoRestaurants)
}

func TestRecommend_ProviderErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad_request", http.StatusBadRequest},
		{"internal_server_error", http.StatusInternalServerError},
		{"service_unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t)
			httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/recommendations",
				httpmock.NewStringResponder(tt.statusCode, "provider error"))

			_, err := client.Recommend(context.Background(), validRequest())

			assert.ErrorIs(t, err, usecase_generation.ErrRecommendationFailed)
		})
	}
}

func TestRecommend_MalformedBody(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/recommendations",
		httpmock.NewStringResponder(http.StatusOK, "{not json"))

	_, err := client.Recommend(context.Background(), validRequest())

	assert.ErrorIs(t, err, usecase_generation.ErrInvalidResponse)
}

func TestRecommend_TransportError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/recommendations",
		httpmock.NewErrorResponder(context.DeadlineExceeded))

	_, err := client.Recommend(context.Background(), validRequest())

	assert.ErrorIs(t, err, usecase_generation.ErrRecommendationFailed)
}
