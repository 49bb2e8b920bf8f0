package infra_recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/babmate/core/internal/config"
	"github.com/babmate/core/internal/model"
	usecase_generation "github.com/babmate/core/internal/usecase/generation"
)

// Client is the gateway to the external recommendation provider. All
// transport and provider failures collapse into the generation usecase's
// sentinel errors, so every failure mode lands the vote in the same
// retry-eligible FAILED state.
type Client struct {
	baseURL string
	http    *http.Client

	logger *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func New(cfg config.Recommendation, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestDTO struct {
	MemberID  uuid.UUID `json:"member_id"`
	RequestID string    `json:"request_id"`

	Meeting struct {
		StartTime string `json:"start_time"`
		Headcount int    `json:"headcount"`
	} `json:"meeting"`

	Location struct {
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
		RadiusM int     `json:"radius_m"`
	} `json:"location"`

	Swipe struct {
		CardLimit int `json:"card_limit"`
	} `json:"swipe"`

	Preferences struct {
		Like    map[string]int `json:"like"`
		Dislike map[string]int `json:"dislike"`
	} `json:"preferences"`
}

type responseDTO struct {
	RequestID   string `json:"request_id"`
	UserID      string `json:"user_id"`
	TopN        int    `json:"top_n"`
	Restaurants []struct {
		ID             uuid.UUID `json:"id"`
		Name           string    `json:"name"`
		CategoryMapped string    `json:"category_mapped"`
		DistanceM      int       `json:"distance_m"`
		FinalScore     float64   `json:"final_score"`
		Rank           *int      `json:"rank"`
	} `json:"restaurants"`
}

func (c *Client) Recommend(ctx context.Context, req model.RecommendationRequest) (model.Recommendation, error) {
	body := buildRequest(req)

	payload, err := json.Marshal(body)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("%w: %w", usecase_generation.ErrRecommendationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendations", bytes.NewReader(payload))
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("%w: %w", usecase_generation.ErrRecommendationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// Timeouts and transport errors are indistinguishable from the
		// vote's point of view: the attempt failed and must be retried.
		return model.Recommendation{}, fmt.Errorf("%w: %w", usecase_generation.ErrRecommendationFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("%w: %w", usecase_generation.ErrRecommendationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return model.Recommendation{}, usecase_generation.ErrNoRestaurants
		}
		return model.Recommendation{}, fmt.Errorf("%w: status=%d", usecase_generation.ErrRecommendationFailed, resp.StatusCode)
	}

	var parsed responseDTO
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return model.Recommendation{}, fmt.Errorf("%w: %w", usecase_generation.ErrInvalidResponse, err)
	}

	c.logger.Info("recommendation response",
		slog.String("request_id", parsed.RequestID),
		slog.Int("top_n", parsed.TopN),
		slog.Int("restaurants", len(parsed.Restaurants)))

	restaurants := make([]model.RecommendedRestaurant, 0, len(parsed.Restaurants))
	for _, r := range parsed.Restaurants {
		restaurants = append(restaurants, model.RecommendedRestaurant{
			ID:       r.ID,
			Name:     r.Name,
			Category: r.CategoryMapped,
			Distance: r.DistanceM,
			Score:    r.FinalScore,
			Rank:     r.Rank,
		})
	}

	return model.Recommendation{
		RequestID:   parsed.RequestID,
		Restaurants: restaurants,
	}, nil
}

func buildRequest(req model.RecommendationRequest) requestDTO {
	var dto requestDTO
	dto.MemberID = req.HostMemberID
	dto.RequestID = req.RequestID
	dto.Meeting.StartTime = req.StartTime.Format(time.RFC3339)
	dto.Meeting.Headcount = req.Headcount
	dto.Location.Lat = req.Lat
	dto.Location.Lng = req.Lng
	dto.Location.RadiusM = req.RadiusM
	dto.Swipe.CardLimit = req.CardLimit
	dto.Preferences.Like = req.Like
	dto.Preferences.Dislike = req.Dislike
	return dto
}
