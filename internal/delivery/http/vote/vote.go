package http_vote

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/babmate/core/internal/delivery/http/common"
	http_auth_middleware "github.com/babmate/core/internal/delivery/http/middleware/auth"
	"github.com/babmate/core/internal/model"
	usecase_vote "github.com/babmate/core/internal/usecase/vote"
)

type Controller struct {
	usecase *usecase_vote.Usecase
	auth    *http_auth_middleware.Middleware
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_vote.Usecase, auth *http_auth_middleware.Middleware, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	meetings := router.Group("/meetings/:meeting_id", c.auth.MemberRequired())
	{
		meetings.POST("/votes", c.create)
		meetings.GET("/votes/:vote_id/candidates", c.candidates)
		meetings.POST("/votes/:vote_id/submissions", c.submit)
		meetings.GET("/votes/:vote_id/status", c.status)
		meetings.GET("/votes/:vote_id/results", c.results)
		meetings.POST("/votes/:vote_id/revote", c.revote)
		meetings.POST("/votes/:vote_id/final-selection", c.finalize)
		meetings.GET("/final-selection", c.finalSelection)
	}
}

type CreateVoteResponseDTO struct {
	VoteID string `json:"vote_id"`
}

// @Summary Start the vote lifecycle for a meeting
// @Description Creates both voting rounds and kicks off candidate generation. Safe to call again: an existing vote is returned as-is, a failed one is retried.
// @Tags Votes
// @Produce json
// @Param meeting_id path string true "Meeting ID"
// @Success 201 {object} CreateVoteResponseDTO "Vote created or already present"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not the host"
// @Failure 404 {object} http_common.ErrorResponse "Meeting not found"
// @Failure 409 {object} http_common.ErrorResponse "Active headcount below target"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/votes [post]
func (c *Controller) create(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}

	voteID, err := c.usecase.Create(ctx, meetingID, memberID)
	if err != nil {
		c.fail(ctx, "failed to create vote", err)
		return
	}

	ctx.JSON(http.StatusCreated, CreateVoteResponseDTO{
		VoteID: voteID.String(),
	})
}

type CandidateDTO struct {
	CandidateID  string  `json:"candidate_id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Position     int     `json:"position"`
	DistanceM    int     `json:"distance_m"`
	Rating       float64 `json:"rating"`
	AIScore      float64 `json:"ai_score"`
}

type CandidatesResponseDTO struct {
	Candidates []CandidateDTO `json:"candidates"`
}

// @Summary Get the swipe deck
// @Description Returns the candidates of an open vote in presentation order.
// @Tags Votes
// @Produce json
// @Param meeting_id path string true "Meeting ID"
// @Param vote_id path string true "Vote ID"
// @Success 200 {object} CandidatesResponseDTO "Candidate deck"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not an active participant"
// @Failure 404 {object} http_common.ErrorResponse "Meeting or vote not found"
// @Failure 409 {object} http_common.ErrorResponse "Vote is not open or candidates not ready"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/votes/{vote_id}/candidates [get]
func (c *Controller) candidates(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}
	voteID, ok := c.pathUUID(ctx, "vote_id")
	if !ok {
		return
	}

	items, err := c.usecase.Candidates(ctx, meetingID, voteID, memberID)
	if err != nil {
		c.fail(ctx, "failed to load candidates", err)
		return
	}

	dtos := make([]CandidateDTO, 0, len(items))
	for _, cand := range items {
		dtos = append(dtos, CandidateDTO{
			CandidateID:  cand.ID.String(),
			RestaurantID: cand.RestaurantID.String(),
			Name:         cand.Name,
			Position:     cand.Position,
			DistanceM:    cand.Distance,
			Rating:       cand.Rating,
			AIScore:      cand.AIScore,
		})
	}

	ctx.JSON(http.StatusOK, CandidatesResponseDTO{Candidates: dtos})
}

type BallotDTO struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
	Choice      string `json:"choice" binding:"required"`
}

type SubmitRequestDTO struct {
	Ballots []BallotDTO `json:"ballots" binding:"required"`
}

// @Summary Submit a participant's ballots
// @Description Accepts the full swipe batch for one participant. Submitting twice is a silent success. The final submission triggers counting.
// @Tags Votes
// @Accept json
// @Param meeting_id path string true "Meeting ID"
// @Param vote_id path string true "Vote ID"
// @Param request body SubmitRequestDTO true "Ballot batch"
// @Success 204 "Ballots accepted"
// @Failure 400 {object} http_common.ErrorResponse "Ballot batch is invalid"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not an active participant"
// @Failure 404 {object} http_common.ErrorResponse "Meeting or vote not found"
// @Failure 409 {object} http_common.ErrorResponse "Vote is not open"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/votes/{vote_id}/submissions [post]
func (c *Controller) submit(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}
	voteID, ok := c.pathUUID(ctx, "vote_id")
	if !ok {
		return
	}

	var req SubmitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	ballots := make([]model.Ballot, 0, len(req.Ballots))
	for _, b := range req.Ballots {
		candidateID, err := uuid.Parse(b.CandidateID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid candidate id",
			})
			return
		}
		ballots = append(ballots, model.Ballot{
			CandidateID: candidateID,
			Choice:      model.Choice(b.Choice),
		})
	}

	if err := c.usecase.Submit(ctx, meetingID, voteID, memberID, ballots); err != nil {
		c.fail(ctx, "failed to submit ballots", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

type StatusResponseDTO struct {
	Status    string `json:"status"`
	Submitted int    `json:"submitted"`
	Total     int    `json:"total"`
}

// @Summary Poll vote progress
// @Description Returns the vote status and how many active participants have submitted.
// @Tags Votes
// @Produce json
// @Param meeting_id path string true "Meeting ID"
// @Param vote_id path string true "Vote ID"
// @Success 200 {object} StatusResponseDTO "Vote progress"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not an active participant"
// @Failure 404 {object} http_common.ErrorResponse "Meeting or vote not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/votes/{vote_id}/status [get]
func (c *Controller) status(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}
	voteID, ok := c.pathUUID(ctx, "vote_id")
	if !ok {
		return
	}

	progress, err := c.usecase.Status(ctx, meetingID, voteID, memberID)
	if err != nil {
		c.fail(ctx, "failed to get vote status", err)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Status:    string(progress.Status),
		Submitted: progress.Submitted,
		Total:     progress.Total,
	})
}

type RankedCandidateDTO struct {
	CandidateDTO
	FinalRank    int `json:"final_rank"`
	LikeCount    int `json:"like_count"`
	DislikeCount int `json:"dislike_count"`
	NeutralCount int `json:"neutral_count"`
}

type ResultsResponseDTO struct {
	Top3         []RankedCandidateDTO `json:"top3"`
	HostMemberID string               `json:"host_member_id"`
}

// @Summary Get counted results
// @Description Returns the top-3 of a counted vote and the host who may finalize.
// @Tags Votes
// @Produce json
// @Param meeting_id path string true "Meeting ID"
// @Param vote_id path string true "Vote ID"
// @Success 200 {object} ResultsResponseDTO "Counted results"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not an active participant"
// @Failure 404 {object} http_common.ErrorResponse "Meeting or vote not found"
// @Failure 409 {object} http_common.ErrorResponse "Vote is not counted yet"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/votes/{vote_id}/results [get]
func (c *Controller) results(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}
	voteID, ok := c.pathUUID(ctx, "vote_id")
	if !ok {
		return
	}

	top3, hostID, err := c.usecase.Results(ctx, meetingID, voteID, memberID)
	if err != nil {
		c.fail(ctx, "failed to get vote results", err)
		return
	}

	dtos := make([]RankedCandidateDTO, 0, len(top3))
	for _, cand := range top3 {
		rank := 0
		if cand.FinalRank != nil {
			rank = *cand.FinalRank
		}
		dtos = append(dtos, RankedCandidateDTO{
			CandidateDTO: CandidateDTO{
				CandidateID:  cand.ID.String(),
				RestaurantID: cand.RestaurantID.String(),
				Name:         cand.Name,
				Position:     cand.Position,
				DistanceM:    cand.Distance,
				Rating:       cand.Rating,
				AIScore:      cand.AIScore,
			},
			FinalRank:    rank,
			LikeCount:    cand.LikeCount,
			DislikeCount: cand.DislikeCount,
			NeutralCount: cand.NeutralCount,
		})
	}

	ctx.JSON(http.StatusOK, ResultsResponseDTO{
		Top3:         dtos,
		HostMemberID: hostID.String(),
	})
}

// @Summary Open the reserve round
// @Description Flips the pre-generated round 2 from RESERVED to OPEN. Only the host may revote, only before the deadline, and only while no final selection exists.
// @Tags Votes
// @Param meeting_id path string true "Meeting ID"
// @Param vote_id path string true "Round-1 vote ID"
// @Success 204 "Reserve round is open"
// @Failure 400 {object} http_common.ErrorResponse "Vote is not a round-1 vote"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not the host"
// @Failure 404 {object} http_common.ErrorResponse "Meeting or vote not found"
// @Failure 409 {object} http_common.ErrorResponse "Revote unavailable, deadline passed or already finalized"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/votes/{vote_id}/revote [post]
func (c *Controller) revote(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}
	voteID, ok := c.pathUUID(ctx, "vote_id")
	if !ok {
		return
	}

	if err := c.usecase.StartRevote(ctx, meetingID, voteID, memberID); err != nil {
		c.fail(ctx, "failed to start revote", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

type FinalizeRequestDTO struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
}

// @Summary Record the host's final pick
// @Description Records the final restaurant from the counted top-3. The first selection wins; repeating the call is a silent success.
// @Tags Votes
// @Accept json
// @Param meeting_id path string true "Meeting ID"
// @Param vote_id path string true "Vote ID"
// @Param request body FinalizeRequestDTO true "Chosen candidate"
// @Success 204 "Selection recorded"
// @Failure 400 {object} http_common.ErrorResponse "Candidate is not in the top-3"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not the host"
// @Failure 404 {object} http_common.ErrorResponse "Meeting, vote or candidate not found"
// @Failure 409 {object} http_common.ErrorResponse "Vote is not counted yet"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/votes/{vote_id}/final-selection [post]
func (c *Controller) finalize(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}
	voteID, ok := c.pathUUID(ctx, "vote_id")
	if !ok {
		return
	}

	var req FinalizeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}
	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid candidate id",
		})
		return
	}

	if err := c.usecase.Finalize(ctx, meetingID, voteID, memberID, candidateID); err != nil {
		c.fail(ctx, "failed to finalize vote", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

type FinalSelectionResponseDTO struct {
	MeetingID   string    `json:"meeting_id"`
	CandidateID string    `json:"candidate_id"`
	SelectedAt  time.Time `json:"selected_at"`
}

// @Summary Get the final selection
// @Description Returns the recorded final restaurant of a meeting.
// @Tags Votes
// @Produce json
// @Param meeting_id path string true "Meeting ID"
// @Success 200 {object} FinalSelectionResponseDTO "Final selection"
// @Failure 403 {object} http_common.ErrorResponse "Caller is not an active participant"
// @Failure 404 {object} http_common.ErrorResponse "Meeting not found or nothing selected yet"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Security UserToken
// @Router /meetings/{meeting_id}/final-selection [get]
func (c *Controller) finalSelection(ctx *gin.Context) {
	meetingID, memberID, ok := c.meetingAndMember(ctx)
	if !ok {
		return
	}

	fs, err := c.usecase.FinalSelection(ctx, meetingID, memberID)
	if err != nil {
		c.fail(ctx, "failed to get final selection", err)
		return
	}

	ctx.JSON(http.StatusOK, FinalSelectionResponseDTO{
		MeetingID:   fs.MeetingID.String(),
		CandidateID: fs.CandidateID.String(),
		SelectedAt:  fs.SelectedAt,
	})
}

func (c *Controller) meetingAndMember(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	meetingID, ok := c.pathUUID(ctx, "meeting_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	memberID, ok := http_auth_middleware.MemberID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "unauthorized",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return meetingID, memberID, true
}

func (c *Controller) pathUUID(ctx *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid " + param,
		})
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) fail(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))

	switch {
	case errors.Is(err, usecase_vote.ErrMeetingNotFound),
		errors.Is(err, usecase_vote.ErrVoteNotFound),
		errors.Is(err, usecase_vote.ErrCandidateNotFound),
		errors.Is(err, usecase_vote.ErrFinalSelectionNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "not found",
		})

	case errors.Is(err, usecase_vote.ErrNotHost),
		errors.Is(err, usecase_vote.ErrNotParticipant),
		errors.Is(err, usecase_vote.ErrNotActiveParticipant):
		ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
			Message: "forbidden",
		})

	case errors.Is(err, usecase_vote.ErrHeadcountNotReady),
		errors.Is(err, usecase_vote.ErrVoteNotOpen),
		errors.Is(err, usecase_vote.ErrCandidatesNotReady),
		errors.Is(err, usecase_vote.ErrVoteNotCounted),
		errors.Is(err, usecase_vote.ErrFinalAlreadySelected),
		errors.Is(err, usecase_vote.ErrRevoteNotAvailable),
		errors.Is(err, usecase_vote.ErrDeadlinePassed):
		ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
			Message: err.Error(),
		})

	case errors.Is(err, usecase_vote.ErrValidation):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: err.Error(),
		})

	default:
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	}
}
