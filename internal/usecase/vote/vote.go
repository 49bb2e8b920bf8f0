package usecase_vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/babmate/core/internal/model"
)

var (
	ErrMeetingNotFound        = errors.New("meeting not found")
	ErrVoteNotFound           = errors.New("vote not found")
	ErrCandidateNotFound      = errors.New("candidate not found")
	ErrFinalSelectionNotFound = errors.New("final selection not found")

	ErrNotHost              = errors.New("caller is not the host")
	ErrNotParticipant       = errors.New("caller is not a participant")
	ErrNotActiveParticipant = errors.New("caller is not an active participant")

	ErrHeadcountNotReady    = errors.New("active headcount does not match target")
	ErrVoteNotOpen          = errors.New("vote is not open")
	ErrCandidatesNotReady   = errors.New("candidates are not ready")
	ErrVoteNotCounted       = errors.New("vote is not counted yet")
	ErrFinalAlreadySelected = errors.New("final selection already exists")
	ErrRevoteNotAvailable   = errors.New("revote is not available")
	ErrDeadlinePassed       = errors.New("vote deadline has passed")

	ErrValidation = errors.New("validation failed")
	ErrInternal   = errors.New("internal error")
)

//go:generate mockery --name=VoteRepository --output=../../../mocks/vote --filename=repository.go
type VoteRepository interface {
	ByID(ctx context.Context, voteID uuid.UUID) (model.Vote, error)
	ByMeetingAndRound(ctx context.Context, meetingID uuid.UUID, round int) (model.Vote, error)

	// CreatePair inserts both rounds in GENERATING within one transaction.
	CreatePair(ctx context.Context, meetingID uuid.UUID) (model.Vote, model.Vote, error)

	// UpdateStatusIfMatch is a conditional UPDATE ... WHERE status = from.
	// The returned bool reports whether this caller won the transition.
	UpdateStatusIfMatch(ctx context.Context, voteID uuid.UUID, from, to model.VoteStatus) (bool, error)

	MarkCounted(ctx context.Context, voteID uuid.UUID, at time.Time) error
	MarkOpenFromReserved(ctx context.Context, voteID uuid.UUID, at time.Time) (bool, error)
}

//go:generate mockery --name=CandidateRepository --output=../../../mocks/vote --filename=candidates.go
type CandidateRepository interface {
	ByVote(ctx context.Context, voteID uuid.UUID) ([]model.Candidate, error)
	ByIDAndVote(ctx context.Context, candidateID, voteID uuid.UUID) (model.Candidate, error)
	IDsByVote(ctx context.Context, voteID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	ExistsByVote(ctx context.Context, voteID uuid.UUID) (bool, error)
	Top3(ctx context.Context, voteID uuid.UUID) ([]model.Candidate, error)
	DeleteByVote(ctx context.Context, voteID uuid.UUID) error

	// ApplyResults writes tallies and final ranks in one transaction.
	ApplyResults(ctx context.Context, voteID uuid.UUID, results []model.CandidateResult) error
}

//go:generate mockery --name=SubmissionRepository --output=../../../mocks/vote --filename=submissions.go
type SubmissionRepository interface {
	HasSubmitted(ctx context.Context, voteID, participantID uuid.UUID) (bool, error)
	InsertBatch(ctx context.Context, voteID, participantID uuid.UUID, ballots []model.Ballot) error
	CountDistinctParticipants(ctx context.Context, voteID uuid.UUID) (int, error)
	TalliesByVote(ctx context.Context, voteID uuid.UUID) (map[uuid.UUID]model.Tally, error)
}

//go:generate mockery --name=MeetingRepository --output=../../../mocks/vote --filename=meetings.go
type MeetingRepository interface {
	ByID(ctx context.Context, meetingID uuid.UUID) (model.Meeting, error)
	ParticipantByMember(ctx context.Context, meetingID, memberID uuid.UUID) (model.Participant, error)
	ActiveParticipantCount(ctx context.Context, meetingID uuid.UUID) (int, error)
}

//go:generate mockery --name=SelectionRepository --output=../../../mocks/vote --filename=selections.go
type SelectionRepository interface {
	Exists(ctx context.Context, meetingID uuid.UUID) (bool, error)
	Create(ctx context.Context, meetingID, candidateID uuid.UUID, at time.Time) error
	ByMeeting(ctx context.Context, meetingID uuid.UUID) (model.FinalSelection, error)
}

// GenerationDispatcher hands a job to the asynchronous candidate
// generation worker. Callers dispatch only after their own writes have
// committed, so the worker never observes a phantom vote.
//
//go:generate mockery --name=GenerationDispatcher --output=../../../mocks/vote --filename=dispatcher.go
type GenerationDispatcher interface {
	Dispatch(job model.GenerationJob)
}

type Usecase struct {
	votes      VoteRepository
	candidates CandidateRepository
	subs       SubmissionRepository
	meetings   MeetingRepository
	selections SelectionRepository
	dispatcher GenerationDispatcher

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
	candidates CandidateRepository,
	subs SubmissionRepository,
	meetings MeetingRepository,
	selections SelectionRepository,
	dispatcher GenerationDispatcher,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		votes:      votes,
		candidates: candidates,
		subs:       subs,
		meetings:   meetings,
		selections: selections,
		dispatcher: dispatcher,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create starts the vote lifecycle for a meeting: both rounds are created
// in GENERATING and a generation job is dispatched. Calling it again is
// idempotent for every round-1 status except FAILED, which triggers a
// compare-and-set guarded retry so only one caller regenerates.
func (u *Usecase) Create(ctx context.Context, meetingID, memberID uuid.UUID) (uuid.UUID, error) {
	meeting, err := u.meetings.ByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			return uuid.Nil, ErrMeetingNotFound
		}
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	if meeting.HostMemberID != memberID {
		return uuid.Nil, ErrNotHost
	}
	if err := u.requireActiveParticipant(ctx, meetingID, memberID); err != nil {
		return uuid.Nil, err
	}

	activeCount, err := u.meetings.ActiveParticipantCount(ctx, meetingID)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if activeCount != meeting.TargetHeadcount {
		return uuid.Nil, fmt.Errorf("%w: active=%d, target=%d", ErrHeadcountNotReady, activeCount, meeting.TargetHeadcount)
	}

	v1, err := u.votes.ByMeetingAndRound(ctx, meetingID, model.RoundPrimary)
	if err != nil {
		if errors.Is(err, ErrVoteNotFound) {
			return u.createPairAndDispatch(ctx, meetingID)
		}
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	v2, err := u.votes.ByMeetingAndRound(ctx, meetingID, model.RoundReserve)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, fmt.Errorf("round2 missing: %w", err))
	}

	if v1.Status != model.VoteStatusFailed {
		return v1.ID, nil
	}

	return u.retryFromFailed(ctx, meetingID, v1, v2)
}

func (u *Usecase) createPairAndDispatch(ctx context.Context, meetingID uuid.UUID) (uuid.UUID, error) {
	v1, v2, err := u.votes.CreatePair(ctx, meetingID)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	// CreatePair owns its transaction, so returning from it means the
	// vote rows are committed and visible to the worker.
	u.dispatcher.Dispatch(model.GenerationJob{
		MeetingID:    meetingID,
		Round1VoteID: v1.ID,
		Round2VoteID: v2.ID,
	})

	return v1.ID, nil
}

// retryFromFailed clears candidates and regenerates. Round 1 is the
// compare-and-set coordination point; round 2 is flipped opportunistically
// from either FAILED or RESERVED.
func (u *Usecase) retryFromFailed(ctx context.Context, meetingID uuid.UUID, v1, v2 model.Vote) (uuid.UUID, error) {
	acquired, err := u.votes.UpdateStatusIfMatch(ctx, v1.ID, model.VoteStatusFailed, model.VoteStatusGenerating)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	if _, err := u.votes.UpdateStatusIfMatch(ctx, v2.ID, model.VoteStatusFailed, model.VoteStatusGenerating); err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if _, err := u.votes.UpdateStatusIfMatch(ctx, v2.ID, model.VoteStatusReserved, model.VoteStatusGenerating); err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	if acquired {
		if err := u.candidates.DeleteByVote(ctx, v1.ID); err != nil {
			return uuid.Nil, errors.Join(ErrInternal, err)
		}
		if err := u.candidates.DeleteByVote(ctx, v2.ID); err != nil {
			return uuid.Nil, errors.Join(ErrInternal, err)
		}

		u.logger.Info("vote retry acquired",
			slog.String("meeting_id", meetingID.String()),
			slog.String("vote_id", v1.ID.String()))

		u.dispatcher.Dispatch(model.GenerationJob{
			MeetingID:    meetingID,
			Round1VoteID: v1.ID,
			Round2VoteID: v2.ID,
		})
	}

	return v1.ID, nil
}

// Candidates returns the swipe deck of an OPEN vote.
func (u *Usecase) Candidates(ctx context.Context, meetingID, voteID, memberID uuid.UUID) ([]model.Candidate, error) {
	if err := u.requireActiveParticipant(ctx, meetingID, memberID); err != nil {
		return nil, err
	}

	vote, err := u.voteOfMeeting(ctx, meetingID, voteID)
	if err != nil {
		return nil, err
	}
	if vote.Status != model.VoteStatusOpen {
		return nil, ErrVoteNotOpen
	}

	items, err := u.candidates.ByVote(ctx, voteID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if len(items) == 0 {
		return nil, ErrCandidatesNotReady
	}

	return items, nil
}

// Submit accepts one participant's full ballot batch. The batch must
// cover the meeting's swipe count with distinct candidate ids that all
// belong to the vote. A repeated submission is a silent success. The
// submission that completes the active-participant set flips the vote to
// COUNTING via compare-and-set and the winner counts inline.
func (u *Usecase) Submit(ctx context.Context, meetingID, voteID, memberID uuid.UUID, ballots []model.Ballot) error {
	participant, err := u.meetings.ParticipantByMember(ctx, meetingID, memberID)
	if err != nil {
		if errors.Is(err, ErrNotParticipant) {
			return ErrNotParticipant
		}
		return errors.Join(ErrInternal, err)
	}
	if participant.Status != model.ParticipantStatusActive {
		return ErrNotActiveParticipant
	}

	vote, err := u.voteOfMeeting(ctx, meetingID, voteID)
	if err != nil {
		return err
	}
	if vote.Status != model.VoteStatusOpen {
		return ErrVoteNotOpen
	}

	submitted, err := u.subs.HasSubmitted(ctx, voteID, participant.ID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if submitted {
		return nil
	}

	meeting, err := u.meetings.ByID(ctx, meetingID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if err := u.validateBallots(ctx, voteID, meeting.SwipeCount, ballots); err != nil {
		return err
	}

	if err := u.subs.InsertBatch(ctx, voteID, participant.ID, ballots); err != nil {
		return errors.Join(ErrInternal, err)
	}

	total, err := u.meetings.ActiveParticipantCount(ctx, meetingID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	submittedCount, err := u.subs.CountDistinctParticipants(ctx, voteID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}

	if submittedCount < total {
		return nil
	}

	won, err := u.votes.UpdateStatusIfMatch(ctx, voteID, model.VoteStatusOpen, model.VoteStatusCounting)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !won {
		return nil
	}

	if err := u.countSync(ctx, voteID); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) validateBallots(ctx context.Context, voteID uuid.UUID, swipeCount int, ballots []model.Ballot) error {
	if len(ballots) != swipeCount {
		return fmt.Errorf("%w: items=%d, expected=%d", ErrValidation, len(ballots), swipeCount)
	}

	ids := make([]uuid.UUID, 0, len(ballots))
	seen := make(map[uuid.UUID]struct{}, len(ballots))
	for _, b := range ballots {
		if !b.Choice.Valid() {
			return fmt.Errorf("%w: unknown choice %q", ErrValidation, b.Choice)
		}
		if _, ok := seen[b.CandidateID]; ok {
			return fmt.Errorf("%w: duplicate candidate id", ErrValidation)
		}
		seen[b.CandidateID] = struct{}{}
		ids = append(ids, b.CandidateID)
	}

	valid, err := u.candidates.IDsByVote(ctx, voteID, ids)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if len(valid) != len(ids) {
		return fmt.Errorf("%w: candidate not in vote", ErrValidation)
	}
	return nil
}

// countSync aggregates tallies and assigns final ranks 1..3. Ranking is
// deterministic: like count descending, ties broken by the candidate's
// position in the recommendation response.
func (u *Usecase) countSync(ctx context.Context, voteID uuid.UUID) error {
	cands, err := u.candidates.ByVote(ctx, voteID)
	if err != nil {
		return err
	}
	tallies, err := u.subs.TalliesByVote(ctx, voteID)
	if err != nil {
		return err
	}

	ranked := make([]model.Candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		ti, tj := tallies[ranked[i].ID], tallies[ranked[j].ID]
		if ti.Like != tj.Like {
			return ti.Like > tj.Like
		}
		return ranked[i].Position < ranked[j].Position
	})

	results := make([]model.CandidateResult, 0, len(ranked))
	for i, c := range ranked {
		r := model.CandidateResult{
			CandidateID: c.ID,
			Tally:       tallies[c.ID],
		}
		if i < 3 {
			rank := i + 1
			r.FinalRank = &rank
		}
		results = append(results, r)
	}

	if err := u.candidates.ApplyResults(ctx, voteID, results); err != nil {
		return err
	}

	if err := u.votes.MarkCounted(ctx, voteID, time.Now()); err != nil {
		return err
	}

	u.logger.Info("vote counted",
		slog.String("vote_id", voteID.String()),
		slog.Int("candidates", len(results)))
	return nil
}

// Status is the polling surface: current status plus submitted/total.
func (u *Usecase) Status(ctx context.Context, meetingID, voteID, memberID uuid.UUID) (model.VoteProgress, error) {
	if err := u.requireActiveParticipant(ctx, meetingID, memberID); err != nil {
		return model.VoteProgress{}, err
	}

	vote, err := u.voteOfMeeting(ctx, meetingID, voteID)
	if err != nil {
		return model.VoteProgress{}, err
	}

	total, err := u.meetings.ActiveParticipantCount(ctx, meetingID)
	if err != nil {
		return model.VoteProgress{}, errors.Join(ErrInternal, err)
	}
	submitted, err := u.subs.CountDistinctParticipants(ctx, voteID)
	if err != nil {
		return model.VoteProgress{}, errors.Join(ErrInternal, err)
	}

	return model.VoteProgress{
		Status:    vote.Status,
		Submitted: submitted,
		Total:     total,
	}, nil
}

// Results returns the counted top-3 and the host who may finalize.
func (u *Usecase) Results(ctx context.Context, meetingID, voteID, memberID uuid.UUID) ([]model.Candidate, uuid.UUID, error) {
	if err := u.requireActiveParticipant(ctx, meetingID, memberID); err != nil {
		return nil, uuid.Nil, err
	}

	vote, err := u.voteOfMeeting(ctx, meetingID, voteID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if vote.Status != model.VoteStatusCounted {
		return nil, uuid.Nil, ErrVoteNotCounted
	}

	top3, err := u.candidates.Top3(ctx, voteID)
	if err != nil {
		return nil, uuid.Nil, errors.Join(ErrInternal, err)
	}
	if len(top3) == 0 {
		return nil, uuid.Nil, errors.Join(ErrInternal, errors.New("top3 missing"))
	}

	meeting, err := u.meetings.ByID(ctx, meetingID)
	if err != nil {
		return nil, uuid.Nil, errors.Join(ErrInternal, err)
	}

	return top3, meeting.HostMemberID, nil
}

// StartRevote flips the pre-generated reserve round to OPEN. Allowed only
// for the host, before the meeting's vote deadline, while round 1 is
// COUNTED and no final selection exists. An already-OPEN round 2 makes it
// a no-op; any other reserve status is a conflict.
func (u *Usecase) StartRevote(ctx context.Context, meetingID, voteID, memberID uuid.UUID) error {
	meeting, err := u.meetings.ByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			return ErrMeetingNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	if meeting.HostMemberID != memberID {
		return ErrNotHost
	}

	selected, err := u.selections.Exists(ctx, meetingID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if selected {
		return ErrFinalAlreadySelected
	}

	v1, err := u.voteOfMeeting(ctx, meetingID, voteID)
	if err != nil {
		return err
	}
	if v1.Round != model.RoundPrimary {
		return fmt.Errorf("%w: not a round-1 vote", ErrValidation)
	}
	if v1.Status != model.VoteStatusCounted {
		return ErrVoteNotCounted
	}

	now := time.Now()
	if !now.Before(meeting.VoteDeadlineAt) {
		return fmt.Errorf("%w: now=%s, deadline=%s",
			ErrDeadlinePassed, now.Format(time.RFC3339), meeting.VoteDeadlineAt.Format(time.RFC3339))
	}

	v2, err := u.votes.ByMeetingAndRound(ctx, meetingID, model.RoundReserve)
	if err != nil {
		return errors.Join(ErrInternal, fmt.Errorf("round2 missing: %w", err))
	}

	ready, err := u.candidates.ExistsByVote(ctx, v2.ID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !ready {
		return ErrCandidatesNotReady
	}

	switch v2.Status {
	case model.VoteStatusOpen:
		return nil
	case model.VoteStatusReserved:
		if _, err := u.votes.MarkOpenFromReserved(ctx, v2.ID, now); err != nil {
			return errors.Join(ErrInternal, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: round2 status=%s", ErrRevoteNotAvailable, v2.Status)
	}
}

// Finalize records the host's pick among the counted top-3. The first
// selection wins; repeated calls are silent successes.
func (u *Usecase) Finalize(ctx context.Context, meetingID, voteID, memberID, candidateID uuid.UUID) error {
	meeting, err := u.meetings.ByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			return ErrMeetingNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	if meeting.HostMemberID != memberID {
		return ErrNotHost
	}

	vote, err := u.voteOfMeeting(ctx, meetingID, voteID)
	if err != nil {
		return err
	}
	if vote.Status != model.VoteStatusCounted {
		return ErrVoteNotCounted
	}

	selected, err := u.selections.Exists(ctx, meetingID)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if selected {
		return nil
	}

	candidate, err := u.candidates.ByIDAndVote(ctx, candidateID, voteID)
	if err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			return ErrCandidateNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	if candidate.FinalRank == nil || *candidate.FinalRank < 1 || *candidate.FinalRank > 3 {
		return fmt.Errorf("%w: candidate not in top3", ErrValidation)
	}

	if err := u.selections.Create(ctx, meetingID, candidateID, time.Now()); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// FinalSelection returns the recorded selection of a meeting.
func (u *Usecase) FinalSelection(ctx context.Context, meetingID, memberID uuid.UUID) (model.FinalSelection, error) {
	if err := u.requireActiveParticipant(ctx, meetingID, memberID); err != nil {
		return model.FinalSelection{}, err
	}

	fs, err := u.selections.ByMeeting(ctx, meetingID)
	if err != nil {
		if errors.Is(err, ErrFinalSelectionNotFound) {
			return model.FinalSelection{}, ErrFinalSelectionNotFound
		}
		return model.FinalSelection{}, errors.Join(ErrInternal, err)
	}
	return fs, nil
}

func (u *Usecase) requireActiveParticipant(ctx context.Context, meetingID, memberID uuid.UUID) error {
	participant, err := u.meetings.ParticipantByMember(ctx, meetingID, memberID)
	if err != nil {
		if errors.Is(err, ErrNotParticipant) {
			return ErrNotActiveParticipant
		}
		return errors.Join(ErrInternal, err)
	}
	if participant.Status != model.ParticipantStatusActive {
		return ErrNotActiveParticipant
	}
	return nil
}

func (u *Usecase) voteOfMeeting(ctx context.Context, meetingID, voteID uuid.UUID) (model.Vote, error) {
	vote, err := u.votes.ByID(ctx, voteID)
	if err != nil {
		if errors.Is(err, ErrVoteNotFound) {
			return model.Vote{}, ErrVoteNotFound
		}
		return model.Vote{}, errors.Join(ErrInternal, err)
	}
	if vote.MeetingID != meetingID {
		return model.Vote{}, ErrVoteNotFound
	}
	return vote, nil
}
