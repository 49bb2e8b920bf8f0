package infra_postgres_vote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/babmate/core/internal/model"
	usecase_vote "github.com/babmate/core/internal/usecase/vote"
)

type VoteInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

func voteColumns() []string {
	return []string{"id", "meeting_id", "round", "status", "generated_at", "counted_at"}
}

func (suite *VoteInfraUnitSuite) TestByID(t provider.T) {
	t.Parallel()

	t.Run("Should load a vote row", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		voteID := uuid.New()
		meetingID := uuid.New()
		generatedAt := time.Now()

		r.mock.ExpectQuery("SELECT id, meeting_id, round, status, generated_at, counted_at").
			WithArgs(voteID).
			WillReturnRows(sqlmock.NewRows(voteColumns()).
				AddRow(voteID, meetingID, 1, "OPEN", generatedAt, nil))

		vote, err := r.driver.ByID(r.ctx, voteID)

		assert.NoError(t, err)
		assert.Equal(t, voteID, vote.ID)
		assert.Equal(t, meetingID, vote.MeetingID)
		assert.Equal(t, model.RoundPrimary, vote.Round)
		assert.Equal(t, model.VoteStatusOpen, vote.Status)
		assert.NotNil(t, vote.GeneratedAt)
		assert.Nil(t, vote.CountedAt)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should map missing row to not-found", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		voteID := uuid.New()
		r.mock.ExpectQuery("SELECT id, meeting_id, round, status, generated_at, counted_at").
			WithArgs(voteID).
			WillReturnRows(sqlmock.NewRows(voteColumns()))

		_, err := r.driver.ByID(r.ctx, voteID)

		assert.ErrorIs(t, err, usecase_vote.ErrVoteNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *VoteInfraUnitSuite) TestCreatePair(t provider.T) {
	t.Parallel()

	t.Run("Should insert both rounds in one transaction", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		meetingID := uuid.New()

		r.mock.ExpectBegin()
		r.mock.ExpectExec("INSERT INTO votes").
			WithArgs(sqlmock.AnyArg(), meetingID, model.RoundPrimary, "GENERATING").
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectExec("INSERT INTO votes").
			WithArgs(sqlmock.AnyArg(), meetingID, model.RoundReserve, "GENERATING").
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectCommit()

		v1, v2, err := r.driver.CreatePair(r.ctx, meetingID)

		assert.NoError(t, err)
		assert.Equal(t, model.RoundPrimary, v1.Round)
		assert.Equal(t, model.RoundReserve, v2.Round)
		assert.Equal(t, model.VoteStatusGenerating, v1.Status)
		assert.Equal(t, model.VoteStatusGenerating, v2.Status)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should roll back when the second insert collides", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		meetingID := uuid.New()

		r.mock.ExpectBegin()
		r.mock.ExpectExec("INSERT INTO votes").
			WithArgs(sqlmock.AnyArg(), meetingID, model.RoundPrimary, "GENERATING").
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectExec("INSERT INTO votes").
			WithArgs(sqlmock.AnyArg(), meetingID, model.RoundReserve, "GENERATING").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))
		r.mock.ExpectRollback()

		_, _, err := r.driver.CreatePair(r.ctx, meetingID)

		assert.Error(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *VoteInfraUnitSuite) TestUpdateStatusIfMatch(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{
			name:         "Should report a won transition",
			rowsAffected: 1,
			expected:     true,
		},
		{
			name:         "Should report a lost transition",
			rowsAffected: 0,
			expected:     false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			r := initResources(t)
			defer r.db.Close()

			voteID := uuid.New()
			r.mock.ExpectExec("UPDATE votes").
				WithArgs("COUNTING", voteID, "OPEN").
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			won, err := r.driver.UpdateStatusIfMatch(r.ctx, voteID,
				model.VoteStatusOpen, model.VoteStatusCounting)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, won)
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (suite *VoteInfraUnitSuite) TestMarkOpen(t provider.T) {
	t.Parallel()

	t.Run("Should flip only a generating vote", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		voteID := uuid.New()
		at := time.Now()
		r.mock.ExpectExec("UPDATE votes").
			WithArgs("OPEN", at, voteID, "GENERATING").
			WillReturnResult(sqlmock.NewResult(0, 1))

		won, err := r.driver.MarkOpen(r.ctx, voteID, at)

		assert.NoError(t, err)
		assert.True(t, won)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should not touch a vote that moved on", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		voteID := uuid.New()
		at := time.Now()
		r.mock.ExpectExec("UPDATE votes").
			WithArgs("OPEN", at, voteID, "GENERATING").
			WillReturnResult(sqlmock.NewResult(0, 0))

		won, err := r.driver.MarkOpen(r.ctx, voteID, at)

		assert.NoError(t, err)
		assert.False(t, won)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *VoteInfraUnitSuite) TestMarkCounted(t provider.T) {
	t.Parallel()

	t.Run("Should close a counting vote", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		voteID := uuid.New()
		at := time.Now()
		r.mock.ExpectExec("UPDATE votes").
			WithArgs("COUNTED", at, voteID, "COUNTING").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.driver.MarkCounted(r.ctx, voteID, at)

		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report a vote that is not counting", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		voteID := uuid.New()
		at := time.Now()
		r.mock.ExpectExec("UPDATE votes").
			WithArgs("COUNTED", at, voteID, "COUNTING").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := r.driver.MarkCounted(r.ctx, voteID, at)

		assert.ErrorIs(t, err, usecase_vote.ErrVoteNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *VoteInfraUnitSuite) TestMarkFailed(t provider.T) {
	t.Parallel()

	t.Run("Should tolerate a missing vote", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		voteID := uuid.New()
		r.mock.ExpectExec("UPDATE votes").
			WithArgs("FAILED", voteID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := r.driver.MarkFailed(r.ctx, voteID)

		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestInfraSuite(t *testing.T) {
	suite.RunSuite(t, new(VoteInfraUnitSuite))
}
