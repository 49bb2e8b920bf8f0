package worker_generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/babmate/core/internal/model"
	mocks "github.com/babmate/core/mocks/worker"
)

func validJob() model.GenerationJob {
	return model.GenerationJob{
		MeetingID:    uuid.New(),
		Round1VoteID: uuid.New(),
		Round2VoteID: uuid.New(),
	}
}

func TestWorkerRunsDispatchedJobs(t *testing.T) {
	generator := mocks.NewGenerator(t)
	worker := New(generator, 4)

	job := validJob()
	done := make(chan struct{})
	generator.On("Generate", mock.Anything, job).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	worker.Dispatch(job)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job was not processed")
	}
}

func TestWorkerSurvivesGeneratorFailure(t *testing.T) {
	generator := mocks.NewGenerator(t)
	worker := New(generator, 4)

	failing := validJob()
	following := validJob()
	done := make(chan struct{})
	generator.On("Generate", mock.Anything, failing).
		Return(errors.New("provider down")).Once()
	generator.On("Generate", mock.Anything, following).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	worker.Dispatch(failing)
	worker.Dispatch(following)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker stopped after a failed job")
	}
}

func TestWorkerAppliesJobTimeout(t *testing.T) {
	generator := mocks.NewGenerator(t)
	worker := New(generator, 1, WithJobTimeout(10*time.Millisecond))

	job := validJob()
	done := make(chan struct{})
	generator.On("Generate", mock.Anything, job).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 50*time.Millisecond)
			close(done)
		}).
		Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	worker.Dispatch(job)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job was not processed")
	}
}

func TestWorkerStopsOnCancel(t *testing.T) {
	generator := mocks.NewGenerator(t)
	worker := New(generator, 1)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(stopped)
	}()

	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on cancel")
	}
}
