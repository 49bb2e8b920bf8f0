package app

import (
	"context"

	"github.com/babmate/core/internal/config"
	http_auth "github.com/babmate/core/internal/delivery/http/auth"
	http_init "github.com/babmate/core/internal/delivery/http/init"
	http_auth_middleware "github.com/babmate/core/internal/delivery/http/middleware/auth"
	http_vote "github.com/babmate/core/internal/delivery/http/vote"
	infra_pg_init "github.com/babmate/core/internal/infra/postgres/init"
	infra_postgres_candidate "github.com/babmate/core/internal/infra/postgres/candidate"
	infra_postgres_meeting "github.com/babmate/core/internal/infra/postgres/meeting"
	infra_postgres_preference "github.com/babmate/core/internal/infra/postgres/preference"
	infra_postgres_restaurant "github.com/babmate/core/internal/infra/postgres/restaurant"
	infra_postgres_selection "github.com/babmate/core/internal/infra/postgres/selection"
	infra_postgres_submission "github.com/babmate/core/internal/infra/postgres/submission"
	infra_postgres_vote "github.com/babmate/core/internal/infra/postgres/vote"
	infra_recommend "github.com/babmate/core/internal/infra/recommend"
	infra_redis_init "github.com/babmate/core/internal/infra/redis/init"
	infra_session_cache "github.com/babmate/core/internal/infra/redis/session"
	usecase_generation "github.com/babmate/core/internal/usecase/generation"
	usecase_vote "github.com/babmate/core/internal/usecase/vote"
	worker_generation "github.com/babmate/core/internal/worker/generation"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	voteRepo := infra_postgres_vote.New(pgConn)
	candidateRepo := infra_postgres_candidate.New(pgConn)
	submissionRepo := infra_postgres_submission.New(pgConn)
	meetingRepo := infra_postgres_meeting.New(pgConn)
	selectionRepo := infra_postgres_selection.New(pgConn)
	preferenceRepo := infra_postgres_preference.New(pgConn)
	restaurantRepo := infra_postgres_restaurant.New(pgConn)

	recommender := infra_recommend.New(cfg.Recommendation)

	generationUC := usecase_generation.New(
		voteRepo,
		meetingRepo,
		preferenceRepo,
		restaurantRepo,
		candidateRepo,
		recommender,
	)

	worker := worker_generation.New(generationUC, cfg.Generation.QueueSize)
	go worker.Run(context.Background())

	voteUC := usecase_vote.New(
		voteRepo,
		candidateRepo,
		submissionRepo,
		meetingRepo,
		selectionRepo,
		worker,
	)

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authMiddleware := http_auth_middleware.New(sessionCache)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(sessionCache))
	controllerPool.Add(http_vote.New(voteUC, authMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
