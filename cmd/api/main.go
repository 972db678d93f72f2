package main

import (
	"context"

	"blogapi/cmd/internal/config"
	"blogapi/cmd/internal/domain/policy"
	"blogapi/cmd/internal/domain/sqlite"
	"blogapi/cmd/internal/domain/sqlite/repository"
	"blogapi/cmd/internal/http/handler"
	"blogapi/cmd/internal/http/middleware"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/service"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/uid"
	"blogapi/cmd/internal/utils/validators"

	"github.com/labstack/gommon/log"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err = cfg.RequireTokenKey(); err != nil {
		log.Fatal(err)
	}

	uid.Init(cfg.SnowflakeNode)

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database at %s: %v", cfg.DBPath, err)
	}

	verifier, err := newVerifier(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Repos
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	mapper := representation.NewMapper(validators.New(), categoryRepo)
	evaluator := policy.NewEvaluator()

	// Services
	userService := service.NewUserService(userRepo, evaluator)

	e := handler.NewRouter(&handler.RouterConfig{
		CategoryService: service.NewCategoryService(categoryRepo, mapper, evaluator),
		PostService:     service.NewPostService(postRepo, mapper, evaluator),
		ProfileService:  service.NewProfileService(profileRepo, mapper, evaluator),
		UserService:     userService,
		Auth: middleware.NewAuthMiddleware(&middleware.AuthMiddlewareConfig{
			Verifier: verifier,
			Users:    userService,
		}),
		BodyLimit: cfg.BodyLimit,
	})

	if err = e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// newVerifier prefers the remote JWKS when one is configured.
func newVerifier(cfg *config.Config) (*utils.TokenVerifier, error) {
	if cfg.JWKSURL != "" {
		return utils.NewJWKSVerifier(cfg.JWKSURL)
	}
	return utils.NewHMACVerifier([]byte(cfg.JWTSecret)), nil
}
