package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/config"
	"github.com/parth-samanta/LogMyFit/internal/db"
	"github.com/parth-samanta/LogMyFit/internal/repository"
	"github.com/parth-samanta/LogMyFit/internal/service"
)

type App struct {
	Cfg         *config.Config
	DB          *sqlx.DB
	AuthService *service.AuthService
	Activities  repository.ActivityLogRepository
	Goals       repository.GoalRepository
	Workouts    repository.WorkoutLogRepository
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	sessionRepository := repository.NewSessionRepository(database)
	activityLogRepository := repository.NewActivityLogRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	workoutLogRepository := repository.NewWorkoutLogRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		sessionRepository,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)

	return &App{
		Cfg:         cfg,
		DB:          database,
		AuthService: authService,
		Activities:  activityLogRepository,
		Goals:       goalRepository,
		Workouts:    workoutLogRepository,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
