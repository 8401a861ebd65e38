package routes

import (
	"net/http"

	"github.com/parth-samanta/LogMyFit/internal/app"
	"github.com/parth-samanta/LogMyFit/internal/handler"
	"github.com/parth-samanta/LogMyFit/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	activity := handler.NewActivityLogHandler(app.Activities)
	goal := handler.NewGoalHandler(app.Goals, app.Activities)
	workout := handler.NewWorkoutLogHandler(app.Workouts)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /api/health", handler.Health)

	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/signup", rateLimiter(auth.Signup))
	mux.HandleFunc("POST /api/login", rateLimiter(auth.Login))

	// Session-gated (SessionAuth covers everything under /api/ except
	// health, signup, and login)
	mux.HandleFunc("POST /api/logout", auth.Logout)

	mux.HandleFunc("POST /api/log", activity.Create)
	mux.HandleFunc("GET /api/logs", activity.List)

	mux.HandleFunc("POST /api/goals", goal.Upsert)
	mux.HandleFunc("GET /api/progress", goal.Progress)

	mux.HandleFunc("POST /api/workout-log", workout.Create)
	mux.HandleFunc("GET /api/workout-logs", workout.List)
	mux.HandleFunc("GET /api/workout-stats", workout.Stats)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.SessionAuth(app.AuthService),
	)
}
