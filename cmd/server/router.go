package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/periodspal/periodspal-api/internal/api"
	apiMiddleware "github.com/periodspal/periodspal-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.accountService, app.jwtService)
	profileHandler := api.NewProfileHandler(app.accountService)
	cycleHandler := api.NewCycleHandler(app.cycleService, app.accountService)
	diaryHandler := api.NewDiaryHandler(app.diaryService, app.accountService)
	consultationHandler := api.NewConsultationHandler(app.consultationService, app.accountService)
	chatHandler := api.NewChatHandler(app.responder)
	contentHandler := api.NewContentHandler()

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/chat", chatHandler.Ask)
		r.Get("/content", contentHandler.List)
		r.Get("/content/{slug}", contentHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/profile", profileHandler.Get)
			r.Put("/profile", profileHandler.Update)

			r.Post("/cycles", cycleHandler.Record)
			r.Get("/cycles", cycleHandler.History)

			r.Post("/diary", diaryHandler.Add)
			r.Get("/diary", diaryHandler.History)

			r.Post("/consultations", consultationHandler.Request)
			r.Get("/consultations", consultationHandler.History)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
