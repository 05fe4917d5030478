package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/shutter-academy/academy-api/internal/api"
	apiMiddleware "github.com/shutter-academy/academy-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Public routes are registered at the top level; everything else sits behind
// the bearer-token guard.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	authHandler := api.NewAuthHandler(app.jwtService)
	userHandler := api.NewUserHandler(app.userStore)
	classHandler := api.NewClassHandler(app.classStore)
	selectionHandler := api.NewSelectedClassHandler(app.selectedClassStore)
	paymentHandler := api.NewPaymentHandler(app.intents, app.paymentStore)
	healthHandler := api.NewHealthHandler(app.pinger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	ownEmail := apiMiddleware.RequireOwnEmail("email", app.config.Auth.EnforceOwnerMatch)

	r.Get("/", healthHandler.Liveness)
	r.Get("/health", healthHandler.Readiness)

	r.Post("/jwt", authHandler.IssueToken)
	r.Put("/users/{email}", userHandler.UpsertUser)
	r.Get("/instructors", userHandler.ListInstructors)
	r.Get("/classes", classHandler.ListClasses)
	r.Get("/approvedClasses", classHandler.ListApprovedClasses)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)
		r.Post("/payment", paymentHandler.CreatePayment)
		r.With(ownEmail).Get("/payment/{email}", paymentHandler.ListPayments)

		r.Post("/classes", classHandler.CreateClass)
		r.Patch("/classes/{id}", classHandler.Enroll)
		r.Patch("/updateClassStatus/{id}", classHandler.UpdateStatus)
		r.Put("/classFeedback/{id}", classHandler.UpsertFeedback)
		r.Patch("/updateClass/{id}", classHandler.UpdateClass)
		r.With(ownEmail).Get("/instructorClasses/{email}", classHandler.ListInstructorClasses)

		r.Post("/selectedClasses", selectionHandler.CreateSelection)
		r.With(ownEmail).Get("/selectedClasses/{email}", selectionHandler.ListSelections)
		r.Get("/selectedAClasses/{id}", selectionHandler.GetSelection)
		r.Delete("/selectedClasses/{id}", selectionHandler.DeleteSelection)
	})

	return cors.New(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler(r)
}
