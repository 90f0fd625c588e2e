package routes

import (
	"github.com/go-chi/chi/v5"

	"summit-sheriff/recruiting/internal/api"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Public: auth, board, campaigns, chat and the interest form.
		// Optional auth lets signed-in visitors be recognized without
		// requiring credentials.
		v1.Group(func(public chi.Router) {
			public.Use(middleware.OptionalAuthMiddleware(deps.Services.Tokens))

			public.Post("/user/register", handlers.RegisterUser())
			public.Post("/user/login", handlers.LoginUser())
			public.Get("/leaderboard", handlers.GetLeaderboard())
			public.Get("/campaigns", handlers.GetCampaigns())
			public.Post("/chat/message", handlers.ChatMessage())
			public.Post("/applicants", handlers.CreateApplicant())
		})

		// Authenticated users group
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Tokens, deps.Repo.Keys))

			authed.Get("/user/details", handlers.GetUserDetails())
			authed.Get("/user/points", handlers.GetUserPoints())
			authed.Get("/user/points/history", handlers.PointHistory())
			authed.Get("/user/badges", handlers.GetUserBadges())

			authed.Post("/trivia/start", handlers.StartTriviaGame())
			authed.Post("/trivia/submit", handlers.SubmitTriviaAnswer())
			authed.Post("/trivia/complete", handlers.CompleteTriviaGame())
			authed.Post("/trivia/share", handlers.ShareTriviaGame())

			authed.Get("/checklist", handlers.GetChecklist())
			authed.Post("/checklist/toggle", handlers.ToggleChecklistItem())

			authed.Post("/donations/record", handlers.RecordDonation())

			// Volunteer group (volunteers and admins); outreach staff
			// get read access to the funnel.
			authed.Group(func(volunteer chi.Router) {
				volunteer.Use(middleware.IsVolunteerMiddleware())

				volunteer.Get("/admin/applicants", handlers.ListApplicants())
				volunteer.Get("/admin/applicants/{applicant_id}", handlers.GetApplicant())

				// Admin-only group
				volunteer.Group(func(admin chi.Router) {
					admin.Use(middleware.IsAdminMiddleware())

					admin.Post("/points/award", handlers.AwardPoints())
					admin.Post("/badges/award", handlers.AwardBadges())
					admin.Post("/admin/donations/rules", handlers.SaveDonationRule())
					admin.Put("/admin/applicants/{applicant_id}/status", handlers.UpdateApplicantStatus())
				})
			})
		})
	})
}
