package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public and authenticated route groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/signup", handlers.authHandler.signup())
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/post/single", handlers.postHandler.getSinglePost())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		// Post endpoints
		r.Post("/post/create", handlers.postHandler.createPost())
		r.Post("/post/edit", handlers.postHandler.editPost())
		r.Post("/post/like", handlers.postHandler.likePost())
		r.Post("/post/unlike", handlers.postHandler.unlikePost())
		r.Post("/post/comment", handlers.postHandler.commentOnPost())
		r.Post("/post/upload-image", handlers.postHandler.uploadImage())

		// Dashboard endpoints
		r.Get("/dashboard", handlers.dashboardHandler.getDashboard())
		r.Post("/dashboard/notifications/seen", handlers.dashboardHandler.markNotificationsSeen())

		// Payment endpoints
		r.Get("/payment/get-donations", handlers.donationHandler.getDonations())
		r.Post("/payment/donate", handlers.donationHandler.donate())
	})
}
