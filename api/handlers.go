package api

import (
	"github.com/fortuneehis/quickk/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies) *routeHandlers {
	userRepo := deps.DB.UserRepo()
	postRepo := deps.DB.PostRepo()

	sink := services.NewNotificationSink(userRepo)
	postService := services.NewPostService(postRepo)
	interactions := services.NewInteractionService(postRepo, userRepo, sink, deps.Events)

	return &routeHandlers{
		authHandler:      newAuthHandler(userRepo, deps.Auth),
		postHandler:      newPostHandler(postService, interactions, postRepo, userRepo, deps.Uploader, deps.Cache, deps.Events),
		dashboardHandler: newDashboardHandler(postRepo, userRepo, deps.DB.DonationRepo()),
		donationHandler:  newDonationHandler(deps.DB.DonationRepo()),
	}
}
