package api

import (
	"net/http"

	"github.com/fortuneehis/quickk/errs"
	"github.com/fortuneehis/quickk/models"
	"github.com/fortuneehis/quickk/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     services.PostStore
	users     services.UserStore
	donations donationStore
}

func newDashboardHandler(posts services.PostStore, users services.UserStore, donations donationStore) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
		users:     users,
		donations: donations,
	}
}

// getDashboard aggregates the authenticated user's posts, notifications, and
// the donation history. The independent reads fan out concurrently.
func (h dashboardHandler) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("User not found"))
			return
		}

		var (
			posts     []*models.Post
			donations []*models.Donation
		)

		var g errgroup.Group
		g.Go(func() error {
			var err error
			posts, err = h.posts.FindByOwner(user.UUID)
			return err
		})
		g.Go(func() error {
			var err error
			donations, err = h.donations.FindAll()
			return err
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "dashboard data", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message":           "Dashboard retrieved successfully",
			"posts":             posts,
			"notifications":     user.Notifications,
			"isNewNotification": user.IsNewNotification,
			"donations":         donations,
		})
	}
}

// markNotificationsSeen clears the unread flag on the authenticated user.
func (h dashboardHandler) markNotificationsSeen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("User not found"))
			return
		}

		user.IsNewNotification = false
		if err := h.users.Update(user); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Notifications marked as seen",
		})
	}
}
