package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fortuneehis/quickk/errs"
	"github.com/fortuneehis/quickk/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// donationStore is the slice of the donation repository the handlers need.
type donationStore interface {
	FindAll() ([]*models.Donation, error)
	Add(donation *models.Donation) error
}

type donationHandler struct {
	responder Responder
	logger    zerolog.Logger
	donations donationStore
}

func newDonationHandler(donations donationStore) donationHandler {
	logger := log.With().Str("handlerName", "donationHandler").Logger()

	return donationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		donations: donations,
	}
}

// getDonations lists every recorded donation.
func (h donationHandler) getDonations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donations, err := h.donations.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "donations", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message":   "Donations retrieved successfully",
			"donations": donations,
		})
	}
}

type donateRequest struct {
	Amount          float64 `json:"amount"`
	DonationMessage string  `json:"donationMessage"`
}

// donate records a donation from the authenticated user.
func (h donationHandler) donate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("User not found"))
			return
		}

		var req donateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode donation request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		if req.Amount <= 0 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("amount", "must be greater than zero"))
			return
		}

		donation := &models.Donation{
			DonorUUID:       user.UUID,
			Amount:          req.Amount,
			DonationMessage: req.DonationMessage,
			DonatedAt:       time.Now(),
		}
		if err := h.donations.Add(donation); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "donation", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]interface{}{
			"message":  "Donation recorded successfully",
			"donation": donation,
		})
	}
}
