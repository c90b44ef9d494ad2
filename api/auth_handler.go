package api

import (
	"encoding/json"
	"net/http"

	"github.com/fortuneehis/quickk/auth"
	"github.com/fortuneehis/quickk/errs"
	"github.com/fortuneehis/quickk/models"
	"github.com/fortuneehis/quickk/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	users         services.UserStore
	authenticator auth.TokenAuthenticator
}

func newAuthHandler(users services.UserStore, authenticator auth.TokenAuthenticator) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		users:         users,
		authenticator: authenticator,
	}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signup registers a new account and returns a bearer token for it.
func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode signup request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Username, email and password are required"))
			return
		}

		existing, err := h.users.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Username is taken"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to hash password", err))
			return
		}

		user := &models.User{
			UUID:         uuid.New(),
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
		}
		if err := h.users.Add(user); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "user", err))
			return
		}

		token, err := h.authenticator.Generate(user.UUID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to generate token", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "User created successfully",
			"token":   token,
			"user":    user,
		})
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the credentials and returns a fresh bearer token. Unknown
// username and wrong password answer identically.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		user, err := h.users.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid username or password"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid username or password"))
			return
		}

		token, err := h.authenticator.Generate(user.UUID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to generate token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}
