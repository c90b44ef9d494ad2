package api

import (
	"encoding/json"
	"net/http"

	"github.com/fortuneehis/quickk/cache"
	"github.com/fortuneehis/quickk/errs"
	"github.com/fortuneehis/quickk/events"
	"github.com/fortuneehis/quickk/models"
	"github.com/fortuneehis/quickk/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxImageUploadSize caps multipart memory for cover image uploads (10MB).
const maxImageUploadSize = 10 << 20

type postHandler struct {
	responder    Responder
	logger       zerolog.Logger
	postService  *services.PostService
	interactions *services.InteractionService
	posts        services.PostStore
	users        services.UserStore
	uploader     *services.ImageUploader
	cache        *cache.PostCache
	events       *events.Publisher
}

func newPostHandler(
	postService *services.PostService,
	interactions *services.InteractionService,
	posts services.PostStore,
	users services.UserStore,
	uploader *services.ImageUploader,
	postCache *cache.PostCache,
	publisher *events.Publisher,
) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		postService:  postService,
		interactions: interactions,
		posts:        posts,
		users:        users,
		uploader:     uploader,
		cache:        postCache,
		events:       publisher,
	}
}

type createPostRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	CoverImageURL string `json:"coverImageUrl"`
}

// createPost creates a new post owned by the authenticated user.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := ctxGetUser(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("User not found"))
			return
		}

		var req createPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		post, err := h.postService.Create(req.Title, req.Content, user.UUID, req.CoverImageURL)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.events != nil {
			h.events.PostCreated(post)
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Post created successfully",
			"post":    post,
		})
	}
}

type editPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	UserUUID string `json:"userUuid"`
	Slug     string `json:"slug"`
}

// editPost updates a post's title and content. The post is looked up by the
// owner uuid and slug from the request body, as the clients have always sent
// them; the bearer token still has to resolve to a valid user first.
func (h postHandler) editPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode edit post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		owner, err := uuid.Parse(req.UserUUID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("userUuid", "must be a valid uuid"))
			return
		}

		post, err := h.postService.Edit(owner, req.Slug, req.Title, req.Content)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.cache != nil {
			h.cache.InvalidatePost(r.Context(), post.Slug)
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Post updated successfully",
		})
	}
}

type singlePostRequest struct {
	Username string `json:"username"`
	Slug     string `json:"slug"`
}

// getSinglePost returns one post by author username and slug. Public route.
// A missing post still answers 200 with a null post, which the frontend
// relies on.
func (h postHandler) getSinglePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req singlePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode single post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		if h.cache != nil {
			if post, ok := h.cache.GetPost(r.Context(), req.Username, req.Slug); ok {
				h.responder.WriteJSON(w, map[string]interface{}{
					"message": "Post retrieved successfully",
					"post":    post,
				})
				return
			}
		}

		user, err := h.users.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewBadRequestError("User not found"))
			return
		}

		post, err := h.posts.FindBySlugAndOwner(user.UUID, req.Slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "post", err))
			return
		}

		if h.cache != nil && post != nil {
			h.cache.SetPost(r.Context(), req.Username, req.Slug, post)
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Post retrieved successfully",
			"post":    post,
		})
	}
}

type interactionRequest struct {
	Slug    string `json:"slug"`
	ID      uint   `json:"id"`
	Comment string `json:"comment"`
}

// loadInteractionTarget resolves the acting user and the target post shared
// by the like/unlike/comment handlers. Writes the error response itself and
// returns false when the request can't proceed.
func (h postHandler) loadInteractionTarget(w http.ResponseWriter, r *http.Request, req *interactionRequest) (ok bool, target interactionTarget) {
	user, err := ctxGetUser(r.Context())
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("User not found"))
		return false, target
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode interaction request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
		return false, target
	}

	post, err := h.posts.FindBySlugAndID(req.Slug, req.ID)
	if err != nil {
		h.responder.WriteError(w, errs.NewDatabaseError("find", "post", err))
		return false, target
	}
	if post == nil {
		h.responder.WriteError(w, errs.NewBadRequestError("Post not found"))
		return false, target
	}

	target.user = user
	target.post = post
	return true, target
}

type interactionTarget struct {
	user *models.User
	post *models.Post
}

// likePost appends the acting user to the post's likes and notifies the
// owner when someone else's post is liked.
func (h postHandler) likePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req interactionRequest
		ok, target := h.loadInteractionTarget(w, r, &req)
		if !ok {
			return
		}

		likerData, err := h.interactions.Like(target.post, target.user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.cache != nil {
			h.cache.InvalidatePost(r.Context(), target.post.Slug)
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message":   "Post liked successfully",
			"likerData": likerData,
		})
	}
}

// unlikePost removes the acting user's likes from the post.
func (h postHandler) unlikePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req interactionRequest
		ok, target := h.loadInteractionTarget(w, r, &req)
		if !ok {
			return
		}

		likerData, err := h.interactions.Unlike(target.post, target.user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.cache != nil {
			h.cache.InvalidatePost(r.Context(), target.post.Slug)
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message":   "Post unliked successfully",
			"likerData": likerData,
		})
	}
}

// commentOnPost appends a comment to the post's thread.
func (h postHandler) commentOnPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req interactionRequest
		ok, target := h.loadInteractionTarget(w, r, &req)
		if !ok {
			return
		}

		commentData, err := h.interactions.Comment(target.post, target.user, req.Comment)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.cache != nil {
			h.cache.InvalidatePost(r.Context(), target.post.Slug)
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message":     "Comment added successfully",
			"commentData": commentData,
		})
	}
}

// uploadImage stores a cover image with the upload collaborator and returns
// its public URL. Upload failures surface as 500s with the raw error.
func (h postHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Please upload an image"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Please upload an image"))
			return
		}
		defer file.Close()

		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("image uploads are not configured"))
			return
		}

		url, err := h.uploader.Upload(r.Context(), header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewUploadError(err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Image uploaded successfully",
			"image":   url,
		})
	}
}
