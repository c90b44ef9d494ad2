package services

import (
	"time"

	"github.com/fortuneehis/quickk/errs"
	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
)

const (
	maxTitleLength = 100

	// Create accepts shorter content than edit does. The asymmetry has always
	// been part of the API contract, so both thresholds are kept.
	minCreateContentLength = 50
	minEditContentLength   = 100
)

// PostService owns post creation and editing: field validation, slug
// derivation, collision checks, and persistence.
type PostService struct {
	store PostStore
	now   func() time.Time
}

func NewPostService(store PostStore) *PostService {
	return &PostService{
		store: store,
		now:   time.Now,
	}
}

// Create validates the fields, derives the slug from the title, and persists
// a new post owned by the given user.
func (s *PostService) Create(title, content string, owner uuid.UUID, coverImageURL string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, errs.NewBadRequestError("Title and content are required")
	}
	if len(title) > maxTitleLength {
		return nil, errs.NewBadRequestError("Title must be less than 100 characters")
	}
	if len(content) < minCreateContentLength {
		return nil, errs.NewBadRequestError("Content must be at least 50 characters")
	}

	slug := Slugify(title)

	existing, err := s.store.FindBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	if existing != nil {
		return nil, errs.NewBadRequestError("Post with this title already exists")
	}

	post := &models.Post{
		Title:         title,
		Content:       content,
		UserUUID:      owner,
		Slug:          slug,
		CoverImageURL: coverImageURL,
		CreatedAt:     s.now(),
	}
	if err := s.store.Add(post); err != nil {
		return nil, errs.NewDatabaseError("create", "post", err)
	}

	return post, nil
}

// Edit validates the fields, then looks the post up by owner and slug and
// saves the new title and content. Validation runs before the lookup so a bad
// payload reports the field error even when the post doesn't exist.
func (s *PostService) Edit(owner uuid.UUID, slug, title, content string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, errs.NewBadRequestError("Title and content are required")
	}
	if len(title) > maxTitleLength {
		return nil, errs.NewBadRequestError("Title must be less than 100 characters")
	}
	if len(content) < minEditContentLength {
		return nil, errs.NewBadRequestError("Content must be at least 100 characters")
	}

	post, err := s.store.FindBySlugAndOwner(owner, slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		return nil, errs.NewBadRequestError("Post not found")
	}

	post.Title = title
	post.Content = content
	post.UpdatedAt = s.now()
	if err := s.store.Update(post); err != nil {
		return nil, errs.NewDatabaseError("update", "post", err)
	}

	return post, nil
}
