package database

import (
	"errors"

	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindBySlug returns the post with the given slug, or nil if no such post
// exists. Slugs are globally unique.
func (r *PostRepo) FindBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlugAndID returns the post matching both keys, or nil.
func (r *PostRepo) FindBySlugAndID(slug string, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("slug = ? AND id = ?", slug, id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlugAndOwner returns the owner's post with the given slug, or nil.
func (r *PostRepo) FindBySlugAndOwner(owner uuid.UUID, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("user_uuid = ? AND slug = ?", owner, slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByOwner returns all posts belonging to the given user, newest first.
func (r *PostRepo) FindByOwner(owner uuid.UUID) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Where("user_uuid = ?", owner).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update saves the whole post record. Likes and comments are JSON columns, so
// this rewrites the full collections every time.
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}
