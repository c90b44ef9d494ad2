package services

import (
	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
)

// fakePostStore is an in-memory PostStore for service tests.
type fakePostStore struct {
	posts   []*models.Post
	nextID  uint
	updates int
}

func (f *fakePostStore) FindBySlug(slug string) (*models.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) FindBySlugAndID(slug string, id uint) (*models.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) FindBySlugAndOwner(owner uuid.UUID, slug string) (*models.Post, error) {
	for _, p := range f.posts {
		if p.UserUUID == owner && p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePostStore) FindByOwner(owner uuid.UUID) ([]*models.Post, error) {
	var posts []*models.Post
	for _, p := range f.posts {
		if p.UserUUID == owner {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (f *fakePostStore) Add(post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	f.posts = append(f.posts, post)
	return nil
}

func (f *fakePostStore) Update(post *models.Post) error {
	f.updates++
	return nil
}

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users   []*models.User
	updates int
}

func (f *fakeUserStore) FindByUUID(id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.UUID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Add(user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	f.updates++
	return nil
}

type notification struct {
	recipient *models.User
	message   string
	link      string
}

// fakeNotifier records notify calls without touching any store.
type fakeNotifier struct {
	notifications []notification
}

func (f *fakeNotifier) Notify(recipient *models.User, message, link string) error {
	f.notifications = append(f.notifications, notification{recipient, message, link})
	return nil
}
