package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fortuneehis/quickk/models"
	"github.com/fortuneehis/quickk/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testContent = strings.Repeat("x", 120)

type postHandlerFixture struct {
	handler postHandler
	posts   *fakePostStore
	users   *fakeUserStore
	owner   *models.User
	post    *models.Post
}

func newPostHandlerFixture() postHandlerFixture {
	owner := &models.User{UUID: uuid.New(), Username: "author"}
	post := &models.Post{ID: 1, UserUUID: owner.UUID, Slug: "a-post", Title: "A Post", Content: testContent}

	posts := &fakePostStore{posts: []*models.Post{post}, nextID: 1}
	users := &fakeUserStore{users: []*models.User{owner}}

	sink := services.NewNotificationSink(users)
	postService := services.NewPostService(posts)
	interactions := services.NewInteractionService(posts, users, sink, nil)

	return postHandlerFixture{
		handler: newPostHandler(postService, interactions, posts, users, nil, nil, nil),
		posts:   posts,
		users:   users,
		owner:   owner,
		post:    post,
	}
}

func authenticatedRequest(user *models.User, body string) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req = req.WithContext(ctxWithUser(req.Context(), user))
	return httptest.NewRecorder(), req
}

func TestCreatePostHandler(t *testing.T) {
	f := newPostHandlerFixture()
	writer := &models.User{UUID: uuid.New(), Username: "writer"}

	body := fmt.Sprintf(`{"title":"Fresh Post","content":%q,"coverImageUrl":"https://cdn.example.com/c.png"}`, testContent)
	rec, req := authenticatedRequest(writer, body)
	f.handler.createPost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post created successfully")
	assert.Contains(t, rec.Body.String(), `"slug":"fresh-post"`)
	assert.Len(t, f.posts.posts, 2)
}

func TestCreatePostHandlerRejectsShortContent(t *testing.T) {
	f := newPostHandlerFixture()
	writer := &models.User{UUID: uuid.New(), Username: "writer"}

	rec, req := authenticatedRequest(writer, `{"title":"Fresh Post","content":"too short"}`)
	f.handler.createPost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "50 characters")
	assert.Len(t, f.posts.posts, 1)
}

func TestEditPostHandler(t *testing.T) {
	f := newPostHandlerFixture()

	body := fmt.Sprintf(`{"title":"New Title","content":%q,"userUuid":%q,"slug":"a-post"}`, testContent, f.owner.UUID.String())
	rec, req := authenticatedRequest(f.owner, body)
	f.handler.editPost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post updated successfully")
	assert.Equal(t, "New Title", f.post.Title)
}

func TestEditPostHandlerKeepsStricterContentThreshold(t *testing.T) {
	f := newPostHandlerFixture()

	body := fmt.Sprintf(`{"title":"New Title","content":%q,"userUuid":%q,"slug":"a-post"}`, strings.Repeat("c", 80), f.owner.UUID.String())
	rec, req := authenticatedRequest(f.owner, body)
	f.handler.editPost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "100 characters")
}

func TestLikePostHandlerNotifiesOwner(t *testing.T) {
	f := newPostHandlerFixture()
	liker := &models.User{UUID: uuid.New(), Username: "fan"}

	rec, req := authenticatedRequest(liker, `{"slug":"a-post","id":1}`)
	f.handler.likePost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post liked successfully")
	assert.Contains(t, rec.Body.String(), "likerData")

	require.Len(t, f.post.Likes, 1)
	require.Len(t, f.owner.Notifications, 1)
	assert.Equal(t, "fan liked your post", f.owner.Notifications[0].Message)
	assert.True(t, f.owner.IsNewNotification)
}

func TestLikePostHandlerSelfLikeDoesNotNotify(t *testing.T) {
	f := newPostHandlerFixture()

	rec, req := authenticatedRequest(f.owner, `{"slug":"a-post","id":1}`)
	f.handler.likePost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, f.post.Likes, 1)
	assert.Empty(t, f.owner.Notifications)
}

func TestLikePostHandlerUnknownPost(t *testing.T) {
	f := newPostHandlerFixture()
	liker := &models.User{UUID: uuid.New(), Username: "fan"}

	rec, req := authenticatedRequest(liker, `{"slug":"no-such-post","id":9}`)
	f.handler.likePost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post not found")
}

func TestUnlikePostHandler(t *testing.T) {
	f := newPostHandlerFixture()
	liker := &models.User{UUID: uuid.New(), Username: "fan"}

	rec, req := authenticatedRequest(liker, `{"slug":"a-post","id":1}`)
	f.handler.likePost().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, req = authenticatedRequest(liker, `{"slug":"a-post","id":1}`)
	f.handler.unlikePost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post unliked successfully")
	assert.Empty(t, f.post.Likes)
}

func TestCommentHandlerAcceptsEmptyComment(t *testing.T) {
	f := newPostHandlerFixture()
	commenter := &models.User{UUID: uuid.New(), Username: "fan"}

	rec, req := authenticatedRequest(commenter, `{"slug":"a-post","id":1,"comment":""}`)
	f.handler.commentOnPost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment added successfully")
	require.Len(t, f.post.Comments, 1)
	assert.Equal(t, "", f.post.Comments[0].Comment)
}

func TestGetSinglePostHandler(t *testing.T) {
	f := newPostHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/post/single", strings.NewReader(`{"username":"author","slug":"a-post"}`))
	rec := httptest.NewRecorder()
	f.handler.getSinglePost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post retrieved successfully")
	assert.Contains(t, rec.Body.String(), `"slug":"a-post"`)
}

func TestGetSinglePostHandlerUnknownUser(t *testing.T) {
	f := newPostHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/post/single", strings.NewReader(`{"username":"nobody","slug":"a-post"}`))
	rec := httptest.NewRecorder()
	f.handler.getSinglePost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestGetSinglePostHandlerMissingPostStillAnswers200(t *testing.T) {
	// The frontend relies on a 200 with a null post rather than an error.
	f := newPostHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/post/single", strings.NewReader(`{"username":"author","slug":"no-such-post"}`))
	rec := httptest.NewRecorder()
	f.handler.getSinglePost().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"post":null`)
}
