package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/fortuneehis/quickk/errs"
	"github.com/fortuneehis/quickk/events"
	"github.com/fortuneehis/quickk/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InteractionService applies likes, unlikes, and comments to a post and
// triggers the notification side effects. Each mutation rewrites the post's
// whole likes or comments column, so concurrent interactions against the same
// post race last-write-wins at the row level; there is no locking here.
type InteractionService struct {
	posts  PostStore
	users  UserStore
	sink   Notifier
	events *events.Publisher
	logger zerolog.Logger
	now    func() time.Time
}

func NewInteractionService(posts PostStore, users UserStore, sink Notifier, publisher *events.Publisher) *InteractionService {
	return &InteractionService{
		posts:  posts,
		users:  users,
		sink:   sink,
		events: publisher,
		logger: log.With().Str("serviceName", "interactionService").Logger(),
		now:    time.Now,
	}
}

// Like appends the acting user to the post's likes and notifies the owner.
// There is no uniqueness check: repeated likes from the same user stack up,
// and the first unlike removes them all. A self-like never notifies.
func (s *InteractionService) Like(post *models.Post, actingUser *models.User) (models.Like, error) {
	like := models.Like{
		UserUUID: actingUser.UUID,
		Date:     s.now(),
	}
	post.Likes = append(post.Likes, like)

	if err := s.posts.Update(post); err != nil {
		return models.Like{}, errs.NewDatabaseError("update", "post", err)
	}

	if post.UserUUID != actingUser.UUID {
		owner, err := s.users.FindByUUID(post.UserUUID)
		if err != nil {
			return models.Like{}, errs.NewDatabaseError("find", "user", err)
		}
		if owner == nil {
			s.logger.Warn().Str("postSlug", post.Slug).Msg("Post owner no longer exists, skipping notification")
		} else {
			message := fmt.Sprintf("%s liked your post", actingUser.Username)
			link := fmt.Sprintf("/post/%s", post.Slug)
			if err := s.sink.Notify(owner, message, link); err != nil {
				return models.Like{}, err
			}
		}
	}

	if s.events != nil {
		s.events.PostLiked(post, actingUser.UUID)
	}

	return like, nil
}

// Unlike rewrites the post's likes as every entry belonging to someone else,
// sorted ascending by date and then reversed, leaving the collection newest
// first. The returned liker value is minted fresh rather than recovered from
// a removed entry; callers only echo it back to the client.
func (s *InteractionService) Unlike(post *models.Post, actingUser *models.User) (models.Like, error) {
	kept := make([]models.Like, 0, len(post.Likes))
	for _, like := range post.Likes {
		if like.UserUUID != actingUser.UUID {
			kept = append(kept, like)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	post.Likes = kept

	if err := s.posts.Update(post); err != nil {
		return models.Like{}, errs.NewDatabaseError("update", "post", err)
	}

	return models.Like{
		UserUUID: actingUser.UUID,
		Date:     s.now(),
	}, nil
}

// Comment appends to the post's comment thread. Empty text is accepted; the
// thread has never had content validation.
func (s *InteractionService) Comment(post *models.Post, actingUser *models.User, text string) (models.Comment, error) {
	comment := models.Comment{
		UserUUID: actingUser.UUID,
		Date:     s.now(),
		Comment:  text,
	}
	post.Comments = append(post.Comments, comment)

	if err := s.posts.Update(post); err != nil {
		return models.Comment{}, errs.NewDatabaseError("update", "post", err)
	}

	if s.events != nil {
		s.events.PostCommented(post, actingUser.UUID)
	}

	return comment, nil
}
