package events

import (
	"encoding/json"
	"time"

	"github.com/fortuneehis/quickk/models"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Publisher emits post lifecycle events to NATS. Publishing is fire-and
// forget; a failed publish is logged and never fails the request that
// triggered it.
type Publisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

func Connect(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		conn:   conn,
		logger: log.With().Str("component", "events").Logger(),
	}, nil
}

func (p *Publisher) Close() {
	p.conn.Close()
}

// PostEvent is the wire shape shared by all post subjects.
type PostEvent struct {
	PostID   uint      `json:"postId"`
	Slug     string    `json:"slug"`
	UserUUID uuid.UUID `json:"userUuid"`
	Date     time.Time `json:"date"`
}

// PostCreated publishes a post.created event for the new post.
func (p *Publisher) PostCreated(post *models.Post) {
	p.publish("post.created", PostEvent{
		PostID:   post.ID,
		Slug:     post.Slug,
		UserUUID: post.UserUUID,
		Date:     time.Now(),
	})
}

// PostLiked publishes a post.liked event naming the liker.
func (p *Publisher) PostLiked(post *models.Post, liker uuid.UUID) {
	p.publish("post.liked", PostEvent{
		PostID:   post.ID,
		Slug:     post.Slug,
		UserUUID: liker,
		Date:     time.Now(),
	})
}

// PostCommented publishes a post.commented event naming the commenter.
func (p *Publisher) PostCommented(post *models.Post, commenter uuid.UUID) {
	p.publish("post.commented", PostEvent{
		PostID:   post.ID,
		Slug:     post.Slug,
		UserUUID: commenter,
		Date:     time.Now(),
	})
}

func (p *Publisher) publish(subject string, event PostEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("Failed to marshal event")
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish event")
	}
}
