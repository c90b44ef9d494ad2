package services

import (
	"time"

	"github.com/fortuneehis/quickk/errs"
	"github.com/fortuneehis/quickk/models"
)

// Notifier delivers an in-app notification to a user.
type Notifier interface {
	Notify(recipient *models.User, message, link string) error
}

// NotificationSink appends notifications to the recipient's user record and
// flips the unread flag. The notifications column is rewritten whole on every
// append.
type NotificationSink struct {
	users UserStore
	now   func() time.Time
}

func NewNotificationSink(users UserStore) *NotificationSink {
	return &NotificationSink{
		users: users,
		now:   time.Now,
	}
}

func (s *NotificationSink) Notify(recipient *models.User, message, link string) error {
	recipient.Notifications = append(recipient.Notifications, models.Notification{
		UserUUID: recipient.UUID,
		Date:     s.now(),
		Message:  message,
		Link:     link,
	})
	recipient.IsNewNotification = true

	if err := s.users.Update(recipient); err != nil {
		return errs.NewDatabaseError("update", "user", err)
	}
	return nil
}
