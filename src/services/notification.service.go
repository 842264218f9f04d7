package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/lib/mailer"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

const NOTIFICATION_EVENT = "notification"

type NotificationService struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	profiles      repository.ProfileRepository
	pusher        lib.Pusher
	mailer        lib.Mailer
}

func NewNotificationService(
	notifications repository.NotificationRepository,
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	pusher lib.Pusher,
	mailer lib.Mailer,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		profiles:      profiles,
		pusher:        pusher,
		mailer:        mailer,
	}
}

func eventMessage(eventType types.EventType, tripRequestID uint) string {
	switch eventType {
	case types.EVENT_TRIP_REQUEST_CREATED:
		return fmt.Sprintf("A new trip request #%d is awaiting your approval", tripRequestID)
	case types.EVENT_TRIP_REQUEST_UPDATED:
		return fmt.Sprintf("Trip request #%d was edited and is awaiting your approval", tripRequestID)
	case types.EVENT_TRIP_REQUEST_APPROVED:
		return fmt.Sprintf("Your trip request #%d was approved", tripRequestID)
	case types.EVENT_TRIP_REQUEST_REJECTED:
		return fmt.Sprintf("Your trip request #%d was rejected", tripRequestID)
	case types.EVENT_TRIP_REQUEST_COMMENT:
		return fmt.Sprintf("New comment on trip request #%d", tripRequestID)
	}
	return fmt.Sprintf("Trip request #%d was updated", tripRequestID)
}

func (s *NotificationService) managerOf(ctx context.Context, userID uint) (uint, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if profile.ManagerID == nil {
		return 0, nil
	}
	return *profile.ManagerID, nil
}

// recipient decides who hears about an event: managers hear about new and
// edited requests, requesters about decisions, and comments go to the other party.
func (s *NotificationService) recipient(ctx context.Context, eventType types.EventType, actorID uint, requesterID uint) (uint, error) {
	switch eventType {
	case types.EVENT_TRIP_REQUEST_APPROVED, types.EVENT_TRIP_REQUEST_REJECTED:
		return requesterID, nil
	case types.EVENT_TRIP_REQUEST_COMMENT:
		if actorID != requesterID {
			return requesterID, nil
		}
	}
	return s.managerOf(ctx, requesterID)
}

// HandleEvent turns a trip request event payload into a stored, pushed and
// emailed notification.
func (s *NotificationService) HandleEvent(ctx context.Context, payload string) {
	if !gjson.Valid(payload) {
		log.Printf("[NotificationService] invalid payload: %s\n", payload)
		return
	}
	event := gjson.Parse(payload)
	eventType := types.EventType(event.Get("type").String())
	tripRequestID := uint(event.Get("tripRequestId").Uint())
	actorID := uint(event.Get("actorId").Uint())
	requesterID := uint(event.Get("requesterId").Uint())
	if eventType == "" || tripRequestID == 0 || requesterID == 0 {
		log.Printf("[NotificationService] incomplete event: %s\n", payload)
		return
	}

	recipientID, err := s.recipient(ctx, eventType, actorID, requesterID)
	if err != nil {
		log.Printf("[NotificationService] recipient for %s: %s\n", eventType, err.Error())
		return
	}
	if recipientID == 0 || recipientID == actorID {
		return
	}
	metadata := types.JSONB{
		"actorId":    actorID,
		"statusId":   event.Get("statusId").Uint(),
		"occurredAt": event.Get("occurredAt").String(),
	}
	if _, err := s.Notify(ctx, recipientID, tripRequestID, eventType, eventMessage(eventType, tripRequestID), metadata); err != nil {
		log.Printf("[NotificationService] notify %d: %s\n", recipientID, err.Error())
	}
}

func (s *NotificationService) Notify(ctx context.Context, userID uint, tripRequestID uint, eventType types.EventType, message string, metadata types.JSONB) (*models.Notification, error) {
	notification := &models.Notification{
		ID:            uuid.New(),
		UserID:        userID,
		TripRequestID: tripRequestID,
		Message:       message,
		Type:          eventType,
		Metadata:      metadata,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}
	if s.pusher != nil {
		if err := s.pusher.Trigger(lib.UserChannel(userID), NOTIFICATION_EVENT, notification); err != nil {
			log.Printf("[NotificationService] pusher: %s\n", err.Error())
		}
	}
	if s.mailer != nil {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			log.Printf("[NotificationService] recipient %d: %s\n", userID, err.Error())
			return notification, nil
		}
		msg := mailer.NewMessage([]string{user.Email}, "Barefoot Nomad notification", message)
		if err := s.mailer.Send(ctx, msg); err != nil {
			log.Printf("[NotificationService] mail to %s: %s\n", user.Email, err.Error())
		}
	}
	return notification, nil
}

func (s *NotificationService) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.notifications.ListForUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uint, id string) error {
	notificationID, err := uuid.Parse(id)
	if err != nil {
		return types.BadRequest("id should be a valid uuid")
	}
	if err := s.notifications.MarkRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Notification not found")
		}
		return err
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.notifications.MarkAllRead(ctx, userID)
}
