package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

type CommentService struct {
	comments repository.CommentRepository
	trips    repository.TripRepository
	profiles repository.ProfileRepository
	events   lib.EventPublisher
}

func NewCommentService(comments repository.CommentRepository, trips repository.TripRepository, profiles repository.ProfileRepository, events lib.EventPublisher) *CommentService {
	if events == nil {
		events = lib.NoopPublisher{}
	}
	return &CommentService{comments: comments, trips: trips, profiles: profiles, events: events}
}

// authorize allows the requester and the requester's manager.
func (s *CommentService) authorize(ctx context.Context, principal types.Principal, tripRequestID uint) (*models.TripRequest, error) {
	request, err := s.trips.FindRequest(ctx, tripRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Trip request not found")
		}
		return nil, err
	}
	if request.UserID == principal.ID {
		return request, nil
	}
	profile, err := s.profiles.FindByUserID(ctx, request.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if profile != nil && profile.ManagerID != nil && *profile.ManagerID == principal.ID {
		return request, nil
	}
	return nil, types.Forbidden("You are not allowed to comment on this trip request")
}

func (s *CommentService) Create(ctx context.Context, principal types.Principal, tripRequestID uint, body *types.CommentRequestBody) (*models.Comment, error) {
	request, err := s.authorize(ctx, principal, tripRequestID)
	if err != nil {
		return nil, err
	}
	comment := &models.Comment{
		TripRequestID: tripRequestID,
		UserID:        principal.ID,
		Comment:       strings.TrimSpace(body.Comment),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	event := types.TripRequestEvent{
		Type:          types.EVENT_TRIP_REQUEST_COMMENT,
		TripRequestID: request.ID,
		ActorID:       principal.ID,
		RequesterID:   request.UserID,
		StatusID:      request.StatusID,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("[CommentService] publish: %s\n", err.Error())
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context, principal types.Principal, tripRequestID uint) ([]models.Comment, error) {
	if _, err := s.authorize(ctx, principal, tripRequestID); err != nil {
		return nil, err
	}
	return s.comments.ListForRequest(ctx, tripRequestID)
}
