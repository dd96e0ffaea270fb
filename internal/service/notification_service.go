package service

import (
	"context"

	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
)

type NotificationService struct {
	store *store.Store
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{store: st}
}

func (s *NotificationService) ListMine(ctx context.Context, principal model.Principal) []model.AppNotification {
	return s.store.ListNotifications(principal.UserID)
}

// MarkRead acknowledges a notification. Only the recipient may flip the flag.
func (s *NotificationService) MarkRead(ctx context.Context, principal model.Principal, id string) (*model.AppNotification, error) {
	note, err := s.store.GetNotification(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if note.UserID != principal.UserID {
		return nil, ErrPermissionDenied
	}

	updated, err := s.store.MarkNotificationRead(id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &updated, nil
}
