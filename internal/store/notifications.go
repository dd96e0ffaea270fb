package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"driverpro-service/internal/model"
)

func (s *Store) InsertNotification(note model.AppNotification) model.AppNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = uuid.NewString()
	note.Read = false
	note.Timestamp = time.Now()

	stored := note
	s.notifications[note.ID] = &stored
	return note
}

func (s *Store) GetNotification(id string) (model.AppNotification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notifications[id]
	if !ok {
		return model.AppNotification{}, ErrNotFound
	}
	return *note, nil
}

func (s *Store) MarkNotificationRead(id string) (model.AppNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notifications[id]
	if !ok {
		return model.AppNotification{}, ErrNotFound
	}

	updated := *note
	updated.Read = true
	s.notifications[id] = &updated
	return updated, nil
}

// ListNotifications returns the target user's notifications newest first.
func (s *Store) ListNotifications(userID string) []model.AppNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.AppNotification, 0)
	for _, note := range s.notifications {
		if note.UserID == userID {
			result = append(result, *note)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].ID < result[j].ID
		}
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result
}
