package store

import (
	"errors"
	"sync"

	"driverpro-service/internal/model"
)

var ErrNotFound = errors.New("not found")

// Store owns the four in-memory collections (requests, users, vehicles,
// notifications). Nothing outside this package mutates them; every read
// returns a copy so a held reference stays valid across later mutations.
// State lives only for the lifetime of the process.
type Store struct {
	mu            sync.RWMutex
	requests      map[string]*model.TaskRequest
	users         map[string]*model.User
	vehicles      map[string]*model.Vehicle
	notifications map[string]*model.AppNotification
}

func New() *Store {
	return &Store{
		requests:      make(map[string]*model.TaskRequest),
		users:         make(map[string]*model.User),
		vehicles:      make(map[string]*model.Vehicle),
		notifications: make(map[string]*model.AppNotification),
	}
}
