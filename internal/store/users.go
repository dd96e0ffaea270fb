package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"driverpro-service/internal/model"
	"driverpro-service/internal/utils"
)

func (s *Store) InsertUser(user model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := user
	s.users[user.ID] = &stored
	return user
}

func (s *Store) GetUser(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return *user, nil
}

// FindUserByCPF matches on normalized digits so formatting in either the
// stored or the supplied CPF does not matter.
func (s *Store) FindUserByCPF(cpf string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := utils.NormalizeCPF(cpf)
	if want == "" {
		return model.User{}, ErrNotFound
	}
	for _, user := range s.users {
		if utils.NormalizeCPF(user.CPF) == want {
			return *user, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *Store) UpdateUser(id string, mutate func(*model.User) error) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}

	updated := *user
	if err := mutate(&updated); err != nil {
		return model.User{}, err
	}
	updated.UpdatedAt = time.Now()

	s.users[id] = &updated
	return updated, nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *Store) ListUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
