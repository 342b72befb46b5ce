package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cleanstreet/complaint-service/internal/domain"
)

type fakeUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("u%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

type fakeComplaintRepo struct {
	seq        int
	complaints map[string]*domain.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: map[string]*domain.Complaint{}}
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	r.seq++
	complaint.ID = fmt.Sprintf("c%d", r.seq)
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	clone := *complaint
	r.complaints[complaint.ID] = &clone
	return nil
}

func (r *fakeComplaintRepo) Update(_ context.Context, complaint *domain.Complaint) error {
	if _, ok := r.complaints[complaint.ID]; !ok {
		return pgx.ErrNoRows
	}
	complaint.UpdatedAt = time.Now()
	clone := *complaint
	r.complaints[complaint.ID] = &clone
	return nil
}

func (r *fakeComplaintRepo) GetByID(_ context.Context, id string) (*domain.Complaint, error) {
	if complaint, ok := r.complaints[id]; ok {
		clone := *complaint
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeComplaintRepo) List(_ context.Context) ([]domain.Complaint, error) {
	result := make([]domain.Complaint, 0, len(r.complaints))
	for _, complaint := range r.complaints {
		result = append(result, *complaint)
	}
	return result, nil
}

func (r *fakeComplaintRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for _, complaint := range r.complaints {
		if complaint.OwnerID == ownerID {
			result = append(result, *complaint)
		}
	}
	return result, nil
}

func (r *fakeComplaintRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.complaints[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.complaints, id)
	return nil
}

func (r *fakeComplaintRepo) DeleteByOwner(_ context.Context, ownerID string) error {
	for id, complaint := range r.complaints {
		if complaint.OwnerID == ownerID {
			delete(r.complaints, id)
		}
	}
	return nil
}

type fakeLocationRepo struct {
	seq       int
	locations map[string]*domain.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: map[string]*domain.Location{}}
}

func (r *fakeLocationRepo) Create(_ context.Context, location *domain.Location) error {
	r.seq++
	location.ID = fmt.Sprintf("l%d", r.seq)
	location.CreatedAt = time.Now()
	location.UpdatedAt = location.CreatedAt
	clone := *location
	r.locations[location.ID] = &clone
	return nil
}

func (r *fakeLocationRepo) Update(_ context.Context, location *domain.Location) error {
	if _, ok := r.locations[location.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *location
	r.locations[location.ID] = &clone
	return nil
}

func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*domain.Location, error) {
	if location, ok := r.locations[id]; ok {
		clone := *location
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeLocationRepo) GetByAreaName(_ context.Context, areaName string) (*domain.Location, error) {
	for _, location := range r.locations {
		if location.AreaName == areaName {
			clone := *location
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeLocationRepo) List(_ context.Context) ([]domain.Location, error) {
	result := make([]domain.Location, 0, len(r.locations))
	for _, location := range r.locations {
		result = append(result, *location)
	}
	return result, nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.locations[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.locations, id)
	return nil
}

type fakeFileStore struct {
	stored []string
}

func (s *fakeFileStore) Store(filename string, content io.Reader) (string, error) {
	_, _ = io.ReadAll(content)
	url := "/uploads/fake_" + filename
	s.stored = append(s.stored, url)
	return url, nil
}
