package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cleanstreet/complaint-service/internal/auth"
	"github.com/cleanstreet/complaint-service/internal/domain"
	"github.com/cleanstreet/complaint-service/internal/events"
	"github.com/cleanstreet/complaint-service/internal/repository"
	"github.com/cleanstreet/complaint-service/internal/storage"
	apperrors "github.com/cleanstreet/complaint-service/pkg/util"
)

// ComplaintService coordinates the complaint lifecycle. Each entity-scoped
// operation resolves the target complaint exactly once and hands the snapshot
// to the access policy before mutating anything.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	locations  *LocationService
	files      storage.FileStore
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Locations     *LocationService
	FileStore     storage.FileStore
	Dispatcher    events.Dispatcher
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		locations:  deps.Locations,
		files:      deps.FileStore,
		dispatcher: deps.Dispatcher,
	}
}

// ImageUpload carries an optional complaint photo.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ComplaintInput describes complaint creation or content-update payloads.
type ComplaintInput struct {
	Title       string
	Description string
	AreaName    string
	Image       *ImageUpload
}

// Create files a new complaint for the principal. Complaints always start
// OPEN and are owned by their creator for life.
func (s *ComplaintService) Create(ctx context.Context, principal *auth.Principal, input ComplaintInput) (*domain.Complaint, error) {
	if principal == nil || principal.User == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}

	location, err := s.locations.FindOrCreate(ctx, input.AreaName)
	if err != nil {
		return nil, err
	}

	complaint := &domain.Complaint{
		Title:       title,
		Description: description,
		Status:      domain.ComplaintStatusOpen,
		OwnerID:     principal.User.ID,
		LocationID:  location.ID,
	}

	if input.Image != nil {
		url, err := s.files.Store(input.Image.Filename, input.Image.Content)
		if err != nil {
			return nil, err
		}
		complaint.ImageURL = &url
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}
	s.publish(ctx, principal, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Payload: events.ComplaintCreatedPayload{
			Title:      complaint.Title,
			LocationID: complaint.LocationID,
			ImageURL:   complaint.ImageURL,
		},
	})
	return complaint, nil
}

// List returns every complaint. Route access is gated to ADMIN upstream.
func (s *ComplaintService) List(ctx context.Context) ([]domain.Complaint, error) {
	return s.complaints.List(ctx)
}

// ListByOwner returns the owner's complaints. Admins may name any owner;
// users only themselves.
func (s *ComplaintService) ListByOwner(ctx context.Context, principal *auth.Principal, ownerID string) ([]domain.Complaint, error) {
	if err := auth.AuthorizeUserScope(principal, ownerID); err != nil {
		return nil, err
	}
	return s.complaints.ListByOwner(ctx, ownerID)
}

// Get returns a complaint by id for its owner or an admin. Non-owners are
// denied as not-found.
func (s *ComplaintService) Get(ctx context.Context, principal *auth.Principal, id string) (*domain.Complaint, error) {
	complaint, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeComplaint(principal, auth.ComplaintView, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// UpdateContent edits title/description/location/image. Owners may edit only
// while the complaint is OPEN; admins at any time. Status is never touched.
func (s *ComplaintService) UpdateContent(ctx context.Context, principal *auth.Principal, id string, input ComplaintInput) (*domain.Complaint, error) {
	complaint, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeComplaint(principal, auth.ComplaintEditContent, complaint); err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		complaint.Title = title
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		complaint.Description = description
	}
	if strings.TrimSpace(input.AreaName) != "" {
		location, err := s.locations.FindOrCreate(ctx, input.AreaName)
		if err != nil {
			return nil, err
		}
		complaint.LocationID = location.ID
	}
	if input.Image != nil {
		url, err := s.files.Store(input.Image.Filename, input.Image.Content)
		if err != nil {
			return nil, err
		}
		complaint.ImageURL = &url
	}

	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, err
	}
	s.publish(ctx, principal, events.Event{
		Type:        events.EventComplaintContentUpdated,
		ComplaintID: complaint.ID,
		Payload:     events.ComplaintContentUpdatedPayload{Title: complaint.Title},
	})
	return complaint, nil
}

// UpdateStatus moves a complaint to any status in the closed set. ADMIN only;
// the transition graph is deliberately unconstrained, including backwards
// moves out of RESOLVED or REJECTED.
func (s *ComplaintService) UpdateStatus(ctx context.Context, principal *auth.Principal, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	complaint, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeComplaint(principal, auth.ComplaintChangeStatus, complaint); err != nil {
		return nil, err
	}

	oldStatus := complaint.Status
	complaint.Status = status
	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, err
	}
	s.publish(ctx, principal, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return complaint, nil
}

// Delete removes a complaint, by its owner or an admin, at any status.
func (s *ComplaintService) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	complaint, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.AuthorizeComplaint(principal, auth.ComplaintDelete, complaint); err != nil {
		return err
	}

	if err := s.complaints.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, principal, events.Event{
		Type:        events.EventComplaintDeleted,
		ComplaintID: complaint.ID,
		Payload:     events.ComplaintDeletedPayload{OwnerID: complaint.OwnerID},
	})
	return nil
}

func (s *ComplaintService) resolve(ctx context.Context, id string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", nil)
		}
		return nil, err
	}
	return complaint, nil
}

func (s *ComplaintService) publish(ctx context.Context, principal *auth.Principal, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if principal != nil && principal.User != nil {
		event.Actor = events.Actor{UserID: principal.User.ID, Role: principal.Role}
	}
	_ = s.dispatcher.Publish(ctx, event)
}
