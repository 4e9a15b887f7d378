package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/shopspring/decimal"
)

type contactService struct {
	BaseService
	mu          sync.Mutex
	contactRepo portsrepo.ContactRepositoryFacade
	txnRepo     portsrepo.TransactionReader
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.ContactSvcFacade {
	return &contactService{
		BaseService: newBaseService(options),
		contactRepo: contactRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) CreateContact(ctx context.Context, req dto.CreateContactRequest, userID string) (*domain.Contact, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "name", "name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contact := domain.Contact{
		ContactID: s.newID(),
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Avatar:    strings.TrimSpace(req.Avatar),
		AuditFields: domain.AuditFields{
			CreatedAt: s.Now(),
			CreatedBy: userID,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		s.LogError(ctx, err, "Failed to save contact", slog.String("contact_name", name))
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	s.LogInfo(ctx, "Contact created", slog.String("contact_id", contact.ContactID))
	s.mirror.MirrorRoommate(ctx, domain.NewRoommateRecordFromContact(contact, decimal.Zero, s.groupID))
	s.mirrorGroup(ctx, s.contactRepo)
	s.Track(userID, "contact.created", map[string]any{"contact_id": contact.ContactID})

	return &contact, nil
}

func (s *contactService) GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.ListContacts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts")
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
