package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/apperror"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

// PartyService handles party (customer/retailer) operations
type PartyService struct {
	partyRepo repository.PartyRepository
}

// NewPartyService creates a new party service
func NewPartyService(partyRepo repository.PartyRepository) *PartyService {
	return &PartyService{partyRepo: partyRepo}
}

// CreateParty creates a new party
func (s *PartyService) CreateParty(ctx context.Context, party *entity.Party) (*entity.Party, error) {
	if strings.TrimSpace(party.Name) == "" {
		return nil, apperror.NewBadRequestError("Party name is required")
	}
	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

// GetParty retrieves a party by ID
func (s *PartyService) GetParty(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperror.NewNotFoundError("Party")
	}
	return party, nil
}

// UpdateParty updates an existing party
func (s *PartyService) UpdateParty(ctx context.Context, party *entity.Party) (*entity.Party, error) {
	existing, err := s.partyRepo.GetByID(ctx, party.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Party")
	}
	if strings.TrimSpace(party.Name) == "" {
		return nil, apperror.NewBadRequestError("Party name is required")
	}
	if err := s.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

// DeleteParty deletes a party by ID
func (s *PartyService) DeleteParty(ctx context.Context, id uuid.UUID) error {
	existing, err := s.partyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Party")
	}
	return s.partyRepo.Delete(ctx, id)
}

// ListParties retrieves parties with pagination and optional search on name
// or GSTIN
func (s *PartyService) ListParties(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Party], error) {
	params.Validate()

	parties, total, err := s.partyRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(parties, p), nil
}
