package tax

import (
	"context"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/domain/tax"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxService provides application-level tax header operations.
type TaxService struct {
	repo tax.HeaderRepository
}

// NewTaxService creates a new TaxService.
func NewTaxService(repo tax.HeaderRepository) *TaxService {
	return &TaxService{repo: repo}
}

// TaxHeaderInput carries the fields for creating or updating a tax header.
type TaxHeaderInput struct {
	CompanyID uuid.UUID       `json:"company_id" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Rate      decimal.Decimal `json:"rate"`
	Active    *bool           `json:"active"`
}

// CreateTaxHeader creates a tax header with generated slabs. Names are
// unique per company.
func (s *TaxService) CreateTaxHeader(ctx context.Context, tenantID uuid.UUID, actor string, input TaxHeaderInput) (*tax.Header, error) {
	existing, err := s.repo.FindByName(ctx, tenantID, input.CompanyID, input.Name)
	if err != nil {
		return nil, shared.NewInternalError("check tax name", err)
	}
	if existing != nil {
		return nil, shared.NewAlreadyExistsError("tax %s already exists for this company", input.Name)
	}

	h, err := tax.NewHeader(tenantID, actor, input.CompanyID, tax.TaxType(input.Type), input.Name, input.Rate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, shared.NewInternalError("create tax header", err)
	}
	return h, nil
}

// GetTaxHeader returns one tax header with its slabs.
func (s *TaxService) GetTaxHeader(ctx context.Context, tenantID, id uuid.UUID) (*tax.Header, error) {
	h, err := s.repo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find tax header", err)
	}
	if h == nil {
		return nil, shared.NewNotFoundError("tax header")
	}
	return h, nil
}

// ListTaxHeaders returns a page of tax headers for a company.
func (s *TaxService) ListTaxHeaders(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[tax.Header], error) {
	headers, err := s.repo.FindAllForTenant(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list tax headers", err)
	}
	total, err := s.repo.CountForTenant(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("count tax headers", err)
	}
	return shared.NewPaginated(headers, total, filter), nil
}

// UpdateTaxHeader overwrites the header and rewrites its slab set.
func (s *TaxService) UpdateTaxHeader(ctx context.Context, tenantID, id uuid.UUID, actor string, input TaxHeaderInput) (*tax.Header, error) {
	h, err := s.GetTaxHeader(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != h.Name {
		existing, err := s.repo.FindByName(ctx, tenantID, h.CompanyID, input.Name)
		if err != nil {
			return nil, shared.NewInternalError("check tax name", err)
		}
		if existing != nil && existing.ID != h.ID {
			return nil, shared.NewAlreadyExistsError("tax %s already exists for this company", input.Name)
		}
	}

	active := h.Active
	if input.Active != nil {
		active = *input.Active
	}
	if err := h.Update(actor, tax.TaxType(input.Type), input.Name, input.Rate, active); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, shared.NewInternalError("update tax header", err)
	}
	return h, nil
}

// DeleteTaxHeader removes the header and its slabs. Deletion is blocked
// by the persistence layer when documents reference the header.
func (s *TaxService) DeleteTaxHeader(ctx context.Context, tenantID, id uuid.UUID) error {
	h, err := s.GetTaxHeader(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, tenantID, h.ID)
}
