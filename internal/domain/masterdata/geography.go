package masterdata

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Country, State and City are tenant-level geography references used by
// customer addresses. They form an optional chain: a state may point to a
// country, a city to a state, with existence checked at write time.

type Country struct {
	shared.TenantAggregateRoot
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

type State struct {
	shared.TenantAggregateRoot
	CountryID uuid.UUID `json:"country_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Active    bool      `json:"active"`
}

type City struct {
	shared.TenantAggregateRoot
	StateID uuid.UUID `json:"state_id"`
	Name    string    `json:"name"`
	Active  bool      `json:"active"`
}

func NewCountry(tenantID uuid.UUID, actor, name, code string) (*Country, error) {
	if name == "" {
		return nil, shared.NewValidationError("country name is required")
	}
	return &Country{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		Name:                name,
		Code:                code,
		Active:              true,
	}, nil
}

func (c *Country) Update(actor, name, code string, active bool) error {
	if name == "" {
		return shared.NewValidationError("country name is required")
	}
	c.Name = name
	c.Code = code
	c.Active = active
	c.Touch(actor)
	return nil
}

func NewState(tenantID uuid.UUID, actor string, countryID uuid.UUID, name, code string) (*State, error) {
	if name == "" {
		return nil, shared.NewValidationError("state name is required")
	}
	return &State{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		CountryID:           countryID,
		Name:                name,
		Code:                code,
		Active:              true,
	}, nil
}

func (s *State) Update(actor string, countryID uuid.UUID, name, code string, active bool) error {
	if name == "" {
		return shared.NewValidationError("state name is required")
	}
	s.CountryID = countryID
	s.Name = name
	s.Code = code
	s.Active = active
	s.Touch(actor)
	return nil
}

func NewCity(tenantID uuid.UUID, actor string, stateID uuid.UUID, name string) (*City, error) {
	if name == "" {
		return nil, shared.NewValidationError("city name is required")
	}
	return &City{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		StateID:             stateID,
		Name:                name,
		Active:              true,
	}, nil
}

func (c *City) Update(actor string, stateID uuid.UUID, name string, active bool) error {
	if name == "" {
		return shared.NewValidationError("city name is required")
	}
	c.StateID = stateID
	c.Name = name
	c.Active = active
	c.Touch(actor)
	return nil
}
