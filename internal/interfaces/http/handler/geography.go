package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	"github.com/finvoice/backend/internal/interfaces/http/dto"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// GeographyHandler handles country/state/city reference data endpoints.
type GeographyHandler struct {
	BaseHandler
	service *masterdataapp.MasterDataService
}

// NewGeographyHandler creates a new GeographyHandler
func NewGeographyHandler(service *masterdataapp.MasterDataService) *GeographyHandler {
	return &GeographyHandler{service: service}
}

// CountryRequest is the request body for creating a country
type CountryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Code string `json:"code" binding:"required,min=2,max=3,alpha"`
}

// StateRequest is the request body for creating a state
type StateRequest struct {
	CountryID string `json:"country_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Code      string `json:"code" binding:"max=10"`
}

// CityRequest is the request body for creating a city
type CityRequest struct {
	StateID string `json:"state_id" binding:"required,uuid"`
	Name    string `json:"name" binding:"required,min=1,max=100"`
}

// CreateCountry creates a country.
func (h *GeographyHandler) CreateCountry(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	country, err := h.service.CreateCountry(c.Request.Context(), tenantID, actor, req.Name, req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, country)
}

// ListCountries returns all countries of the tenant.
func (h *GeographyHandler) ListCountries(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	countries, err := h.service.ListCountries(c.Request.Context(), tenantID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, countries)
}

// DeleteCountry deletes a country.
func (h *GeographyHandler) DeleteCountry(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid country ID")
		return
	}

	if err := h.service.DeleteCountry(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateState creates a state under a country.
func (h *GeographyHandler) CreateState(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		h.BadRequest(c, "Invalid country ID")
		return
	}

	state, err := h.service.CreateState(c.Request.Context(), tenantID, actor, countryID, req.Name, req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, state)
}

// ListStates returns states, optionally filtered by country_id.
func (h *GeographyHandler) ListStates(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	countryID, err := parseUUIDField(c.Query("country_id"))
	if err != nil {
		h.BadRequest(c, "Invalid country ID")
		return
	}

	states, err := h.service.ListStates(c.Request.Context(), tenantID, countryID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, states)
}

// DeleteState deletes a state.
func (h *GeographyHandler) DeleteState(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid state ID")
		return
	}

	if err := h.service.DeleteState(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateCity creates a city under a state.
func (h *GeographyHandler) CreateCity(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	stateID, err := uuid.Parse(req.StateID)
	if err != nil {
		h.BadRequest(c, "Invalid state ID")
		return
	}

	city, err := h.service.CreateCity(c.Request.Context(), tenantID, actor, stateID, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, city)
}

// ListCities returns cities, optionally filtered by state_id.
func (h *GeographyHandler) ListCities(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	stateID, err := parseUUIDField(c.Query("state_id"))
	if err != nil {
		h.BadRequest(c, "Invalid state ID")
		return
	}

	cities, err := h.service.ListCities(c.Request.Context(), tenantID, stateID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cities)
}

// DeleteCity deletes a city.
func (h *GeographyHandler) DeleteCity(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid city ID")
		return
	}

	if err := h.service.DeleteCity(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers geography routes on the API group.
func (h *GeographyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	countries := rg.Group("/countries")
	{
		countries.POST("", h.CreateCountry)
		countries.GET("", h.ListCountries)
		countries.DELETE("/:id", h.DeleteCountry)
	}
	states := rg.Group("/states")
	{
		states.POST("", h.CreateState)
		states.GET("", h.ListStates)
		states.DELETE("/:id", h.DeleteState)
	}
	cities := rg.Group("/cities")
	{
		cities.POST("", h.CreateCity)
		cities.GET("", h.ListCities)
		cities.DELETE("/:id", h.DeleteCity)
	}
}
