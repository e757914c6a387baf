package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finvoice/backend/internal/interfaces/http/dto"
)

// CompanyListRequest is a list request scoped to one company.
type CompanyListRequest struct {
	dto.ListRequest
	CompanyID string `form:"company_id" binding:"required,uuid"`
}

// bindCompanyList binds pagination parameters plus the mandatory company_id
// query parameter.
func bindCompanyList(c *gin.Context) (uuid.UUID, dto.ListRequest, error) {
	var req CompanyListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return uuid.Nil, dto.ListRequest{}, err
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return uuid.Nil, dto.ListRequest{}, err
	}
	return companyID, req.ListRequest, nil
}

// parseUUIDField parses an optional UUID string, returning uuid.Nil for "".
func parseUUIDField(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}
