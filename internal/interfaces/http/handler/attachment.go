package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	attachmentapp "github.com/finvoice/backend/internal/application/attachment"
	"github.com/finvoice/backend/internal/domain/attachment"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// AttachmentHandler handles document attachment endpoints. Clients upload
// and download directly against presigned object storage URLs; the API only
// manages metadata.
type AttachmentHandler struct {
	BaseHandler
	service *attachmentapp.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(service *attachmentapp.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

// UploadRequest is the request body for registering an attachment upload
type UploadRequest struct {
	CompanyID   uuid.UUID `json:"company_id" binding:"required"`
	OwnerType   string    `json:"owner_type" binding:"required,oneof=invoice receipt"`
	OwnerID     uuid.UUID `json:"owner_id" binding:"required"`
	FileName    string    `json:"file_name" binding:"required,max=255"`
	ContentType string    `json:"content_type" binding:"required,max=100"`
	SizeBytes   int64     `json:"size_bytes" binding:"required,gt=0"`
}

// RequestUpload registers a pending attachment and returns a presigned
// upload URL.
func (h *AttachmentHandler) RequestUpload(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	ownerType, err := attachment.ParseOwnerType(req.OwnerType)
	if err != nil {
		h.BadRequest(c, "Invalid owner type")
		return
	}

	intent, err := h.service.RequestUpload(c.Request.Context(), tenantID, actor, attachmentapp.UploadRequest{
		CompanyID:   req.CompanyID,
		OwnerType:   ownerType,
		OwnerID:     req.OwnerID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, intent)
}

// Confirm marks an attachment as uploaded after verifying the object
// exists in storage.
func (h *AttachmentHandler) Confirm(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid attachment ID")
		return
	}

	a, err := h.service.ConfirmUpload(c.Request.Context(), tenantID, id, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, a)
}

// Download returns a short-lived presigned download URL.
func (h *AttachmentHandler) Download(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid attachment ID")
		return
	}

	link, err := h.service.GetDownloadLink(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

// List returns attachments of one document, identified by owner_type and
// owner_id query parameters.
func (h *AttachmentHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	ownerType, err := attachment.ParseOwnerType(c.Query("owner_type"))
	if err != nil {
		h.BadRequest(c, "Invalid owner type")
		return
	}
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		h.BadRequest(c, "Invalid owner ID")
		return
	}

	items, err := h.service.ListForDocument(c.Request.Context(), tenantID, ownerType, ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Delete removes an attachment record and its stored object.
func (h *AttachmentHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid attachment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers attachment routes on the API group.
func (h *AttachmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	attachments := rg.Group("/attachments")
	{
		attachments.POST("", h.RequestUpload)
		attachments.GET("", h.List)
		attachments.POST("/:id/confirm", h.Confirm)
		attachments.GET("/:id/download", h.Download)
		attachments.DELETE("/:id", h.Delete)
	}
}
