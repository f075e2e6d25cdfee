package handler

import (
	documentapp "github.com/fakturo/backend/internal/application/document"
	"github.com/fakturo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document and line item endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *documentapp.DocumentService
	itemService     *documentapp.ItemService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *documentapp.DocumentService, itemService *documentapp.ItemService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		itemService:     itemService,
	}
}

// Create creates a new document. The creating user is taken from the
// authenticated principal, never from the request body.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req documentapp.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user := middleware.GetAuthUser(c)
	if user == nil {
		h.InternalError(c, "Principal missing from context")
		return
	}
	req.UserID = user.ID

	resp, err := h.documentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a document by ID
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	resp, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns documents matching the optional status, number and customer
// filters
func (h *DocumentHandler) List(c *gin.Context) {
	var filter documentapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.documentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to a document
func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	var req documentapp.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.documentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a document together with its line items
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddItem adds a line item to a document
func (h *DocumentHandler) AddItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	var req documentapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.itemService.Add(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListItems returns the line items of a document
func (h *DocumentHandler) ListItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	resp, err := h.itemService.ListByDocument(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetItem returns a single line item of a document
func (h *DocumentHandler) GetItem(c *gin.Context) {
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	resp, err := h.itemService.GetByID(c.Request.Context(), documentID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateItem applies a partial update to a line item
func (h *DocumentHandler) UpdateItem(c *gin.Context) {
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req documentapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.itemService.Update(c.Request.Context(), documentID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteItem removes a line item
func (h *DocumentHandler) DeleteItem(c *gin.Context) {
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), documentID, itemID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
