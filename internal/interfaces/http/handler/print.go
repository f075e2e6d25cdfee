package handler

import (
	"fmt"
	"net/http"

	printingapp "github.com/fakturo/backend/internal/application/printing"
	"github.com/gin-gonic/gin"
)

// PrintHandler serves rendered invoice PDFs
type PrintHandler struct {
	BaseHandler
	printService *printingapp.Service
}

// NewPrintHandler creates a new PrintHandler
func NewPrintHandler(printService *printingapp.Service) *PrintHandler {
	return &PrintHandler{printService: printService}
}

// RenderInvoice renders an invoice document as PDF and streams it back as a
// file download
func (h *PrintHandler) RenderInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	pdf, err := h.printService.RenderInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename))
	c.Data(http.StatusOK, "application/pdf", pdf.Data)
}
