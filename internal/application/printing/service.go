package printing

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fakturo/backend/internal/domain/catalog"
	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/partner"
	domainprinting "github.com/fakturo/backend/internal/domain/printing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/config"
	"github.com/fakturo/backend/internal/infrastructure/printing"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// PDFDocument is a rendered invoice ready to be sent to the client
type PDFDocument struct {
	Filename string
	Data     []byte
}

// Service renders invoice documents as PDF
type Service struct {
	documentRepo document.Repository
	itemRepo     document.ItemRepository
	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	renderer     printing.PDFRenderer
	cfg          config.InvoiceConfig
	logger       *zap.Logger
}

// NewService creates a new printing service
func NewService(
	documentRepo document.Repository,
	itemRepo document.ItemRepository,
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	renderer printing.PDFRenderer,
	cfg config.InvoiceConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		documentRepo: documentRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		renderer:     renderer,
		cfg:          cfg,
		logger:       logger,
	}
}

// RenderInvoice produces a PDF for the given invoice document. Only
// invoices can be rendered.
func (s *Service) RenderInvoice(ctx context.Context, documentID uint) (*PDFDocument, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Type != document.TypeInvoice {
		return nil, shared.NewValidationError("Only invoices can be rendered as PDF")
	}

	customer, err := s.customerRepo.FindByID(ctx, doc.CustomerID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("Failed to load invoice items", zap.Uint("document_id", documentID), zap.Error(err))
		return nil, err
	}

	lines := make([]domainprinting.LineInput, 0, len(items))
	for i := range items {
		line := domainprinting.LineInput{
			Quantity:  items[i].Quantity,
			UnitPrice: items[i].UnitPrice,
		}
		// Product lookups are best-effort: a vanished product leaves
		// the line priced but undescribed.
		if product, err := s.productRepo.FindByID(ctx, items[i].ProductID); err == nil {
			line.Description = product.Name
			line.UnitSymbol = product.Unit.Symbol()
		}
		lines = append(lines, line)
	}

	table := domainprinting.BuildPriceTable(lines, decimal.NewFromFloat(s.cfg.TaxRate))

	data := printing.NewInvoiceData(s.cfg)
	data.CustomerName = customer.DisplayName()
	data.CustomerAddress = customer.Address
	data.CustomerTaxID = customer.TaxID
	data.Number = doc.Number
	data.IssueDate = doc.IssueDate.Format(dateLayout)
	if doc.DueDate != nil {
		data.DueDate = doc.DueDate.Format(dateLayout)
	}
	data.Reference = doc.Reference
	data.Notes = doc.Notes
	data.Table = table

	html, err := printing.RenderInvoiceHTML(data)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:    html,
		Title:   "Invoice " + doc.Number,
		Margins: printing.DefaultMargins(),
		Timeout: s.cfg.RenderTimeout,
	})
	if err != nil {
		s.logger.Error("Failed to render invoice PDF", zap.Uint("document_id", documentID), zap.Error(err))
		return nil, err
	}

	return &PDFDocument{
		Filename: invoiceFilename(doc),
		Data:     result.PDFData,
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// invoiceFilename derives a filesystem-safe download name from the
// invoice number, falling back to the document ID.
func invoiceFilename(doc *document.Document) string {
	base := strings.TrimSpace(doc.Number)
	if base == "" {
		base = fmt.Sprintf("invoice-%d", doc.ID)
	}
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	return base + ".pdf"
}
