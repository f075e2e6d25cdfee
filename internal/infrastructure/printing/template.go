package printing

import (
	"bytes"
	"html/template"

	"github.com/fakturo/backend/internal/domain/printing"
	"github.com/fakturo/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
)

// InvoiceData is the model passed to the invoice HTML template
type InvoiceData struct {
	// Letterhead
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
	CompanyTaxID   string
	BankName       string
	BankIBAN       string
	BankBIC        string

	// Recipient
	CustomerName    string
	CustomerAddress string
	CustomerTaxID   string

	// Document
	Number    string
	IssueDate string
	DueDate   string
	Reference string
	Notes     string

	Table printing.PriceTable
}

// NewInvoiceData seeds the letterhead fields from configuration
func NewInvoiceData(cfg config.InvoiceConfig) InvoiceData {
	return InvoiceData{
		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		CompanyEmail:   cfg.CompanyEmail,
		CompanyPhone:   cfg.CompanyPhone,
		CompanyTaxID:   cfg.TaxID,
		BankName:       cfg.BankName,
		BankIBAN:       cfg.BankIBAN,
		BankBIC:        cfg.BankBIC,
	}
}

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"percent": func(d decimal.Decimal) string {
		return d.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
	},
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(templateFuncs).Parse(`
<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; font-size: 11pt; color: #222; }
  .letterhead { display: flex; justify-content: space-between; border-bottom: 2px solid #333; padding-bottom: 12px; }
  .letterhead h1 { font-size: 16pt; margin: 0; }
  .letterhead .contact { font-size: 9pt; text-align: right; color: #555; }
  .recipient { margin-top: 32px; }
  .meta { margin-top: 24px; width: 100%; }
  .meta td { padding: 2px 12px 2px 0; font-size: 10pt; }
  h2 { margin-top: 28px; font-size: 13pt; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 12px; }
  table.items th { text-align: left; border-bottom: 1px solid #333; padding: 6px 8px; font-size: 10pt; }
  table.items td { border-bottom: 1px solid #ddd; padding: 6px 8px; font-size: 10pt; }
  table.items .num { text-align: right; }
  table.totals { margin-top: 12px; margin-left: auto; }
  table.totals td { padding: 3px 8px; font-size: 10pt; }
  table.totals .grand td { border-top: 1px solid #333; font-weight: bold; }
  .notes { margin-top: 28px; font-size: 9pt; color: #555; }
  .bank { margin-top: 36px; font-size: 9pt; color: #555; border-top: 1px solid #ddd; padding-top: 8px; }
</style>
</head>
<body>
<div class="letterhead">
  <h1>{{.CompanyName}}</h1>
  <div class="contact">
    {{.CompanyAddress}}<br>
    {{if .CompanyEmail}}{{.CompanyEmail}}<br>{{end}}
    {{if .CompanyPhone}}{{.CompanyPhone}}<br>{{end}}
    {{if .CompanyTaxID}}Tax ID: {{.CompanyTaxID}}{{end}}
  </div>
</div>

<div class="recipient">
  <strong>{{.CustomerName}}</strong><br>
  {{.CustomerAddress}}
  {{if .CustomerTaxID}}<br>Tax ID: {{.CustomerTaxID}}{{end}}
</div>

<table class="meta">
  <tr><td>Invoice number:</td><td>{{.Number}}</td></tr>
  <tr><td>Date:</td><td>{{.IssueDate}}</td></tr>
  {{if .DueDate}}<tr><td>Due date:</td><td>{{.DueDate}}</td></tr>{{end}}
  {{if .Reference}}<tr><td>Reference:</td><td>{{.Reference}}</td></tr>{{end}}
</table>

<h2>Invoice {{.Number}}</h2>

<table class="items">
  <thead>
    <tr>
      <th class="num">Position</th>
      <th>Description</th>
      <th class="num">Qty</th>
      <th>Unit</th>
      <th class="num">Unit price</th>
      <th class="num">Total</th>
    </tr>
  </thead>
  <tbody>
    {{range .Table.Rows}}
    <tr>
      <td class="num">{{.Position}}</td>
      <td>{{.Description}}</td>
      <td class="num">{{.Quantity}}</td>
      <td>{{.UnitSymbol}}</td>
      <td class="num">{{money .UnitPrice}}</td>
      <td class="num">{{money .LineTotal}}</td>
    </tr>
    {{end}}
  </tbody>
</table>

<table class="totals">
  <tr><td>Subtotal</td><td class="num">{{money .Table.Subtotal}}</td></tr>
  <tr><td>VAT ({{percent .Table.TaxRate}})</td><td class="num">{{money .Table.Tax}}</td></tr>
  <tr class="grand"><td>Total</td><td class="num">{{money .Table.Gross}}</td></tr>
</table>

{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}

{{if .BankIBAN}}
<div class="bank">
  {{if .BankName}}{{.BankName}} &middot; {{end}}IBAN: {{.BankIBAN}}{{if .BankBIC}} &middot; BIC: {{.BankBIC}}{{end}}
</div>
{{end}}
</body>
</html>
`))

// RenderInvoiceHTML renders the invoice template into a complete HTML
// document.
func RenderInvoiceHTML(data InvoiceData) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "failed to execute invoice template", err)
	}
	return buf.String(), nil
}
