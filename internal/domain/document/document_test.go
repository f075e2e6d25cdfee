package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssueDate() time.Time {
	return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
}

func createTestDocument(t *testing.T, docType Type, status Status) *Document {
	doc, err := New(docType, 1, 1, testIssueDate(), status)
	require.NoError(t, err)
	return doc
}

func TestNew_StatusVocabulary(t *testing.T) {
	// Creation succeeds iff the status is in the type's allow-list.
	for docType := range expectedVocabulary {
		for _, status := range everyStatus {
			doc, err := New(docType, 1, 1, testIssueDate(), status)
			if expectedVocabulary[docType][status] {
				require.NoError(t, err, "%s / %s", docType, status)
				assert.Equal(t, status, doc.Status)
			} else {
				assert.Error(t, err, "%s / %s", docType, status)
			}
		}
	}
}

func TestNew_RequiredFields(t *testing.T) {
	_, err := New(Type("MEMO"), 1, 1, testIssueDate(), StatusDraft)
	assert.Error(t, err)

	_, err = New(TypeOrder, 0, 1, testIssueDate(), StatusDraft)
	assert.Error(t, err)

	_, err = New(TypeOrder, 1, 0, testIssueDate(), StatusDraft)
	assert.Error(t, err)

	_, err = New(TypeOrder, 1, 1, time.Time{}, StatusDraft)
	assert.Error(t, err)
}

func TestDocument_ChangeStatus(t *testing.T) {
	doc := createTestDocument(t, TypeInvoice, StatusDraft)

	require.NoError(t, doc.ChangeStatus(StatusOpen))
	assert.Equal(t, StatusOpen, doc.Status)

	// Not in the invoice vocabulary.
	assert.Error(t, doc.ChangeStatus(StatusShipped))
	assert.Equal(t, StatusOpen, doc.Status)

	// Not in the global vocabulary.
	assert.Error(t, doc.ChangeStatus(Status("ARCHIVED")))
	assert.Equal(t, StatusOpen, doc.Status)

	// No transition graph: PAID back to DRAFT is allowed.
	require.NoError(t, doc.ChangeStatus(StatusPaid))
	require.NoError(t, doc.ChangeStatus(StatusDraft))
}

func TestDocument_SetDeliveryDate(t *testing.T) {
	delivery := testIssueDate().AddDate(0, 0, 7)

	order := createTestDocument(t, TypeOrder, StatusDraft)
	require.NoError(t, order.SetDeliveryDate(&delivery))
	assert.Equal(t, &delivery, order.DeliveryDate)
	require.NoError(t, order.SetDeliveryDate(nil))
	assert.Nil(t, order.DeliveryDate)

	invoice := createTestDocument(t, TypeInvoice, StatusDraft)
	assert.Error(t, invoice.SetDeliveryDate(&delivery))

	quotation := createTestDocument(t, TypeQuotation, StatusDraft)
	assert.Error(t, quotation.SetDeliveryDate(&delivery))
}

func TestDocument_AssignNumber(t *testing.T) {
	doc := createTestDocument(t, TypeInvoice, StatusDraft)

	require.NoError(t, doc.AssignNumber("INV-2026-0001"))
	assert.Equal(t, "INV-2026-0001", doc.Number)

	assert.Error(t, doc.AssignNumber(""))
	assert.Error(t, doc.AssignNumber("  "))
	assert.Equal(t, "INV-2026-0001", doc.Number)
}

func TestDocument_CanModifyItems(t *testing.T) {
	doc := createTestDocument(t, TypeOrder, StatusDraft)
	assert.True(t, doc.CanModifyItems())

	require.NoError(t, doc.ChangeStatus(StatusOpen))
	assert.True(t, doc.CanModifyItems())

	require.NoError(t, doc.ChangeStatus(StatusShipped))
	assert.False(t, doc.CanModifyItems())

	quotation := createTestDocument(t, TypeQuotation, StatusSent)
	assert.False(t, quotation.CanModifyItems())
}
