package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/fakturo/backend/internal/domain/document"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDocumentTestDB creates an in-memory SQLite database for testing
func setupDocumentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE documents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			customer_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			issue_date DATETIME NOT NULL,
			due_date DATETIME,
			delivery_date DATETIME,
			number TEXT,
			status TEXT NOT NULL,
			reference TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE(type, number)
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE document_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			quantity DECIMAL NOT NULL DEFAULT 0,
			unit_price DECIMAL NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func newTestDocument(t *testing.T, docType document.Type, customerID uint) *document.Document {
	t.Helper()
	issueDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	doc, err := document.New(docType, customerID, 1, issueDate, document.StatusDraft)
	require.NoError(t, err)
	return doc
}

func TestGormDocumentRepository_SaveAssignsID(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewGormDocumentRepository(db)
	ctx := context.Background()

	doc := newTestDocument(t, document.TypeInvoice, 3)
	require.NoError(t, doc.AssignNumber("INV-2026-001"))

	err := repo.Save(ctx, doc)
	require.NoError(t, err)
	assert.NotZero(t, doc.ID)

	retrieved, err := repo.FindByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.TypeInvoice, retrieved.Type)
	assert.Equal(t, "INV-2026-001", retrieved.Number)
	assert.Equal(t, document.StatusDraft, retrieved.Status)
	assert.Equal(t, uint(3), retrieved.CustomerID)
	assert.Nil(t, retrieved.DueDate)
}

func TestGormDocumentRepository_FindAllFilters(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewGormDocumentRepository(db)
	ctx := context.Background()

	invoice := newTestDocument(t, document.TypeInvoice, 3)
	require.NoError(t, invoice.AssignNumber("INV-001"))
	require.NoError(t, invoice.ChangeStatus(document.StatusPaid))
	require.NoError(t, repo.Save(ctx, invoice))

	order := newTestDocument(t, document.TypeOrder, 4)
	require.NoError(t, repo.Save(ctx, order))

	t.Run("no filter returns everything", func(t *testing.T) {
		docs, err := repo.FindAll(ctx, document.Filter{})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := document.StatusPaid
		docs, err := repo.FindAll(ctx, document.Filter{Status: &status})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, invoice.ID, docs[0].ID)
	})

	t.Run("filter by customer", func(t *testing.T) {
		customerID := uint(4)
		docs, err := repo.FindAll(ctx, document.Filter{CustomerID: &customerID})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, order.ID, docs[0].ID)
	})

	t.Run("filter by number", func(t *testing.T) {
		number := "INV-001"
		docs, err := repo.FindAll(ctx, document.Filter{Number: &number})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, invoice.ID, docs[0].ID)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		number := "INV-999"
		docs, err := repo.FindAll(ctx, document.Filter{Number: &number})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestGormDocumentRepository_ExistsByNumber(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewGormDocumentRepository(db)
	ctx := context.Background()

	invoice := newTestDocument(t, document.TypeInvoice, 3)
	require.NoError(t, invoice.AssignNumber("2026-001"))
	require.NoError(t, repo.Save(ctx, invoice))

	exists, err := repo.ExistsByNumber(ctx, document.TypeInvoice, "2026-001")
	require.NoError(t, err)
	assert.True(t, exists)

	// The same number is free for a different document type
	exists, err = repo.ExistsByNumber(ctx, document.TypeQuotation, "2026-001")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByNumber(ctx, document.TypeInvoice, "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormDocumentRepository_ExistsForCustomer(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewGormDocumentRepository(db)
	ctx := context.Background()

	doc := newTestDocument(t, document.TypeOrder, 5)
	require.NoError(t, repo.Save(ctx, doc))

	exists, err := repo.ExistsForCustomer(ctx, 5)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForCustomer(ctx, 6)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormDocumentRepository_DeleteCascadesItems(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewGormDocumentRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	doc := newTestDocument(t, document.TypeOrder, 3)
	require.NoError(t, repo.Save(ctx, doc))

	other := newTestDocument(t, document.TypeOrder, 3)
	require.NoError(t, repo.Save(ctx, other))

	item, err := document.NewItem(doc.ID, 1, decimal.NewFromInt(2), decimal.RequireFromString("9.99"))
	require.NoError(t, err)
	require.NoError(t, itemRepo.Save(ctx, item))

	kept, err := document.NewItem(other.ID, 1, decimal.NewFromInt(1), decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	require.NoError(t, itemRepo.Save(ctx, kept))

	require.NoError(t, repo.Delete(ctx, doc.ID))

	_, err = repo.FindByID(ctx, doc.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	orphans, err := itemRepo.FindByDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Items of other documents survive
	remaining, err := itemRepo.FindByDocument(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestGormDocumentRepository_DeleteNotFound(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := NewGormDocumentRepository(db)

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
