package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedVocabulary fixes the per-type status allow-lists.
var expectedVocabulary = map[Type]map[Status]bool{
	TypeOrder: {
		StatusDraft: true, StatusOpen: true, StatusProcessing: true,
		StatusCompleted: true, StatusShipped: true, StatusCancelled: true,
	},
	TypeQuotation: {
		StatusDraft: true, StatusSent: true, StatusAccepted: true,
		StatusRejected: true, StatusExpired: true,
	},
	TypeInvoice: {
		StatusDraft: true, StatusOpen: true, StatusSent: true,
		StatusPaid: true, StatusOverdue: true,
	},
}

var everyStatus = []Status{
	StatusDraft, StatusOpen, StatusSent, StatusAccepted, StatusRejected,
	StatusExpired, StatusProcessing, StatusCompleted, StatusShipped,
	StatusPaid, StatusOverdue, StatusCancelled,
}

func TestType_AllowsStatus_Closure(t *testing.T) {
	for docType, allowed := range expectedVocabulary {
		for _, status := range everyStatus {
			assert.Equal(t, allowed[status], docType.AllowsStatus(status),
				"%s / %s", docType, status)
		}
	}
}

func TestAllowedStatuses(t *testing.T) {
	for docType, allowed := range expectedVocabulary {
		got := AllowedStatuses(docType)
		assert.Len(t, got, len(allowed), "%s", docType)
		for _, status := range got {
			assert.True(t, allowed[status], "%s / %s", docType, status)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"order", TypeOrder, false},
		{"ORDER", TypeOrder, false},
		{"Quotation", TypeQuotation, false},
		{"invoice", TypeInvoice, false},
		{" invoice ", TypeInvoice, false},
		{"receipt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range everyStatus {
		got, err := ParseStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, got)

		// Case-insensitive on input, canonical upper-case on output.
		got, err = ParseStatus(strings.ToLower(string(status)))
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	_, err := ParseStatus("archived")
	assert.Error(t, err)
	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestStatus_IsMutable(t *testing.T) {
	assert.True(t, StatusDraft.IsMutable())
	assert.True(t, StatusOpen.IsMutable())
	for _, status := range everyStatus {
		if status == StatusDraft || status == StatusOpen {
			continue
		}
		assert.False(t, status.IsMutable(), "%s", status)
	}
}
