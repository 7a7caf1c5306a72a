package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	apperrors "todo-api/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.Equal(t, apperrors.KindDatabase, result.Kind)
	assert.Equal(t, "test operation", result.Fields["operation"])
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.ErrorIs(t, result, originalErr)
}

func TestHandleNoRowsError(t *testing.T) {
	tests := []struct {
		name           string
		inputErr       error
		expectNotFound bool
	}{
		{"ErrNoRows becomes NotFound", sql.ErrNoRows, true},
		{"Wrapped ErrNoRows becomes NotFound", fmt.Errorf("scan: %w", sql.ErrNoRows), true},
		{"Other error is returned as-is", errors.New("some other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HandleNoRowsError(tt.inputErr, "Task", "123")
			if tt.expectNotFound {
				assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(result))
				assert.Contains(t, result.Error(), "Task")
				assert.Contains(t, result.Error(), "123")
			} else {
				assert.Equal(t, tt.inputErr, result)
			}
		})
	}
}

func TestQuerySingle_NoRows(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := QuerySingle(ctx, store.db, `SELECT id, detail FROM tasks WHERE id = ?`, ScanRecord, "Todo", "42", 42)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, "Todo 42 doesn't exist", err.Error())

	_, err = QuerySingle(ctx, store.db, `SELECT id, detail FROM nowhere WHERE id = ?`, ScanRecord, "Todo", "1", 1)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDatabase, apperrors.KindOf(err))
}
