package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestClassifySQLiteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "database full maps to quota",
			err:  sqlite3.Error{Code: sqlite3.ErrFull},
			want: ErrQuotaExceeded,
		},
		{
			name: "oversized row maps to quota",
			err:  sqlite3.Error{Code: sqlite3.ErrTooBig},
			want: ErrQuotaExceeded,
		},
		{
			name: "io error maps to quota",
			err:  sqlite3.Error{Code: sqlite3.ErrIoErr},
			want: ErrQuotaExceeded,
		},
		{
			name: "unopenable file maps to unavailable",
			err:  sqlite3.Error{Code: sqlite3.ErrCantOpen},
			want: ErrStorageUnavailable,
		},
		{
			name: "corrupted file maps to unavailable",
			err:  sqlite3.Error{Code: sqlite3.ErrNotADB},
			want: ErrStorageUnavailable,
		},
		{
			name: "permission denied maps to unavailable",
			err:  sqlite3.Error{Code: sqlite3.ErrPerm},
			want: ErrStorageUnavailable,
		},
		{
			name: "readonly database maps to unavailable",
			err:  sqlite3.Error{Code: sqlite3.ErrReadonly},
			want: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifySQLiteError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	t.Run("wrapped driver errors are still classified", func(t *testing.T) {
		wrapped := fmt.Errorf("exec failed: %w", sqlite3.Error{Code: sqlite3.ErrFull})
		assert.ErrorIs(t, classifySQLiteError(wrapped), ErrQuotaExceeded)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		plain := errors.New("some driver hiccup")
		assert.Equal(t, plain, classifySQLiteError(plain))
	})
}
