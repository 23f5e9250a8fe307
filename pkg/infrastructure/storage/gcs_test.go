package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
)

func TestMapReadError(t *testing.T) {
	other := errors.New("permission denied")

	tests := []struct {
		name        string
		err         error
		wantMissing bool
		wantErr     error
	}{
		{name: "nil", err: nil},
		{name: "object missing", err: storage.ErrObjectNotExist, wantMissing: true},
		{name: "wrapped object missing", err: fmt.Errorf("reader: %w", storage.ErrObjectNotExist), wantMissing: true},
		{name: "other error", err: other, wantErr: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapReadError("bucket", "workouts.json", tt.err)
			switch {
			case tt.wantMissing:
				assert.ErrorIs(t, got, fs.ErrNotExist)
				assert.Contains(t, got.Error(), "gs://bucket/workouts.json")
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, got)
				assert.NotErrorIs(t, got, fs.ErrNotExist)
			default:
				assert.NoError(t, got)
			}
		})
	}
}
