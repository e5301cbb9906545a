package db

import (
	"context"
	"testing"

	"alkhair/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{"missing url", "", "DATABASE_URL"},
		{"bad port", "postgres://clerk@localhost:99999999/office", "parse database url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := Connect(context.Background(), &types.Config{DatabaseURL: tt.url})
			require.Error(t, err)
			assert.Nil(t, pool)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
