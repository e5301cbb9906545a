package main

import (
	"testing"

	"alkhair/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr string
	}{
		{"file default", types.Config{StorageDriver: "file", DataDir: "./data"}, ""},
		{"driver is case insensitive", types.Config{StorageDriver: " SQLite ", SQLitePath: "x.db"}, ""},
		{"postgres needs url", types.Config{StorageDriver: "postgres"}, "DATABASE_URL"},
		{"s3 needs bucket", types.Config{StorageDriver: "s3"}, "SNAPSHOT_BUCKET"},
		{"unknown driver", types.Config{StorageDriver: "redis"}, "unknown STORAGE_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.config
			err := validateConfig(&c)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(8080), c.ServerPort)
			assert.Equal(t, uint(10), c.ReadTimeoutSec)
			assert.Equal(t, uint(15), c.WriteTimeoutSec)
		})
	}
}
