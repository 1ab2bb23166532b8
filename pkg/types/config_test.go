package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid postgres",
			cfg:  Config{Backend: BackendPostgres, Database: "gamerental", Port: 5432, User: "app"},
		},
		{
			name: "valid sqlite needs no connection params",
			cfg:  Config{Backend: BackendSQLite},
		},
		{
			name:    "empty backend",
			cfg:     Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Backend: "oracle"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "postgres without database",
			cfg:     Config{Backend: BackendPostgres, Port: 5432},
			wantErr: ErrDatabaseEmpty,
		},
		{
			name:    "postgres with zero port",
			cfg:     Config{Backend: BackendPostgres, Database: "db"},
			wantErr: ErrPortInvalid,
		},
		{
			name:    "postgres with out-of-range port",
			cfg:     Config{Backend: BackendPostgres, Database: "db", Port: 70000},
			wantErr: ErrPortInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogEntryValidate(t *testing.T) {
	assert.NoError(t, CatalogEntry{GameID: "G1", Price: 0}.Validate())
	assert.NoError(t, CatalogEntry{GameID: "G1", Price: 19.99}.Validate())
	assert.ErrorIs(t, CatalogEntry{GameID: "G1", Price: -0.01}.Validate(), ErrInvalidPrice)
}

func TestOrderLineValidate(t *testing.T) {
	assert.NoError(t, OrderLine{GameID: "G1", Units: 1}.Validate())
	assert.ErrorIs(t, OrderLine{GameID: "G1", Units: 0}.Validate(), ErrInvalidUnits)
	assert.ErrorIs(t, OrderLine{GameID: "G1", Units: -2}.Validate(), ErrInvalidUnits)
}
