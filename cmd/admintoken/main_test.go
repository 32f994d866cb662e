package main

import (
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoles(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    entity.Roles
		wantErr bool
	}{
		{name: "single", raw: "admin", want: entity.Roles{entity.RoleAdmin}},
		{name: "spaces and empties", raw: " admin , ,viewer", want: entity.Roles{entity.RoleAdmin, entity.RoleViewer}},
		{name: "unknown", raw: "admin,root", wantErr: true},
		{name: "empty", raw: " , ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRoles(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunRequiresSubject(t *testing.T) {
	assert.Error(t, run("   ", "admin"))
}
