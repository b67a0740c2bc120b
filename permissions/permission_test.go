package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedFileIsValid(t *testing.T) {
	data := Get()

	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
		wantFound bool
	}{
		{name: "public listing search", path: "/api/campings", method: http.MethodGet, wantSkip: true, wantFound: true},
		{name: "trailing slash from subrouter", path: "/api/campings/", method: http.MethodGet, wantSkip: true, wantFound: true},
		{name: "create listing needs owner or admin", path: "/api/campings/", method: http.MethodPost, wantRoles: []string{"owner", "admin"}, wantFound: true},
		{name: "login is public", path: "/api/users/login", method: http.MethodPost, wantSkip: true, wantFound: true},
		{name: "profile update needs a token", path: "/api/users/{id}", method: http.MethodPut, wantFound: true},
		{name: "root keeps its slash", path: "/", method: http.MethodGet, wantSkip: true, wantFound: true},
		{name: "unknown route", path: "/api/rooms", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantFound, permission.Path != "")
			assert.Equal(t, tt.wantSkip, permission.Skip)

			if tt.wantRoles != nil {
				assert.Equal(t, tt.wantRoles, permission.Permissions)
			}
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	restricted := Permission{Permissions: []string{"owner", "admin"}}
	open := Permission{}

	assert.True(t, restricted.Allows("owner"))
	assert.False(t, restricted.Allows("user"))
	assert.True(t, open.Allows("user"))
}

func TestParse_InvalidJSON(t *testing.T) {
	assert.Nil(t, parse([]byte("{")))
}
