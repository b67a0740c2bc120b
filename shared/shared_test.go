package shared_test

import (
	"camping/shared"
	"camping/shared/constant"
	"camping/shared/dto"
	"camping/shared/failure"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "TRUE", expected: boolPtr(true)},
		{input: "1", expected: boolPtr(true)},
		{input: "t", expected: boolPtr(true)},
		{input: "false", expected: boolPtr(false)},
		{input: "0", expected: boolPtr(false)},
		{input: "yes", expected: nil},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToFloat(t *testing.T) {
	value, err := shared.ConvertStringToFloat("")
	require.NoError(t, err)
	assert.Nil(t, value)

	value, err = shared.ConvertStringToFloat("42.5")
	require.NoError(t, err)
	assert.InDelta(t, 42.5, *value, 0.0001)

	_, err = shared.ConvertStringToFloat("cheap")
	assert.Error(t, err)
}

func TestTransformFields(t *testing.T) {
	type profile struct {
		Username string `db:"username"`
		Email    string `db:"email"`
		Password string `db:"password_hash"`
		Secret   string `db:"-"`
		Plain    string
	}

	result := shared.TransformFields(profile{
		Username: "camper",
		Secret:   "ignored",
		Plain:    "ignored",
	}, "u-1")

	assert.Equal(t, "camper", result["username"])
	assert.NotContains(t, result, "email")
	assert.NotContains(t, result, "password_hash")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "u-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 3)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "campings")

	where, args := group.GetWhereClause()

	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	assert.Equal(t, "(campings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "550e8400-e29b-41d4-a716-446655440000"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "camping-api:ratelimit:10.0.0.1", shared.BuildCacheKey("camping-api", "ratelimit", "10.0.0.1"))
}

func actorContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestAuthorizeActor(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		ownerID  string
		wantCode int
	}{
		{name: "owner", ctx: actorContext("u-1", constant.RoleOwner), ownerID: "u-1"},
		{name: "admin bypass", ctx: actorContext("u-9", constant.RoleAdmin), ownerID: "u-1"},
		{name: "other user", ctx: actorContext("u-2", constant.RoleUser), ownerID: "u-1", wantCode: http.StatusForbidden},
		{name: "guest", ctx: context.Background(), ownerID: "u-1", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.AuthorizeActor(tt.ctx, tt.ownerID)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestResolveActor(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		requested string
		want      string
		wantCode  int
	}{
		{name: "falls back to caller", ctx: actorContext("u-1", constant.RoleUser), want: "u-1"},
		{name: "same as caller", ctx: actorContext("u-1", constant.RoleUser), requested: "u-1", want: "u-1"},
		{name: "admin acts for another", ctx: actorContext("u-9", constant.RoleAdmin), requested: "u-1", want: "u-1"},
		{name: "user acts for another", ctx: actorContext("u-2", constant.RoleUser), requested: "u-1", wantCode: http.StatusForbidden},
		{name: "guest", ctx: context.Background(), requested: "u-1", wantCode: http.StatusUnauthorized},
		{name: "internal caller names the user", ctx: actorContext(constant.ContextInternal, constant.RoleAdmin), requested: "u-1", want: "u-1"},
		{name: "internal caller without user", ctx: actorContext(constant.ContextInternal, constant.RoleAdmin), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ResolveActor(tt.ctx, tt.requested)

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)

				return
			}

			assert.Empty(t, got)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
