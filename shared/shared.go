package shared

import (
	"camping/shared/constant"
	"camping/shared/dto"
	"camping/shared/failure"
	"camping/shared/timezone"
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToFloat returns nil for an empty value.
func ConvertStringToFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to convert string to float: %w", err)
	}

	return &floatValue, nil
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// Actor is the authenticated caller carried in the request context.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

func (a Actor) IsGuest() bool {
	return a.ID == ""
}

// IsInternal reports a service caller authenticated by API key rather than a user token.
func (a Actor) IsInternal() bool {
	return a.ID == constant.ContextInternal
}

func ActorFromContext(ctx context.Context) Actor {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{ID: userID, Role: role}
}

// AuthorizeActor allows the owner of a resource or an admin.
func AuthorizeActor(ctx context.Context, ownerID string) error {
	actor := ActorFromContext(ctx)

	if actor.IsGuest() {
		return failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	if actor.IsAdmin() || actor.ID == ownerID {
		return nil
	}

	return failure.ResourceRestrictedError
}

// ResolveActor returns the user a write acts on behalf of. An empty requested id
// falls back to the caller; a foreign id is accepted only from an admin.
func ResolveActor(ctx context.Context, requested string) (string, error) {
	actor := ActorFromContext(ctx)

	if actor.IsGuest() {
		return "", failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	if requested == "" && actor.IsInternal() {
		return "", failure.BadRequestFromString("user_id is required for internal callers") // nolint:wrapcheck
	}

	if requested == "" || requested == actor.ID {
		return actor.ID, nil
	}

	if actor.IsAdmin() {
		return requested, nil
	}

	return "", failure.ResourceRestrictedError
}
