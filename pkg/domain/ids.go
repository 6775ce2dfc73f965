// Package domain holds identifier primitives shared across modules.
package domain

import (
	"github.com/google/uuid"

	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
)

// UserID identifies an end user of the marketplace (care seeker or family
// member). It is issued by the external identity provider.
type UserID uuid.UUID

// ParseUserID parses a non-nil UUID string into a UserID.
func ParseUserID(s string) (UserID, error) {
	parsed, err := parseUUID(s, "user_id")
	if err != nil {
		return UserID{}, err
	}
	return UserID(parsed), nil
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero UUID.
func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must not be the nil UUID")
	}
	return parsed, nil
}
