package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
)

func TestParseUserID(t *testing.T) {
	const seeker = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name    string
		subject string
		wantMsg string
	}{
		{"empty subject", "", "user_id is required"},
		{"nil uuid", uuid.Nil.String(), "user_id must not be the nil UUID"},
		{"email subject", "seeker@example.com", "user_id must be a valid UUID"},
		{"whitespace", "   ", "user_id must be a valid UUID"},
		{"embedded nul", "550e8400\x00-e29b-41d4-a716-446655440000", "user_id must be a valid UUID"},
		{"zero width space", "550e8400\u200B-e29b-41d4-a716-446655440000", "user_id must be a valid UUID"},
		{"oversized", strings.Repeat("f", 512), "user_id must be a valid UUID"},
		{"uppercase", strings.ToUpper(seeker), ""},
		{"canonical", seeker, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserID(tt.subject)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				assert.EqualError(t, err, tt.wantMsg)
				assert.True(t, got.IsNil())
				return
			}
			require.NoError(t, err)
			assert.False(t, got.IsNil())
			assert.Equal(t, seeker, got.String())
		})
	}
}

func TestUserID_ZeroValueIsAnonymous(t *testing.T) {
	var anon UserID
	assert.True(t, anon.IsNil())
	assert.Equal(t, uuid.Nil.String(), anon.String())
}
