package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/tfalohun/olera-sub001/pkg/domain"
	audit "github.com/tfalohun/olera-sub001/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	seeker := id.UserID(uuid.New())

	require.NoError(t, store.Append(ctx, audit.Event{Action: string(audit.EventEligibilityMatched), Region: "TX"}))
	require.NoError(t, store.Append(ctx, audit.Event{Action: string(audit.EventProvidersMatched), UserID: seeker}))
	require.NoError(t, store.Append(ctx, audit.Event{Action: string(audit.EventEligibilityMatched), Region: "OK"}))

	anon, err := store.ListByUser(ctx, id.UserID{})
	require.NoError(t, err)
	require.Len(t, anon, 2)
	assert.Equal(t, "TX", anon[0].Region)
	assert.Equal(t, "OK", anon[1].Region)

	mine, err := store.ListByUser(ctx, seeker)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, string(audit.EventProvidersMatched), mine[0].Action)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	all[0].Region = "mutated"
	again, _ := store.ListAll(ctx)
	assert.Equal(t, "TX", again[0].Region)

	none, err := store.ListByUser(ctx, id.UserID(uuid.New()))
	require.NoError(t, err)
	assert.Empty(t, none)
}
