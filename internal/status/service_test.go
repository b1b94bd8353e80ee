package status_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/status"
	"lumiere-backend/internal/storage/memory"
)

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	svc := status.NewService(memory.NewStatusChecks())

	c, err := svc.Record(ctx, "frontend")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "frontend", c.ClientName)
	assert.False(t, c.Timestamp.IsZero())
	assert.Equal(t, "UTC", c.Timestamp.Location().String())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c, list[0])
}

func TestRecord_RequiresClientName(t *testing.T) {
	svc := status.NewService(memory.NewStatusChecks())
	_, err := svc.Record(context.Background(), "")
	assert.ErrorIs(t, err, status.ErrClientNameRequired)
}

func TestList_Capped(t *testing.T) {
	ctx := context.Background()
	svc := status.NewService(memory.NewStatusChecks())
	for i := 0; i < status.MaxList+5; i++ {
		_, err := svc.Record(ctx, fmt.Sprintf("client-%d", i))
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, status.MaxList)
	assert.Equal(t, "client-0", list[0].ClientName)
}
