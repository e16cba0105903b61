package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsework/okrboard/pkg/types"
)

func TestUpsertCommentOverwrites(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")

	require.NoError(t, s.UpsertComment(obj.ID, "2025-11", "First take"))
	require.NoError(t, s.UpsertComment(obj.ID, "2025-11", "Second take"))

	c, err := s.GetComment(obj.ID, "2025-11")
	require.NoError(t, err)
	assert.Equal(t, "Second take", c.Comment)

	// Still exactly one slot per month.
	comments, err := s.ListComments(obj.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 3)
}

func TestUpsertCommentOutsideWindowCreatesSlot(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")

	// Months outside the provisioned window are accepted; the slot is
	// created on demand.
	require.NoError(t, s.UpsertComment(obj.ID, "2027-03", "Late note"))

	c, err := s.GetComment(obj.ID, "2027-03")
	require.NoError(t, err)
	assert.Equal(t, "Late note", c.Comment)
}

func TestUpsertCommentValidation(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")

	err := s.UpsertComment(obj.ID, "bogus", "text")
	assert.ErrorIs(t, err, types.ErrInvalidMonth)

	err = s.UpsertComment(obj.ID, "2025-11", strings.Repeat("a", types.MaxCommentLen+1))
	var verr *types.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpsertCommentMissingObjective(t *testing.T) {
	s := setupStore(t)

	err := s.UpsertComment(42, "2025-11", "text")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetCommentNotFound(t *testing.T) {
	s := setupStore(t)
	obj := mustCreateObjective(t, s, "Improve reliability")

	_, err := s.GetComment(obj.ID, "2027-01")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
