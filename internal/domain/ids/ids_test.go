package ids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	id, err := NewULID()
	require.NoError(t, err)
	require.NoError(t, ValidateULID(id))
}

func TestValidateULID(t *testing.T) {
	require.NoError(t, ValidateULID("01HK5T2M8PXW4QZRB1N3VCEG7A"))
	require.ErrorIs(t, ValidateULID("not-a-ulid"), ErrInvalidULID)
	require.ErrorIs(t, ValidateULID(""), ErrInvalidULID)
	// I, L, O and U are excluded from Crockford base32.
	require.ErrorIs(t, ValidateULID("01HK5T2M8PXW4QZRB1N3VCEGIL"), ErrInvalidULID)
}
