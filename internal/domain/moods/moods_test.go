package moods

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogIsStable(t *testing.T) {
	all := Catalog()
	require.Len(t, all, 5)
	require.Equal(t, "cozy", all[0].ID)

	// Catalog hands out a copy; callers must not be able to mutate it.
	all[0].ID = "mutated"
	fresh := Catalog()
	require.Equal(t, "cozy", fresh[0].ID)
}

func TestByID(t *testing.T) {
	mood, ok := ByID("social")
	require.True(t, ok)
	require.Equal(t, "Social", mood.Label)

	_, ok = ByID("ecstatic")
	require.False(t, ok)
}
