package roles

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "roles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("manager", "Gerente"))
	require.NoError(t, store.Save("role_1715000000", "Fiscal de Obras"))

	labels, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"manager":         "Gerente",
		"role_1715000000": "Fiscal de Obras",
	}, labels)
}

func TestStoreSaveReplacesExistingLabel(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("intern", "Estagiário"))
	require.NoError(t, store.Save("intern", "Estagiário de Campo"))

	labels, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Estagiário de Campo", labels["intern"])
	assert.Len(t, labels, 1)
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save("role_123", "Topógrafo"))
	require.NoError(t, store.Delete("role_123"))

	labels, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, labels)

	// Deleting an absent key is tolerated at this layer.
	assert.NoError(t, store.Delete("role_123"))
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("collaborator", "Colaborador"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	labels, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "Colaborador", labels["collaborator"])
}
