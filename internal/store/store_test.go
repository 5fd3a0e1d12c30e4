package store

import (
	"path/filepath"
	"testing"

	"github.com/radikals/radikal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a sqlite store in a temp directory for testing.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "deck.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

// ==================== KV Tests ====================

func TestStore_GetSetValue(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SetValue("test_key", "test_value"))

	val, err := st.GetValue("test_key")
	require.NoError(t, err)
	assert.Equal(t, "test_value", val)

	// Missing key returns empty
	val, err = st.GetValue("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "", val)

	// Upsert replaces
	require.NoError(t, st.SetValue("test_key", "updated"))
	val, _ = st.GetValue("test_key")
	assert.Equal(t, "updated", val)
}

func TestStore_DeleteValue(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SetValue("k", "v"))
	require.NoError(t, st.DeleteValue("k"))

	val, err := st.GetValue("k")
	require.NoError(t, err)
	assert.Equal(t, "", val)

	// Deleting a missing key is not an error
	assert.NoError(t, st.DeleteValue("missing"))
}

// ==================== Document Tests ====================

func TestStore_DocumentRoundtrip(t *testing.T) {
	st := newTestStore(t)

	doc := models.DefaultDocument()
	doc.Slides[0].Title = "Persisted"
	doc.Camera.Radius = 11
	require.NoError(t, st.SaveDocument(doc))

	loaded := st.LoadDocument()
	assert.Equal(t, "Persisted", loaded.Slides[0].Title)
	assert.Equal(t, 11.0, loaded.Camera.Radius)
	assert.Len(t, loaded.Sections, 3)
}

func TestStore_LoadDocumentEmpty(t *testing.T) {
	st := newTestStore(t)

	// Nothing saved: every part falls back to the starter deck
	doc := st.LoadDocument()
	assert.Equal(t, models.DefaultDocument().Slides[0].Title, doc.Slides[0].Title)
	assert.Len(t, doc.Slides, 4)
	assert.Equal(t, 8.0, doc.Camera.Radius)
}

func TestStore_LoadDocumentMalformedKeyFallsBack(t *testing.T) {
	st := newTestStore(t)

	// Save a valid document, then corrupt just the slides key
	require.NoError(t, st.SaveDocument(models.DefaultDocument()))
	require.NoError(t, st.SetValue(KeySlides, "{not json"))

	doc := st.LoadDocument()
	// Slides fall back to defaults; the other keys still load
	assert.Len(t, doc.Slides, 4)
	assert.Len(t, doc.Sections, 3)
}

func TestStore_Clear(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SaveDocument(models.DefaultDocument()))
	require.NoError(t, st.Clear())

	for _, key := range []string{KeySlides, KeySections, KeyCamera} {
		val, err := st.GetValue(key)
		require.NoError(t, err)
		assert.Equal(t, "", val, key)
	}
}

// ==================== Camera Merge Tests ====================

func TestMergeCamera_FullConfig(t *testing.T) {
	raw := []byte(`{"radius": 10, "overviewDistance": 20, "focusFov": 60}`)

	cam, err := mergeCamera(raw)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cam.Radius)
	assert.Equal(t, 20.0, cam.OverviewDistance)
	assert.Equal(t, 60.0, cam.FocusFOV)
	// Omitted fields take defaults
	assert.Equal(t, 5.5, cam.FocusDistance)
	assert.Equal(t, 1.2, cam.TransitionDuration)
}

func TestMergeCamera_LegacyFieldNames(t *testing.T) {
	raw := []byte(`{"distance": 22, "height": 3}`)

	cam, err := mergeCamera(raw)
	require.NoError(t, err)
	assert.Equal(t, 22.0, cam.OverviewDistance)
	assert.Equal(t, 3.0, cam.OverviewHeight)
}

func TestMergeCamera_NewNamesWinOverLegacy(t *testing.T) {
	raw := []byte(`{"distance": 22, "overviewDistance": 18}`)

	cam, err := mergeCamera(raw)
	require.NoError(t, err)
	assert.Equal(t, 18.0, cam.OverviewDistance)
}

func TestMergeCamera_Malformed(t *testing.T) {
	_, err := mergeCamera([]byte("{broken"))
	assert.Error(t, err)
}

// ==================== Migration Tests ====================

func TestStore_MigrationsRewriteLegacyCamera(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SetValue(KeyCamera, `{"distance": 25, "height": 2}`))
	require.NoError(t, st.RunMigrations())

	doc := st.LoadDocument()
	assert.Equal(t, 25.0, doc.Camera.OverviewDistance)
	assert.Equal(t, 2.0, doc.Camera.OverviewHeight)

	// The stored value no longer carries the legacy names
	raw, err := st.GetValue(KeyCamera)
	require.NoError(t, err)
	assert.NotContains(t, raw, `"distance"`)
	assert.Contains(t, raw, `"overviewDistance"`)
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.RunMigrations())
	require.NoError(t, st.RunMigrations())

	version, err := st.getSchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, version)
}

func TestStore_MigrationsTolerateMalformedCamera(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SetValue(KeyCamera, "{broken"))
	require.NoError(t, st.RunMigrations())

	// LoadDocument falls back to the default camera
	doc := st.LoadDocument()
	assert.Equal(t, 8.0, doc.Camera.Radius)
}
