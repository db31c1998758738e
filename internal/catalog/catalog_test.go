package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odlaor/paradise-resort/internal/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	deluxe, ok := c.RoomType("deluxe")
	require.True(t, ok)
	assert.Equal(t, 3500.0, deluxe.Price)
	assert.Equal(t, 3, deluxe.Capacity)
	assert.Equal(t, 2, deluxe.Floor)

	breakfast, ok := c.Service("breakfast")
	require.True(t, ok)
	assert.Equal(t, catalog.PerGuestPerNight, breakfast.Mode)
	tour, ok := c.Service("tour")
	require.True(t, ok)
	assert.Equal(t, catalog.PerStay, tour.Mode)

	assert.Equal(t, 0.10, c.ServiceChargeRate)
	assert.Equal(t, 0.07, c.VATRate)
	assert.Equal(t, 60, c.TotalRooms())

	_, ok = c.RoomType("penthouse")
	assert.False(t, ok)
	_, ok = c.Service("minibar")
	assert.False(t, ok)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	c, err := catalog.Load("")
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().RoomTypes, c.RoomTypes)
}

func TestLoadFromFile(t *testing.T) {
	raw := `{
		"room_types": [
			{"id": "bungalow", "name": "Beach Bungalow", "price": 4200, "capacity": 2, "size": 40, "floor": 1, "total_rooms": 8}
		],
		"services": [
			{"id": "kayak", "name": "Kayak Rental", "price": 500, "mode": "per-stay"}
		],
		"service_charge_rate": 0.10,
		"vat_rate": 0.07
	}`
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)

	bungalow, ok := c.RoomType("bungalow")
	require.True(t, ok)
	assert.Equal(t, 4200.0, bungalow.Price)
	assert.Equal(t, 8, c.TotalRooms())
	_, ok = c.RoomType("standard")
	assert.False(t, ok, "file catalogs replace the defaults entirely")
}

func TestLoadRejectsBrokenFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := catalog.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = catalog.Load(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"room_types": []}`), 0o644))
	_, err = catalog.Load(empty)
	assert.Error(t, err)
}
