package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soukapp/souk/internal/catalog"
	"github.com/soukapp/souk/internal/database"
)

func newTestRepo(t *testing.T) *catalog.Repo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDemo(context.Background(), db))
	return catalog.NewRepo(db)
}

func TestVendorsByCategoryOrdersByRating(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	vendors, err := repo.VendorsByCategory(ctx, catalog.VendorRestaurant)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	require.Equal(t, "Mama Oliech", vendors[0].Name)
	require.Equal(t, "Burger Yard", vendors[1].Name)
	require.Greater(t, vendors[0].Rating, vendors[1].Rating)
	require.Equal(t, "1.50", vendors[0].DeliveryFee.StringFixed(2))

	none, err := repo.VendorsByCategory(ctx, "florist")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestServicesByVendorOrdersByPrice(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	vendors, err := repo.VendorsByCategory(ctx, catalog.VendorCleaning)
	require.NoError(t, err)
	require.Equal(t, "Sparkle Homes", vendors[0].Name)

	services, err := repo.ServicesByVendor(ctx, vendors[0].ID)
	require.NoError(t, err)
	require.Len(t, services, 3)
	require.Equal(t, "Standard Cleaning", services[0].Name)
	require.Equal(t, "45", services[0].Price.String())
	require.Equal(t, "Move-out Cleaning", services[2].Name)
	for _, s := range services {
		require.Equal(t, vendors[0].ID, s.VendorID)
	}
}

func TestItemsByVendor(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	vendors, err := repo.VendorsByCategory(ctx, catalog.VendorRestaurant)
	require.NoError(t, err)

	items, err := repo.ItemsByVendor(ctx, vendors[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	byName := map[string]catalog.Item{}
	for _, it := range items {
		byName[it.Name] = it
	}
	fish, ok := byName["Whole Tilapia"]
	require.True(t, ok)
	require.Equal(t, "14", fish.Price.String())
	require.Equal(t, "Mains", fish.Section)
}

func TestVendorByID(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	vendors, err := repo.VendorsByCategory(ctx, catalog.VendorGrocery)
	require.NoError(t, err)
	require.NotEmpty(t, vendors)

	got, err := repo.VendorByID(ctx, vendors[0].ID)
	require.NoError(t, err)
	require.Equal(t, vendors[0].Name, got.Name)

	missing, err := repo.VendorByID(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestVendorsByIDs(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	cleaning, err := repo.VendorsByCategory(ctx, catalog.VendorCleaning)
	require.NoError(t, err)
	food, err := repo.VendorsByCategory(ctx, catalog.VendorRestaurant)
	require.NoError(t, err)

	got, err := repo.VendorsByIDs(ctx, []string{food[0].ID, cleaning[0].ID, "unknown"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// sorted by name, unknown ids silently skipped
	require.Equal(t, "Mama Oliech", got[0].Name)
	require.Equal(t, "Sparkle Homes", got[1].Name)

	empty, err := repo.VendorsByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestSearchVendors(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Log("substring match")
	got, err := repo.SearchVendors(ctx, "burger")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Burger Yard", got[0].Name)

	t.Log("fuzzy match within distance 2")
	got, err = repo.SearchVendors(ctx, "sparkel")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	require.Equal(t, "Sparkle Homes", got[0].Name)

	t.Log("case folded")
	got, err = repo.SearchVendors(ctx, "MAMA")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Mama Oliech", got[0].Name)

	t.Log("no match")
	got, err = repo.SearchVendors(ctx, "zzzzzzzzzz")
	require.NoError(t, err)
	require.Empty(t, got)

	t.Log("blank query")
	got, err = repo.SearchVendors(ctx, "   ")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPropertiesRidesAndCompanions(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	props, err := repo.Properties(ctx)
	require.NoError(t, err)
	require.Len(t, props, 4)
	for _, p := range props {
		require.NotEmpty(t, p.Title)
		require.True(t, p.Nightly.IsPositive())
	}

	rides, err := repo.RideProviders(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 3)

	comps, err := repo.Companions(ctx)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	for _, c := range comps {
		require.True(t, c.HourlyRate.IsPositive())
	}
}
