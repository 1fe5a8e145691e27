package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetshop-api/database"
)

func newTestRepo(t *testing.T) *SweetRepository {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "sweets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSweetRepository(db)
}

func mustCreate(t *testing.T, repo *SweetRepository, input SweetInput) *Sweet {
	t.Helper()

	sweet, err := repo.Create(input)
	require.NoError(t, err)
	return sweet
}

func TestCreateEchoesInputAndAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	input := SweetInput{Name: "Kaju Katli", Category: "Nut-Based", Price: 50, Quantity: 20}
	sweet := mustCreate(t, repo, input)

	assert.NotZero(t, sweet.ID)
	assert.Equal(t, input.Name, sweet.Name)
	assert.Equal(t, input.Category, sweet.Category)
	assert.Equal(t, input.Price, sweet.Price)
	assert.Equal(t, input.Quantity, sweet.Quantity)
	assert.False(t, sweet.CreatedAt.IsZero())
	assert.False(t, sweet.UpdatedAt.IsZero())

	second := mustCreate(t, repo, SweetInput{Name: "Barfi", Category: "Nut-Based", Price: 45, Quantity: 25})
	assert.NotEqual(t, sweet.ID, second.ID)
}

func TestFindByID(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, SweetInput{Name: "Rasgulla", Category: "Milk-Based", Price: 15, Quantity: 30})

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindByID(created.ID + 100)
	assert.ErrorIs(t, err, ErrSweetNotFound)
}

func TestFindAllOrdersNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	first := mustCreate(t, repo, SweetInput{Name: "Gulab Jamun", Category: "Milk-Based", Price: 10, Quantity: 50})
	second := mustCreate(t, repo, SweetInput{Name: "Gajar Halwa", Category: "Vegetable-Based", Price: 30, Quantity: 15})
	third := mustCreate(t, repo, SweetInput{Name: "Barfi", Category: "Nut-Based", Price: 45, Quantity: 25})

	sweets, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, sweets, 3)
	assert.Equal(t, third.ID, sweets[0].ID)
	assert.Equal(t, second.ID, sweets[1].ID)
	assert.Equal(t, first.ID, sweets[2].ID)
}

func TestFindAllEmptyTable(t *testing.T) {
	repo := newTestRepo(t)

	sweets, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, sweets)
	assert.NotNil(t, sweets)
}

func TestUpdateByID(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, SweetInput{Name: "Barfi", Category: "Nut-Based", Price: 45, Quantity: 25})

	updated, err := repo.UpdateByID(created.ID, SweetInput{Name: "Chocolate Barfi", Category: "Chocolate", Price: 55, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Chocolate Barfi", updated.Name)
	assert.Equal(t, "Chocolate", updated.Category)
	assert.Equal(t, 55.0, updated.Price)
	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateByID_NotFoundMutatesNothing(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, SweetInput{Name: "Barfi", Category: "Nut-Based", Price: 45, Quantity: 25})

	_, err := repo.UpdateByID(created.ID+1, SweetInput{Name: "Other", Category: "Other", Price: 1, Quantity: 1})
	assert.ErrorIs(t, err, ErrSweetNotFound)

	unchanged, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, unchanged)
}

func TestDeleteByIDIsIdempotentInEffect(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, SweetInput{Name: "Rasgulla", Category: "Milk-Based", Price: 15, Quantity: 30})

	removed, err := repo.DeleteByID(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteByID(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.FindByID(created.ID)
	assert.ErrorIs(t, err, ErrSweetNotFound)
}

func seedSearchFixtures(t *testing.T, repo *SweetRepository) {
	t.Helper()

	fixtures := []SweetInput{
		{Name: "Kaju Katli", Category: "Nut-Based", Price: 50, Quantity: 20},
		{Name: "Gajar Halwa", Category: "Vegetable-Based", Price: 30, Quantity: 15},
		{Name: "Gulab Jamun", Category: "Milk-Based", Price: 10, Quantity: 50},
		{Name: "Rasgulla", Category: "Milk-Based", Price: 15, Quantity: 30},
		{Name: "Barfi", Category: "Nut-Based", Price: 45, Quantity: 25},
	}
	for _, f := range fixtures {
		mustCreate(t, repo, f)
	}
}

func TestSearchWithoutFiltersMatchesFindAll(t *testing.T) {
	repo := newTestRepo(t)
	seedSearchFixtures(t, repo)

	all, err := repo.FindAll()
	require.NoError(t, err)

	found, err := repo.Search(SearchFilters{})
	require.NoError(t, err)
	assert.Equal(t, all, found)
}

func TestSearchByNameSubstring(t *testing.T) {
	repo := newTestRepo(t)
	seedSearchFixtures(t, repo)

	found, err := repo.Search(SearchFilters{Name: "Gu"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Rasgulla", found[0].Name)
	assert.Equal(t, "Gulab Jamun", found[1].Name)
}

func TestSearchByCategory(t *testing.T) {
	repo := newTestRepo(t)
	seedSearchFixtures(t, repo)

	found, err := repo.Search(SearchFilters{Category: "Milk-Based"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, s := range found {
		assert.Equal(t, "Milk-Based", s.Category)
	}
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	repo := newTestRepo(t)
	seedSearchFixtures(t, repo)

	minPrice, maxPrice := 15.0, 45.0
	found, err := repo.Search(SearchFilters{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, found, 3)
	for _, s := range found {
		assert.GreaterOrEqual(t, s.Price, minPrice)
		assert.LessOrEqual(t, s.Price, maxPrice)
	}
}

func TestSearchCombinesFilters(t *testing.T) {
	repo := newTestRepo(t)
	seedSearchFixtures(t, repo)

	maxPrice := 12.0
	found, err := repo.Search(SearchFilters{Category: "Milk-Based", MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Gulab Jamun", found[0].Name)
}

func TestSearchNoMatchesReturnsEmptySlice(t *testing.T) {
	repo := newTestRepo(t)
	seedSearchFixtures(t, repo)

	found, err := repo.Search(SearchFilters{Name: "Ladoo"})
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NotNil(t, found)
}

func TestAdjustQuantityPurchaseAndRestock(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, SweetInput{Name: "Kaju Katli", Category: "Nut-Based", Price: 50, Quantity: 20})

	after, err := repo.AdjustQuantity(created.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 15, after.Quantity)

	after, err = repo.AdjustQuantity(created.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, after.Quantity)
}

func TestAdjustQuantityToExactlyZero(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, SweetInput{Name: "Rasgulla", Category: "Milk-Based", Price: 15, Quantity: 30})

	after, err := repo.AdjustQuantity(created.ID, -30)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Quantity)
}

func TestAdjustQuantityInsufficientStockLeavesRowUnchanged(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, SweetInput{Name: "Kaju Katli", Category: "Nut-Based", Price: 50, Quantity: 15})

	_, err := repo.AdjustQuantity(created.ID, -100)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	unchanged, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, unchanged.Quantity)
	assert.Equal(t, created.UpdatedAt, unchanged.UpdatedAt)
}

func TestAdjustQuantityNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AdjustQuantity(42, -1)
	assert.ErrorIs(t, err, ErrSweetNotFound)

	_, err = repo.AdjustQuantity(42, 1)
	assert.ErrorIs(t, err, ErrSweetNotFound)
}

func TestIDNotReusedAfterDelete(t *testing.T) {
	repo := newTestRepo(t)
	first := mustCreate(t, repo, SweetInput{Name: "Barfi", Category: "Nut-Based", Price: 45, Quantity: 25})

	removed, err := repo.DeleteByID(first.ID)
	require.NoError(t, err)
	require.True(t, removed)

	second := mustCreate(t, repo, SweetInput{Name: "Rasgulla", Category: "Milk-Based", Price: 15, Quantity: 30})
	assert.Greater(t, second.ID, first.ID)
}
