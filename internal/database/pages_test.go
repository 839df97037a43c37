package database

import (
	"context"
	"testing"

	"pagehub/internal/models"

	"github.com/jaevor/go-nanoid"
	"github.com/stretchr/testify/require"
)

func createTestPage(t *testing.T, ownerID int64, title string, blocks []models.Block) *models.Page {
	t.Helper()

	generateID, err := nanoid.Standard(21)
	require.NoError(t, err)

	page, err := testStore.CreatePage(context.Background(), CreatePageParams{
		ID:      generateID(),
		OwnerID: ownerID,
		Title:   title,
		Blocks:  blocks,
	})
	require.NoError(t, err)
	require.NotNil(t, page)
	return page
}

func TestCreatePage_BlocksRoundTrip(t *testing.T) {
	user := createTestUser(t, models.RoleUser)

	content := "Hello world"
	blocks := []models.Block{
		{Order: 1, ID: "b1", Type: models.BlockTypeText, Content: &content},
		{Order: 2, ID: "b2", Type: models.BlockTypeImage},
	}

	page := createTestPage(t, user.ID, "First page", blocks)
	require.Equal(t, user.ID, page.OwnerID)
	require.False(t, page.IsDeleted)
	require.Len(t, page.Blocks, 2)
	require.Equal(t, models.BlockTypeText, page.Blocks[0].Type)
	require.NotNil(t, page.Blocks[0].Content)
	require.Equal(t, content, *page.Blocks[0].Content)
	require.Nil(t, page.Blocks[1].Content)
}

func TestCreatePage_NilBlocksBecomeEmptyList(t *testing.T) {
	user := createTestUser(t, models.RoleUser)

	page := createTestPage(t, user.ID, "No blocks", nil)
	require.NotNil(t, page.Blocks)
	require.Empty(t, page.Blocks)
}

func TestGetPageByID_OwnerScoped(t *testing.T) {
	owner := createTestUser(t, models.RoleUser)
	other := createTestUser(t, models.RoleUser)
	page := createTestPage(t, owner.ID, "Private page", nil)
	ctx := context.Background()

	found, err := testStore.GetPageByID(ctx, page.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	// Another principal cannot see it.
	found, err = testStore.GetPageByID(ctx, page.ID, other.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestUpdatePage_ScopedToOwner(t *testing.T) {
	owner := createTestUser(t, models.RoleUser)
	attacker := createTestUser(t, models.RoleUser)
	page := createTestPage(t, owner.ID, "Original title", nil)
	ctx := context.Background()

	_, err := testStore.UpdatePage(ctx, page.ID, attacker.ID, "Hijacked", nil)
	require.ErrorIs(t, err, ErrPageNotFound)

	updated, err := testStore.UpdatePage(ctx, page.ID, owner.ID, "New title", []models.Block{
		{Order: 1, ID: "b1", Type: models.BlockTypeText},
	})
	require.NoError(t, err)
	require.Equal(t, "New title", updated.Title)
	require.Len(t, updated.Blocks, 1)
}

func TestSoftDeletePage(t *testing.T) {
	user := createTestUser(t, models.RoleUser)
	page := createTestPage(t, user.ID, "Doomed page", nil)
	ctx := context.Background()

	deleted, err := testStore.SoftDeletePage(ctx, page.ID, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Invisible to lookups, listings and counts.
	found, err := testStore.GetPageByID(ctx, page.ID, user.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	pages, err := testStore.ListPages(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, pages)

	count, err := testStore.CountActivePages(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	// The record itself is retained.
	exists, err := testStore.PageExists(ctx, page.ID)
	require.NoError(t, err)
	require.True(t, exists)

	// Deleting again reports not found.
	deleted, err = testStore.SoftDeletePage(ctx, page.ID, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestCountActivePages(t *testing.T) {
	user := createTestUser(t, models.RoleUser)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		createTestPage(t, user.ID, "Page", nil)
	}
	doomed := createTestPage(t, user.ID, "Soft-deleted", nil)
	_, err := testStore.SoftDeletePage(ctx, doomed.ID, user.ID)
	require.NoError(t, err)

	count, err := testStore.CountActivePages(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestListPages_OnlyOwnersPages(t *testing.T) {
	alice := createTestUser(t, models.RoleUser)
	bob := createTestUser(t, models.RoleUser)

	createTestPage(t, alice.ID, "Alice page", nil)
	createTestPage(t, bob.ID, "Bob page", nil)

	pages, err := testStore.ListPages(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Equal(t, "Alice page", pages[0].Title)
}
