package services

import (
	"fmt"
	"testing"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatePostThirteenItems(t *testing.T) {
	db := testDB(t)
	author := testAccount(t, db, "paul")

	for i := 0; i < 13; i++ {
		_, err := NewPost(db, author, models.Post{Text: fmt.Sprintf("post number %d", i)})
		require.NoError(t, err)
	}

	first, err := PaginatePost(db, 1)
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, int64(13), first.Count)
	assert.Equal(t, 1, first.CurrentPage)
	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)

	second, err := PaginatePost(db, 2)
	require.NoError(t, err)
	assert.Len(t, second.Items, 3)
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrevious)
}

func TestPaginatePostClampsOutOfRange(t *testing.T) {
	db := testDB(t)
	author := testAccount(t, db, "paul")

	for i := 0; i < 13; i++ {
		_, err := NewPost(db, author, models.Post{Text: fmt.Sprintf("post number %d", i)})
		require.NoError(t, err)
	}

	tooLarge, err := PaginatePost(db, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, tooLarge.CurrentPage)
	assert.Len(t, tooLarge.Items, 3)

	tooSmall, err := PaginatePost(db, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, tooSmall.CurrentPage)
	assert.Len(t, tooSmall.Items, 10)
}

func TestPaginatePostEmptyFeed(t *testing.T) {
	db := testDB(t)

	page, err := PaginatePost(db, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestPaginatePostNewestFirst(t *testing.T) {
	db := testDB(t)
	author := testAccount(t, db, "paul")

	for i := 0; i < 3; i++ {
		_, err := NewPost(db, author, models.Post{Text: fmt.Sprintf("post number %d", i)})
		require.NoError(t, err)
	}

	page, err := PaginatePost(db, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "post number 2", page.Items[0].Text)
	assert.Equal(t, "post number 0", page.Items[2].Text)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 2, TotalPages(13, 10))
}
