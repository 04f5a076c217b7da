package services

import (
	"testing"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAuthorIsIdempotent(t *testing.T) {
	db := testDB(t)
	user := testAccount(t, db, "paul")
	author := testAccount(t, db, "john")

	_, err := FollowAuthor(db, user, author)
	require.NoError(t, err)
	_, err = FollowAuthor(db, user, author)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	following, err := IsFollowing(db, user, author)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowYourselfCreatesNothing(t *testing.T) {
	db := testDB(t)
	user := testAccount(t, db, "paul")

	_, err := FollowAuthor(db, user, user)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUnfollowRemovesExactPair(t *testing.T) {
	db := testDB(t)
	first := testAccount(t, db, "paul")
	second := testAccount(t, db, "ringo")
	author := testAccount(t, db, "john")

	_, err := FollowAuthor(db, first, author)
	require.NoError(t, err)
	_, err = FollowAuthor(db, second, author)
	require.NoError(t, err)

	require.NoError(t, UnfollowAuthor(db, first, author))

	following, err := IsFollowing(db, first, author)
	require.NoError(t, err)
	assert.False(t, following)

	// The other follower's edge must survive.
	following, err = IsFollowing(db, second, author)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestUnfollowWithoutEdge(t *testing.T) {
	db := testDB(t)
	user := testAccount(t, db, "paul")
	author := testAccount(t, db, "john")

	assert.Error(t, UnfollowAuthor(db, user, author))
}

func TestFollowedFeedFilter(t *testing.T) {
	db := testDB(t)
	user := testAccount(t, db, "paul")
	followed := testAccount(t, db, "john")
	stranger := testAccount(t, db, "george")

	_, err := NewPost(db, followed, models.Post{Text: "from a followed author"})
	require.NoError(t, err)
	_, err = NewPost(db, stranger, models.Post{Text: "from a stranger"})
	require.NoError(t, err)

	// Nobody followed yet, the feed stays empty.
	items, err := ListPost(FilterPostWithFollowed(db, user), 100, 0, "created_at DESC")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = FollowAuthor(db, user, followed)
	require.NoError(t, err)

	items, err = ListPost(FilterPostWithFollowed(db, user), 100, 0, "created_at DESC")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, followed.ID, items[0].AuthorID)
}
