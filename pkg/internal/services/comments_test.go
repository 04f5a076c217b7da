package services

import (
	"testing"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsAreOrderedByCreation(t *testing.T) {
	db := testDB(t)
	author := testAccount(t, db, "paul")
	reader := testAccount(t, db, "ringo")

	post, err := NewPost(db, author, models.Post{Text: "discuss"})
	require.NoError(t, err)

	// Written in an order that differs from the lexicographic one.
	_, err = NewComment(db, reader, post, "zebra first")
	require.NoError(t, err)
	_, err = NewComment(db, reader, post, "aardvark second")
	require.NoError(t, err)

	comments, err := ListComments(db, post)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "zebra first", comments[0].Text)
	assert.Equal(t, "aardvark second", comments[1].Text)
	assert.Equal(t, reader.Name, comments[0].Author.Name)
}

func TestCountComments(t *testing.T) {
	db := testDB(t)
	author := testAccount(t, db, "paul")

	post, err := NewPost(db, author, models.Post{Text: "discuss"})
	require.NoError(t, err)
	other, err := NewPost(db, author, models.Post{Text: "something else"})
	require.NoError(t, err)

	_, err = NewComment(db, author, post, "self reply")
	require.NoError(t, err)

	count, err := CountComments(db, post)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = CountComments(db, other)
	require.NoError(t, err)
	assert.Zero(t, count)
}
