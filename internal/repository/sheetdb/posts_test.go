package sheetdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsList_SortsNewestFirstAndParsesComments(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"old","createdAt":"100","likes":"1","comments":"[{\"id\":\"c1\",\"author\":\"An\"}]"},
			{"id":"broken","createdAt":"200","likes":"0","comments":"undefined"},
			{"id":"new","createdAt":"300","likes":"5","comments":""}
		]`))
	})
	defer srv.Close()

	posts, err := newPostsRepo(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "new", posts[0].ID)
	assert.Equal(t, "broken", posts[1].ID)
	assert.Equal(t, "old", posts[2].ID)

	assert.Empty(t, posts[0].Comments)
	assert.Empty(t, posts[1].Comments)
	require.Len(t, posts[2].Comments, 1)
	assert.Equal(t, "c1", posts[2].Comments[0].ID)
}

func TestPostsFindByID_NoMatchReturnsNil(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	post, err := newPostsRepo(client).FindByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, post)
}
