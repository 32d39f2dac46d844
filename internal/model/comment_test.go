package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comment(id, author, replyToID string) Comment {
	return Comment{
		ID:        id,
		Author:    author,
		Content:   "nội dung " + id,
		ReplyToID: replyToID,
	}
}

func TestBuildCommentThreads_Empty(t *testing.T) {
	threads := BuildCommentThreads(nil)
	assert.Empty(t, threads)

	threads = BuildCommentThreads([]Comment{})
	assert.Empty(t, threads)
}

func TestBuildCommentThreads_SingleRoot(t *testing.T) {
	threads := BuildCommentThreads([]Comment{comment("c1", "An", "")})

	require.Len(t, threads, 1)
	assert.Equal(t, "c1", threads[0].Root.ID)
	assert.Empty(t, threads[0].Replies)
}

func TestBuildCommentThreads_RepliesKeepInputOrder(t *testing.T) {
	threads := BuildCommentThreads([]Comment{
		comment("root", "An", ""),
		comment("r1", "Bình", "root"),
		comment("r2", "Chi", "root"),
		comment("r3", "Dũng", "root"),
	})

	require.Len(t, threads, 1)
	require.Len(t, threads[0].Replies, 3)
	assert.Equal(t, "r1", threads[0].Replies[0].ID)
	assert.Equal(t, "r2", threads[0].Replies[1].ID)
	assert.Equal(t, "r3", threads[0].Replies[2].ID)
}

func TestBuildCommentThreads_EndToEndScenario(t *testing.T) {
	// C1 and C2 are roots, C3 replies to C1; root order must stay [C1, C2].
	threads := BuildCommentThreads([]Comment{
		comment("c1", "An", ""),
		comment("c2", "Bình", ""),
		comment("c3", "Chi", "c1"),
	})

	require.Len(t, threads, 2)
	assert.Equal(t, "c1", threads[0].Root.ID)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, "c3", threads[0].Replies[0].ID)
	assert.Equal(t, "c2", threads[1].Root.ID)
	assert.Empty(t, threads[1].Replies)
}

func TestBuildCommentThreads_DanglingReferenceBecomesRoot(t *testing.T) {
	threads := BuildCommentThreads([]Comment{
		comment("c1", "An", ""),
		comment("c2", "Bình", "missing"),
	})

	require.Len(t, threads, 2)
	assert.Equal(t, "c1", threads[0].Root.ID)
	assert.Equal(t, "c2", threads[1].Root.ID)
}

func TestBuildCommentThreads_SelfReferenceBecomesRoot(t *testing.T) {
	threads := BuildCommentThreads([]Comment{comment("c1", "An", "c1")})

	require.Len(t, threads, 1)
	assert.Equal(t, "c1", threads[0].Root.ID)
	assert.Empty(t, threads[0].Replies)
}

func TestBuildCommentThreads_ReplyToReplyJoinsSameThread(t *testing.T) {
	threads := BuildCommentThreads([]Comment{
		comment("root", "An", ""),
		comment("r1", "Bình", "root"),
		comment("r2", "Chi", "r1"),
	})

	require.Len(t, threads, 1)
	require.Len(t, threads[0].Replies, 2)
	assert.Equal(t, "r1", threads[0].Replies[0].ID)
	assert.Equal(t, "r2", threads[0].Replies[1].ID)
}

// Every comment must land in exactly one thread, whatever the input shape.
func TestBuildCommentThreads_Totality(t *testing.T) {
	tests := []struct {
		name     string
		comments []Comment
	}{
		{
			name: "well formed",
			comments: []Comment{
				comment("a", "An", ""),
				comment("b", "Bình", "a"),
				comment("c", "Chi", ""),
				comment("d", "Dũng", "c"),
			},
		},
		{
			name: "all dangling",
			comments: []Comment{
				comment("a", "An", "x"),
				comment("b", "Bình", "y"),
				comment("c", "Chi", "z"),
			},
		},
		{
			name: "mixed with reply chains",
			comments: []Comment{
				comment("a", "An", ""),
				comment("b", "Bình", "a"),
				comment("c", "Chi", "b"),
				comment("d", "Dũng", "nope"),
				comment("e", "Em", "d"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threads := BuildCommentThreads(tt.comments)

			seen := make(map[string]int)
			for _, thread := range threads {
				seen[thread.Root.ID]++
				for _, reply := range thread.Replies {
					seen[reply.ID]++
				}
			}

			require.Len(t, seen, len(tt.comments))
			for _, c := range tt.comments {
				assert.Equal(t, 1, seen[c.ID], "comment %s must appear exactly once", c.ID)
			}
		})
	}
}
