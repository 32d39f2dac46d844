package model

import "github.com/google/uuid"

const MaxCommentLength = 300

type Comment struct {
	ID            string `json:"id"`
	Author        string `json:"author"`
	Content       string `json:"content"`
	CreatedAt     int64  `json:"createdAt"`
	ReplyToID     string `json:"replyToId,omitempty"`
	ReplyToAuthor string `json:"replyToAuthor,omitempty"`
}

type CommentThread struct {
	Root    Comment   `json:"root"`
	Replies []Comment `json:"replies"`
}

func NewCommentID() string {
	return "cmt_" + uuid.NewString()
}

// BuildCommentThreads turns a post's flat comment list into a two-level
// structure: root comments in input order, each with its replies in input
// order. A comment replying to a reply lands in the same thread as the
// comment it targeted. A comment whose replyToId matches nothing seen so far
// is promoted to a root, so every input comment appears in exactly one thread.
func BuildCommentThreads(comments []Comment) []CommentThread {
	threads := make([]CommentThread, 0, len(comments))
	threadOf := make(map[string]int, len(comments))

	for _, c := range comments {
		if c.ReplyToID != "" && c.ReplyToID != c.ID {
			if idx, ok := threadOf[c.ReplyToID]; ok {
				threads[idx].Replies = append(threads[idx].Replies, c)
				threadOf[c.ID] = idx
				continue
			}
		}

		threads = append(threads, CommentThread{Root: c, Replies: []Comment{}})
		threadOf[c.ID] = len(threads) - 1
	}

	return threads
}
