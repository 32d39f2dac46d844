package sheetdb

import (
	"encoding/json"
	"strconv"

	"github.com/AnNhien/companion-service/internal/model"
)

// Record is one spreadsheet row. Cells come back as strings or numbers
// depending on how the sheet formats them, so the getters coerce both.
type Record map[string]interface{}

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (r Record) Int64(key string) int64 {
	switch v := r[key].(type) {
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// parseComments reads the single JSON text column a post's comment list is
// serialized into. Blank, "null", "undefined" and malformed cells all read
// as an empty list.
func parseComments(raw string) []model.Comment {
	if raw == "" || raw == "null" || raw == "undefined" {
		return []model.Comment{}
	}

	var comments []model.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return []model.Comment{}
	}
	if comments == nil {
		return []model.Comment{}
	}

	return comments
}

func serializeComments(comments []model.Comment) string {
	if comments == nil {
		comments = []model.Comment{}
	}

	raw, err := json.Marshal(comments)
	if err != nil {
		return "[]"
	}

	return string(raw)
}
