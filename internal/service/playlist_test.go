package service

import (
	"testing"

	"github.com/AnNhien/companion-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func song(id, title, artist, mood string) *model.Song {
	return &model.Song{
		ID:     id,
		Title:  title,
		Artist: artist,
		Mood:   mood,
	}
}

func threeSongs() *Playlist {
	return NewPlaylist([]*model.Song{
		song("s1", "Mưa rơi", "An", "Thư giãn"),
		song("s2", "Nắng ấm", "Bình", "Vui vẻ"),
		song("s3", "Đêm trắng", "Chi", "Thư giãn"),
	})
}

func TestPlaylist_NextWrapsAround(t *testing.T) {
	playlist := threeSongs()

	next := playlist.Next("", "", "s3")
	require.NotNil(t, next)
	assert.Equal(t, "s1", next.ID)
}

func TestPlaylist_PrevWrapsAround(t *testing.T) {
	playlist := threeSongs()

	prev := playlist.Prev("", "", "s1")
	require.NotNil(t, prev)
	assert.Equal(t, "s3", prev.ID)
}

func TestPlaylist_NextAndPrevStepByOne(t *testing.T) {
	playlist := threeSongs()

	assert.Equal(t, "s2", playlist.Next("", "", "s1").ID)
	assert.Equal(t, "s3", playlist.Next("", "", "s2").ID)
	assert.Equal(t, "s1", playlist.Prev("", "", "s2").ID)
}

func TestPlaylist_CurrentOutsideFilterFallsBackToFirst(t *testing.T) {
	playlist := threeSongs()

	// s2 is "Vui vẻ", so it is not in the filtered list
	next := playlist.Next("", "Thư giãn", "s2")
	require.NotNil(t, next)
	assert.Equal(t, "s1", next.ID)
}

func TestPlaylist_NavigationRunsOverFilteredList(t *testing.T) {
	playlist := threeSongs()

	// filtered view is [s1, s3], so next after s1 skips s2 entirely
	next := playlist.Next("", "Thư giãn", "s1")
	require.NotNil(t, next)
	assert.Equal(t, "s3", next.ID)

	next = playlist.Next("", "Thư giãn", "s3")
	require.NotNil(t, next)
	assert.Equal(t, "s1", next.ID)
}

func TestPlaylist_EmptyFilteredListIsNoOp(t *testing.T) {
	playlist := threeSongs()

	assert.Nil(t, playlist.Next("không có bài nào", "", "s1"))
	assert.Nil(t, playlist.Prev("", "Buồn", "s1"))
	assert.Nil(t, NewPlaylist(nil).Next("", "", ""))
}

func TestPlaylist_FilterMatchesTitleAndArtistCaseInsensitively(t *testing.T) {
	playlist := threeSongs()

	byTitle := playlist.Filter("mưa", "")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "s1", byTitle[0].ID)

	byArtist := playlist.Filter("BÌNH", "")
	require.Len(t, byArtist, 1)
	assert.Equal(t, "s2", byArtist[0].ID)
}

func TestPlaylist_MoodAllMatchesEverything(t *testing.T) {
	playlist := threeSongs()

	assert.Len(t, playlist.Filter("", MoodAll), 3)
	assert.Len(t, playlist.Filter("", ""), 3)
}

func TestPlaylist_QueryAndMoodCombine(t *testing.T) {
	playlist := threeSongs()

	filtered := playlist.Filter("đêm", "Thư giãn")
	require.Len(t, filtered, 1)
	assert.Equal(t, "s3", filtered[0].ID)

	assert.Empty(t, playlist.Filter("đêm", "Vui vẻ"))
}
