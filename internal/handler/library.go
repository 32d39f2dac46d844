package handler

import (
	"net/http"
	"strings"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) podcastsGet(c *gin.Context) {
	podcasts, err := h.services.Library.ListPodcasts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, podcasts)
}

func (h *Handler) podcastsCreate(c *gin.Context) {
	var input dto.CreatePodcastRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	podcast, err := h.services.Library.CreatePodcast(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *podcast)
}

func (h *Handler) podcastsDelete(c *gin.Context) {
	podcastID := strings.TrimSpace(c.Param("podcastID"))

	if err := h.services.Library.DeletePodcast(c.Request.Context(), podcastID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) songsGet(c *gin.Context) {
	songs, err := h.services.Library.ListSongs(c.Request.Context(), c.Query("q"), c.Query("mood"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, songs)
}

func (h *Handler) songsNext(c *gin.Context) {
	song, err := h.services.Library.NextSong(c.Request.Context(), c.Query("q"), c.Query("mood"), c.Query("current"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, song)
}

func (h *Handler) songsPrev(c *gin.Context) {
	song, err := h.services.Library.PrevSong(c.Request.Context(), c.Query("q"), c.Query("mood"), c.Query("current"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, song)
}

func (h *Handler) songsSuggest(c *gin.Context) {
	var input dto.SuggestSongsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	suggestions, err := h.services.Chat.SuggestSongs(c.Request.Context(), input.Mood)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

func (h *Handler) songsCreate(c *gin.Context) {
	var input dto.CreateSongRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	song, err := h.services.Library.CreateSong(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *song)
}

func (h *Handler) songsDelete(c *gin.Context) {
	songID := strings.TrimSpace(c.Param("songID"))

	if err := h.services.Library.DeleteSong(c.Request.Context(), songID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) requestsGet(c *gin.Context) {
	requests, err := h.services.Library.ListRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (h *Handler) requestsCreate(c *gin.Context) {
	var input dto.CreateUserRequestDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	request, err := h.services.Library.CreateRequest(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *request)
}

func (h *Handler) requestsDelete(c *gin.Context) {
	requestID := strings.TrimSpace(c.Param("requestID"))

	if err := h.services.Library.DeleteRequest(c.Request.Context(), requestID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
