package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AnNhien/companion-service/internal/dto"
	"github.com/AnNhien/companion-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsGet(c *gin.Context) {
	deviceID := c.GetHeader("X-Device-ID")

	posts, err := h.services.Feed.ListPosts(c.Request.Context(), deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Feed.CreatePost(c.Request.Context(), user.Name, input.Category, input.Content)
	if err != nil {
		h.writeFeedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsDelete(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))

	if err := h.services.Feed.DeletePost(c.Request.Context(), postID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) postsLike(c *gin.Context) {
	deviceID := c.GetHeader("X-Device-ID")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errDeviceIDRequired.Error()))
		return
	}

	postID := strings.TrimSpace(c.Param("postID"))

	result, err := h.services.Feed.ToggleLike(c.Request.Context(), deviceID, postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPostNotFound.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	postID := strings.TrimSpace(c.Param("postID"))

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	comments, err := h.services.Feed.AddComment(c.Request.Context(), postID, input.Content, user.Name, input.ReplyToID)
	if err != nil {
		h.writeFeedError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// writeFeedError maps feed errors to responses. Moderation rejections and
// failed remote writes both echo the draft back so the client can restore
// the input instead of losing what was typed.
func (h *Handler) writeFeedError(c *gin.Context, err error) {
	var rejection *service.ModerationRejection
	if errors.As(err, &rejection) {
		c.JSON(http.StatusUnprocessableEntity, dto.CommentRejected{
			Ok:     false,
			Reason: rejection.Reason,
			Draft:  rejection.Draft,
		})
		return
	}

	var writeErr *service.RemoteWriteError
	if errors.As(err, &writeErr) {
		c.JSON(http.StatusBadGateway, dto.CommentRejected{
			Ok:     false,
			Reason: "Không thể lưu. Vui lòng thử lại.",
			Draft:  writeErr.Draft,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrEmptyComment), errors.Is(err, service.ErrCommentTooLong), errors.Is(err, service.ErrEmptyPost):
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPostNotFound.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
	}
}
