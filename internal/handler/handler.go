package handler

import (
	"github.com/AnNhien/companion-service/internal/model"
	"github.com/AnNhien/companion-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Device-ID"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.authRegister)
			auth.POST("/login", h.authLogin)
			auth.POST("/guest", h.authGuest)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", h.notRequiredAuthMiddleware, h.postsGet)
			posts.POST("", h.authMiddleware, h.postsCreate)

			post := posts.Group("/:postID")
			{
				post.POST("/like", h.postsLike)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)
				post.DELETE("", h.adminMiddleware, h.postsDelete)
			}
		}

		podcasts := v1.Group("/podcasts")
		{
			podcasts.GET("", h.podcastsGet)
			podcasts.POST("", h.adminMiddleware, h.podcastsCreate)
			podcasts.DELETE("/:podcastID", h.adminMiddleware, h.podcastsDelete)
		}

		songs := v1.Group("/songs")
		{
			songs.GET("", h.songsGet)
			songs.GET("/next", h.songsNext)
			songs.GET("/prev", h.songsPrev)
			songs.POST("/suggest", h.songsSuggest)
			songs.POST("", h.adminMiddleware, h.songsCreate)
			songs.DELETE("/:songID", h.adminMiddleware, h.songsDelete)
		}

		requests := v1.Group("/requests")
		{
			requests.POST("", h.requestsCreate)
			requests.GET("", h.adminMiddleware, h.requestsGet)
			requests.DELETE("/:requestID", h.adminMiddleware, h.requestsDelete)
		}

		v1.POST("/chat", h.notRequiredAuthMiddleware, h.chatSend)
	}

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.UserProfile {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.UserProfile)
	if !ok {
		return nil
	}

	return &user
}
