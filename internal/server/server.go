package server

import (
	"strings"
	"time"

	"anoa.com/diskusiforum/internal/config"
	"anoa.com/diskusiforum/internal/handler"
	"anoa.com/diskusiforum/internal/middleware"
	"anoa.com/diskusiforum/internal/repository"
	"anoa.com/diskusiforum/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(db *gorm.DB, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	threadSvc := service.NewThreadService(threadRepo, commentRepo, replyRepo, likeRepo)
	threadHandler := handler.NewThreadHandler(threadSvc)

	commentSvc := service.NewCommentService(commentRepo, threadRepo)
	commentHandler := handler.NewCommentHandler(commentSvc)

	replySvc := service.NewReplyService(replyRepo, commentRepo, threadRepo)
	replyHandler := handler.NewReplyHandler(replySvc)

	likeSvc := service.NewLikeService(likeRepo, commentRepo, threadRepo)
	likeHandler := handler.NewLikeHandler(likeSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	// Public routes
	router.POST("/users", authHandler.Register)
	router.POST("/authentications", authHandler.Login)
	router.GET("/threads/:thread_id", threadHandler.GetThreadDetail)

	// Protected routes
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/threads", threadHandler.CreateThread)
		protected.POST("/threads/:thread_id/comments", commentHandler.CreateComment)
		protected.DELETE("/threads/:thread_id/comments/:comment_id", commentHandler.DeleteComment)
		protected.POST("/threads/:thread_id/comments/:comment_id/replies", replyHandler.CreateReply)
		protected.DELETE("/threads/:thread_id/comments/:comment_id/replies/:reply_id", replyHandler.DeleteReply)
		protected.PUT("/threads/:thread_id/comments/:comment_id/likes", likeHandler.ToggleLike)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
