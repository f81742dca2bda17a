package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/doubtlink/doubtlink-api/docs"
	v1 "github.com/doubtlink/doubtlink-api/internal/api/handler/v1"
	"github.com/doubtlink/doubtlink-api/internal/api/middleware"
	"github.com/doubtlink/doubtlink-api/internal/config"
	"github.com/doubtlink/doubtlink-api/internal/metrics"
	"github.com/doubtlink/doubtlink-api/internal/realtime"
	"github.com/doubtlink/doubtlink-api/internal/repository"
	"github.com/doubtlink/doubtlink-api/internal/repository/dao"
	"github.com/doubtlink/doubtlink-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, hub *realtime.Hub) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	doubtHandler := s.initDoubtHandler(db, hub)
	meetingHandler := s.initMeetingHandler(db, hub)
	chatHandler := s.initChatHandler(db, hub)
	leaderboardHandler := s.initLeaderboardHandler(db)
	uploadHandler := v1.NewUploadHandler(conf.API.UploadDir)
	s.MountHandlers(authHandler, doubtHandler, meetingHandler, chatHandler, leaderboardHandler, uploadHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initDoubtHandler(db *gorm.DB, hub *realtime.Hub) *v1.DoubtHandler {
	doubtRepo := repository.NewDoubtRepository(dao.NewDoubtDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	leaderboardRepo := repository.NewLeaderboardRepository(dao.NewLeaderboardDAO(db))
	svc := service.NewDoubtService(doubtRepo, userRepo, leaderboardRepo, hub)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewDoubtHandler(svc, uSvc)

	return handler
}

func (s *Server) initMeetingHandler(db *gorm.DB, hub *realtime.Hub) *v1.MeetingHandler {
	meetingRepo := repository.NewMeetingRepository(dao.NewMeetingDAO(db))
	doubtRepo := repository.NewDoubtRepository(dao.NewDoubtDAO(db))
	chatRepo := repository.NewChatMessageRepository(dao.NewChatMessageDAO(db))
	svc := service.NewMeetingService(meetingRepo, doubtRepo, chatRepo, hub)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewMeetingHandler(svc, uSvc)

	return handler
}

func (s *Server) initChatHandler(db *gorm.DB, hub *realtime.Hub) *v1.ChatHandler {
	chatRepo := repository.NewChatMessageRepository(dao.NewChatMessageDAO(db))
	doubtRepo := repository.NewDoubtRepository(dao.NewDoubtDAO(db))
	svc := service.NewChatService(chatRepo, doubtRepo)
	handler := v1.NewChatHandler(svc, hub)

	return handler
}

func (s *Server) initLeaderboardHandler(db *gorm.DB) *v1.LeaderboardHandler {
	repo := repository.NewLeaderboardRepository(dao.NewLeaderboardDAO(db))
	svc := service.NewLeaderboardService(repo)
	handler := v1.NewLeaderboardHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	doubtHandler *v1.DoubtHandler,
	meetingHandler *v1.MeetingHandler,
	chatHandler *v1.ChatHandler,
	leaderboardHandler *v1.LeaderboardHandler,
	uploadHandler *v1.UploadHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.POST("/doubts", doubtHandler.HandleCreateDoubt)
		authenticated.GET("/doubts", doubtHandler.HandleGetDoubts)
		authenticated.POST("/doubts/:doubtID/answer", doubtHandler.HandleAnswerDoubt)
		authenticated.POST("/doubts/:doubtID/meeting", meetingHandler.HandleStartMeeting)
		authenticated.GET("/doubts/:doubtID/meetings", meetingHandler.HandleGetMeetings)
		authenticated.GET("/doubts/:doubtID/messages", chatHandler.HandleGetChatMessages)
		authenticated.POST("/uploads", uploadHandler.HandleUpload)
	}

	// The leaderboard and the realtime endpoint are public; identity on the
	// realtime channel travels inside event payloads.
	s.Router.GET(basePath+"/leaderboard", leaderboardHandler.HandleGetLeaderboard)
	s.Router.GET(basePath+"/ws", chatHandler.HandleWebSocket)

	s.Router.Static("/uploads", s.Config.API.UploadDir)

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "DoubtLink API"
	docs.SwaggerInfo.Description = "Q&A mentoring platform connecting juniors with seniors."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
