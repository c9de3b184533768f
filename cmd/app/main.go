package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cougcuts/cmd/fx/account_fx"
	"cougcuts/cmd/fx/config_fx"
	"cougcuts/cmd/fx/controllers_fx"
	"cougcuts/cmd/fx/dashboard"
	"cougcuts/cmd/fx/db_fx"
	"cougcuts/cmd/fx/document_fx"
	"cougcuts/cmd/fx/logger_fx"
	"cougcuts/cmd/fx/mail_fx"
	"cougcuts/cmd/fx/memcache_fx"
	"cougcuts/cmd/fx/product_fx"
	"cougcuts/cmd/fx/quiz_fx"
	_ "cougcuts/docs"
	"cougcuts/internal/api/controllers"
	"cougcuts/internal/config"
	"cougcuts/internal/services"
	"cougcuts/pkg/middleware"
	"cougcuts/pkg/utils"
)

// @title Coug Cuts Routine API
// @version 1.0
// @description Hair quiz, personalized routines and lead dashboard.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		document_fx.Module,
		quiz_fx.Module,
		product_fx.Module,
		account_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
	Signer *utils.JWTSigner

	QuizController      *controllers.QuizController
	ProductController   *controllers.ProductController
	AccountController   *controllers.AccountController
	DashboardController *controllers.DashboardController
	DocumentController  *controllers.DocumentController
}

func ProvideRouter(p routerParams) *gin.Engine {
	if !p.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger.Named("http")))
	r.Use(middleware.CORSMiddleware(p.Config.AllowedOrigins...))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	r.GET("/healthz", func(c *gin.Context) { utils.RespondSuccess(c, nil, "ok") })

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/questions", p.QuizController.GetQuestions)
	quizGroup.POST("/preview", p.QuizController.Preview)
	quizGroup.POST("/submit", p.QuizController.Submit)
	quizGroup.POST("/analytics", p.QuizController.RecordAnalytics)

	productsGroup := r.Group("/products")
	productsGroup.GET("", p.ProductController.ListProductsHandler)
	productsGroup.GET("/concerns", p.ProductController.ListConcernsHandler)
	productsGroup.GET("/:id", p.ProductController.GetProductHandler)

	r.GET(services.DocumentRoutePrefix+":token", p.DocumentController.Download)

	r.POST("/admin/login", p.AccountController.Login)

	dashboardGroup := r.Group("/dashboard",
		middleware.JWTAuthMiddleware(p.Signer),
		middleware.RoleMiddleware(utils.RoleAdmin))
	dashboardGroup.GET("/stats", p.DashboardController.GetDashboard)
	dashboardGroup.GET("/leads", p.DashboardController.ListLeads)
}
