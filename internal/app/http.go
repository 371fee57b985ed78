package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/auth/credentials"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/auth/handler"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/auth/provider"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/auth/provider/google"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/config"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/logger"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/middleware"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/movie"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	credentialService := credentials.NewService(infra.Users)

	var oauthProviders []provider.OAuthProvider
	if cfg.GoogleClientID != "" {
		googleProvider, err := google.New(
			ctx,
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
		)
		if err != nil {
			return nil, nil, err
		}
		oauthProviders = append(oauthProviders, googleProvider)
	} else {
		logger.Warn("google oauth not configured, /auth/google disabled", nil)
	}

	registry := provider.NewRegistry(oauthProviders...)

	authHandler := handler.NewHandler(
		registry,
		infra.Sessions,
		credentialService,
		cfg.SessionTTL,
	)

	movieClient := movie.NewClient(cfg.OMDBBaseURL, cfg.OMDBAPIKey)
	movieHandler := movie.NewHandler(movieClient)

	authMiddleware := middleware.NewAuthMiddleware(infra.Sessions)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)
	movieHandler.RegisterRoutes(router)

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", nil)
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Web Routes
	// ----------------------------

	web := router.Group("/")
	web.Use(middleware.GinRequireAuth(authMiddleware))

	web.GET("/userpage", func(c *gin.Context) {
		claims, _ := middleware.ClaimsFromContext(c.Request.Context())
		c.HTML(http.StatusOK, "userpage.html", gin.H{
			"Username": claims.Username,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, infra.Close, nil
}
