package router

import (
	"net/http"

	"github.com/andidevel/mireis/internal/config"
	"github.com/andidevel/mireis/internal/handler"
	"github.com/andidevel/mireis/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Setup configures the Gin engine, session store, templates and routes.
func Setup(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	maxAge := cfg.Session.MaxAgeHours
	if maxAge <= 0 {
		maxAge = 24 * 14
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	sessionName := cfg.Session.Name
	if sessionName == "" {
		sessionName = "mireis_session"
	}
	r.Use(sessions.Sessions(sessionName, store))

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	Routes(r, db)

	return r
}

// Routes registers every handler on the engine. Split from Setup so
// tests can mount the route table on their own engine.
func Routes(r *gin.Engine, db *gorm.DB) {
	authHandler := handler.NewAuthHandler(db)
	r.GET("/", authHandler.Index)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	pages := r.Group("", middleware.RequireUser())
	pages.GET("/journal", authHandler.Journal)

	accountHandler := handler.NewAccountHandler(db)
	pages.GET("/account-list", accountHandler.List)
	pages.GET("/add-account", accountHandler.New)
	pages.GET("/edit-account/:id", accountHandler.Edit)
	pages.POST("/save-account", accountHandler.Save)
	pages.POST("/save-account/:id", accountHandler.Save)
	pages.GET("/del-account/:id", accountHandler.Delete)

	transactionHandler := handler.NewTransactionHandler(db)
	data := r.Group("", middleware.RequireUserJSON())
	data.GET("/transaction/:id", transactionHandler.Get)
	data.POST("/save-transaction", transactionHandler.Save)
	data.POST("/save-transaction/:id", transactionHandler.Save)
}
