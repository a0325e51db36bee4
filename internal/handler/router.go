package handler

import (
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"todoapp/internal/middleware"
	"todoapp/internal/session"
	"todoapp/internal/view"
)

type RouterDeps struct {
	Auth           *AuthHandler
	Todos          *TodoHandler
	Sessions       *session.Manager
	EnableRegister bool
	LoginRateLimit time.Duration
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tmpl)

	limit := middleware.RateLimit(deps.LoginRateLimit)
	engine.GET("/login", deps.Auth.LoginPage)
	engine.POST("/login", limit, deps.Auth.Login)
	engine.POST("/logout", deps.Auth.Logout)
	if deps.EnableRegister {
		engine.GET("/register", deps.Auth.RegisterPage)
		engine.POST("/register", limit, deps.Auth.Register)
	}

	pages := engine.Group("", middleware.SessionAuth(deps.Sessions, middleware.ModeRedirect))
	pages.GET("/", deps.Todos.Index)

	tasks := engine.Group("/task", middleware.SessionAuth(deps.Sessions, middleware.ModeReject))
	tasks.POST("/submit", deps.Todos.Submit)
	tasks.GET("/search", deps.Todos.Search)
	tasks.GET("/:id/edit", deps.Todos.Edit)
	tasks.PATCH("/:id/update", deps.Todos.Update)
	tasks.DELETE("/:id", deps.Todos.Delete)

	return engine, nil
}
