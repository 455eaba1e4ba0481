package router

import (
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/risewell/internal/config"
	"github.com/risewell/internal/db"
	"github.com/risewell/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("risewell_session", store))
	r.Use(handler.NoCache())

	// 加载模板与静态文件；测试环境下可能没有模板文件
	glob := cfg.TemplateGlob
	if glob == "" {
		glob = "web/template/*.html"
	}
	if matches, err := filepath.Glob(glob); err == nil && len(matches) > 0 {
		r.LoadHTMLGlob(glob)
	}
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	api := handler.NewAPI(db.DB)

	r.GET("/register", api.ShowRegisterPage)
	r.POST("/register", api.Register)
	r.GET("/login", api.ShowLoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)

	// 需要认证的日常路由
	auth := r.Group("")
	auth.Use(handler.AuthRequired())
	{
		auth.GET("/", api.ShowMorning)
		auth.GET("/evening", api.ShowEvening)
		auth.POST("/addstep", api.AddStep)
		auth.POST("/gratitudeEntry", api.AddGratitude)
		auth.POST("/dailyEntry", api.SetDailyMood)
		auth.POST("/delete", api.DeleteItem)
		auth.GET("/dailyHistory", api.ShowDailyHistory)
		auth.GET("/gratitudeHistory", api.ShowGratitudeHistory)
		auth.GET("/resetLogin", api.ShowResetLogin)
		auth.POST("/resetPassword", api.ResetPassword)
		auth.POST("/resetUsername", api.ResetUsername)
	}

	return r
}
