package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	dateFormat        = "2006-01-02"
	displayDateFormat = "January 02, 2006"
)

// renderApology 以统一的道歉页返回用户可见的错误信息
func (a *API) renderApology(c *gin.Context, status int, message string) {
	c.HTML(status, "apology.html", gin.H{
		"title":    "出错了",
		"error":    message,
		"username": sessionUsername(c),
	})
}

func sessionUsername(c *gin.Context) string {
	session := sessions.Default(c)
	if name, ok := session.Get(sessionUsernameKey).(string); ok {
		return name
	}
	return ""
}

// NoCache 中间件确保响应不被缓存
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Expires", "0")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
