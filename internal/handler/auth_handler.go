package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/risewell/internal/db"
	"github.com/risewell/internal/service"
)

// 会话中缓存的身份字段
const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
)

// ShowRegisterPage 渲染注册页面
func (a *API) ShowRegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"title": "注册"})
}

// Register 处理注册：字段齐全、两次密码一致、用户名未被占用，成功后直接建立会话
func (a *API) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	confirmation := c.PostForm("confirmation")

	switch {
	case username == "":
		a.renderApology(c, http.StatusBadRequest, "请填写用户名")
		return
	case password == "":
		a.renderApology(c, http.StatusBadRequest, "请填写密码")
		return
	case confirmation == "":
		a.renderApology(c, http.StatusBadRequest, "请再次确认密码")
		return
	case password != confirmation:
		a.renderApology(c, http.StatusBadRequest, "两次输入的密码不一致")
		return
	}

	user, err := a.accounts.Register(username, password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			a.renderApology(c, http.StatusBadRequest, "用户名已被占用，请换一个")
			return
		}
		a.renderApology(c, http.StatusInternalServerError, "注册失败，请稍后再试")
		return
	}

	if !a.establishSession(c, user) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowLoginPage 渲染登录页面，进入时清空旧会话
func (a *API) ShowLoginPage(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.HTML(http.StatusOK, "login.html", gin.H{"title": "登录"})
}

// Login 处理用户登录请求
func (a *API) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" {
		a.renderApology(c, http.StatusBadRequest, "请填写用户名")
		return
	}
	if password == "" {
		a.renderApology(c, http.StatusBadRequest, "请填写密码")
		return
	}

	user, err := a.accounts.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			a.renderApology(c, http.StatusUnauthorized, "用户名或密码错误")
			return
		}
		a.renderApology(c, http.StatusInternalServerError, "登录失败，请稍后再试")
		return
	}

	if !a.establishSession(c, user) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}

// establishSession 将用户身份写入会话
func (a *API) establishSession(c *gin.Context, user *db.User) bool {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		a.renderApology(c, http.StatusInternalServerError, "会话保存失败")
		return false
	}
	return true
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUserID 返回会话中的用户 ID，未登录时为 0
func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionUserIDKey).(uint); ok {
		return id
	}
	return 0
}
