package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/risewell/internal/service"
)

// ShowResetLogin 渲染账号信息修改页面
func (a *API) ShowResetLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "reset_login.html", gin.H{
		"title":    "修改账号信息",
		"username": sessionUsername(c),
	})
}

// ResetPassword 校验旧密码及两组确认后更新密码
func (a *API) ResetPassword(c *gin.Context) {
	oldPassword := c.PostForm("old_password")
	oldConfirmation := c.PostForm("old_confirmation")
	newPassword := c.PostForm("new_password")
	newConfirmation := c.PostForm("new_confirmation")

	switch {
	case oldPassword == "" || oldConfirmation == "" || newPassword == "" || newConfirmation == "":
		a.renderApology(c, http.StatusBadRequest, "请填写所有字段")
		return
	case oldPassword != oldConfirmation:
		a.renderApology(c, http.StatusBadRequest, "旧密码两次输入不一致")
		return
	case newPassword != newConfirmation:
		a.renderApology(c, http.StatusBadRequest, "新密码两次输入不一致")
		return
	}

	if err := a.accounts.ChangePassword(currentUserID(c), oldPassword, newPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			a.renderApology(c, http.StatusBadRequest, "旧密码不正确")
			return
		}
		a.renderApology(c, http.StatusInternalServerError, "修改密码失败")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ResetUsername 校验当前用户名与密码后更新用户名
func (a *API) ResetUsername(c *gin.Context) {
	currentUsername := strings.TrimSpace(c.PostForm("current_username"))
	newUsername := strings.TrimSpace(c.PostForm("new_username"))
	password := c.PostForm("password")

	if currentUsername == "" || newUsername == "" || password == "" {
		a.renderApology(c, http.StatusBadRequest, "请填写所有字段")
		return
	}

	// 输入的当前用户名必须与会话中的身份一致，错误提示与密码错误保持一致
	if currentUsername != sessionUsername(c) {
		a.renderApology(c, http.StatusBadRequest, "用户名或密码错误")
		return
	}

	if err := a.accounts.ChangeUsername(currentUserID(c), newUsername, password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			a.renderApology(c, http.StatusBadRequest, "用户名或密码错误")
		case errors.Is(err, service.ErrDuplicateUsername):
			a.renderApology(c, http.StatusBadRequest, "用户名已被占用，请换一个")
		default:
			a.renderApology(c, http.StatusInternalServerError, "修改用户名失败")
		}
		return
	}

	// 会话中缓存的用户名同步更新
	session := sessions.Default(c)
	session.Set(sessionUsernameKey, newUsername)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}
