package handler

import (
	"net/http"
	"net/url"
	"testing"
)

func TestResetPasswordFlow(t *testing.T) {
	r, _ := setupHandlerTest(t)
	cookies := registerUser(t, r, "alice", "pw1")

	// 缺少字段
	w := postForm(t, r, "/resetPassword", url.Values{"old_password": {"pw1"}}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}

	// 新密码确认不一致
	w = postForm(t, r, "/resetPassword", url.Values{
		"old_password":     {"pw1"},
		"old_confirmation": {"pw1"},
		"new_password":     {"pw2"},
		"new_confirmation": {"pw3"},
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for mismatched confirmation, got %d", w.Code)
	}

	// 旧密码错误
	w = postForm(t, r, "/resetPassword", url.Values{
		"old_password":     {"wrong"},
		"old_confirmation": {"wrong"},
		"new_password":     {"pw2"},
		"new_confirmation": {"pw2"},
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong old password, got %d", w.Code)
	}

	w = postForm(t, r, "/resetPassword", url.Values{
		"old_password":     {"pw1"},
		"old_confirmation": {"pw1"},
		"new_password":     {"pw2"},
		"new_confirmation": {"pw2"},
	}, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after reset, got %d", w.Code)
	}

	// 新密码可以登录，旧密码不行
	w = postForm(t, r, "/login", url.Values{"username": {"alice"}, "password": {"pw1"}}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected old password to be rejected, got %d", w.Code)
	}
	w = postForm(t, r, "/login", url.Values{"username": {"alice"}, "password": {"pw2"}}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected new password to work, got %d", w.Code)
	}
}

func TestResetUsernameFlow(t *testing.T) {
	r, _ := setupHandlerTest(t)
	registerUser(t, r, "bob", "pw2")
	cookies := registerUser(t, r, "alice", "pw1")

	// 输入的当前用户名与会话身份不一致
	w := postForm(t, r, "/resetUsername", url.Values{
		"current_username": {"someone"},
		"new_username":     {"alice2"},
		"password":         {"pw1"},
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong current username, got %d", w.Code)
	}

	// 新用户名已被占用
	w = postForm(t, r, "/resetUsername", url.Values{
		"current_username": {"alice"},
		"new_username":     {"bob"},
		"password":         {"pw1"},
	}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", w.Code)
	}

	w = postForm(t, r, "/resetUsername", url.Values{
		"current_username": {"alice"},
		"new_username":     {"alice2"},
		"password":         {"pw1"},
	}, cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after rename, got %d", w.Code)
	}

	w = postForm(t, r, "/login", url.Values{"username": {"alice2"}, "password": {"pw1"}}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected new username to authenticate, got %d", w.Code)
	}
}
