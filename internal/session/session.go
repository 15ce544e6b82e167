// Package session wraps the cookie session with typed access to the
// logged-in user and the one-shot notices shown on the next page.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyUserID   = "user_id"
	keyUsername = "username"
)

// Notice severity levels, also used as flash keys inside the session.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelSuccess = "success"
)

var levels = []string{LevelError, LevelWarning, LevelSuccess}

// User is the identity stored in the session after login.
type User struct {
	ID       uint
	Username string
}

// Notice is a one-shot message queued for the next rendered page.
type Notice struct {
	Level   string
	Message string
}

// CurrentUser returns the logged-in user, if any.
func CurrentUser(c *gin.Context) (User, bool) {
	s := sessions.Default(c)
	id, ok := s.Get(keyUserID).(uint)
	if !ok || id == 0 {
		return User{}, false
	}
	username, _ := s.Get(keyUsername).(string)
	return User{ID: id, Username: username}, true
}

// SetUser marks the session as authenticated.
func SetUser(c *gin.Context, id uint, username string) error {
	s := sessions.Default(c)
	s.Set(keyUserID, id)
	s.Set(keyUsername, username)
	return s.Save()
}

// Logout removes the user from the session and invalidates it. Safe to
// call on an anonymous session.
func Logout(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(keyUserID)
	s.Delete(keyUsername)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}

// AddNotice queues a notice for the next rendered page.
func AddNotice(c *gin.Context, level, message string) {
	s := sessions.Default(c)
	s.AddFlash(message, level)
	_ = s.Save()
}

// PopNotices drains all queued notices, oldest first per level.
func PopNotices(c *gin.Context) []Notice {
	s := sessions.Default(c)
	var notices []Notice
	for _, level := range levels {
		for _, f := range s.Flashes(level) {
			if msg, ok := f.(string); ok {
				notices = append(notices, Notice{Level: level, Message: msg})
			}
		}
	}
	// flashes are consumed only once the session is saved
	_ = s.Save()
	return notices
}
