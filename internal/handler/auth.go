package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/andidevel/mireis/internal/models"
	"github.com/andidevel/mireis/internal/session"
	"github.com/andidevel/mireis/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves the public pages and the register/login/logout flow.
type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// Index renders the landing page with any pending notices.
func (h *AuthHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"notices": session.PopNotices(c),
	})
}

// RegisterForm renders the empty registration form.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"notices": session.PopNotices(c),
	})
}

// Register creates a new user from the registration form. Any
// validation failure queues an error notice and sends the client back
// to the form with nothing preserved.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	passwordAgain := c.PostForm("password_again")

	if !util.ValidateEmail(username) {
		session.AddNotice(c, session.LevelError, fmt.Sprintf("%s is not a valid e-mail!", username))
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if password == "" || password != passwordAgain {
		session.AddNotice(c, session.LevelError, "Password does not match!")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	username = strings.ToLower(username)

	var existing models.User
	err := h.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		session.AddNotice(c, session.LevelError, fmt.Sprintf("%s already exists. Try another e-mail!", username))
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	digest, err := util.HashPassword(password)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	user := models.User{Username: username, Password: digest}
	if err := h.DB.Create(&user).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := session.SetUser(c, user.ID, user.Username); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/journal")
}

// Login authenticates a user. The failure notice never tells whether
// the username exists.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user models.User
	err := h.DB.Where("username = ?", username).First(&user).Error
	if err == nil && util.CheckPassword(password, user.Password) {
		if err := session.SetUser(c, user.ID, user.Username); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Redirect(http.StatusFound, "/journal")
		return
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	session.AddNotice(c, session.LevelError, "User and/or password invalid!")
	c.Redirect(http.StatusFound, "/")
}

// Logout invalidates the session. Idempotent for anonymous clients.
func (h *AuthHandler) Logout(c *gin.Context) {
	_ = session.Logout(c)
	c.Redirect(http.StatusFound, "/")
}

// Journal renders the journal landing page.
func (h *AuthHandler) Journal(c *gin.Context) {
	user, _ := session.CurrentUser(c)
	c.HTML(http.StatusOK, "journal.html", gin.H{
		"username": user.Username,
		"notices":  session.PopNotices(c),
	})
}
