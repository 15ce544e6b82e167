package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/andidevel/mireis/internal/models"
	"github.com/andidevel/mireis/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccountHandler serves the bank account pages. Every query is scoped
// to the session user; a record someone else owns is a 404, not a 403.
type AccountHandler struct {
	DB *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{DB: db}
}

// List renders the accounts owned by the session user.
func (h *AccountHandler) List(c *gin.Context) {
	user, _ := session.CurrentUser(c)

	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", user.ID).Find(&accounts).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "account-list.html", gin.H{
		"username": user.Username,
		"accounts": accounts,
		"notices":  session.PopNotices(c),
	})
}

// New renders an empty account form.
func (h *AccountHandler) New(c *gin.Context) {
	user, _ := session.CurrentUser(c)
	c.HTML(http.StatusOK, "edit-account.html", gin.H{
		"username": user.Username,
		"form": gin.H{
			"account_id":     "",
			"account_name":   "",
			"account_agency": "",
			"account_number": "",
		},
		"notices": session.PopNotices(c),
	})
}

// Edit renders the form pre-filled with an owned account.
func (h *AccountHandler) Edit(c *gin.Context) {
	user, _ := session.CurrentUser(c)

	account, ok := h.ownedAccount(c, user.ID)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "edit-account.html", gin.H{
		"username": user.Username,
		"form": gin.H{
			"account_id":     account.ID,
			"account_name":   account.Name,
			"account_agency": account.Agency,
			"account_number": account.Number,
		},
		"notices": session.PopNotices(c),
	})
}

// Save creates an account, or overwrites an owned one when the path
// carries a primary key. Redirects to the edit view of the saved record.
func (h *AccountHandler) Save(c *gin.Context) {
	user, _ := session.CurrentUser(c)

	var account models.Account
	if c.Param("id") != "" {
		owned, ok := h.ownedAccount(c, user.ID)
		if !ok {
			return
		}
		account = owned
	} else {
		account = models.Account{UserID: user.ID}
	}

	account.Name = c.PostForm("account_name")
	account.Agency = c.PostForm("account_agency")
	account.Number = c.PostForm("account_number")

	if err := h.DB.Save(&account).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	session.AddNotice(c, session.LevelSuccess, "Account save successfuly!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/edit-account/%d", account.ID))
}

// Delete removes an owned account. Transactions that referenced it keep
// existing with a NULL account.
func (h *AccountHandler) Delete(c *gin.Context) {
	user, _ := session.CurrentUser(c)

	account, ok := h.ownedAccount(c, user.ID)
	if !ok {
		return
	}

	if err := h.DB.Model(&models.Transaction{}).
		Where("account_id = ?", account.ID).
		Update("account_id", nil).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if err := h.DB.Delete(&account).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/account-list")
}

// ownedAccount loads the account addressed by the :id path parameter,
// answering 404 when it is missing, malformed or owned by someone else.
func (h *AccountHandler) ownedAccount(c *gin.Context, userID uint) (models.Account, bool) {
	pk, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Resource not found")
		c.Abort()
		return models.Account{}, false
	}

	var account models.Account
	err = h.DB.Where("user_id = ? AND id = ?", userID, pk).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Resource not found")
		} else {
			c.Status(http.StatusInternalServerError)
		}
		c.Abort()
		return models.Account{}, false
	}
	return account, true
}
