package handler

import (
	"errors"
	"strconv"

	"github.com/andidevel/mireis/internal/models"
	"github.com/andidevel/mireis/internal/session"
	"github.com/andidevel/mireis/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionHandler serves the JSON transaction endpoints. Every
// response uses the {error_message, data} envelope with HTTP 200;
// failures are reported in error_message.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// Get fetches one owned transaction as a single-row data array.
func (h *TransactionHandler) Get(c *gin.Context) {
	user, _ := session.CurrentUser(c)

	tx, ok := h.ownedTransaction(c, user.ID)
	if !ok {
		return
	}
	util.JSONRows(c, []map[string]interface{}{util.RowToMap(tx)})
}

// Save creates a transaction, or overwrites an owned one when the path
// carries a primary key. The documented fields (date, description,
// amount, checked, account) are always written as a whole; malformed
// input is reported in the envelope instead of failing the request.
func (h *TransactionHandler) Save(c *gin.Context) {
	user, _ := session.CurrentUser(c)

	var tx models.Transaction
	if c.Param("id") != "" {
		owned, ok := h.ownedTransaction(c, user.ID)
		if !ok {
			return
		}
		tx = owned
	} else {
		tx = models.Transaction{UserID: user.ID}
	}

	date, err := util.ValidateDate(c.PostForm("date"))
	if err != nil {
		util.JSONError(c, "Invalid date! Use the YYYY-MM-DD format")
		return
	}

	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil {
		util.JSONError(c, "Invalid amount!")
		return
	}

	checked, err := strconv.ParseInt(c.PostForm("checked"), 10, 16)
	if err != nil {
		util.JSONError(c, "Invalid checked flag!")
		return
	}

	accountID, ok := h.resolveAccount(c, user.ID)
	if !ok {
		return
	}

	tx.Date = date
	tx.Description = c.PostForm("description")
	tx.Amount = amount
	tx.Checked = int16(checked)
	tx.AccountID = accountID

	if err := h.DB.Save(&tx).Error; err != nil {
		util.JSONError(c, "Could not save transaction")
		return
	}
	util.JSONRows(c, []map[string]interface{}{util.RowToMap(tx)})
}

// resolveAccount parses the optional account_id field and checks the
// account belongs to the session user. A transaction may never point at
// someone else's account.
func (h *TransactionHandler) resolveAccount(c *gin.Context, userID uint) (*uint, bool) {
	raw := c.PostForm("account_id")
	if raw == "" {
		return nil, true
	}

	pk, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		util.JSONError(c, "Invalid account!")
		return nil, false
	}

	var count int64
	if err := h.DB.Model(&models.Account{}).
		Where("user_id = ? AND id = ?", userID, pk).
		Count(&count).Error; err != nil {
		util.JSONError(c, "Could not save transaction")
		return nil, false
	}
	if count == 0 {
		util.JSONError(c, "Account not found")
		return nil, false
	}

	id := uint(pk)
	return &id, true
}

func (h *TransactionHandler) ownedTransaction(c *gin.Context, userID uint) (models.Transaction, bool) {
	pk, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		util.JSONError(c, "Transaction not found")
		c.Abort()
		return models.Transaction{}, false
	}

	var tx models.Transaction
	err = h.DB.Where("user_id = ? AND id = ?", userID, pk).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.JSONError(c, "Transaction not found")
		} else {
			util.JSONError(c, "Could not load transaction")
		}
		c.Abort()
		return models.Transaction{}, false
	}
	return tx, true
}
