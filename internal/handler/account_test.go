package handler_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/andidevel/mireis/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveAccount(c *client, name, agency, number string) {
	w := c.post("/save-account", url.Values{
		"account_name":   {name},
		"account_agency": {agency},
		"account_number": {number},
	})
	require.Equal(c.t, http.StatusFound, w.Code)
}

func TestAccountCreate(t *testing.T) {
	engine, db := setupEnv(t)
	c := newClient(t, engine)
	c.register("user@test.app", "secret-1234")

	w := c.post("/save-account", url.Values{
		"account_name":   {"Checking"},
		"account_agency": {"0001"},
		"account_number": {"12345-6"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	var account models.Account
	require.NoError(t, db.First(&account).Error)
	assert.Equal(t, "Checking", account.Name)
	assert.Equal(t, "0001", account.Agency)
	assert.Equal(t, "12345-6", account.Number)
	assert.Equal(t, fmt.Sprintf("/edit-account/%d", account.ID), w.Header().Get("Location"))

	// redirect target renders the saved account with a success notice
	w = c.get("/account-list")
	assert.Contains(t, w.Body.String(), "(Checking)")
	assert.Contains(t, w.Body.String(), "[success: Account save successfuly!]")
}

func TestAccountEditOverwrites(t *testing.T) {
	engine, db := setupEnv(t)
	c := newClient(t, engine)
	c.register("user@test.app", "secret-1234")
	saveAccount(c, "Checking", "0001", "12345-6")

	var account models.Account
	require.NoError(t, db.First(&account).Error)

	w := c.post(fmt.Sprintf("/save-account/%d", account.ID), url.Values{
		"account_name":   {"Savings"},
		"account_agency": {"0002"},
		"account_number": {"99999-9"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	require.NoError(t, db.First(&account, account.ID).Error)
	assert.Equal(t, "Savings", account.Name)
	assert.Equal(t, "0002", account.Agency)
	assert.Equal(t, "99999-9", account.Number)
}

func TestAccountListIsolation(t *testing.T) {
	engine, _ := setupEnv(t)

	alice := newClient(t, engine)
	alice.register("alice@test.app", "secret-1234")
	bob := newClient(t, engine)
	bob.register("bob@test.app", "secret-1234")

	saveAccount(alice, "Alice Checking", "0001", "1")
	saveAccount(bob, "Bob Checking", "0001", "2")
	saveAccount(alice, "Alice Savings", "0001", "3")

	w := alice.get("/account-list")
	assert.Contains(t, w.Body.String(), "(Alice Checking)")
	assert.Contains(t, w.Body.String(), "(Alice Savings)")
	assert.NotContains(t, w.Body.String(), "Bob")

	w = bob.get("/account-list")
	assert.Contains(t, w.Body.String(), "(Bob Checking)")
	assert.NotContains(t, w.Body.String(), "Alice")
}

func TestAccountForeignAccessIs404(t *testing.T) {
	engine, db := setupEnv(t)

	alice := newClient(t, engine)
	alice.register("alice@test.app", "secret-1234")
	saveAccount(alice, "Alice Checking", "0001", "1")

	var account models.Account
	require.NoError(t, db.First(&account).Error)

	bob := newClient(t, engine)
	bob.register("bob@test.app", "secret-1234")

	assert.Equal(t, http.StatusNotFound, bob.get(fmt.Sprintf("/edit-account/%d", account.ID)).Code)
	assert.Equal(t, http.StatusNotFound, bob.get(fmt.Sprintf("/del-account/%d", account.ID)).Code)
	w := bob.post(fmt.Sprintf("/save-account/%d", account.ID), url.Values{
		"account_name": {"hijacked"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// untouched
	require.NoError(t, db.First(&account, account.ID).Error)
	assert.Equal(t, "Alice Checking", account.Name)
}

func TestAccountDelete(t *testing.T) {
	engine, db := setupEnv(t)
	c := newClient(t, engine)
	c.register("user@test.app", "secret-1234")
	saveAccount(c, "Checking", "0001", "1")

	var account models.Account
	require.NoError(t, db.First(&account).Error)

	// a transaction pointing at the account keeps existing after the
	// delete, with its account reference set to NULL
	w := c.post("/save-transaction", url.Values{
		"date":        {"2024-01-01"},
		"description": {"Groceries"},
		"amount":      {"120.15"},
		"checked":     {"0"},
		"account_id":  {fmt.Sprintf("%d", account.ID)},
	})
	env := parseEnvelope(t, w)
	require.Empty(t, env.ErrorMessage)

	w = c.get(fmt.Sprintf("/del-account/%d", account.ID))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/account-list", w.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, c.get(fmt.Sprintf("/edit-account/%d", account.ID)).Code)

	var tx models.Transaction
	require.NoError(t, db.First(&tx).Error)
	assert.Nil(t, tx.AccountID)
}

func TestAccountSaveWithoutPostIs404(t *testing.T) {
	engine, _ := setupEnv(t)
	c := newClient(t, engine)
	c.register("user@test.app", "secret-1234")

	assert.Equal(t, http.StatusNotFound, c.get("/save-account").Code)
}
