package handler_test

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/andidevel/mireis/internal/database"
	"github.com/andidevel/mireis/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Templates are stubbed: page tests assert on markers and notice dumps,
// not markup.
const testTemplates = `
{{define "index.html"}}{{range .notices}}[{{.Level}}: {{.Message}}]{{end}}index{{end}}
{{define "register.html"}}{{range .notices}}[{{.Level}}: {{.Message}}]{{end}}register{{end}}
{{define "journal.html"}}journal:{{.username}}{{end}}
{{define "account-list.html"}}{{range .notices}}[{{.Level}}: {{.Message}}]{{end}}{{range .accounts}}({{.Name}}){{end}}{{end}}
{{define "edit-account.html"}}form:{{.form.account_name}}{{end}}
`

func setupEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("mireis_session", store))
	r.SetHTMLTemplate(template.Must(template.New("t").Parse(testTemplates)))
	router.Routes(r, db)

	return r, db
}

// client replays session cookies across requests, like a browser would.
type client struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, engine *gin.Engine) *client {
	return &client{t: t, engine: engine, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return w
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, form)
}

func (c *client) register(username, password string) *httptest.ResponseRecorder {
	return c.post("/register", url.Values{
		"username":       {username},
		"password":       {password},
		"password_again": {password},
	})
}

func (c *client) login(username, password string) *httptest.ResponseRecorder {
	return c.post("/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

type envelope struct {
	ErrorMessage string                   `json:"error_message"`
	Data         []map[string]interface{} `json:"data"`
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
