package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"agendai/config"
	dbpkg "agendai/db"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestApp monta um engine com as mesmas rotas do router. O router não pode
// ser importado aqui (ciclo), então o registro é manual, incluindo um guard de
// admin equivalente ao Adminizer.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	dbpkg.Migrate(db)

	cfg = config.Configuration{}
	completer = nil

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(db))

	auth := r.Group("/auth")
	auth.POST("/signup", SignUp)
	auth.POST("/signin", SignIn)
	auth.POST("/forgot-password", ForgotPassword)
	auth.POST("/validate-token", ValidateResetToken)
	auth.POST("/reset-password", ResetPassword)

	authed := r.Group("/")
	authed.Use(AuthRequired())
	authed.GET("/user/me", Me)
	authed.PUT("/user/me", UpdateMe)
	authed.DELETE("/user/me", DeleteMe)
	authed.POST("/tasks", CreateTask)
	authed.GET("/tasks", ListTasks)
	authed.GET("/tasks/:id", GetTask)
	authed.PUT("/tasks/:id", UpdateTask)
	authed.DELETE("/tasks/:id", DeleteTask)
	authed.POST("/agent/schedule", AgentSchedule)

	admin := r.Group("/admin")
	admin.Use(AuthRequired(), func(c *gin.Context) {
		user, ok := GetUserLogged(c)
		if !ok {
			RespondError(c, "Acesso negado", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			RespondError(c, "Permissão insuficiente", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	})
	admin.GET("/users/:id", AdminGetUser)
	admin.PUT("/users/:id", AdminUpdateUser)
	admin.DELETE("/users/:id", AdminDeleteUser)

	return r, db
}

func doJSON(t *testing.T, r http.Handler, method string, path string, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const testPassword = "senha123"

// signup cria uma conta e devolve token + id.
func signup(t *testing.T, r http.Handler, name string, email string) (string, int64) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	user, _ := body["user"].(map[string]any)
	require.NotNil(t, user)
	id := int64(user["id"].(float64))
	return token, id
}
