package http

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	localCache "github.com/emberlight/chronicle/pkg/internal/cache"
	"github.com/emberlight/chronicle/pkg/internal/database"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	pages   *services.PageCache
	private ed25519.PrivateKey
}

func newTestEnv(t *testing.T, ttl time.Duration) *testEnv {
	t.Helper()

	viper.Set("security.login_url", "/login")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	store, err := localCache.NewStore()
	require.NoError(t, err)
	pages := services.NewPageCache(store, ttl)

	return &testEnv{
		app:     NewServer(db, services.NewTokenReaderFromKey(public), pages),
		db:      db,
		pages:   pages,
		private: private,
	}
}

func (e *testEnv) token(t *testing.T, name string, admin bool) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, services.LoginClaims{
		Name:  name,
		Nick:  name,
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(e.private)
	require.NoError(t, err)

	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body *strings.Reader, contentType string) *stdhttp.Response {
	t.Helper()

	var req *stdhttp.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set(fiber.HeaderContentType, contentType)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if len(token) > 0 {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func (e *testEnv) get(t *testing.T, path, token string) *stdhttp.Response {
	return e.request(t, stdhttp.MethodGet, path, token, nil, "")
}

func (e *testEnv) postForm(t *testing.T, path, token string, values url.Values) *stdhttp.Response {
	return e.request(t, stdhttp.MethodPost, path, token, formReader(values), formContentType)
}

const formContentType = fiber.MIMEApplicationForm

func formReader(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}
