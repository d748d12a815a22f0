package tasks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"focusdeck/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Task{}))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(auth.LocalsKey, "owner-1")
		return c.Next()
	})
	NewHandler(NewService(db, zap.NewNop())).RegisterRoutes(app)
	return app
}

func syncRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/tasks/sync", bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestHandleSync_CreateAndList(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(syncRequest(`{"creates":[{"clientId":"c1","title":"Buy milk"}]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Created []struct {
			Record   Task   `json:"record"`
			ClientID string `json:"clientId"`
		} `json:"created"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Created, 1)
	assert.Equal(t, "c1", result.Created[0].ClientID)
	assert.Equal(t, "Buy milk", result.Created[0].Record.Title)
	assert.NotEmpty(t, result.Created[0].Record.ID)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/tasks/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Buy milk", listed[0].Title)
}

func TestHandleSync_ValidationFailure(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(syncRequest(`{"creates":[{"title":"   "}]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleSync_MalformedBody(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(syncRequest(`{"creates": not json`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleSync_DeleteHidesFromList(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(syncRequest(`{"creates":[{"clientId":"c1","title":"temp"}],"deletes":[{"clientId":"c1"}]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/tasks/", nil))
	require.NoError(t, err)

	var listed []Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Empty(t, listed)
}
