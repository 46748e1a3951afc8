package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/handler"
	"github.com/AlexZinkM/seed-wallet/internal/logger"
	"github.com/AlexZinkM/seed-wallet/internal/model"
	"github.com/AlexZinkM/seed-wallet/internal/session"
	"github.com/AlexZinkM/seed-wallet/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, logs *bytes.Buffer) http.Handler {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	h := handler.NewWalletHandler(handler.Deps{
		Store:  st,
		Vault:  crypto.NewVault(),
		Holder: session.NewHolder(),
	})
	return SetupRouter(h, logger.NewWithWriter("debug", logs))
}

func TestRouter_LockedWallet(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRouter(t, &logs)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wallet/balance", nil))

	assert.Equal(t, http.StatusLocked, rec.Code)
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, handler.CodeWalletLocked, body.Code)

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, logs.String(), id)
	assert.Contains(t, logs.String(), `"status":423`)
}

func TestRouter_UnlockWithoutWallet(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRouter(t, &logs)

	body := bytes.NewBufferString(`{"password":"super-secret-password"}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/wallet/unlock", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, logs.String(), "super-secret-password")
}

func TestRouter_Swagger(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRouter(t, &logs)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/wallet/unlock")

	var doc struct {
		Paths map[string]map[string]struct {
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	reset := doc.Paths["/wallet"]["delete"].Responses
	assert.Contains(t, reset, "200")
	assert.NotContains(t, reset, "404", "reset is idempotent")
}

func TestRequestID_KeepsValidIncoming(t *testing.T) {
	incoming := uuid.NewString()
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not a uuid\r\n")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not a uuid\r\n", seen)
}

func TestRecover(t *testing.T) {
	var logs bytes.Buffer
	log := zerolog.New(&logs)
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), Logging(log), Recover())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "boom")
}
