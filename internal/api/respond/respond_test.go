package respond

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statLine struct {
	Points float64 `json:"pts"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestFresh(t *testing.T) {
	rec := httptest.NewRecorder()
	Fresh(rec, statLine{Points: 24.5})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"pts":24.5}`, rec.Body.String())
}

func TestFreshUnencodableValue(t *testing.T) {
	for name, v := range map[string]float64{
		"nan": math.NaN(),
		"inf": math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Fresh(rec, statLine{Points: v})

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			require.NotEmpty(t, rec.Body.Bytes())
			body := decodeError(t, rec)
			assert.Equal(t, "ENCODE_FAILED", body.Code)
			assert.Contains(t, body.Detail, "unsupported value")
		})
	}
}

func TestObjectUnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	Object(rec, http.StatusCreated, map[string]float64{"reb": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "ENCODE_FAILED", decodeError(t, rec).Code)
}

func TestObject(t *testing.T) {
	rec := httptest.NewRecorder()
	Object(rec, http.StatusCreated, map[string]int{"players": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"players":3}`, rec.Body.String())
}

func TestCached(t *testing.T) {
	rec := httptest.NewRecorder()
	Cached(rec, []byte(`{"ok":true}`), `"abc"`, 10*time.Minute, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"abc"`, rec.Header().Get("ETag"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "public, max-age=600, stale-while-revalidate=300", rec.Header().Get("Cache-Control"))
	assert.Equal(t, `{"ok":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Cached(rec, []byte(`{}`), `"abc"`, time.Minute, false)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
}

func TestNotModified(t *testing.T) {
	rec := httptest.NewRecorder()
	NotModified(rec, `"abc"`)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Equal(t, `"abc"`, rec.Header().Get("ETag"))
	assert.Empty(t, rec.Body.Bytes())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "UNKNOWN_PLAYER", "Player 9 not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	body := decodeError(t, rec)
	assert.Equal(t, "UNKNOWN_PLAYER", body.Code)
	assert.Equal(t, "Player 9 not found", body.Message)
	assert.Empty(t, body.Detail)
}
