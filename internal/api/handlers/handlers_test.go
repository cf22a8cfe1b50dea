package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Conceptual-Machines/sightread-api/internal/config"
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/services"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:          "test",
		DefaultTimeSignature: "4/4",
		DefaultMeasures:      4,
		MaxMeasures:          8,
		CORSOrigins:          []string{"*"},
	}
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	router := gin.New()

	exerciseHandler := NewExerciseHandler(services.NewExerciseService(nil, nil, cfg.MaxMeasures), cfg)
	router.POST("/api/v1/exercises", exerciseHandler.Generate)
	router.GET("/api/v1/exercises/defaults", exerciseHandler.Defaults)
	router.GET("/api/v1/generations", exerciseHandler.ListGenerations)
	router.GET("/api/v1/scales/:voice", GetScale)
	router.GET("/api/v1/scales/:voice/window", GetWindow)

	healthHandler := NewHealthHandler(nil)
	router.GET("/health", healthHandler.HealthCheck)
	metricsHandler := NewMetricsHandler("test", nil)
	router.GET("/api/metrics", metricsHandler.GetMetrics)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateExercise(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/exercises", map[string]any{
		"time_signature":  "3/4",
		"num_measures":    2,
		"phrase_coherent": true,
		"seed":            11,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var exercise models.Exercise
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exercise))
	assert.Equal(t, int64(11), exercise.Seed)
	assert.Equal(t, 3, exercise.BeatsPerMeasure)
	assert.Equal(t, models.ModePhraseCoherent, exercise.Mode)
	assert.True(t, exercise.ShowTreble)
	assert.True(t, exercise.ShowBass)
	require.Len(t, exercise.Measures, 2)

	for _, m := range exercise.Measures {
		require.Equal(t, len(m.Treble), len(m.Bass))
		for i := range m.Treble {
			assert.Equal(t, m.Treble[i].Beats, m.Bass[i].Beats)
		}
	}
}

func TestGenerateExercise_SameSeedSameMeasures(t *testing.T) {
	router := setupTestRouter()
	body := map[string]any{"fully_independent": true, "seed": 5}

	var first, second models.Exercise
	require.NoError(t, json.Unmarshal(doRequest(t, router, http.MethodPost, "/api/v1/exercises", body).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(doRequest(t, router, http.MethodPost, "/api/v1/exercises", body).Body.Bytes(), &second))

	assert.Equal(t, models.ModeFullyIndependent, first.Mode)
	assert.Equal(t, first.Measures, second.Measures)
}

func TestGenerateExercise_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "zero measures", body: map[string]any{"num_measures": 0}},
		{name: "over limit", body: map[string]any{"num_measures": 9}},
		{name: "bad time signature", body: map[string]any{"time_signature": "waltz"}},
		{name: "negative range", body: map[string]any{"treble": map[string]any{"center": "c/4", "above": -1}}},
		{name: "wrong field type", body: map[string]any{"num_measures": "four"}},
	}

	router := setupTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/exercises", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestDefaults(t *testing.T) {
	w := doRequest(t, setupTestRouter(), http.MethodGet, "/api/v1/exercises/defaults", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp DefaultsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4/4", resp.TimeSignature)
	assert.Equal(t, 4, resp.NumMeasures)
	assert.Equal(t, theory.PitchName("c/4"), resp.Treble.Center)
	assert.Equal(t, theory.PitchName("c/3"), resp.Bass.Center)
	assert.Equal(t, 8, resp.MaxMeasures)
}

func TestGetScale(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/scales/bass", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, theory.Bass, resp.Voice)
	assert.Equal(t, theory.PitchName("d/3"), resp.Rest)
	require.Len(t, resp.Pitches, 15)
	assert.Equal(t, ScalePitch{Name: "e/2", MIDI: 40, Stem: "up"}, resp.Pitches[0])
	assert.Equal(t, ScalePitch{Name: "e/4", MIDI: 64, Stem: "down"}, resp.Pitches[14])

	w = doRequest(t, router, http.MethodGet, "/api/v1/scales/alto", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetWindow(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantFull  bool
		wantNames []theory.PitchName
	}{
		{
			name:      "centered window",
			path:      "/api/v1/scales/treble/window?center=c/4&above=2&below=1",
			wantCode:  http.StatusOK,
			wantNames: []theory.PitchName{"b/3", "c/4", "d/4", "e/4"},
		},
		{
			name:      "clipped at the top",
			path:      "/api/v1/scales/bass/window?center=d/4&above=5",
			wantCode:  http.StatusOK,
			wantNames: []theory.PitchName{"d/4", "e/4"},
		},
		{
			name:     "unknown center uses the full scale",
			path:     "/api/v1/scales/treble/window?center=c/8",
			wantCode: http.StatusOK,
			wantFull: true,
		},
		{name: "negative above", path: "/api/v1/scales/treble/window?center=c/4&above=-1", wantCode: http.StatusBadRequest},
		{name: "non numeric below", path: "/api/v1/scales/treble/window?center=c/4&below=x", wantCode: http.StatusBadRequest},
	}

	router := setupTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}

			var resp WindowResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantFull, resp.FullScale)
			if tt.wantFull {
				assert.Len(t, resp.Pitches, theory.ScaleFor(resp.Voice).Len())
				return
			}
			assert.Equal(t, tt.wantNames, resp.Pitches)
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"disabled"`)

	w = doRequest(t, router, http.MethodGet, "/api/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test", resp.Version)
	assert.Equal(t, false, resp.API["cloudwatch"])
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "5.00s", formatUptime(5_000_000_000))
	assert.Equal(t, "2m3.50s", formatUptime(123_500_000_000))
	assert.Equal(t, "1h0m0.00s", formatUptime(3_600_000_000_000))
}

func TestListGenerations(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantLimit int
	}{
		{name: "default limit", query: "", wantCode: http.StatusOK, wantLimit: 50},
		{name: "explicit limit", query: "?limit=5", wantCode: http.StatusOK, wantLimit: 5},
		{name: "capped limit", query: "?limit=10000", wantCode: http.StatusOK, wantLimit: 500},
		{name: "negative limit", query: "?limit=-1", wantCode: http.StatusBadRequest},
		{name: "non-numeric limit", query: "?limit=ten", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, "/api/v1/generations"+tt.query, nil)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}

			var resp GenerationsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantLimit, resp.Limit)
			assert.NotNil(t, resp.Generations)
			assert.Empty(t, resp.Generations)
		})
	}
}
