package text

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/text-students-api/internal/web"
)

func newRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer()
	require.NoError(t, err)
	return r
}

func postContent(t *testing.T, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	Analyze(newRenderer(t)).ServeHTTP(rec, req)
	return rec
}

func TestAnalyze_Form(t *testing.T) {
	rec := postContent(t, url.Values{"content": {"Hi! Go. Go?"}})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<td id="char-count">11</td>`)
	assert.Contains(t, body, `<td id="word-count">3</td>`)
	assert.Contains(t, body, `<td id="sentence-count">3</td>`)
	assert.Contains(t, body, `<td id="most-frequent">go (2)</td>`)
}

func TestAnalyze_FormEmptyContent(t *testing.T) {
	rec := postContent(t, url.Values{"content": {""}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<td id="char-count">0</td>`)
	assert.Contains(t, rec.Body.String(), `<td id="most-frequent">none</td>`)
}

func TestAnalyze_FormMissingContent(t *testing.T) {
	rec := postContent(t, url.Values{"other": {"x"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "field content is required")
}

func TestShowForm(t *testing.T) {
	rec := httptest.NewRecorder()
	ShowForm(newRenderer(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="content"`)
}

func TestAnalyzeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "counts",
			body:       `{"content":"cat cat dog dog"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"char_count":15,"word_count":4,"sentence_count":0,"most_frequent":"dog","freq":2}`,
		},
		{
			name:       "no letters",
			body:       `{"content":"123!!!"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"char_count":6,"word_count":1,"sentence_count":3,"most_frequent":"","freq":0}`,
		},
		{
			name:       "missing content",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"error","error":"field Content is required"}`,
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"error","error":"request body is empty"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			AnalyzeJSON().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/text/analyze", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
