package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/config"
	"github.com/mbolis/quick-form/model"
	"github.com/mbolis/quick-form/store"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, storePath string, fields ...model.Field) app.App {
	t.Helper()
	form, err := model.Build("Test Poll", "Send", fields)
	require.NoError(t, err)

	return app.App{
		Form:   form,
		Store:  store.New(storePath, store.DiscardCorrupt),
		Config: config.Config{Output: storePath},
	}
}

func postForm(handler http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/submit", strings.NewReader(values.Encode()))
	req.Header.Set("content-type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestGetFormPage(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "answers.json")
	handler := Wire(testApp(t, storePath,
		model.Field{Name: "mood", Title: "Mood", AnswerType: "select", Options: []string{"good", "bad"}},
	))

	req := httptest.NewRequest("GET", "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Header().Get("content-type"), "text/html")
	body := resp.Body.String()
	require.Contains(t, body, "Test Poll")
	require.Contains(t, body, `<select id="mood" name="mood">`)
}

func TestSubmitAppendsToStore(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "answers.json")
	a := testApp(t, storePath, model.Field{Name: "q1"})
	handler := Wire(a)

	resp := postForm(handler, url.Values{"q1": {"yes"}})
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Saved.")

	entries, err := a.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "yes", *entries[0].Answers["q1"])
}

func TestSubmitKeepsUndeclaredKeys(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "answers.json")
	a := testApp(t, storePath, model.Field{Name: "q1"})
	handler := Wire(a)

	resp := postForm(handler, url.Values{"q1": {"  "}, "extra": {"hi"}})
	require.Equal(t, http.StatusOK, resp.Code)

	entries, err := a.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Nil(t, entries[0].Answers["q1"])
	require.Equal(t, "hi", *entries[0].Answers["extra"])
}

func TestSubmitStoreErrorIsIsolated(t *testing.T) {
	// point the store at a directory: reads fail, but the form keeps serving
	a := testApp(t, t.TempDir(), model.Field{Name: "q1"})
	handler := Wire(a)

	resp := postForm(handler, url.Values{"q1": {"yes"}})
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	req := httptest.NewRequest("GET", "/", nil)
	getResp := httptest.NewRecorder()
	handler.ServeHTTP(getResp, req)
	require.Equal(t, http.StatusOK, getResp.Code)
}

func TestListSubmissions(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "answers.json")
	a := testApp(t, storePath, model.Field{Name: "q1"})
	handler := Wire(a)

	postForm(handler, url.Values{"q1": {"first"}})
	postForm(handler, url.Values{"q1": {"second"}})

	req := httptest.NewRequest("GET", "/api/submissions", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Header().Get("content-type"), "application/json")

	var entries []model.Submission
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "first", *entries[0].Answers["q1"])
	require.Equal(t, "second", *entries[1].Answers["q1"])
}

func TestListSubmissionsEmptyStore(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "answers.json")
	handler := Wire(testApp(t, storePath, model.Field{Name: "q1"}))

	req := httptest.NewRequest("GET", "/api/submissions", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "[]\n", resp.Body.String())
}
