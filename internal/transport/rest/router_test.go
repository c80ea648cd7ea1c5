package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certpoints/internal/dedupe"
	"certpoints/internal/model"
	"certpoints/internal/points"
	"certpoints/internal/repository/memory"
	"certpoints/internal/service"
	"certpoints/internal/transport/ws"
)

type staticOCR string

func (o staticOCR) Process(_ context.Context, _ string, image io.Reader) (model.ExtractedRecord, error) {
	_, _ = io.Copy(io.Discard, image)
	return model.ExtractedRecord{RawText: string(o)}, nil
}

type apiFixture struct {
	t   *testing.T
	srv *httptest.Server
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	files, err := service.NewFileStore(t.TempDir(), 1<<20)
	require.NoError(t, err)

	users := &memory.UserRepo{}
	authSvc := service.NewAuthService(users, "test-secret", time.Hour)
	catalogSvc := service.NewCatalogService(&memory.ActivityRepo{}, nil, nil)
	certSvc := service.NewCertificateService(
		&memory.CertificateRepo{}, users, nil,
		staticOCR("This is to certify that John Smith has completed a course on NPTEL titled Data Structures"),
		service.NewEntityService(nil, model.StandardDefaults, nil),
		points.NewEngine(catalogSvc, points.DefaultPolicy(), nil),
		dedupe.NewMatcher(dedupe.DefaultWeights),
		files, nil,
	)
	hub := ws.NewHub()
	t.Cleanup(hub.Close)
	certSvc.SetBroadcaster(hub)

	srv := httptest.NewServer(NewRouter(&Container{
		AuthService:        authSvc,
		CatalogService:     catalogSvc,
		CertificateService: certSvc,
		WSHub:              hub,
		MaxUploadBytes:     1 << 20,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}))
	t.Cleanup(srv.Close)
	return &apiFixture{t: t, srv: srv}
}

func (a *apiFixture) do(method, path, token string, body io.Reader, contentType string) (*http.Response, map[string]interface{}) {
	a.t.Helper()
	req, err := http.NewRequest(method, a.srv.URL+path, body)
	require.NoError(a.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	var out map[string]interface{}
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func (a *apiFixture) json(method, path, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	a.t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(a.t, err)
	return a.do(method, path, token, bytes.NewReader(data), "application/json")
}

func (a *apiFixture) list(path, token string) []interface{} {
	a.t.Helper()
	req, err := http.NewRequest(http.MethodGet, a.srv.URL+path, nil)
	require.NoError(a.t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	require.Equal(a.t, http.StatusOK, resp.StatusCode)

	var out []interface{}
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (a *apiFixture) register(name, email string, role model.Role, class string) string {
	a.t.Helper()
	resp, body := a.json(http.MethodPost, "/v1/auth/register", "", model.RegisterRequest{
		Name: name, Email: email, Password: "hunter22", Role: role, Class: class,
	})
	require.Equal(a.t, http.StatusCreated, resp.StatusCode, body)
	return body["token"].(string)
}

func (a *apiFixture) upload(token, fileName string) (*http.Response, map[string]interface{}) {
	a.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("certificate", fileName)
	require.NoError(a.t, err)
	_, _ = part.Write([]byte("fake image"))
	require.NoError(a.t, mw.Close())
	return a.do(http.MethodPost, "/v1/certificates", token, &buf, mw.FormDataContentType())
}

func TestAPI_CertificateLifecycle(t *testing.T) {
	api := newAPI(t)
	student := api.register("John Smith", "john@example.com", model.RoleStudent, "S7")
	teacher := api.register("Asha Nair", "asha@example.com", model.RoleTeacher, "")

	resp, cert := api.upload(student, "nptel.jpg")
	require.Equal(t, http.StatusCreated, resp.StatusCode, cert)
	assert.Equal(t, "pending", cert["status"])
	assert.EqualValues(t, 50, cert["pointsAwarded"])
	id := cert["id"].(string)

	resp, body := api.upload(student, "nptel.png")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body["error"], "duplicate")

	assert.Len(t, api.list("/v1/certificates", student), 1)
	assert.Len(t, api.list("/v1/certificates/class/S7", teacher), 1)

	resp, _ = api.json(http.MethodPut, "/v1/certificates/"+id, teacher, map[string]interface{}{"status": "approved"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	board := api.list("/v1/classes/S7/leaderboard?top=5", teacher)
	require.Len(t, board, 1)
	entry := board[0].(map[string]interface{})
	assert.Equal(t, "John Smith", entry["name"])
	assert.EqualValues(t, 50, entry["points"])

	resp, summary := api.do(http.MethodGet, "/v1/certificates/summary", student, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 50, summary["totalPoints"])

	resp, _ = api.do(http.MethodDelete, "/v1/certificates/"+id, student, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, api.list("/v1/certificates", student))
}

func TestAPI_NameMismatch(t *testing.T) {
	api := newAPI(t)
	token := api.register("Priya Menon", "priya@example.com", model.RoleStudent, "S7")

	resp, body := api.upload(token, "cert.jpg")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["error"], "does not match")
}

func TestAPI_Authorization(t *testing.T) {
	api := newAPI(t)
	student := api.register("John Smith", "john@example.com", model.RoleStudent, "S7")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"no token", http.MethodGet, "/v1/certificates", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/v1/certificates", "garbage", http.StatusUnauthorized},
		{"student reads class", http.MethodGet, "/v1/certificates/class/S7", student, http.StatusForbidden},
		{"student reviews", http.MethodPut, "/v1/certificates/abc", student, http.StatusForbidden},
		{"student edits catalog", http.MethodPost, "/v1/activities", student, http.StatusForbidden},
		{"student reads catalog", http.MethodGet, "/v1/activities", student, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := api.do(tt.method, tt.path, tt.token, nil, "")
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func (a *apiFixture) dialFeed(path, token string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(a.srv.URL, "http") + path + "?token=" + token
	return websocket.DefaultDialer.Dial(url, nil)
}

func TestAPI_ClassFeedAnyTeacher(t *testing.T) {
	api := newAPI(t)
	teacher := api.register("Asha Nair", "asha@example.com", model.RoleTeacher, "S5")
	student := api.register("John Smith", "john@example.com", model.RoleStudent, "S7")

	conn, _, err := api.dialFeed("/v1/ws/classes/S7", teacher)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var hello ws.Message
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, ws.MsgConnected, hello.Type)

	assert.Empty(t, api.list("/v1/certificates/class/S7", teacher))

	_, resp, err := api.dialFeed("/v1/ws/classes/S7", student)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_AuthErrors(t *testing.T) {
	api := newAPI(t)
	api.register("John Smith", "john@example.com", model.RoleStudent, "S7")

	resp, _ := api.json(http.MethodPost, "/v1/auth/register", "", model.RegisterRequest{
		Name: "Other", Email: "JOHN@example.com", Password: "x", Role: model.RoleStudent, Class: "S7",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = api.json(http.MethodPost, "/v1/auth/login", "", model.LoginRequest{Email: "john@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := api.json(http.MethodPost, "/v1/auth/login", "", model.LoginRequest{Email: "john@example.com", Password: "hunter22"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
}

func TestAPI_ActivityCatalog(t *testing.T) {
	api := newAPI(t)
	teacher := api.register("Asha Nair", "asha@example.com", model.RoleTeacher, "")

	resp, body := api.json(http.MethodPost, "/v1/activities", teacher, map[string]interface{}{"name": "Hackathon"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["fields"])

	resp, created := api.json(http.MethodPost, "/v1/activities", teacher, map[string]interface{}{
		"name":           "Hackathon",
		"activityHead":   "Professional Self Initiatives",
		"activityNumber": "30",
		"keywords":       []string{"Hackathon"},
		"pointsPerLevel": map[string]int{"I": 10, "II": 15, "III": 20, "IV": 30, "V": 40},
		"maxPoints":      40,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, created)
	assert.Equal(t, []interface{}{"hackathon"}, created["keywords"])

	found := api.list("/v1/activities/search/hack", teacher)
	assert.Len(t, found, 1)

	resp, _ = api.do(http.MethodGet, "/v1/activities/missing", teacher, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Preview(t *testing.T) {
	api := newAPI(t)
	student := api.register("John Smith", "john@example.com", model.RoleStudent, "S7")

	resp, body := api.json(http.MethodPost, "/v1/score/preview", student, map[string]interface{}{
		"rawText":       "This is to certify that John Smith has completed a course on NPTEL",
		"activityLevel": "I",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	calc := body["pointsCalculation"].(map[string]interface{})
	assert.EqualValues(t, 50, calc["points"])
}

func TestAPI_CORSAndHealth(t *testing.T) {
	api := newAPI(t)

	req, err := http.NewRequest(http.MethodOptions, api.srv.URL+"/v1/certificates", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, body := api.do(http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestAPI_Docs(t *testing.T) {
	api := newAPI(t)

	resp, doc := api.do(http.MethodGet, "/swagger/doc.json", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/v1", doc["basePath"])
	paths := doc["paths"].(map[string]interface{})
	assert.Contains(t, paths, "/certificates")
	assert.Contains(t, paths, "/score/preview")
}

func TestAllowOrigin(t *testing.T) {
	assert.Equal(t, "*", allowOrigin(nil, "http://x"))
	assert.Equal(t, "*", allowOrigin([]string{"*"}, "http://x"))
	assert.Equal(t, "http://a", allowOrigin([]string{"http://a"}, "http://a"))
	assert.Equal(t, "", allowOrigin([]string{"http://a"}, "http://b"))
}
