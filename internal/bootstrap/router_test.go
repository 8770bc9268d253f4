package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-org/ecap-directory/internal/auth"
	"github.com/ecap-org/ecap-directory/internal/catalog/cache"
	"github.com/ecap-org/ecap-directory/internal/storage/memory"
	"github.com/ecap-org/ecap-directory/internal/storage/seed"
	uploadstorage "github.com/ecap-org/ecap-directory/internal/uploads/storage"
)

type apiClient struct {
	t     *testing.T
	h     http.Handler
	token string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	return newAPIWithAdmin(t, "admin@ecap.com")
}

func newAPIWithAdmin(t *testing.T, adminEmail string) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	require.NoError(t, store.Seed(context.Background(),
		seed.Admin{Email: adminEmail, Password: "admin123", Name: "Admin"}, false))
	repos := MemoryRepositories(store)

	tokens, err := auth.NewTokens("router-test", time.Hour)
	require.NoError(t, err)

	dir := t.TempDir()
	blobs, err := uploadstorage.NewLocalStore(dir)
	require.NoError(t, err)

	r := BuildRouter(RouterDeps{
		ServiceName:    "ecap-directory",
		Version:        "test",
		StoreDriver:    "memory",
		AllowedOrigins: []string{"http://localhost:3000"},
		UploadDir:      dir,
		UploadPath:     "/uploads",
		Tokens:         tokens,
		AdminLookup:    repos.Admins,
		Services: NewServices(repos, ServiceOptions{
			Tokens:           tokens,
			Cache:            cache.Noop{},
			Blobs:            blobs,
			UploadPublicPath: "/uploads",
			UploadMaxBytes:   5 << 20,
		}),
	})
	return &apiClient{t: t, h: r}
}

func (a *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return a.send(req)
}

func (a *apiClient) send(req *http.Request) *httptest.ResponseRecorder {
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rr := httptest.NewRecorder()
	a.h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func (a *apiClient) login(email, password string) {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())
	a.token = decode[map[string]string](a.t, rr)["token"]
}

// createID posts body and returns the id of the created row.
func (a *apiClient) createID(path string, body any) string {
	a.t.Helper()
	rr := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[map[string]any](a.t, rr)["id"].(string)
}

func TestRouter_Health(t *testing.T) {
	api := newAPI(t)
	rr := api.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[map[string]any](t, rr)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["db"])
	assert.Equal(t, "memory", body["store"])
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRouter_AuthFlow(t *testing.T) {
	api := newAPI(t)

	rr := api.do(http.MethodPost, "/api/auth/login", gin.H{"email": "admin@ecap.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rr.Body.String())

	rr = api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	api.login("admin@ecap.com", "admin123")
	rr = api.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	me := decode[map[string]string](t, rr)
	assert.Equal(t, "admin@ecap.com", me["email"])
	assert.Equal(t, "Admin", me["name"])
}

func TestRouter_LoginWithMixedCaseSeedEmail(t *testing.T) {
	api := newAPIWithAdmin(t, "Admin@Ecap.com")

	for _, email := range []string{"Admin@Ecap.com", "admin@ecap.com"} {
		rr := api.do(http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": "admin123"})
		assert.Equal(t, http.StatusOK, rr.Code, "%s: %s", email, rr.Body.String())
	}
}

func TestRouter_WritesRequireToken(t *testing.T) {
	api := newAPI(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/countries"},
		{http.MethodPut, "/api/industries/x"},
		{http.MethodDelete, "/api/projects/x"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, "/api/admin/projects"},
		{http.MethodGet, "/api/admins"},
		{http.MethodPost, "/api/upload"},
	} {
		rr := api.do(tc.method, tc.path, gin.H{})
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}

	rr := api.do(http.MethodGet, "/api/countries", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]map[string]any](t, rr), len(seed.Countries))
}

func TestRouter_ProjectLifecycle(t *testing.T) {
	api := newAPI(t)
	api.login("admin@ecap.com", "admin123")

	countryID := api.createID("/api/countries", gin.H{"slug": "test-uae", "nameEn": "UAE", "nameAr": "الإمارات"})
	industryID := api.createID("/api/industries", gin.H{"slug": "test-tech", "nameEn": "Tech"})

	projectID := api.createID("/api/projects", gin.H{
		"nameEn": "Falcon", "nameAr": "فالكون", "descEn": "Drone delivery",
		"countryId": countryID, "industryId": industryID,
	})

	rr := api.do(http.MethodGet, "/api/projects/"+projectID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	p := decode[map[string]any](t, rr)
	assert.Equal(t, "UAE", p["country"].(map[string]any)["nameEn"])
	assert.Equal(t, "gray", p["industry"].(map[string]any)["color"])

	rr = api.do(http.MethodGet, "/api/projects/"+projectID+"?locale=ar", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	display := decode[map[string]any](t, rr)["display"].(map[string]any)
	assert.Equal(t, "فالكون", display["name"])
	assert.Equal(t, "rtl", display["dir"])
	assert.Equal(t, "الإمارات", display["countryName"])

	rr = api.do(http.MethodPut, "/api/projects/"+projectID, gin.H{"website": "https://falcon.example"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Falcon", decode[map[string]any](t, rr)["nameEn"])

	rr = api.do(http.MethodPost, "/api/projects", gin.H{"nameEn": "X", "descEn": "Y", "countryId": "nope", "industryId": industryID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = api.do(http.MethodDelete, "/api/countries/"+countryID, nil)
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.EqualValues(t, 1, decode[map[string]any](t, rr)["blockingProjects"])

	rr = api.do(http.MethodDelete, "/api/projects/"+projectID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	rr = api.do(http.MethodGet, "/api/projects/"+projectID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = api.do(http.MethodDelete, "/api/countries/"+countryID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_ProjectListing(t *testing.T) {
	api := newAPI(t)
	api.login("admin@ecap.com", "admin123")

	countryID := api.createID("/api/countries", gin.H{"slug": "list-c", "nameEn": "Listland"})
	industryID := api.createID("/api/industries", gin.H{"slug": "list-i", "nameEn": "Listing", "color": "teal"})

	for i := 0; i < 13; i++ {
		api.createID("/api/projects", gin.H{
			"nameEn": fmt.Sprintf("Project %02d", i), "descEn": "generic",
			"countryId": countryID, "industryId": industryID,
		})
	}
	api.createID("/api/projects", gin.H{
		"nameEn": "Atelier", "descEn": "Fashion house",
		"countryId": countryID, "industryId": industryID,
	})

	type page struct {
		Projects   []map[string]any `json:"projects"`
		Total      int              `json:"total"`
		Page       int              `json:"page"`
		Limit      int              `json:"limit"`
		TotalPages int              `json:"totalPages"`
	}

	rr := api.do(http.MethodGet, "/api/projects?page=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	pg := decode[page](t, rr)
	assert.Equal(t, 14, pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, 2, pg.Page)
	assert.Len(t, pg.Projects, 6)

	rr = api.do(http.MethodGet, "/api/admin/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	pg = decode[page](t, rr)
	assert.Equal(t, 10, pg.Limit)
	assert.Equal(t, "Atelier", pg.Projects[0]["nameEn"])

	rr = api.do(http.MethodGet, "/api/projects?search=fashion&countryId="+countryID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	pg = decode[page](t, rr)
	require.Equal(t, 1, pg.Total)
	assert.Equal(t, "Atelier", pg.Projects[0]["nameEn"])

	rr = api.do(http.MethodGet, "/api/projects?industryId=unknown", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"projects":[],"total":0,"page":1,"limit":6,"totalPages":0}`, rr.Body.String())
}

func TestRouter_AdminGuards(t *testing.T) {
	api := newAPI(t)
	api.login("admin@ecap.com", "admin123")

	rr := api.do(http.MethodGet, "/api/admins", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]map[string]any](t, rr)
	require.Len(t, list, 1)
	selfID := list[0]["id"].(string)
	assert.NotContains(t, list[0], "passwordHash")

	rr = api.do(http.MethodDelete, "/api/admins/"+selfID, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"you cannot delete yourself"}`, rr.Body.String())

	otherID := api.createID("/api/admins", gin.H{"name": "Second", "email": "second@ecap.com", "password": "pw123456"})

	rr = api.do(http.MethodPost, "/api/admins", gin.H{"name": "Dup", "email": "SECOND@ecap.com", "password": "x"})
	assert.Equal(t, http.StatusConflict, rr.Code)

	// the second admin removes the first, then cannot remove itself
	api.login("second@ecap.com", "pw123456")
	rr = api.do(http.MethodDelete, "/api/admins/"+selfID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = api.do(http.MethodDelete, "/api/admins/"+otherID, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRouter_DeletedAdminTokenIsRejected(t *testing.T) {
	api := newAPI(t)
	api.login("admin@ecap.com", "admin123")
	firstToken := api.token

	rr := api.do(http.MethodGet, "/api/admins", nil)
	firstID := decode[[]map[string]any](t, rr)[0]["id"].(string)

	api.createID("/api/admins", gin.H{"name": "B", "email": "b@ecap.com", "password": "pw"})
	api.login("b@ecap.com", "pw")
	require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/api/admins/"+firstID, nil).Code)

	api.token = firstToken
	rr = api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func uploadRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestRouter_UploadAndServe(t *testing.T) {
	api := newAPI(t)
	api.login("admin@ecap.com", "admin123")

	img := pngImage(t)
	rr := api.send(uploadRequest(t, "logo.png", "image/png", img))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	url := decode[map[string]string](t, rr)["url"]
	require.True(t, strings.HasPrefix(url, "/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	get := httptest.NewRecorder()
	api.h.ServeHTTP(get, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, img, get.Body.Bytes())

	rejected := []struct {
		name, contentType string
	}{
		{"notes.txt", "text/plain"},
		{"fake.png", "text/plain"},
		{"fake.png", "image/png"},
	}
	for _, tt := range rejected {
		rr = api.send(uploadRequest(t, tt.name, tt.contentType, []byte("just some text, not an image")))
		assert.Equal(t, http.StatusBadRequest, rr.Code, "%s %s", tt.name, tt.contentType)
		assert.JSONEq(t, `{"error":"invalid file type"}`, rr.Body.String())
	}

	svg := `<?xml version="1.0"?>` + "\n<!-- " + strings.Repeat("x", 5<<10) + " -->\n" +
		`<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"></svg>`
	rr = api.send(uploadRequest(t, "logo.svg", "image/svg+xml", []byte(svg)))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.True(t, strings.HasSuffix(decode[map[string]string](t, rr)["url"], ".svg"))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rr = api.send(req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"no file provided"}`, rr.Body.String())
}
