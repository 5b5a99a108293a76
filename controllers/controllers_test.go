package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HSouheill/barrim_storefront/cache"
	"github.com/HSouheill/barrim_storefront/controllers"
	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/routes"
	"github.com/HSouheill/barrim_storefront/services"
	"github.com/HSouheill/barrim_storefront/websocket"
)

type backend struct {
	mu     sync.Mutex
	hits   map[string]int
	routes map[string]http.HandlerFunc
	srv    *httptest.Server
}

func newBackend(t *testing.T) *backend {
	b := &backend{hits: map[string]int{}, routes: map[string]http.HandlerFunc{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.hits[key]++
		h, ok := b.routes[key]
		b.mu.Unlock()
		if !ok {
			envelope(w, http.StatusNotFound, false, "Not found", nil)
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) on(method, path string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = h
}

func (b *backend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[method+" "+path]
}

func envelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": success, "message": message, "data": data})
}

type refresher struct {
	mu    sync.Mutex
	names []string
}

func (r *refresher) Refresh(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
}

type validator struct{ v interface{ Struct(interface{}) error } }

func (cv validator) Validate(i interface{}) error { return cv.v.Struct(i) }

type app struct {
	e         *echo.Echo
	backend   *backend
	refresher *refresher
}

func newApp(t *testing.T) *app {
	t.Helper()
	b := newBackend(t)
	logger := zerolog.Nop()
	api := services.NewAPIClient(b.srv.URL, 2*time.Second, false, logger)
	storefront := services.NewStorefront(api, cache.NewMemoryStore(), services.StorefrontOptions{
		HeroCacheTTL:      10 * time.Second,
		AdCacheTTL:        10 * time.Second,
		EventCacheTTL:     10 * time.Second,
		BrandCacheTTL:     5 * time.Minute,
		CategoryCacheTTL:  5 * time.Minute,
		CarouselInterval:  5 * time.Second,
		DefaultBannerLink: "/shop",
	}, logger)
	validate := services.NewValidator()
	pages, err := services.LoadPages()
	require.NoError(t, err)
	r := &refresher{}

	e := echo.New()
	e.Validator = validator{v: validate}
	asAdmin := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("userType", "admin")
			return next(c)
		}
	}
	routes.SetupRoutes(e, routes.Controllers{
		Storefront:  controllers.NewStorefrontController(storefront, services.NewShareService(api, "https://shop.example.com")),
		Contact:     controllers.NewContactController(services.NewContactService(api, validate, nil, logger)),
		Pages:       controllers.NewPageController(pages),
		Carousel:    controllers.NewCarouselController(websocket.NewHub(), storefront.LiveCarousels(), websocket.SessionConfig{}, logger),
		AdminBanner: controllers.NewAdminBannerController(api, storefront, r),
		AdminBrand:  controllers.NewAdminBrandController(api, storefront),
	}, asAdmin)
	return &app{e: e, backend: b, refresher: r}
}

func (a *app) do(req *http.Request) (*httptest.ResponseRecorder, models.Response) {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	var body models.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestGetHeroCarousel(t *testing.T) {
	a := newApp(t)
	a.backend.on(http.MethodGet, "/banners", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":1,"active":true,"image":"a"},
			{"id":2,"active":false,"image":"b"},
			{"id":3,"active":true,"image":null}]}`))
	})

	rec, body := a.do(httptest.NewRequest(http.MethodGet, "/api/storefront/hero", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data, _ := json.Marshal(body.Data)
	var view models.CarouselView
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, "displaying", view.State)
	require.Len(t, view.Items, 1)
	assert.Equal(t, models.ID("1"), view.Items[0].ID)
	assert.Equal(t, "/shop", view.Items[0].ButtonLink)
}

func TestGetHomeWithBackendDown(t *testing.T) {
	a := newApp(t)
	a.backend.srv.Close()

	rec, body := a.do(httptest.NewRequest(http.MethodGet, "/api/storefront/home", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data, _ := json.Marshal(body.Data)
	var home models.Home
	require.NoError(t, json.Unmarshal(data, &home))
	assert.Equal(t, "empty", home.Hero.State)
	assert.Empty(t, home.Events)
	assert.Empty(t, home.Categories)
}

func TestGetHomeAbandonedRequest(t *testing.T) {
	a := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/storefront/home", nil).WithContext(ctx)
	rec, _ := a.do(req)
	assert.Equal(t, 499, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetSubCategories(t *testing.T) {
	a := newApp(t)
	a.backend.on(http.MethodGet, "/categories", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":10,"name":"Home"},
			{"id":11,"name":"Kitchen","parent":10},
			{"id":12,"name":"Garden","parent":{"_id":"10"}}]}`))
	})

	rec, body := a.do(httptest.NewRequest(http.MethodGet, "/api/storefront/categories/10/children", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := body.Data.(map[string]interface{})
	assert.Len(t, data["children"], 2)
	assert.Equal(t, "Home", data["parent"].(map[string]interface{})["name"])
}

func TestSubmitContactValidation(t *testing.T) {
	a := newApp(t)

	rec, body := a.do(jsonRequest(http.MethodPost, "/api/contact", map[string]string{"name": "Ann"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please fill in all required fields.", body.Message)
	assert.Equal(t, 0, a.backend.count(http.MethodPost, "/contact"))
}

func TestSubmitContactForm(t *testing.T) {
	a := newApp(t)
	a.backend.on(http.MethodPost, "/contact", func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, http.StatusCreated, true, "saved", nil)
	})

	form := url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "message": {"Hello"}}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec, body := a.do(req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Thank you for contacting us! We will get back to you soon.", body.Message)
	assert.Equal(t, 1, a.backend.count(http.MethodPost, "/contact"))
}

func TestSubmitContactServerError(t *testing.T) {
	a := newApp(t)
	a.backend.on(http.MethodPost, "/contact", func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, http.StatusInternalServerError, false, "Database unavailable", nil)
	})

	rec, body := a.do(jsonRequest(http.MethodPost, "/api/contact",
		models.ContactSubmission{Name: "Ann", Email: "ann@example.com", Message: "Hello"}))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Database unavailable", body.Message)
}

func TestPages(t *testing.T) {
	a := newApp(t)

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/privacy", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Privacy Policy")

	rec = httptest.NewRecorder()
	a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pages/careers", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body := a.do(httptest.NewRequest(http.MethodGet, "/api/pages/terms", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Terms of Service", body.Message)
}

func TestShareSheetNotFound(t *testing.T) {
	a := newApp(t)
	rec, _ := a.do(httptest.NewRequest(http.MethodGet, "/api/storefront/products/nope/share", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownCarousel(t *testing.T) {
	a := newApp(t)
	rec, _ := a.do(httptest.NewRequest(http.MethodGet, "/ws/carousel/footer", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func multipartBanner(t *testing.T, fields map[string]string, filename string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/admin/banners", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestCreateBannerInvalidatesCaches(t *testing.T) {
	a := newApp(t)
	a.backend.on(http.MethodGet, "/banners", func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, http.StatusOK, true, "", []models.Banner{{ID: "1", Active: true, Image: "a"}})
	})
	var gotTitle, gotActive string
	a.backend.on(http.MethodPost, "/banners", func(w http.ResponseWriter, r *http.Request) {
		if assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			gotTitle = r.FormValue("title")
			gotActive = r.FormValue("active")
		}
		envelope(w, http.StatusCreated, true, "", models.Banner{ID: "2", Title: gotTitle, Active: true, Image: "/uploads/b.png"})
	})

	a.do(httptest.NewRequest(http.MethodGet, "/api/storefront/hero", nil))
	require.Equal(t, 1, a.backend.count(http.MethodGet, "/banners"))

	img := imaging.New(40, 20, color.NRGBA{B: 255, A: 255})
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	rec, _ := a.do(multipartBanner(t, map[string]string{"title": "Summer", "active": "true"}, "b.png", pngBuf.Bytes()))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Summer", gotTitle)
	assert.Equal(t, "true", gotActive)
	assert.ElementsMatch(t, []string{services.CarouselHero, services.CarouselAds}, a.refresher.names)

	a.do(httptest.NewRequest(http.MethodGet, "/api/storefront/hero", nil))
	assert.Equal(t, 2, a.backend.count(http.MethodGet, "/banners"))
}

func TestCreateBannerRequiresImage(t *testing.T) {
	a := newApp(t)

	rec, _ := a.do(multipartBanner(t, map[string]string{"title": "No image"}, "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = a.do(multipartBanner(t, map[string]string{"title": "Bad"}, "virus.exe", []byte("MZ")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, a.backend.count(http.MethodPost, "/banners"))
}

func TestCreateBrandValidation(t *testing.T) {
	a := newApp(t)

	rec, _ := a.do(jsonRequest(http.MethodPost, "/api/admin/brands", models.BrandRequest{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, a.backend.count(http.MethodPost, "/brands"))
}

func TestAdminContactStatus(t *testing.T) {
	a := newApp(t)
	a.backend.on(http.MethodPut, "/contact/admin/7/status", func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, http.StatusOK, true, "", models.ContactMessage{ID: "7", Status: models.ContactStatusRead})
	})

	rec, _ := a.do(jsonRequest(http.MethodPut, "/api/admin/contact/7/status", models.ContactStatusRequest{Status: "read"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = a.do(jsonRequest(http.MethodPut, "/api/admin/contact/7/status", models.ContactStatusRequest{Status: "lost"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, a.backend.count(http.MethodPut, "/contact/admin/7/status"))
}
