package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HSouheill/barrim_storefront/metrics"
	"github.com/HSouheill/barrim_storefront/models"
	"github.com/HSouheill/barrim_storefront/security"
)

// APIClient maps storefront calls onto the backend REST routes. It holds no
// state besides the shared HTTP client and never retries.
type APIClient struct {
	baseURL string
	http    *http.Client
	debug   bool
	logger  zerolog.Logger
}

func NewAPIClient(baseURL string, timeout time.Duration, debug bool, logger zerolog.Logger) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		debug:   debug,
		logger:  logger.With().Str("component", "api_client").Logger(),
	}
}

type tokenKey struct{}

// WithToken attaches the caller's bearer token to ctx. Admin calls forward it
// to the backend unchanged.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token set by WithToken, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type requestBody struct {
	reader      io.Reader
	contentType string
}

func jsonBody(payload interface{}) (*requestBody, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return &requestBody{reader: bytes.NewReader(data), contentType: "application/json"}, nil
}

// makeRequest performs one call and decodes the envelope's data into out.
// route is the path template used as the metrics label.
func (c *APIClient) makeRequest(ctx context.Context, method, route, endpoint string, body *requestBody, out interface{}) (string, error) {
	var reader io.Reader
	if body != nil {
		reader = body.reader
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if c.debug {
		c.logger.Debug().
			Str("method", method).
			Str("url", req.URL.String()).
			Interface("headers", security.SanitizeHeaders(req.Header.Clone())).
			Msg("backend request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(method, route, "transport_error").Inc()
		return "", &TransportError{Op: method + " " + endpoint, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(method, route, "transport_error").Inc()
		return "", &TransportError{Op: "read " + endpoint, Err: err}
	}

	if c.debug {
		c.logger.Debug().Int("status", resp.StatusCode).Bytes("body", respBody).Msg("backend response")
	}

	var envelope models.Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		metrics.UpstreamRequests.WithLabelValues(method, route, "malformed").Inc()
		msg := ""
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Success {
		metrics.UpstreamRequests.WithLabelValues(method, route, "api_error").Inc()
		return "", &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	metrics.UpstreamRequests.WithLabelValues(method, route, "ok").Inc()

	if out != nil && len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return "", &APIError{StatusCode: resp.StatusCode, Message: "unexpected response data"}
		}
	}
	return envelope.Message, nil
}

func idPath(prefix string, id string) string {
	return prefix + "/" + url.PathEscape(id)
}

// Banners

func (c *APIClient) Banners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	_, err := c.makeRequest(ctx, http.MethodGet, "/banners", "/banners", nil, &banners)
	return banners, err
}

func (c *APIClient) AllBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	_, err := c.makeRequest(ctx, http.MethodGet, "/banners/all", "/banners/all", nil, &banners)
	return banners, err
}

func (c *APIClient) Banner(ctx context.Context, id string) (*models.Banner, error) {
	var banner models.Banner
	if _, err := c.makeRequest(ctx, http.MethodGet, "/banners/{id}", idPath("/banners", id), nil, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *APIClient) CreateBanner(ctx context.Context, form models.BannerForm, image *models.BannerImage) (*models.Banner, error) {
	body, err := bannerMultipart(form, image)
	if err != nil {
		return nil, err
	}
	var banner models.Banner
	if _, err := c.makeRequest(ctx, http.MethodPost, "/banners", "/banners", body, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *APIClient) UpdateBanner(ctx context.Context, id string, form models.BannerForm, image *models.BannerImage) (*models.Banner, error) {
	body, err := bannerMultipart(form, image)
	if err != nil {
		return nil, err
	}
	var banner models.Banner
	if _, err := c.makeRequest(ctx, http.MethodPut, "/banners/{id}", idPath("/banners", id), body, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *APIClient) DeleteBanner(ctx context.Context, id string) error {
	_, err := c.makeRequest(ctx, http.MethodDelete, "/banners/{id}", idPath("/banners", id), nil, nil)
	return err
}

func bannerMultipart(form models.BannerForm, image *models.BannerImage) (*requestBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":      form.Title,
		"buttonText": form.ButtonText,
		"buttonLink": form.ButtonLink,
	}
	if form.Active != nil {
		fields["active"] = strconv.FormatBool(*form.Active)
	}
	if form.Order != nil {
		fields["order"] = strconv.Itoa(*form.Order)
	}
	for _, name := range []string{"title", "buttonText", "buttonLink", "active", "order"} {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write %s field: %w", name, err)
		}
	}

	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, image.Filename))
		contentType := image.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, fmt.Errorf("failed to write image part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}
	return &requestBody{reader: &buf, contentType: w.FormDataContentType()}, nil
}

// Brands

// Brands lists active brands. params is passed through as the query string.
func (c *APIClient) Brands(ctx context.Context, params url.Values) ([]models.Brand, error) {
	endpoint := "/brands"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	var brands []models.Brand
	_, err := c.makeRequest(ctx, http.MethodGet, "/brands", endpoint, nil, &brands)
	return brands, err
}

func (c *APIClient) AllBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	_, err := c.makeRequest(ctx, http.MethodGet, "/brands/all", "/brands/all", nil, &brands)
	return brands, err
}

func (c *APIClient) Brand(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	if _, err := c.makeRequest(ctx, http.MethodGet, "/brands/{id}", idPath("/brands", id), nil, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (c *APIClient) CreateBrand(ctx context.Context, req models.BrandRequest) (*models.Brand, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var brand models.Brand
	if _, err := c.makeRequest(ctx, http.MethodPost, "/brands", "/brands", body, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (c *APIClient) UpdateBrand(ctx context.Context, id string, req models.BrandRequest) (*models.Brand, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	var brand models.Brand
	if _, err := c.makeRequest(ctx, http.MethodPut, "/brands/{id}", idPath("/brands", id), body, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (c *APIClient) DeleteBrand(ctx context.Context, id string) error {
	_, err := c.makeRequest(ctx, http.MethodDelete, "/brands/{id}", idPath("/brands", id), nil, nil)
	return err
}

// Contact

// SubmitContact posts the contact form and returns the backend's message.
func (c *APIClient) SubmitContact(ctx context.Context, submission models.ContactSubmission) (string, error) {
	body, err := jsonBody(submission)
	if err != nil {
		return "", err
	}
	return c.makeRequest(ctx, http.MethodPost, "/contact", "/contact", body, nil)
}

func (c *APIClient) AdminContacts(ctx context.Context, opts models.ContactListOptions) (*models.ContactList, error) {
	params := url.Values{}
	if opts.Status != "" {
		params.Set("status", string(opts.Status))
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	endpoint := "/contact/admin"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var list models.ContactList
	if _, err := c.makeRequest(ctx, http.MethodGet, "/contact/admin", endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *APIClient) AdminContact(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if _, err := c.makeRequest(ctx, http.MethodGet, "/contact/admin/{id}", idPath("/contact/admin", id), nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *APIClient) UpdateContactStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	body, err := jsonBody(models.ContactStatusRequest{Status: status})
	if err != nil {
		return nil, err
	}
	var msg models.ContactMessage
	if _, err := c.makeRequest(ctx, http.MethodPut, "/contact/admin/{id}/status", idPath("/contact/admin", id)+"/status", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *APIClient) ReplyContact(ctx context.Context, id, message string) (*models.ContactMessage, error) {
	body, err := jsonBody(models.ContactReplyRequest{Message: message})
	if err != nil {
		return nil, err
	}
	var msg models.ContactMessage
	if _, err := c.makeRequest(ctx, http.MethodPost, "/contact/admin/{id}/reply", idPath("/contact/admin", id)+"/reply", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Catalog

func (c *APIClient) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	_, err := c.makeRequest(ctx, http.MethodGet, "/categories", "/categories", nil, &categories)
	return categories, err
}

func (c *APIClient) EventBanners(ctx context.Context) ([]models.EventBanner, error) {
	var events []models.EventBanner
	_, err := c.makeRequest(ctx, http.MethodGet, "/event-banners", "/event-banners", nil, &events)
	return events, err
}

func (c *APIClient) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if _, err := c.makeRequest(ctx, http.MethodGet, "/products/{id}", idPath("/products", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
