package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"erpapi/internal/auth"
	"erpapi/internal/config"
	"erpapi/internal/http/middleware"
	"erpapi/internal/model"
	"erpapi/internal/repository"
	"erpapi/internal/service"
	serviceMocks "erpapi/internal/service/mocks"
)

type failingPinger struct{}

func (failingPinger) PingContext(ctx context.Context) error { return errors.New("mongo down") }

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target string, v any) *http.Request {
	b, _ := json.Marshal(v)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Run("healthy", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(db, nil))
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("postgres unhealthy", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(db))
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("mongo unhealthy", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(db, failingPinger{}))
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListAccounts(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Get("/accounts", ListAccounts(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.ListResult[model.Account]{
			Items: []model.Account{{ID: uuid.New().String(), CompanyName: "Acme"}},
			Total: 1,
			Limit: 10,
		}
		mockSvc.On("List", mock.Anything, repository.AccountFilter{TSM: "TSM-001", Search: "acme"}, 10, 0).
			Return(expectedRes, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/accounts?tsm=TSM-001&q=acme&limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ListResult[model.Account]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/accounts?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/accounts?offset=x", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, repository.AccountFilter{}, 10, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateAccount(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts", CreateAccount(mockSvc))

	t.Run("success", func(t *testing.T) {
		in := service.AccountInput{ReferenceID: "TSA-001", CompanyName: "Acme"}
		mockSvc.On("Create", mock.Anything, in).Return(&model.Account{ID: "a-1", CompanyName: "Acme"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/accounts", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing company name", func(t *testing.T) {
		in := service.AccountInput{ReferenceID: "TSA-001"}
		mockSvc.On("Create", mock.Anything, in).
			Return(nil, &service.ValidationError{Fields: []string{"company_name"}}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/accounts", in))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Contains(t, body.Error.Message, "company_name")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestGetAccount(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Get("/accounts/:id", GetAccount(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Account{ID: id}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/accounts/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Account
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/accounts/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "account not found", body.Error.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/accounts/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestUpdateAndDeleteAccount(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Put("/accounts/:id", UpdateAccount(mockSvc))
	app.Delete("/accounts/:id", DeleteAccount(mockSvc))
	id := uuid.New().String()

	in := service.AccountInput{ContactPerson: "Jane"}
	mockSvc.On("Update", mock.Anything, id, in).Return(&model.Account{ID: id, ContactPerson: "Jane"}, nil).Once()
	mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPut, "/accounts/"+id, in))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Account
	json.NewDecoder(resp.Body).Decode(&updated)
	assert.Equal(t, "Jane", updated.ContactPerson)

	resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/accounts/"+id, nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestTransferAndExportAccounts(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts/transfer", TransferAccounts(mockSvc))
	app.Get("/accounts/export", ExportAccounts(mockSvc))

	in := service.TransferInput{AccountIDs: []string{"a-1", "a-2"}, ReferenceID: "TSA-002"}
	mockSvc.On("Transfer", mock.Anything, in).Return(2, nil).Once()
	mockSvc.On("Export", mock.Anything, mock.Anything, repository.AccountFilter{Status: "Active"}).
		Return([]byte("PK-xlsx"), nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/accounts/transfer", in))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]int
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, 2, body["transferred"])

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/accounts/export?status=Active", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "accounts-")
	mockSvc.AssertExpectations(t)
}

func TestTransferAccounts_InvalidID(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts/transfer", TransferAccounts(mockSvc))

	in := service.TransferInput{AccountIDs: []string{"not-a-uuid"}, ReferenceID: "TSA-002"}
	mockSvc.On("Transfer", mock.Anything, in).Return(0, fmt.Errorf("%w: %q", service.ErrInvalidID, "not-a-uuid")).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/accounts/transfer", in))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
}

func TestAddProgress(t *testing.T) {
	mockSvc := new(serviceMocks.MockActivityService)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.ClaimsLocalKey, &auth.Claims{ReferenceID: "TSA-001", Role: "TSA"})
		return c.Next()
	})
	app.Post("/activities/:id/progress", AddProgress(mockSvc))
	id := uuid.New().String()

	mockSvc.On("AddProgress", mock.Anything, id, mock.MatchedBy(func(in service.ProgressInput) bool {
		return in.ReferenceID == "TSA-001" && in.TypeActivity == "Quotation" && in.Amount.String() == "1500.5"
	})).Return(&service.ProgressResult{Activity: &model.Activity{ID: id, Status: "Quoted"}}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/activities/"+id+"/progress", map[string]any{
		"type_activity": "Quotation",
		"status":        "Quoted",
		"amount":        "1500.50",
	}))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestActivitySummary_InvalidDate(t *testing.T) {
	app := fiber.New()
	app.Get("/activities/summary", ActivitySummary(new(serviceMocks.MockActivityService)))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/activities/summary?from=01/02/2024", nil))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
}

func TestCreatePublicInquiry(t *testing.T) {
	mockSvc := new(serviceMocks.MockInquiryService)
	app := fiber.New()
	app.Post("/public/inquiries", CreatePublicInquiry(mockSvc))

	body := map[string]string{"company_name": "Acme", "inquiry": "Need a quote", "recaptcha_token": "tok"}

	t.Run("created", func(t *testing.T) {
		mockSvc.On("CreatePublic", mock.Anything, mock.MatchedBy(func(in service.InquiryInput) bool {
			return in.CompanyName == "Acme"
		}), "tok", mock.Anything).Return(&model.Inquiry{ID: "i-1"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/public/inquiries", body))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("bad captcha", func(t *testing.T) {
		mockSvc.On("CreatePublic", mock.Anything, mock.Anything, "tok", mock.Anything).
			Return(nil, fmt.Errorf("%w: score too low", service.ErrCaptchaFailed)).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/public/inquiries", body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "CAPTCHA_FAILED", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestAdjustStock(t *testing.T) {
	mockSvc := new(serviceMocks.MockProductService)
	app := fiber.New()
	app.Post("/products/:id/stock", AdjustStock(mockSvc))
	id := uuid.New().String()

	mockSvc.On("AdjustStock", mock.Anything, id, service.StockAdjustment{Delta: 5, Reason: "delivery"}).
		Return(&model.Product{ID: id, Quantity: 15}, nil).Once()
	mockSvc.On("AdjustStock", mock.Anything, id, service.StockAdjustment{Delta: -50}).
		Return(nil, service.ErrInsufficientStock).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/products/"+id+"/stock", service.StockAdjustment{Delta: 5, Reason: "delivery"}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(jsonRequest(http.MethodPost, "/products/"+id+"/stock", service.StockAdjustment{Delta: -50}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Error.Code)
	mockSvc.AssertExpectations(t)
}

func imageBody(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	part.Write([]byte("png-bytes"))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadAssetImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockAssetService)
	app := fiber.New()
	app.Post("/assets/:id/image", UploadAssetImage(mockSvc))
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		body, ct := imageBody(t, "image/png")
		mockSvc.On("UploadImage", mock.Anything, id, mock.MatchedBy(func(img service.ImageUpload) bool {
			return img.Filename == "photo.png" && img.ContentType == "image/png" && img.Size == 9
		})).Return(&model.Asset{ID: id, ImageKey: "assets/" + id + "/1.png"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/assets/"+id+"/image", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unsupported type", func(t *testing.T) {
		body, ct := imageBody(t, "application/pdf")
		mockSvc.On("UploadImage", mock.Anything, id, mock.Anything).Return(nil, service.ErrUnsupportedImage).Once()

		req := httptest.NewRequest(http.MethodPost, "/assets/"+id+"/image", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})

	t.Run("no file", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/assets/"+id+"/image", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})
	mockSvc.AssertExpectations(t)
}

func TestProductImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockProductService)
	app := fiber.New()
	app.Get("/products/:id/image", ProductImage(mockSvc))
	id := uuid.New().String()
	other := uuid.New().String()

	mockSvc.On("ImageURL", mock.Anything, id).Return("https://minio.local/erp/products/x.png?sig=1", nil).Once()
	mockSvc.On("ImageURL", mock.Anything, other).Return("", service.ErrNoImage).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/products/"+id+"/image", nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://minio.local/erp/products/x.png?sig=1", resp.Header.Get("Location"))

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/products/"+other+"/image", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestSendEmail_NotConfigured(t *testing.T) {
	mockSvc := new(serviceMocks.MockEmailService)
	app := fiber.New()
	app.Post("/emails", SendEmail(mockSvc))
	mockSvc.On("Send", mock.Anything, "", mock.Anything).Return(nil, service.ErrUnavailable).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/emails", service.EmailInput{To: []string{"a@b.co"}, Subject: "s", Body: "b"}))

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/auth/login", Login(mockSvc))

	mockSvc.On("Login", mock.Anything, "jane@acme.com", "secret123").
		Return(&service.LoginResult{Token: auth.Token{AccessToken: "jwt"}}, nil).Once()
	mockSvc.On("Login", mock.Anything, "jane@acme.com", "wrong").
		Return(nil, service.ErrInvalidCredentials).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/auth/login", LoginRequest{Email: "jane@acme.com", Password: "secret123"}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(jsonRequest(http.MethodPost, "/auth/login", LoginRequest{Email: "jane@acme.com", Password: "wrong"}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp).Error.Code)

	resp, _ = app.Test(jsonRequest(http.MethodPost, "/auth/login", LoginRequest{}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

type stubTokens map[string]*auth.Claims

func (s stubTokens) Validate(token string) (*auth.Claims, error) {
	if c, ok := s[token]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	users := new(serviceMocks.MockUserService)
	authSvc := new(serviceMocks.MockAuthService)
	authSvc.On("Active", mock.Anything, "u-admin").Return(true, nil)
	authSvc.On("Active", mock.Anything, "u-retired").Return(false, nil)
	RegisterRoutes(app, Dependencies{
		Services: Services{Users: users, Auth: authSvc},
		Tokens: stubTokens{
			"admin":   claimsFor("u-admin", "ADM-001", model.RoleAdmin),
			"retired": claimsFor("u-retired", "ADM-002", model.RoleAdmin),
			"tsa":     claimsFor("u-tsa", "TSA-001", model.RoleTSA),
		},
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("protected route without token", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
	})

	t.Run("non-admin cannot create users", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/users", service.UserInput{Email: "x@acme.com"})
		req.Header.Set("Authorization", "Bearer tsa")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Error.Code)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("admin creates users", func(t *testing.T) {
		in := service.UserInput{Email: "x@acme.com", ReferenceID: "TSA-009", Role: "TSA", Password: "longenough"}
		users.On("Create", mock.Anything, in).Return(&model.User{ID: "u-9"}, nil).Once()

		req := jsonRequest(http.MethodPost, "/users", in)
		req.Header.Set("Authorization", "Bearer admin")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		users.AssertExpectations(t)
	})

	t.Run("deactivated admin is rejected before expiry", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/users", service.UserInput{Email: "y@acme.com"})
		req.Header.Set("Authorization", "Bearer retired")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Error.Code)
		users.AssertNumberOfCalls(t, "Create", 1)
	})
}

func claimsFor(userID, referenceID string, role model.Role) *auth.Claims {
	c := &auth.Claims{ReferenceID: referenceID, Role: string(role)}
	c.Subject = userID
	return c
}

func TestServerConfig_ClientIP(t *testing.T) {
	post := func(app *fiber.App, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}
	newApp := func(p config.ProxyConfig) *fiber.App {
		rl := middleware.NewRateLimiter(context.Background(), 0.001, 1)
		t.Cleanup(rl.Stop)
		app := fiber.New(ServerConfig(p))
		app.Post("/auth/login", rl.Handler(), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		})
		return app
	}

	t.Run("clients behind the proxy get their own bucket", func(t *testing.T) {
		app := newApp(config.ProxyConfig{Header: "X-Forwarded-For"})

		assert.Equal(t, http.StatusNoContent, post(app, "203.0.113.7"))
		assert.Equal(t, http.StatusNoContent, post(app, "203.0.113.8, 10.0.0.2"))
		assert.Equal(t, http.StatusTooManyRequests, post(app, "203.0.113.7"))
	})

	t.Run("header from an untrusted peer is ignored", func(t *testing.T) {
		app := newApp(config.ProxyConfig{Header: "X-Forwarded-For", TrustedProxies: []string{"10.9.9.9"}})

		assert.Equal(t, http.StatusNoContent, post(app, "203.0.113.7"))
		assert.Equal(t, http.StatusTooManyRequests, post(app, "203.0.113.8"))
	})

	t.Run("socket address without a proxy header", func(t *testing.T) {
		app := newApp(config.ProxyConfig{})

		assert.Equal(t, http.StatusNoContent, post(app, "203.0.113.7"))
		assert.Equal(t, http.StatusTooManyRequests, post(app, "203.0.113.8"))
	})
}
