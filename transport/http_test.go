package transport_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/verified-commerce/constant"
	categorymocks "github.com/muhammadheryan/verified-commerce/mocks/application/category"
	productmocks "github.com/muhammadheryan/verified-commerce/mocks/application/product"
	usermocks "github.com/muhammadheryan/verified-commerce/mocks/application/user"
	verificationmocks "github.com/muhammadheryan/verified-commerce/mocks/application/verification"
	filestoremocks "github.com/muhammadheryan/verified-commerce/mocks/repository/filestore"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository/filestore"
	"github.com/muhammadheryan/verified-commerce/transport"
	cerr "github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fields struct {
	userApp         *usermocks.UserApp
	categoryApp     *categorymocks.CategoryApp
	productApp      *productmocks.ProductApp
	verificationApp *verificationmocks.VerificationApp
	files           *filestoremocks.FileStore
}

func newFields(t *testing.T) fields {
	logger.Set(zap.NewNop())
	return fields{
		userApp:         usermocks.NewUserApp(t),
		categoryApp:     categorymocks.NewCategoryApp(t),
		productApp:      productmocks.NewProductApp(t),
		verificationApp: verificationmocks.NewVerificationApp(t),
		files:           filestoremocks.NewFileStore(t),
	}
}

func (f fields) handler(opts transport.Options) http.Handler {
	return transport.NewTransport(&transport.RestHandler{
		UserApp:         f.userApp,
		CategoryApp:     f.categoryApp,
		ProductApp:      f.productApp,
		VerificationApp: f.verificationApp,
		Files:           f.files,
	}, opts)
}

func (f fields) api() http.Handler {
	return f.handler(transport.Options{BasePath: "/api", MaxRequestBody: 1 << 20})
}

// asRole makes token "<role>-token" resolve to a user with that role.
func (f fields) asRole(role constant.Role) {
	f.userApp.
		On("ValidateToken", mock.Anything, string(role)+"-token").
		Return(&model.Claims{UserID: string(role) + "-id", Role: role, TokenID: "jti"}, nil).
		Once()
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   []string        `json:"error"`
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func withToken(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthorizationGate(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		mockCall   func(f fields)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing token",
			mockCall:   func(f fields) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:  "expired token",
			token: "old",
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "old").Return(nil, cerr.SetCustomError(constant.ErrExpiredToken)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrExpiredToken],
		},
		{
			name:  "plain user on admin route",
			token: "user-token",
			mockCall: func(f fields) {
				f.asRole(constant.RoleUser)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name:  "admin passes",
			token: "admin-token",
			mockCall: func(f fields) {
				f.asRole(constant.RoleAdmin)
				f.userApp.
					On("ListUsers", mock.Anything, &model.UserFilter{Role: constant.RoleAdmin}).
					Return(&model.UserListResponse{Count: 0, Users: []model.UserEntity{}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   constant.ErrorTypeCode[constant.Successful],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/users?role=admin", nil)
			if tt.token != "" {
				withToken(req, tt.token)
			}
			rec, env := do(t, f.api(), req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, env.Code)
		})
	}
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	f := newFields(t)
	f.categoryApp.
		On("List", mock.Anything, &model.CategoryFilter{Name: "pho"}).
		Return(&model.CategoryListResponse{Categories: []model.CategoryEntity{}}, nil).
		Once()

	rec, _ := do(t, f.api(), httptest.NewRequest(http.MethodGet, "/api/categories?name=pho", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignup(t *testing.T) {
	t.Run("validation messages are aggregated", func(t *testing.T) {
		f := newFields(t)
		body := `{"email":"nope","password":"123","firstName":"A","lastName":"B"}`

		rec, env := do(t, f.api(), httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)
		assert.Equal(t, []string{"email must be a valid email", "password must be at least 6 characters"}, env.Error)
	})

	t.Run("created", func(t *testing.T) {
		f := newFields(t)
		req := &model.SignupRequest{Email: "a@b.com", Password: "secret1", FirstName: "A", LastName: "B"}
		f.userApp.
			On("Signup", mock.Anything, req).
			Return(&model.SignupResponse{Token: "tok", User: &model.UserSummary{ID: "u1", Email: "a@b.com"}}, nil).
			Once()

		body := `{"email":"a@b.com","password":"secret1","firstName":"A","lastName":"B"}`
		rec, env := do(t, f.api(), httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"token":"tok"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFields(t)
		rec, env := do(t, f.api(), httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)
	})
}

func multipartBody(t *testing.T, values map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := mw.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("img"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestCreateCategory(t *testing.T) {
	f := newFields(t)
	f.asRole(constant.RoleAdmin)
	f.categoryApp.
		On("Create", mock.Anything, &model.CreateCategoryRequest{Name: "Phones"}, mock.MatchedBy(func(u *model.UploadFile) bool {
			if u == nil || u.Filename != "phones.png" || u.Size != 3 {
				return false
			}
			rc, err := u.Open()
			if err != nil {
				return false
			}
			defer rc.Close()
			b, _ := io.ReadAll(rc)
			return string(b) == "img"
		})).
		Return(&model.CategoryEntity{ID: "c1", Name: "Phones", Image: "uploads/categories/1-a.png"}, nil).
		Once()

	body, contentType := multipartBody(t, map[string]string{"name": " Phones "}, map[string][]string{"image": {"phones.png"}})
	req := withToken(httptest.NewRequest(http.MethodPost, "/api/categories", body), "admin-token")
	req.Header.Set("Content-Type", contentType)

	rec, env := do(t, f.api(), req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"image":"uploads/categories/1-a.png"`)
}

func TestCreateCategory_ImageMissing(t *testing.T) {
	f := newFields(t)
	f.asRole(constant.RoleAdmin)
	f.categoryApp.
		On("Create", mock.Anything, &model.CreateCategoryRequest{Name: "Phones"}, (*model.UploadFile)(nil)).
		Return(nil, cerr.SetCustomError(constant.ErrImageRequired)).
		Once()

	body, contentType := multipartBody(t, map[string]string{"name": "Phones"}, nil)
	req := withToken(httptest.NewRequest(http.MethodPost, "/api/categories", body), "admin-token")
	req.Header.Set("Content-Type", contentType)

	rec, env := do(t, f.api(), req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrImageRequired], env.Code)
}

func TestCreateProduct_GalleryAndFields(t *testing.T) {
	f := newFields(t)
	f.asRole(constant.RoleAdmin)
	f.productApp.
		On("Create", mock.Anything,
			&model.CreateProductRequest{Name: "Phone X", Price: 99.5, Stock: 4, CategoryID: "c1"},
			mock.MatchedBy(func(u *model.UploadFile) bool { return u != nil && u.Filename == "cover.png" }),
			mock.MatchedBy(func(us []*model.UploadFile) bool { return len(us) == 2 }),
		).
		Return(&model.ProductResponse{ID: "p1"}, nil).
		Once()

	body, contentType := multipartBody(t,
		map[string]string{"name": "Phone X", "price": "99.5", "stock": "4", "category": "c1"},
		map[string][]string{"imageCover": {"cover.png"}, "images": {"a.png", "b.png"}},
	)
	req := withToken(httptest.NewRequest(http.MethodPost, "/api/products", body), "admin-token")
	req.Header.Set("Content-Type", contentType)

	rec, _ := do(t, f.api(), req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProduct_RejectsNonNumericPrice(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		price  string
	}{
		{name: "create: word", method: http.MethodPost, path: "/api/products", price: "cheap"},
		{name: "create: infinity", method: http.MethodPost, path: "/api/products", price: "Inf"},
		{name: "create: signed infinity", method: http.MethodPost, path: "/api/products", price: "+Infinity"},
		{name: "create: not a number", method: http.MethodPost, path: "/api/products", price: "NaN"},
		{name: "update: infinity", method: http.MethodPut, path: "/api/products/p1", price: "Inf"},
		{name: "update: negative infinity", method: http.MethodPut, path: "/api/products/p1", price: "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.asRole(constant.RoleAdmin)

			body, contentType := multipartBody(t, map[string]string{"name": "X", "price": tt.price, "category": "c1"}, nil)
			req := withToken(httptest.NewRequest(tt.method, tt.path, body), "admin-token")
			req.Header.Set("Content-Type", contentType)

			rec, env := do(t, f.api(), req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)
			assert.Equal(t, []string{"price must be a number"}, env.Error)
		})
	}
}

func TestUnencodableResponse_IsInternalError(t *testing.T) {
	f := newFields(t)
	f.productApp.
		On("List", mock.Anything, mock.Anything).
		Return(&model.ProductListResponse{
			Count:    1,
			Products: []model.ProductResponse{{ID: "p1", Price: math.Inf(1)}},
		}, nil).
		Once()

	rec, env := do(t, f.api(), httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], env.Code)
}

func TestRequestBodyLimit(t *testing.T) {
	f := newFields(t)
	f.asRole(constant.RoleAdmin)

	body, contentType := multipartBody(t, map[string]string{"name": strings.Repeat("x", 4096)}, nil)
	req := withToken(httptest.NewRequest(http.MethodPost, "/api/categories", body), "admin-token")
	req.Header.Set("Content-Type", contentType)

	h := f.handler(transport.Options{BasePath: "/api", MaxRequestBody: 1024})
	rec, env := do(t, h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrFileTooLarge], env.Code)
}

func TestCreateVerification_JSON(t *testing.T) {
	f := newFields(t)
	f.asRole(constant.RoleUser)
	f.verificationApp.
		On("Create", mock.Anything, "user-id", &model.CreateVerificationRequest{ProductID: "p1"}, (*model.UploadFile)(nil)).
		Return(&model.VerificationResponse{ID: "v1", UserID: "user-id", ProductID: "p1"}, nil).
		Once()

	req := withToken(httptest.NewRequest(http.MethodPost, "/api/verification", strings.NewReader(`{"productId":"p1"}`)), "user-token")
	req.Header.Set("Content-Type", "application/json")

	rec, _ := do(t, f.api(), req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateVerification_MultipartImageField(t *testing.T) {
	for _, field := range []string{"image", "verificationImage"} {
		t.Run(field, func(t *testing.T) {
			f := newFields(t)
			f.asRole(constant.RoleUser)
			f.verificationApp.
				On("Create", mock.Anything, "user-id", &model.CreateVerificationRequest{ProductID: "p1"},
					mock.MatchedBy(func(u *model.UploadFile) bool { return u != nil && u.Filename == "proof.png" }),
				).
				Return(&model.VerificationResponse{ID: "v1", UserID: "user-id", ProductID: "p1"}, nil).
				Once()

			body, contentType := multipartBody(t, map[string]string{"productId": "p1"}, map[string][]string{field: {"proof.png"}})
			req := withToken(httptest.NewRequest(http.MethodPost, "/api/verification", body), "user-token")
			req.Header.Set("Content-Type", contentType)

			rec, _ := do(t, f.api(), req)
			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}
}

func TestListMyVerifications_UsesCaller(t *testing.T) {
	f := newFields(t)
	f.asRole(constant.RoleUser)
	f.verificationApp.
		On("ListMine", mock.Anything, "user-id").
		Return(&model.VerificationListResponse{Verifications: []model.VerificationResponse{}}, nil).
		Once()

	rec, _ := do(t, f.api(), withToken(httptest.NewRequest(http.MethodGet, "/api/verification/me", nil), "user-token"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServeUpload(t *testing.T) {
	t.Run("served with cross-origin headers", func(t *testing.T) {
		f := newFields(t)
		f.files.
			On("Open", mock.Anything, "uploads/products/1-a.png").
			Return(io.NopCloser(strings.NewReader("png-bytes")), nil).
			Once()

		rec, _ := do(t, f.api(), httptest.NewRequest(http.MethodGet, "/uploads/products/1-a.png", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "cross-origin", rec.Header().Get("Cross-Origin-Resource-Policy"))
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		f := newFields(t)
		f.files.On("Open", mock.Anything, "uploads/products/gone.png").Return(nil, filestore.ErrNotExist).Once()

		rec, _ := do(t, f.api(), httptest.NewRequest(http.MethodGet, "/uploads/products/gone.png", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	f := newFields(t)
	f.productApp.
		On("List", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { panic("boom") }).
		Once()

	rec, env := do(t, f.api(), httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], env.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFields(t)
	h := f.handler(transport.Options{BasePath: "/api", MetricsToken: "s3cret"})

	rec, _ := do(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withToken(httptest.NewRequest(http.MethodGet, "/metrics", nil), "s3cret"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "verified_commerce_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	f := newFields(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://shop.example")

	rec := httptest.NewRecorder()
	f.api().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthorize_WithoutClaims(t *testing.T) {
	h := transport.Authorize(constant.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
