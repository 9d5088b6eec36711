package transport

import (
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/mux"
	categoryapp "github.com/muhammadheryan/verified-commerce/application/category"
	productapp "github.com/muhammadheryan/verified-commerce/application/product"
	userapp "github.com/muhammadheryan/verified-commerce/application/user"
	verificationapp "github.com/muhammadheryan/verified-commerce/application/verification"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/repository/filestore"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
	"github.com/muhammadheryan/verified-commerce/utils/logger"
	"github.com/muhammadheryan/verified-commerce/utils/metrics"
	validatorx "github.com/muhammadheryan/verified-commerce/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const uploadsPrefix = "uploads/"

type RestHandler struct {
	UserApp         userapp.UserApp
	CategoryApp     categoryapp.CategoryApp
	ProductApp      productapp.ProductApp
	VerificationApp verificationapp.VerificationApp
	Files           filestore.FileStore
}

type Options struct {
	BasePath       string
	MaxRequestBody int64
	MetricsToken   string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	router := mux.NewRouter()

	router.Use(LoggingMiddleware())
	router.Use(MetricsMiddleware())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	router.Handle("/metrics", InternalMiddleware(opts.MetricsToken)(metrics.Handler())).Methods(http.MethodGet)
	router.PathPrefix("/" + uploadsPrefix).HandlerFunc(rh.ServeUpload).Methods(http.MethodGet, http.MethodHead)

	api := router
	if basePath := strings.Trim(opts.BasePath, "/"); basePath != "" {
		api = router.PathPrefix("/" + basePath).Subrouter()
	}
	api.Use(BodyLimitMiddleware(opts.MaxRequestBody))

	// Public routes
	api.HandleFunc("/auth/signup", rh.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)

	// Authenticated routes
	api.Handle("/auth/logout", rh.protect(rh.Logout)).Methods(http.MethodPost)
	api.Handle("/auth/me", rh.protect(rh.Me)).Methods(http.MethodGet)
	api.Handle("/verification", rh.protect(rh.CreateVerification)).Methods(http.MethodPost)
	api.Handle("/verification/me", rh.protect(rh.ListMyVerifications)).Methods(http.MethodGet)

	// Admin routes
	api.Handle("/auth/users", rh.protect(rh.ListUsers, constant.RoleAdmin)).Methods(http.MethodGet)
	api.Handle("/auth/user/{id}", rh.protect(rh.UpdateUser, constant.RoleAdmin)).Methods(http.MethodPut)
	api.Handle("/auth/user/{id}", rh.protect(rh.DeleteUser, constant.RoleAdmin)).Methods(http.MethodDelete)
	api.Handle("/categories", rh.protect(rh.CreateCategory, constant.RoleAdmin)).Methods(http.MethodPost)
	api.Handle("/categories/{id}", rh.protect(rh.UpdateCategory, constant.RoleAdmin)).Methods(http.MethodPut)
	api.Handle("/categories/{id}", rh.protect(rh.DeleteCategory, constant.RoleAdmin)).Methods(http.MethodDelete)
	api.Handle("/products", rh.protect(rh.CreateProduct, constant.RoleAdmin)).Methods(http.MethodPost)
	api.Handle("/products/{id}", rh.protect(rh.UpdateProduct, constant.RoleAdmin)).Methods(http.MethodPut)
	api.Handle("/products/{id}", rh.protect(rh.DeleteProduct, constant.RoleAdmin)).Methods(http.MethodDelete)
	api.Handle("/verification", rh.protect(rh.ListVerifications, constant.RoleAdmin)).Methods(http.MethodGet)

	// CORS and recovery wrap the router so they also cover 404/405 answers.
	return RecoveryMiddleware()(CORSMiddleware()(router))
}

// protect requires a valid token and, when roles are given, one of them.
func (rh *RestHandler) protect(handler http.HandlerFunc, roles ...constant.Role) http.Handler {
	var h http.Handler = handler
	if len(roles) > 0 {
		h = Authorize(roles...)(h)
	}
	return Authenticate(rh.UserApp)(h)
}

func validationError(err error) error {
	return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, validatorx.Messages(err)...)
}

func validate(req interface{}) error {
	if err := validatorx.ValidateStruct(req); err != nil {
		return validationError(err)
	}
	return nil
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (rh *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// ServeUpload streams a stored file. Images are embeddable from any origin.
func (rh *RestHandler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	key, err := filestore.CleanKey(strings.TrimPrefix(r.URL.Path, "/"))
	if err != nil || !strings.HasPrefix(key, uploadsPrefix) {
		http.NotFound(w, r)
		return
	}

	rc, err := rh.Files.Open(r.Context(), key)
	if err != nil {
		if stderrors.Is(err, filestore.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		logger.Error("[ServeUpload] err Files.Open", zap.String("key", key), zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	defer rc.Close()

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Cross-Origin-Resource-Policy", "cross-origin")
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		h.Set("Content-Type", ct)
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, rc); err != nil {
		logger.Warn("[ServeUpload] err copy", zap.String("key", key), zap.String("error", err.Error()))
	}
}
