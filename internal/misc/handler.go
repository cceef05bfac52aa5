package misc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/atletiklab/biomotor/internal/auth"
	"github.com/atletiklab/biomotor/internal/middleware"
	"github.com/atletiklab/biomotor/internal/telemetry/metrics"
	"github.com/atletiklab/biomotor/internal/telemetry/tracing"
	"github.com/atletiklab/biomotor/pkg"
)

type Handler struct {
	versionInfo string
	authService *auth.Service
	admin       *auth.Admin
}

func NewHandler(
	versionInfo string,
	authService *auth.Service,
	admin *auth.Admin,
) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		authService: authService,
		admin:       admin,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the /login and /logout endpoints to prevent abuse
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, metricsManager))
	loginSubrouter.Use(middleware.Cors())
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			pkg.WriteJSONError(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			pkg.WriteJSONError(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		pkg.WriteJSONError(w, "error, credentials empty", http.StatusBadRequest)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, handler.admin.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", loginReq.Username)
		pkg.WriteJSONError(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	if loginReq.Username != handler.admin.Username {
		log.Tracef("[username] failed login attempt for user: %s", loginReq.Username)
		pkg.WriteJSONError(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(r.Context(), time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		pkg.WriteJSONError(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, token))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := middleware.BearerToken(r)
	if authToken == "" {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(r.Context(), authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
