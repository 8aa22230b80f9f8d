package auth

import (
	"net/http"
	"time"

	"bookreview/internal/httpx"
	"bookreview/internal/logger"
)

type HTTPHandler struct {
	service      *Service
	log          *logger.Logger
	secureCookie bool
}

func NewHTTPHandler(service *Service, log *logger.Logger, secureCookie bool) *HTTPHandler {
	return &HTTPHandler{service: service, log: log, secureCookie: secureCookie}
}

type SignupReq struct {
	Username string `json:"username" mod:"trim" validate:"required,alphanum,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginReq struct {
	Username string `json:"username" mod:"trim" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup handles POST /auth/signup
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupReq true "Signup request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /auth/signup [post]
func (h *HTTPHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupReq
	if details, err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteErrorDetails(w, r, h.log, err, details)
		return
	}

	u, err := h.service.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSONSuccessCreated(w, r, map[string]any{
		"id":       u.ID,
		"username": u.Username,
	})
}

// Login handles POST /auth/login
// @Summary User login
// @Description Authenticate and receive an access token, also set as the token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginReq true "Login request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if details, err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteErrorDetails(w, r, h.log, err, details)
		return
	}

	tok, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.TokenCookie,
		Value:    tok.Value,
		Path:     "/",
		Expires:  tok.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.JSONSuccess(w, r, map[string]any{
		"token":      tok.Value,
		"expires_in": int(time.Until(tok.ExpiresAt).Seconds()),
	}, nil)
}

// Logout handles POST /auth/logout
// @Summary User logout
// @Description Revoke the current access token and clear the token cookie
// @Tags auth
// @Security Bearer
// @Success 204 "No Content"
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/logout [post]
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), httpx.TokenIDFrom(r), httpx.UserIDFrom(r)); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.JSONSuccessNoContent(w)
}

// Me handles GET /auth/me
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/me [get]
func (h *HTTPHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Me(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, u, nil)
}
