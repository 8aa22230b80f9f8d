package review

import (
	"crypto/subtle"
	"net/http"

	"bookreview/internal/book"
	"bookreview/internal/httpx"
	"bookreview/internal/logger"
	"bookreview/internal/platform/apperr"
)

type HTTPHandler struct {
	service        *Service
	log            *logger.Logger
	internalSecret string
}

func NewHTTPHandler(service *Service, log *logger.Logger, internalSecret string) *HTTPHandler {
	return &HTTPHandler{service: service, log: log, internalSecret: internalSecret}
}

// Add handles POST /books/{id}/reviews
// @Summary Review a book
// @Description Add the caller's review of a book. Each user may review a book once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Book ID"
// @Param request body Input true "Review"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books/{id}/reviews [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	bookID, err := book.ParseID(r)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	var req Input
	if details, err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteErrorDetails(w, r, h.log, err, details)
		return
	}

	rv, err := h.service.Add(r.Context(), httpx.UserIDFrom(r), bookID, req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, rv)
}

// Update handles PUT /reviews/{id}
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Review ID"
// @Param request body Input true "Review"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /reviews/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req Input
	if details, err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteErrorDetails(w, r, h.log, err, details)
		return
	}

	rv, err := h.service.Update(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"), req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, rv, nil)
}

// Delete handles DELETE /reviews/{id}
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security Bearer
// @Param id path string true "Review ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), r.PathValue("id")); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]string{"message": "Review deleted successfully"}, nil)
}

// Reconcile handles POST /internal/jobs/reconcile
// @Summary Rebuild book review lists
// @Tags internal
// @Produce json
// @Param X-Internal-Secret header string true "Internal secret"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /internal/jobs/reconcile [post]
func (h *HTTPHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	got := r.Header.Get("X-Internal-Secret")
	if h.internalSecret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.internalSecret)) != 1 {
		httpx.WriteError(w, r, h.log, apperr.Unauthorized("Invalid internal secret"))
		return
	}

	n, err := h.service.Reconcile(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	h.log.Info("review lists reconciled", "books_updated", n)
	httpx.JSONSuccess(w, r, map[string]int64{"booksUpdated": n}, nil)
}
