package catalog

import (
	"net/http"

	"bookreview/internal/book"
	"bookreview/internal/httpx"
	"bookreview/internal/logger"
	"bookreview/internal/pagination"
)

type HTTPHandler struct {
	svc *Service
	log *logger.Logger
}

type reviewQuery struct {
	Page  int `query:"page" default:"1"`
	Limit int `query:"limit" default:"5"`
}

func NewHTTPHandler(svc *Service, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

// GetBook handles GET /books/{id}
// @Summary Get book detail
// @Description A book with its average rating and one page of its reviews, newest first
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Param page query int false "Review page (default 1)"
// @Param limit query int false "Reviews per page (default 5, max 100)"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := book.ParseID(r)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	var q reviewQuery
	if err := httpx.BindQuery(r, &q); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	p := pagination.Params{Page: q.Page, Limit: q.Limit}.Normalize(pagination.DefaultReviewLimit)

	detail, err := h.svc.GetBookDetail(r.Context(), id, p)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}
