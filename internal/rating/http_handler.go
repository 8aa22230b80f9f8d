package rating

import (
	"net/http"

	"bookreview/internal/book"
	"bookreview/internal/httpx"
	"bookreview/internal/logger"
)

type HTTPHandler struct {
	service *Service
	log     *logger.Logger
}

func NewHTTPHandler(service *Service, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// GetBookRating handles GET /books/{id}/rating
// @Summary Get a book's rating
// @Description Average rating (one decimal) and review count, computed on request
// @Tags ratings
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id}/rating [get]
func (h *HTTPHandler) GetBookRating(w http.ResponseWriter, r *http.Request) {
	bookID, err := book.ParseID(r)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	summary, err := h.service.ForBook(r.Context(), bookID)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccess(w, r, summary, nil)
}
