package book

import (
	"net/http"
	"strconv"

	"bookreview/internal/httpx"
	"bookreview/internal/logger"
	"bookreview/internal/pagination"
	"bookreview/internal/platform/apperr"
)

type HTTPHandler struct {
	service *Service
	log     *logger.Logger
}

func NewHTTPHandler(service *Service, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// ParseID reads the external book id from the {id} path segment. Anything
// that is not a positive integer cannot name a book.
func ParseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.NotFound("Book not found")
	}
	return id, nil
}

type listQuery struct {
	Page   int    `query:"page" default:"1"`
	Limit  int    `query:"limit" default:"10"`
	Author string `query:"author"`
	Genre  string `query:"genre"`
}

type searchQuery struct {
	Query string `query:"query" mod:"trim"`
}

type listPagination struct {
	pagination.Page
	TotalBooks int `json:"totalBooks"`
}

// Create handles POST /books
// @Summary Add a book
// @Description Add a book to the catalog. The server assigns its id.
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body NewBook true "Book"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NewBook
	if details, err := httpx.DecodeAndValidate(r, &req); err != nil {
		httpx.WriteErrorDetails(w, r, h.log, err, details)
		return
	}

	b, err := h.service.Add(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, b)
}

// List handles GET /books
// @Summary List books
// @Description Page through books, newest first, optionally filtered by author and genre substrings
// @Tags books
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param author query string false "Author contains (case-insensitive)"
// @Param genre query string false "Genre contains (case-insensitive)"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := httpx.BindQuery(r, &q); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	f := Filter{Author: q.Author, Genre: q.Genre}
	p := pagination.Params{Page: q.Page, Limit: q.Limit}.Normalize(pagination.DefaultBookLimit)

	books, page, total, err := h.service.List(r.Context(), f, p)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"books":      books,
		"pagination": listPagination{Page: page, TotalBooks: total},
	}, nil)
}

// Search handles GET /search
// @Summary Search books
// @Description Case-insensitive substring search over title and author, newest first
// @Tags books
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	var q searchQuery
	if err := httpx.BindQuery(r, &q); err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}
	s, err := NewSearch(q.Query)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	res, err := h.service.Search(r.Context(), s)
	if err != nil {
		httpx.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSONSuccess(w, r, res, nil)
}
