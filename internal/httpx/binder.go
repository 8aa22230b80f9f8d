package httpx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/gorilla/schema"

	"bookreview/internal/platform/apperr"
)

var (
	conform      = modifiers.New()
	queryDecoder = newQueryDecoder()
)

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("query")
	d.IgnoreUnknownKeys(true)
	return d
}

// normalize applies mod tags (e.g. trim) and then default tags to dst.
func normalize(ctx context.Context, dst interface{}) error {
	if err := conform.Struct(ctx, dst); err != nil {
		return fmt.Errorf("conform: %w", err)
	}
	if err := defaults.Set(dst); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// BindQuery decodes the query string into dst using its query tags. A value
// that does not convert to the field's type is left unset, so the field's
// default applies instead of failing the request.
func BindQuery(r *http.Request, dst interface{}) error {
	if err := queryDecoder.Decode(dst, r.URL.Query()); err != nil {
		errs, ok := err.(schema.MultiError)
		if !ok {
			return apperr.Validation("Invalid query parameters")
		}
		for _, e := range errs {
			if _, ok := e.(schema.ConversionError); !ok {
				return apperr.Validation("Invalid query parameters")
			}
		}
	}
	return normalize(r.Context(), dst)
}
