package adaptor

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func errNotFound(id string) error {
	return fmt.Errorf("booking %s not found", id)
}
