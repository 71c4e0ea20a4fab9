package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

// ParsePagination reads page and limit. Missing values take the defaults and
// limits above the maximum are capped.
func ParsePagination(r *http.Request) (pagination.Params, error) {
	q := r.URL.Query()
	params, err := pagination.Parse(q.Get("page"), q.Get("limit"))
	if err != nil {
		return pagination.Params{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error())
	}
	return params, nil
}

// RequireQuery returns the trimmed query value or a validation error.
func RequireQuery(r *http.Request, key string) (string, error) {
	value := SanitizeString(r.URL.Query().Get(key), MaxQueryValueLen)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, MessageMissingFields).WithDetails(map[string]string{key: "is required"})
	}
	return value, nil
}

// ParseIDParam reads a positive integer path parameter. A malformed id can
// never match a row, so it is reported as notFound.
func ParseIDParam(r *http.Request, key string, notFound error) (uint64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return id, nil
}
