package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPage is used when the page query parameter is absent.
	DefaultPage = 1
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any page query can request.
	MaxLimit = 100
)

// Params holds page/limit inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Result is the page envelope returned to callers.
type Result[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Normalize fills defaults and caps the limit.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	p.Limit = NormalizeLimit(p.Limit)
	return p
}

// Offset returns the number of rows preceding the page, saturating at
// math.MaxInt instead of wrapping.
func (p Params) Offset() int {
	n := p.Normalize()
	if n.Page-1 > math.MaxInt/n.Limit {
		return math.MaxInt
	}
	return (n.Page - 1) * n.Limit
}

// Parse reads raw query values. Empty values fall back to defaults; anything
// that is not a positive integer is rejected.
func Parse(page, limit string) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if v, err := parsePositive("page", page); err != nil {
		return Params{}, err
	} else if v > 0 {
		p.Page = v
	}
	if v, err := parsePositive("limit", limit); err != nil {
		return Params{}, err
	} else if v > 0 {
		p.Limit = NormalizeLimit(v)
	}
	return p, nil
}

func parsePositive(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if v < 1 {
		return 0, fmt.Errorf("%s must be >= 1", name)
	}
	return v, nil
}
