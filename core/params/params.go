package params

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// QueryParams holds the common list-endpoint query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string

	values url.Values
}

// NewQueryParams parses pagination and search parameters from the request,
// clamping page size to sane bounds.
func NewQueryParams(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
		Search:     c.QueryParam("search"),
		values:     url.Values{},
	}

	if n, err := strconv.Atoi(c.QueryParam("page_number")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && n > 0 {
		p.PageSize = n
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	return p
}

// Add records an extra filter value.
func (p *QueryParams) Add(key, value string) {
	if p.values == nil {
		p.values = url.Values{}
	}
	p.values.Add(key, value)
}

// Get returns an extra filter value.
func (p *QueryParams) Get(key string) string {
	return p.values.Get(key)
}

// Encode returns the extra filters as a query string.
func (p *QueryParams) Encode() string {
	return p.values.Encode()
}
