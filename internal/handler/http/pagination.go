package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-employee-keeper/models"
)

const (
	queryParamPage     = "page"
	queryParamPageSize = "page_size"
)

// paginationFromRequest reads page and page_size from the query string.
// Absent parameters take their defaults; present ones must be integers with
// page >= 1 and 1 <= page_size <= models.MaxPageSize, and the offset they
// imply must fit in an int64.
func paginationFromRequest(r *http.Request) (models.Pagination, error) {
	query := r.URL.Query()

	page, err := intQueryParam(query.Get(queryParamPage), models.DefaultPage, 1, 0)
	if err != nil {
		return models.Pagination{}, fmt.Errorf("%w: %s %w", ErrInvalidQueryParameter, queryParamPage, err)
	}

	pageSize, err := intQueryParam(query.Get(queryParamPageSize), models.DefaultPageSize, 1, models.MaxPageSize)
	if err != nil {
		return models.Pagination{}, fmt.Errorf("%w: %s %w", ErrInvalidQueryParameter, queryParamPageSize, err)
	}

	if page-1 > math.MaxInt64/pageSize {
		return models.Pagination{}, fmt.Errorf("%w: %s is too large", ErrInvalidQueryParameter, queryParamPage)
	}

	return models.Pagination{Page: page, PageSize: pageSize}, nil
}

// intQueryParam parses raw, falling back to def when empty. hi <= 0 means
// no upper bound.
func intQueryParam(raw string, def, lo, hi int64) (int64, error) {
	if raw == "" {
		return def, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	if value < lo {
		return 0, fmt.Errorf("must be greater than or equal to %d", lo)
	}
	if hi > 0 && value > hi {
		return 0, fmt.Errorf("must be less than or equal to %d", hi)
	}

	return value, nil
}
