// Package paging clamps list requests coming from admin screens.
package paging

const (
	DefaultLimit = 12
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit far from integer overflow.
	MaxPage = 100_000
)

type Request struct {
	Page  int
	Limit int
}

// Normalize clamps page to 1..MaxPage and limit to 1..MaxLimit, defaulting
// a missing limit to DefaultLimit.
func Normalize(page, limit int) Request {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{Page: page, Limit: limit}
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

func (r Request) TotalPages(total int64) int {
	if total <= 0 || r.Limit <= 0 {
		return 0
	}
	return int((total + int64(r.Limit) - 1) / int64(r.Limit))
}
