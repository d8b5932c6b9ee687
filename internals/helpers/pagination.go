// file: internals/helpers/pagination.go
package helper

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage = 1
)

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = Options{DefaultPerPage: 10, MaxPerPage: 100}
	AdminOpts   = Options{DefaultPerPage: 50, MaxPerPage: 500}
)

type Params struct {
	Page    int
	PerPage int
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// Limit & Offset
func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// ParseFiber reads ?page= and ?limit= (alias ?per_page=) and normalizes them.
func ParseFiber(c *fiber.Ctx, opt Options) Params {
	q := c.Queries()

	page := atoiDefault(q["page"], DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := opt.DefaultPerPage
	if n := atoiDefault(firstNonEmpty(q["limit"], q["per_page"]), 0); n > 0 {
		per = n
	}
	if opt.MaxPerPage > 0 && per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	return Params{Page: page, PerPage: per}
}

// Meta untuk response
type Meta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	LastPage    int   `json:"lastPage"`
	PerPage     int   `json:"perPage"`
}

type Links struct {
	Next *string `json:"next"`
	Prev *string `json:"prev"`
}

type Paginated[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

func BuildMeta(total int64, p Params) Meta {
	per := p.PerPage
	if per <= 0 {
		per = DefaultOpts.DefaultPerPage
	}
	lastPage := int(math.Ceil(float64(total) / float64(per)))
	if lastPage < 1 {
		lastPage = 1
	}
	return Meta{
		Total:       total,
		CurrentPage: p.Page,
		LastPage:    lastPage,
		PerPage:     per,
	}
}

// BuildLinks returns absolute next/prev URLs that keep every query
// parameter of the current request except page.
func BuildLinks(c *fiber.Ctx, meta Meta) Links {
	base := c.BaseURL() + c.Path()
	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))

	pageURL := func(page int) *string {
		q := url.Values{}
		for k, v := range query {
			if k == "page" {
				continue
			}
			q[k] = v
		}
		q.Set("page", strconv.Itoa(page))
		s := base + "?" + q.Encode()
		return &s
	}

	var links Links
	if meta.CurrentPage < meta.LastPage {
		links.Next = pageURL(meta.CurrentPage + 1)
	}
	if meta.CurrentPage > 1 {
		links.Prev = pageURL(meta.CurrentPage - 1)
	}
	return links
}
