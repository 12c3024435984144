package pagination

import (
	"errors"
	"strconv"
)

// MaxVisiblePages is the largest page count rendered without abbreviation
const MaxVisiblePages = 5

const ellipsisLiteral = "ellipsis"

// PageToken is either a page number or the Ellipsis marker
type PageToken struct {
	page int
}

// Ellipsis marks an elided run of pages
var Ellipsis = PageToken{}

// Page returns the token for page n (n >= 1)
func Page(n int) PageToken {
	return PageToken{page: n}
}

// IsEllipsis reports whether the token is the Ellipsis marker
func (t PageToken) IsEllipsis() bool {
	return t.page == 0
}

// Number returns the page number, 0 for Ellipsis
func (t PageToken) Number() int {
	return t.page
}

func (t PageToken) String() string {
	if t.IsEllipsis() {
		return ellipsisLiteral
	}
	return strconv.Itoa(t.page)
}

// MarshalJSON renders pages as numbers and Ellipsis as "ellipsis"
func (t PageToken) MarshalJSON() ([]byte, error) {
	if t.IsEllipsis() {
		return []byte(`"` + ellipsisLiteral + `"`), nil
	}
	return []byte(strconv.Itoa(t.page)), nil
}

// UnmarshalJSON accepts a positive page number or "ellipsis"
func (t *PageToken) UnmarshalJSON(data []byte) error {
	if string(data) == `"`+ellipsisLiteral+`"` {
		*t = Ellipsis
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil || n < 1 {
		return errors.New("page token must be a positive page number or \"ellipsis\"")
	}
	*t = Page(n)
	return nil
}

// BuildPageNumbers returns the abbreviated page list for a pager.
//
// Up to MaxVisiblePages every page is listed. Beyond that the list is the
// first page, a window of one page either side of currentPage and the last
// page, with Ellipsis standing in for the gaps:
//
//	BuildPageNumbers(5, 10) // 1 … 4 5 6 … 10
//	BuildPageNumbers(1, 10) // 1 2 … 10
func BuildPageNumbers(currentPage, totalPages int) []PageToken {
	if totalPages <= 0 {
		return []PageToken{}
	}

	if totalPages <= MaxVisiblePages {
		pages := make([]PageToken, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, Page(i))
		}
		return pages
	}

	pages := make([]PageToken, 0, MaxVisiblePages+2)
	pages = append(pages, Page(1))

	start := max(2, currentPage-1)
	end := min(totalPages-1, currentPage+1)

	if start > 2 {
		pages = append(pages, Ellipsis)
	}

	for i := start; i <= end; i++ {
		pages = append(pages, Page(i))
	}

	if end < totalPages-1 {
		pages = append(pages, Ellipsis)
	}

	pages = append(pages, Page(totalPages))
	return pages
}
