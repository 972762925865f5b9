package portfolio

import (
	"errors"
	"strconv"
)

var ErrPageNotFound = errors.New("page not found")

const lastPage = "last"

type Paging struct {
	Number     int `json:"number"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func (p Paging) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// NewPaging resolves the requested page number the way the site's listings always have: an
// empty value means the first page, "last" the last one, and an empty listing still has one
// page. Anything else that is not an existing page yields ErrPageNotFound.
func NewPaging(raw string, perPage, total int) (Paging, error) {
	totalPages := max(1, (total+perPage-1)/perPage)

	number := 1
	switch raw {
	case "":
	case lastPage:
		number = totalPages
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > totalPages {
			return Paging{}, ErrPageNotFound
		}
		number = n
	}

	return Paging{
		Number:     number,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
