package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tfalohun/olera-sub001/internal/providermatch"
	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
)

// MatchQuery holds the query parameters of GET /providers/matches.
type MatchQuery struct {
	Sort   string
	Offset string
	Limit  string

	page providermatch.PageRequest
}

func matchQueryFrom(values url.Values) *MatchQuery {
	return &MatchQuery{
		Sort:   values.Get("sort"),
		Offset: values.Get("offset"),
		Limit:  values.Get("limit"),
	}
}

// Validate parses the parameters. Offset defaults to 0 and limit to 20;
// limits above 100 are clamped.
func (q *MatchQuery) Validate() error {
	sort, err := models.ParseSortMode(q.Sort)
	if err != nil {
		return err
	}

	offset := 0
	if raw := strings.TrimSpace(q.Offset); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return dErrors.New(dErrors.CodeValidation, "offset must be a non-negative integer")
		}
	}

	limit := providermatch.DefaultLimit
	if raw := strings.TrimSpace(q.Limit); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return dErrors.New(dErrors.CodeValidation, "limit must be a positive integer")
		}
	}
	limit = min(limit, providermatch.MaxLimit)

	q.page = providermatch.PageRequest{Sort: sort, Offset: offset, Limit: limit}
	return nil
}

// PageRequest returns the parsed page. Call Validate first.
func (q *MatchQuery) PageRequest() providermatch.PageRequest {
	return q.page
}
