package audible

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// LibraryService provides library operations for the Audible API.
type LibraryService struct {
	client *Client
}

// List fetches the account's library in a single request.
//
// NumResults caps the page size; there is no pagination beyond the cap.
// ResponseGroups selects which detail groups the API includes on each item;
// fields outside the requested groups decode to zero values.
//
// Example:
//
//	items, err := client.Library().List(ctx, audible.ListOptions{
//	    NumResults:     1000,
//	    ResponseGroups: []string{"product_desc", "product_attrs", "contributors"},
//	    SortBy:         "Author",
//	})
func (s *LibraryService) List(ctx context.Context, opts ListOptions) ([]Item, error) {
	query := url.Values{}
	if opts.NumResults > 0 {
		query.Set("num_results", strconv.Itoa(opts.NumResults))
	}
	if len(opts.ResponseGroups) > 0 {
		query.Set("response_groups", strings.Join(opts.ResponseGroups, ","))
	}
	if opts.SortBy != "" {
		query.Set("sort_by", opts.SortBy)
	}

	var resp libraryResponse
	if err := s.client.get(ctx, "/1.0/library", query, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}
