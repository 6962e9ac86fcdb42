package audible

import "encoding/json"

// Contributor is one entry in an item's authors or narrators list.
type Contributor struct {
	Name string `json:"name"`
	ASIN string `json:"asin,omitempty"`
}

// Contributors is an item's author or narrator list.
//
// The zero value (field absent from the response) is a valid empty list.
// An explicit null or a malformed payload decodes without error but is
// marked Invalid, so callers can substitute a sentinel for that one list
// instead of failing the whole item.
type Contributors struct {
	List    []Contributor
	Invalid bool
}

func (c *Contributors) UnmarshalJSON(data []byte) error {
	var list []Contributor
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		*c = Contributors{Invalid: true}
		return nil
	}
	*c = Contributors{List: list}
	return nil
}

// Item represents one library entry as returned by the listing endpoint.
//
// Only the fields requested via response groups are populated; everything
// else decodes to its zero value.
type Item struct {
	ASIN             string       `json:"asin"`
	Title            string       `json:"title"`
	Authors          Contributors `json:"authors"`
	Narrators        Contributors `json:"narrators"`
	RuntimeLengthMin int          `json:"runtime_length_min"`
	ReleaseDate      string       `json:"release_date"`
	PurchaseDate     string       `json:"purchase_date"`
}

// ListOptions controls a library listing request.
type ListOptions struct {
	NumResults     int      // Maximum number of items to return
	ResponseGroups []string // Detail groups to include (e.g. "contributors")
	SortBy         string   // Sort key (e.g. "Author")
}

// libraryResponse is the envelope of the listing endpoint.
type libraryResponse struct {
	Items []Item `json:"items"`
}
