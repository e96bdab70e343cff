package gdata

const (
	defaultPage       = 1
	defaultMaxResults = 25
)

// Paging selects a page of a collection feed. Page/PerPage describe the
// page in high-level terms; Offset/MaxResults, when set, take precedence
// and are sent as-is. Non-positive values fall back to the defaults
// (page 1, 25 results), mirroring the protocol's lenient parameter
// coercion. A zero Paging makes builders emit no paging parameters.
type Paging struct {
	// Page is the 1-based page number. Default 1.
	Page int
	// PerPage is the page size. Default 25.
	PerPage int
	// Offset overrides the page-derived 1-based start index.
	Offset int
	// MaxResults overrides PerPage.
	MaxResults int
}

// Resolve normalizes the paging request into the protocol's
// (start-index, max-results) pair. The start index is 1-based:
// offset = (page-1)*maxResults + 1.
func (p Paging) Resolve() (offset, maxResults int) {
	maxResults = p.MaxResults
	if maxResults <= 0 {
		maxResults = intOrDefault(p.PerPage, defaultMaxResults)
	}
	offset = p.Offset
	if offset <= 0 {
		offset = (intOrDefault(p.Page, defaultPage)-1)*maxResults + 1
	}
	return offset, maxResults
}

// isZero reports whether no paging was requested at all.
func (p Paging) isZero() bool {
	return p == Paging{}
}

// intOrDefault returns v when positive, def otherwise.
func intOrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
