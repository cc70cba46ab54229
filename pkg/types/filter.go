package types

// Filter represents query parameters for filtering, search and pagination.
type Filter struct {
	Search string            `json:"search,omitempty"`
	Filter map[string]string `json:"filter,omitempty"`
	Sort   string            `json:"sort,omitempty"`
	Limit  uint64            `json:"limit"`
	Offset uint64            `json:"offset"`
	Page   uint64            `json:"page"`
}

// Pagination represents pagination metadata returned with list responses.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
}
