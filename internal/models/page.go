package models

// PageInfo describes one page of a server-side collection.
type PageInfo struct {
	// Size is the requested page size.
	Size int `json:"size"`

	// Number is the 0-based index of this page. Always within
	// [0, TotalPages-1] when TotalPages > 0.
	Number int `json:"number"`

	// TotalElements is the size of the whole collection.
	TotalElements int64 `json:"totalElements"`

	// TotalPages is the page count; 0 for an empty collection.
	TotalPages int `json:"totalPages"`
}

// Page is one page of a paginated collection of T.
type Page[T any] struct {
	Content []T      `json:"content"`
	Page    PageInfo `json:"page"`
}
