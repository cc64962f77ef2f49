package dto

// ListQuery carries the collection view state sent by list screens.
type ListQuery struct {
	Search   string
	Sort     string
	Desc     bool
	Page     int
	PageSize int
}

// PageMeta describes the visible page of a collection.
type PageMeta struct {
	PageIndex  int `json:"page_index"`
	PageCount  int `json:"page_count"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
}
