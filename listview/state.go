package listview

import "time"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) valid() bool {
	return o == SortAsc || o == SortDesc
}

func (o SortOrder) toggle() SortOrder {

	if o == SortAsc {
		return SortDesc
	}

	return SortAsc
}

// ViewState is the search, sort and paging applied to a list.
type ViewState struct {
	SearchTerm  string    `json:"search_term"`
	SortField   string    `json:"sort_field"`
	SortOrder   SortOrder `json:"sort_order"`
	CurrentPage int       `json:"current_page"`
	PageSize    int       `json:"page_size"`
}

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// Row is a record together with its UI-only flags.
type Row[T Item] struct {
	Record   T    `json:"record"`
	Expanded bool `json:"is_expanded"`
	Deleting bool `json:"is_deleting"`
}

type rowFlags struct {
	expanded bool
	deleting bool
}

// PageData is what a list screen renders: one page plus the numbers
// around it.
type PageData[T Item] struct {
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Count      int       `json:"count"`
	Total      int       `json:"total"`
	PageSize   int       `json:"page_size"`
	StartIndex int       `json:"start_index"`
	EndIndex   int       `json:"end_index"`
	Pages      []int     `json:"pages"`
	SearchTerm string    `json:"search_term"`
	SortField  string    `json:"sort_field"`
	SortOrder  SortOrder `json:"sort_order"`
	Status     Status    `json:"status"`
	Data       []Row[T]  `json:"data"`
}

type NoticeKind string

const (
	FetchFailedNotice  NoticeKind = "fetch_failed"
	DeleteFailedNotice NoticeKind = "delete_failed"
)

// Notice is a dismissible failure message shown on the list screen.
type Notice struct {
	ID        int        `json:"id"`
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}
