package browse

import (
	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/pkg/pagination"
)

// Query is the user-controlled part of a view: search text, sort and page.
// Path, when set, is the request path the page links point back to.
type Query struct {
	Search   string
	Sort     []SortSpec
	Page     int
	PageSize int
	Path     string
}

// QueryFromContext reads q, sort, page and page_size from the request.
func QueryFromContext(c echo.Context, defaultSize, maxSize int) Query {
	p := pagination.FromContextWithLimits(c, defaultSize, maxSize)
	return Query{
		Search:   c.QueryParam("q"),
		Sort:     ParseSort(c.QueryParam("sort")),
		Page:     p.Page,
		PageSize: p.PageSize,
		Path:     c.Request().URL.Path,
	}
}

// DetailFunc renders the auxiliary content shown beneath an expanded row.
type DetailFunc func(rec Record) any

// View binds a column descriptor set to the fields searched and the detail
// shown for expanded rows. Views are defined once per page and never mutated.
type View struct {
	Name         string
	Columns      Columns
	SearchFields []string
	// DefaultSort applies when the query names no sortable column.
	DefaultSort string
	Detail      DetailFunc
}

// Row is one rendered, visible record.
type Row struct {
	ID       string         `json:"id"`
	Cells    map[string]any `json:"cells"`
	Expanded bool           `json:"expanded"`
	Detail   any            `json:"detail,omitempty"`
}

// Result is a rendered page of a view.
type Result struct {
	View       string  `json:"view"`
	Columns    Columns `json:"columns"`
	Rows       []Row   `json:"rows"`
	Search     string  `json:"search,omitempty"`
	Sort       string  `json:"sort,omitempty"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	HasNext    bool    `json:"has_next"`
	HasPrev    bool    `json:"has_prev"`

	Links []pagination.Link `json:"links,omitempty"`
}

// Apply runs records through filter, sort and pagination and renders the
// visible rows. Sort keys that are unknown or unsortable are ignored.
// Detail is rendered only for visible rows that exp marks expanded.
func (v View) Apply(records []Record, q Query, exp *Expansion) Result {
	filtered := Filter(records, q.Search, v.SearchFields)

	specs := v.sortable(q.Sort)
	if len(specs) == 0 {
		specs = ParseSort(v.DefaultSort)
	}
	filtered = SortBy(filtered, specs)

	page := pagination.Paginate(filtered, q.PageSize, q.Page)

	rows := make([]Row, 0, len(page.Items))
	for _, rec := range page.Items {
		row := v.RenderRow(rec)
		if exp.IsExpanded(row.ID) {
			row.Expanded = true
			if v.Detail != nil {
				row.Detail = v.Detail(rec)
			}
		}
		rows = append(rows, row)
	}

	res := Result{
		View:       v.Name,
		Columns:    v.Columns,
		Rows:       rows,
		Search:     q.Search,
		Sort:       FormatSort(specs),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}
	if q.Path != "" {
		res.Links = pagination.Links(q.Path, page.Page, page.PageSize, page.TotalPages)
	}
	return res
}

// sortable drops the directives naming unknown or unsortable columns.
func (v View) sortable(specs []SortSpec) []SortSpec {
	out := make([]SortSpec, 0, len(specs))
	for _, s := range specs {
		if v.Columns.Sortable(s.Field) {
			out = append(out, s)
		}
	}
	return out
}

// RenderRow renders every column of rec.
func (v View) RenderRow(rec Record) Row {
	cells := make(map[string]any, len(v.Columns))
	for _, c := range v.Columns {
		cells[c.Key] = c.Cell(rec)
	}
	return Row{ID: rec.ID(), Cells: cells}
}

// Limits bounds the page size a client may request.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultLimits mirrors the pagination package defaults.
var DefaultLimits = Limits{DefaultSize: pagination.DefaultPageSize, MaxSize: pagination.MaxPageSize}

// Query reads the browse query from c within l.
func (l Limits) Query(c echo.Context) Query {
	return QueryFromContext(c, l.DefaultSize, l.MaxSize)
}
