package paginator

const (
	MinPageSize     = 1
	MaxPageSize     = 50
	DefaultPageSize = 10
)

// Pager tracks the current page over a collection of TotalRecords items.
// After every exported mutation Page lies in [1, TotalPages] and PageSize in
// [MinPageSize, MaxPageSize].
type Pager struct {
	Page         int
	PageSize     int
	TotalRecords int
	TotalPages   int
}

// New returns a pager on page 1 over an empty collection.
func New(pageSize int) Pager {
	p := Pager{Page: 1, PageSize: ClampPageSize(pageSize)}
	p.Recalculate(0)
	return p
}

// TotalPages returns ceil(n/size), floored to 1.
func TotalPages(n, size int) int {
	size = ClampPageSize(size)
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPageSize forces size into [MinPageSize, MaxPageSize].
func ClampPageSize(size int) int {
	if size < MinPageSize {
		return MinPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Recalculate sets the record count and clamps the page.
func (p *Pager) Recalculate(totalRecords int) {
	if totalRecords < 0 {
		totalRecords = 0
	}
	p.PageSize = ClampPageSize(p.PageSize)
	p.TotalRecords = totalRecords
	p.TotalPages = TotalPages(totalRecords, p.PageSize)
	p.clamp()
}

// Bounds returns the [start, end) slice indexes of the current page.
func (p Pager) Bounds() (start, end int) {
	start = (p.Page - 1) * p.PageSize
	if start > p.TotalRecords {
		start = p.TotalRecords
	}
	end = start + p.PageSize
	if end > p.TotalRecords {
		end = p.TotalRecords
	}
	return start, end
}

// Next moves forward one page; a no-op on the last page.
func (p *Pager) Next() {
	if p.Page < p.TotalPages {
		p.Page++
	}
}

// Prev moves back one page; a no-op on the first page.
func (p *Pager) Prev() {
	if p.Page > 1 {
		p.Page--
	}
}

func (p *Pager) First() { p.Page = 1 }

func (p *Pager) Last() { p.Page = p.TotalPages }

// SetPage jumps to page, clamped to the valid range.
func (p *Pager) SetPage(page int) {
	p.Page = page
	p.clamp()
}

// SetPageSize changes the page size (clamped) and returns to page 1.
func (p *Pager) SetPageSize(size int) {
	p.PageSize = ClampPageSize(size)
	p.Page = 1
	p.Recalculate(p.TotalRecords)
}

// IncreasePageSize grows the page size by one unless already at MaxPageSize.
func (p *Pager) IncreasePageSize() {
	if p.PageSize < MaxPageSize {
		p.SetPageSize(p.PageSize + 1)
	}
}

// DecreasePageSize shrinks the page size by one unless already at MinPageSize.
func (p *Pager) DecreasePageSize() {
	if p.PageSize > MinPageSize {
		p.SetPageSize(p.PageSize - 1)
	}
}

func (p *Pager) clamp() {
	if p.Page > p.TotalPages {
		p.Page = p.TotalPages
	}
	if p.Page < 1 {
		p.Page = 1
	}
}

// Slice returns the items of items on the current page of p.
func Slice[T any](p Pager, items []T) []T {
	start, end := p.Bounds()
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
