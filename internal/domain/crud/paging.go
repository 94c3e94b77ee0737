package crud

import "math"

// maxOffset 偏移量上限，超出后的页码一律视为越界空页
const maxOffset = math.MaxInt32

// Paging 分页参数
type Paging struct {
	Page     int
	PageSize int
}

// Normalize 补全默认值并限制最大页大小
func (p Paging) Normalize(defaultSize, maxSize int) Paging {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	if last := maxPage(p.PageSize); p.Page > last {
		p.Page = last
	}
	return p
}

// maxPage 保证(page-1)*pageSize不超过maxOffset
func maxPage(pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	return maxOffset/pageSize + 1
}

// Offset 计算偏移量 offset = (page-1) * pageSize
func (p Paging) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page > maxPage(p.PageSize) {
		return maxOffset
	}
	return (p.Page - 1) * p.PageSize
}

// PageResult 分页结果
type PageResult[E any] struct {
	Items    []*E
	Total    int64
	Page     int
	PageSize int
}

// TotalPages 总页数
func (r *PageResult[E]) TotalPages() int {
	if r.PageSize <= 0 {
		return 0
	}
	pages := int(r.Total) / r.PageSize
	if int(r.Total)%r.PageSize != 0 {
		pages++
	}
	return pages
}
