package domain

// Metadata describes a returned page. Without a total count the neighbour
// checks are heuristics: a full page only suggests that another one follows.
type Metadata struct {
	CurrentPage int
	PageSize    int
	Count       int
}

func NewMetadata(count, page, pageSize int) *Metadata {
	return &Metadata{
		CurrentPage: page,
		PageSize:    pageSize,
		Count:       count,
	}
}

func (m Metadata) HasPrevious() bool {
	return m.CurrentPage > 1
}

func (m Metadata) HasNext() bool {
	return m.PageSize > 0 && m.Count == m.PageSize
}
