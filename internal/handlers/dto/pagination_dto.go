package dto

// PageResponse é o envelope das listagens paginadas por keyset.
// NextCursor deve ser reenviado literalmente para buscar a próxima página.
type PageResponse[T any, C any] struct {
	Data       []T `json:"data"`
	NextCursor *C  `json:"next_cursor,omitempty"`
}
