package common

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{Data: data}
}

type Pagination struct {
	Total int64 `json:"total"`
}

type SearchResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewSearchResponse(data interface{}, total int64) *SearchResponse {
	return &SearchResponse{
		Data:       data,
		Pagination: Pagination{Total: total},
	}
}

// ListResponse carries list data together with an optional error banner.
// When a load fails, the previous (or empty) list is still delivered so
// the view keeps rendering instead of blanking.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error,omitempty"`
}

func NewListResponse(data interface{}, banner string) *ListResponse {
	return &ListResponse{Data: data, Error: banner}
}
