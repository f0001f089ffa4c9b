package dto

// ErrorResponse é o envelope de erro das respostas da API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse é o envelope das operações sem corpo de resposta próprio
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination carrega a página e o tamanho já normalizados dos parâmetros
// page e size das listagens
type Pagination struct {
	Page int
	Size int
}

// NewPagination normaliza os parâmetros de paginação: página mínima 1,
// tamanho padrão 10 e teto de 100
func NewPagination(page, size int) Pagination {
	if page < 1 {
		page = 1
	}

	if size < 1 {
		size = 10
	} else if size > 100 {
		size = 100
	}

	return Pagination{
		Page: page,
		Size: size,
	}
}

// Offset retorna o deslocamento da página para a cláusula OFFSET
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// totalPages calcula o total de páginas de uma listagem
func totalPages(total, size int) int {
	if size <= 0 {
		return 0
	}

	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}

	return pages
}
