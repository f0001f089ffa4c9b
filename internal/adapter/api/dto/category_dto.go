package dto

import (
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/category"
)

// CategoryRequest representa a requisição de categoria
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse representa a resposta de categoria
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse representa a resposta de lista de categorias
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int                `json:"total"`
}

// ToCategoryResponse converte uma categoria de domínio para o DTO de resposta
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias para o DTO de resposta
func ToCategoryListResponse(categories []*category.Category) CategoryListResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, ToCategoryResponse(c))
	}

	return CategoryListResponse{
		Items: items,
		Total: len(items),
	}
}
