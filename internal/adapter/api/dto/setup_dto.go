package dto

import (
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/business"
)

// SetupRequest representa a requisição de criação de negócio com usuário administrador
type SetupRequest struct {
	BusinessName     string  `json:"business_name" binding:"required"`
	BusinessDocument string  `json:"business_document" binding:"required"`
	BusinessEmail    string  `json:"business_email"`
	BusinessPhone    string  `json:"business_phone"`
	TaxRate          float64 `json:"tax_rate" binding:"gte=0,lte=1"`
	TaxInclusive     bool    `json:"tax_inclusive"`
	AdminName        string  `json:"admin_name" binding:"required"`
	AdminEmail       string  `json:"admin_email" binding:"required,email"`
	AdminPassword    string  `json:"admin_password" binding:"required,min=6"`
}

// BusinessRequest representa a requisição de atualização de negócio
type BusinessRequest struct {
	Name         string  `json:"name" binding:"required"`
	Document     string  `json:"document" binding:"required"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	TaxRate      float64 `json:"tax_rate" binding:"gte=0,lte=1"`
	TaxInclusive bool    `json:"tax_inclusive"`
}

// BusinessResponse representa a resposta de negócio
type BusinessResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Document     string          `json:"document"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	TaxRate      float64         `json:"tax_rate"`
	TaxInclusive bool            `json:"tax_inclusive"`
	Status       business.Status `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SetupResponse representa a resposta da criação de negócio
type SetupResponse struct {
	Business BusinessResponse `json:"business"`
	Admin    UserResponse     `json:"admin"`
}

// ToBusinessResponse converte um negócio de domínio para o DTO de resposta
func ToBusinessResponse(b *business.Business) BusinessResponse {
	return BusinessResponse{
		ID:           b.ID,
		Name:         b.Name,
		Document:     b.Document,
		Email:        b.Email,
		Phone:        b.Phone,
		TaxRate:      b.TaxRate,
		TaxInclusive: b.TaxInclusive,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
