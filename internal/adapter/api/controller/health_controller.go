package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/database"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/stream"
	"github.com/redis/go-redis/v9"
)

// HealthController responde às sondagens de saúde da API
type HealthController struct {
	db  *database.PostgresDB
	rdb *redis.Client
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(db *database.PostgresDB, rdb *redis.Client) *HealthController {
	return &HealthController{db: db, rdb: rdb}
}

// Health verifica a saúde da API e de suas dependências
func (c *HealthController) Health(ctx *gin.Context) {
	status := "ok"
	code := http.StatusOK
	checks := gin.H{
		"database": "ok",
		"redis":    "ok",
	}

	if err := c.db.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	if err := stream.Ping(ctx, c.rdb); err != nil {
		checks["redis"] = err.Error()
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	ctx.JSON(code, gin.H{
		"status": status,
		"checks": checks,
	})
}
