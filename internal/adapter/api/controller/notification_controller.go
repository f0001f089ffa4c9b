package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/repository"
	notificationdomain "github.com/hugohenrick/pdv-varejo/internal/domain/notification"
	userdomain "github.com/hugohenrick/pdv-varejo/internal/domain/user"
	"github.com/hugohenrick/pdv-varejo/internal/infrastructure/stream"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/tenant"
)

const (
	streamPollInterval      = 3 * time.Second
	streamHeartbeatInterval = 15 * time.Second
	streamBatchSize         = 50
)

// NotificationController gerencia o log de notificações e o stream SSE
type NotificationController struct {
	notificationRepo notificationdomain.Repository
	registry         *stream.Registry
	logger           logger.Logger
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(notificationRepo notificationdomain.Repository, registry *stream.Registry, logger logger.Logger) *NotificationController {
	return &NotificationController{
		notificationRepo: notificationRepo,
		registry:         registry,
		logger:           logger,
	}
}

// List lista as notificações do negócio, mais recentes primeiro
func (c *NotificationController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	p := dto.NewPagination(page, size)

	onlyUnread := ctx.Query("unread") == "true"

	businessID := tenant.GetBusinessID(ctx)

	notifications, err := c.notificationRepo.List(ctx, businessID, onlyUnread, p.Size, p.Offset())
	if err != nil {
		c.logger.Error("erro ao listar notificações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notificações", err.Error()))
		return
	}

	unread, err := c.notificationRepo.CountUnread(ctx, businessID)
	if err != nil {
		c.logger.Error("erro ao contar notificações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, unread))
}

// MarkRead marca uma notificação como lida
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", ctx.Param("id")))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	if err := c.notificationRepo.MarkRead(ctx, businessID, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "notificação não encontrada", ""))
			return
		}
		c.logger.Error("erro ao marcar notificação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao marcar notificação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificação marcada como lida", nil))
}

// MarkAllRead marca todas as notificações do negócio como lidas
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)

	if err := c.notificationRepo.MarkAllRead(ctx, businessID); err != nil {
		c.logger.Error("erro ao marcar notificações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao marcar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notificações marcadas como lidas", nil))
}

// Stream abre a conexão SSE de notificações. A conexão é registrada no Redis e
// renovada por heartbeat; o log é consultado a partir do cursor lastId e cada
// notificação nova é emitida como evento nomeado pelo seu tipo. Falhas de
// consulta viram eventos error; o encerramento administrativo é observado
// entre ciclos.
func (c *NotificationController) Stream(ctx *gin.Context) {
	businessID := tenant.GetBusinessID(ctx)
	userID := tenant.GetUserID(ctx)

	lastID := streamCursor(ctx)

	connID, err := c.registry.Register(ctx, businessID, userID)
	if err != nil {
		c.logger.Error("erro ao registrar conexão de stream", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao abrir stream", err.Error()))
		return
	}
	defer func() {
		if err := c.registry.Unregister(ctx, businessID, connID); err != nil {
			c.logger.Warn("erro ao remover conexão de stream", "conn_id", connID, "error", err)
		}
	}()

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	ctx.SSEvent("connected", gin.H{"connection_id": connID})
	ctx.Writer.Flush()

	c.logger.Info("stream aberto", "conn_id", connID, "business_id", businessID, "last_id", lastID)

	poll := time.NewTicker(streamPollInterval)
	defer poll.Stop()
	heartbeat := time.NewTicker(streamHeartbeatInterval)
	defer heartbeat.Stop()

	clientGone := ctx.Request.Context().Done()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false

		case <-heartbeat.C:
			if err := c.registry.Heartbeat(ctx, connID); err != nil {
				c.logger.Warn("erro ao renovar heartbeat", "conn_id", connID, "error", err)
			}
			closed, err := c.registry.IsClosed(ctx, connID)
			if err != nil {
				c.logger.Warn("erro ao verificar conexão", "conn_id", connID, "error", err)
				return true
			}
			if closed {
				c.logger.Info("stream encerrado administrativamente", "conn_id", connID)
				return false
			}
			ctx.SSEvent("heartbeat", gin.H{"at": time.Now().Format(time.RFC3339)})
			return true

		case <-poll.C:
			notifications, err := c.notificationRepo.FindAfter(ctx, businessID, lastID, streamBatchSize)
			if err != nil {
				c.logger.Warn("erro ao consultar notificações para o stream", "conn_id", connID, "error", err)
				ctx.SSEvent("error", gin.H{"message": "erro ao consultar notificações"})
				return true
			}
			for _, n := range notifications {
				payload, err := json.Marshal(dto.ToNotificationResponse(n))
				if err != nil {
					c.logger.Warn("erro ao codificar notificação", "id", n.ID, "error", err)
					ctx.SSEvent("error", gin.H{"message": "erro ao codificar notificação", "id": n.ID})
					continue
				}
				ctx.SSEvent(streamEventName(n.Type), string(payload))
				lastID = n.ID
			}
			return true
		}
	})
}

// streamCursor lê o cursor inicial do stream. O parâmetro é lastId; a grafia
// last_id também é aceita. Valores ausentes ou inválidos recomeçam do zero.
func streamCursor(ctx *gin.Context) int64 {
	raw := ctx.Query("lastId")
	if raw == "" {
		raw = ctx.Query("last_id")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// streamEventName resolve o nome do evento SSE pelo tipo da notificação.
// Estoque baixo tem evento próprio; os demais tipos saem como notification.
func streamEventName(t notificationdomain.Type) string {
	if t == notificationdomain.TypeLowStock {
		return "low_stock"
	}
	return "notification"
}

// Connections lista as conexões de stream ativas do negócio.
// Restrito a administradores e gerentes.
func (c *NotificationController) Connections(ctx *gin.Context) {
	if !isManagerOrAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso restrito", ""))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	conns, err := c.registry.List(ctx, businessID)
	if err != nil {
		c.logger.Error("erro ao listar conexões", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar conexões", err.Error()))
		return
	}

	items := make([]dto.ConnectionResponse, 0, len(conns))
	for _, conn := range conns {
		items = append(items, dto.ConnectionResponse{
			ID:          conn.ID,
			UserID:      conn.UserID,
			ConnectedAt: conn.StartedAt,
		})
	}

	ctx.JSON(http.StatusOK, dto.ConnectionListResponse{Items: items, Total: len(items)})
}

// ForceCloseConnection marca uma conexão de stream para encerramento.
// Restrito a administradores e gerentes.
func (c *NotificationController) ForceCloseConnection(ctx *gin.Context) {
	if !isManagerOrAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso restrito", ""))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	if err := c.registry.ForceClose(ctx, businessID, ctx.Param("id")); err != nil {
		if errors.Is(err, stream.ErrConnectionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conexão não encontrada", ""))
			return
		}
		c.logger.Error("erro ao encerrar conexão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao encerrar conexão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("conexão marcada para encerramento", nil))
}

// CleanupConnections recolhe do registro as conexões expiradas do negócio
func (c *NotificationController) CleanupConnections(ctx *gin.Context) {
	if !isManagerOrAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "acesso restrito", ""))
		return
	}

	businessID := tenant.GetBusinessID(ctx)

	removed, err := c.registry.Cleanup(ctx, businessID)
	if err != nil {
		c.logger.Error("erro ao limpar conexões", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao limpar conexões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("limpeza concluída", gin.H{"removed": removed}))
}

// isManagerOrAdmin verifica se o usuário autenticado é gerente ou administrador
func isManagerOrAdmin(ctx *gin.Context) bool {
	role := ctx.GetString("role")
	return role == string(userdomain.RoleAdmin) || role == string(userdomain.RoleManager)
}
