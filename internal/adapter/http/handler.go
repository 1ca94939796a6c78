package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"orebound/internal/app/launch"
	"orebound/internal/app/observe"
	"orebound/internal/app/ports"
	"orebound/internal/app/snapshot"
	"orebound/internal/app/tick"
	"orebound/internal/domain/game"
)

const gameIDHeader = "X-Game-ID"

// DefaultGameID serves clients that drive a single game and send no header.
const DefaultGameID = "default"

type Handler struct {
	ObserveUC  observe.UseCase
	LaunchUC   launch.UseCase
	TickUC     tick.UseCase
	SnapshotUC snapshot.UseCase
	NewsLog    ports.NewsLogRepository
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	g := s.Group("/api/game")
	g.POST("/observe", h.observe)
	g.POST("/launch", h.launch)
	g.POST("/tick", h.tick)
	g.GET("/news", h.news)
	g.GET("/snapshot", h.exportSnapshot)
	g.POST("/snapshot", h.importSnapshot)

	s.GET("/ops/kpi", h.kpi)
}

func gameID(ctx *app.RequestContext) string {
	id := strings.TrimSpace(string(ctx.GetHeader(gameIDHeader)))
	if id == "" {
		return DefaultGameID
	}
	return id
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{GameID: gameID(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type launchRequest struct {
	TargetID   string `json:"target_id"`
	ProviderID string `json:"provider_id"`
	CrewID     string `json:"crew_id"`
	SecurityID string `json:"security_id,omitempty"`
	Contract   bool   `json:"contract,omitempty"`
}

func (h Handler) launch(c context.Context, ctx *app.RequestContext) {
	var body launchRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.LaunchUC.Execute(c, launch.Request{
		GameID:     gameID(ctx),
		TargetID:   body.TargetID,
		ProviderID: body.ProviderID,
		CrewID:     body.CrewID,
		SecurityID: body.SecurityID,
		Contract:   body.Contract,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	// Expected rejections ride a 200 with accepted=false.
	ctx.JSON(consts.StatusOK, resp)
}

type tickRequest struct {
	Days float64 `json:"days"`
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TickUC.Execute(c, tick.Request{GameID: gameID(ctx), Days: body.Days})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) news(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	items, err := h.NewsLog.ListByGameID(c, gameID(ctx), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"news": items})
}

func (h Handler) exportSnapshot(c context.Context, ctx *app.RequestContext) {
	data, err := h.SnapshotUC.Export(c, gameID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(consts.StatusOK, "application/json", data)
}

func (h Handler) importSnapshot(c context.Context, ctx *app.RequestContext) {
	err := h.SnapshotUC.Import(c, gameID(ctx), ctx.Request.Body())
	var restoreErr *game.RestoreError
	switch {
	case err == nil:
		ctx.JSON(consts.StatusOK, map[string]any{"restored": true})
	case errors.As(err, &restoreErr):
		ctx.JSON(consts.StatusOK, map[string]any{
			"restored":        true,
			"failed_sections": restoreErr.Sections,
		})
	default:
		writeError(ctx, err)
	}
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, launch.ErrInvalidRequest),
		errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, snapshot.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
