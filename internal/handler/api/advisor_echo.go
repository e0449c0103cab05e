package api

import (
	"github.com/nadajinny/AI-Challenge-MVP/internal/domain/models"
	"github.com/nadajinny/AI-Challenge-MVP/internal/handler/ws"
	"github.com/nadajinny/AI-Challenge-MVP/internal/usecase"
	xhttp "github.com/nadajinny/AI-Challenge-MVP/pkg/http"
	xlogger "github.com/nadajinny/AI-Challenge-MVP/pkg/logger"
	"github.com/nadajinny/AI-Challenge-MVP/pkg/util"

	"github.com/labstack/echo/v4"
)

// AdvisorEchoHandler exposes the scoring components over JSON HTTP.
type AdvisorEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.AdvisorAggregator
	chatWS *ws.ChatSocket
}

func NewAdvisorEchoHandler(logger *xlogger.Logger, agg *usecase.AdvisorAggregator, chatWS *ws.ChatSocket) *AdvisorEchoHandler {
	return &AdvisorEchoHandler{logger: logger, agg: agg, chatWS: chatWS}
}

func (h *AdvisorEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/stress/score", h.StressScore)
	g.GET("/stress/tips", h.StressTips)
	g.GET("/finance/overview", h.FinanceOverview)
	g.POST("/finance/overview", h.FinanceOverview)
	g.POST("/jobs/rank", h.RankJobs)
	g.POST("/chat/reply", h.ChatReply)

	if h.chatWS != nil {
		e.GET("/ws/chat", h.chatWS.Handle)
	}
}

func (h *AdvisorEchoHandler) StressScore(c echo.Context) error {
	req := &models.StressScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report := h.agg.StressScore(c.Request().Context(), req.Text, req.Negatives, req.Positives)
	return xhttp.SuccessResponse(c, report)
}

func (h *AdvisorEchoHandler) StressTips(c echo.Context) error {
	score := util.ParseIntDefault(c.QueryParam("score"), 50)
	score = util.Clamp(score, 0, 100)

	return xhttp.SuccessResponse(c, map[string]interface{}{
		"score": score,
		"tips":  h.agg.StressTips(score),
	})
}

func (h *AdvisorEchoHandler) FinanceOverview(c echo.Context) error {
	req := &models.FinanceOverviewRequest{}
	if c.Request().Method == "POST" {
		if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
			return xhttp.BadRequestResponse(c, verr)
		}
	}

	overview := h.agg.FinanceOverview(c.Request().Context(), req.Transactions)
	return xhttp.SuccessResponse(c, overview)
}

func (h *AdvisorEchoHandler) RankJobs(c echo.Context) error {
	req := &models.RankJobsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ranked := h.agg.RankJobs(c.Request().Context(), req.Jobs, req.Profile, req.Priorities)
	return xhttp.SuccessResponse(c, ranked)
}

func (h *AdvisorEchoHandler) ChatReply(c echo.Context) error {
	req := &models.ChatReplyRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	reply := h.agg.ChatReply(c.Request().Context(), req.Text, req.LastResult)
	return xhttp.SuccessResponse(c, reply)
}
