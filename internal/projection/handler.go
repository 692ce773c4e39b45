package projection

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	httperr "github.com/bigsister-lab/bigsister/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all query API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/activity/server", s.HandleServerActivity)
	r.GET("/v1/activity/channels/:channel_id", s.HandleChannelActivity)
	r.POST("/v1/activity/channels", s.HandleChannelSetActivity)

	r.GET("/v1/channels/:channel_id/daily", s.HandleDailyCounts)
	r.GET("/v1/channels/:channel_id/history", s.HandleChannelHistory)
	r.GET("/v1/channels/:channel_id/consistency", s.HandleConsistencyCohort)
	r.GET("/v1/channels/:channel_id/roles", s.HandleChannelRolePresence)

	r.GET("/v1/phrases/:phrase", s.HandlePhraseCount)
	r.GET("/v1/users/:user_id/posts", s.HandlePostCount)
	r.GET("/v1/users/:user_id/modlogs", s.HandleModlogCount)

	r.GET("/v1/leaderboard", s.HandleLeaderboard)
	r.GET("/v1/modscoreboard", s.HandleModScoreboard)
	r.POST("/v1/roles", s.HandleRolePresence)
}

type windowQuery struct {
	Window string `form:"window"`
}

// HandleServerActivity handles GET /v1/activity/server?window=
func (s *Service) HandleServerActivity(c *gin.Context) {
	var q windowQuery
	if !bindQuery(c, &q) {
		return
	}
	activity, err := s.ServerActivity(c.Request.Context(), q.Window)
	if err != nil {
		writeQueryError(c, "server_activity", err)
		return
	}
	c.JSON(http.StatusOK, ActivityResponse{Window: q.Window, Activity: activity})
}

// HandleChannelActivity handles GET /v1/activity/channels/:channel_id?window=
func (s *Service) HandleChannelActivity(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	var q windowQuery
	if !bindQuery(c, &q) {
		return
	}
	activity, err := s.ChannelActivity(c.Request.Context(), channelID, q.Window)
	if err != nil {
		writeQueryError(c, "channel_activity", err)
		return
	}
	c.JSON(http.StatusOK, ActivityResponse{Window: q.Window, ChannelID: channelID, Activity: activity})
}

// HandleChannelSetActivity handles POST /v1/activity/channels
func (s *Service) HandleChannelSetActivity(c *gin.Context) {
	var req ChannelSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid channel selection body",
			Details:   err.Error(),
		})
		return
	}
	channels, err := s.ChannelSetActivity(c.Request.Context(), req.Selector, req.Window)
	if err != nil {
		writeQueryError(c, "channel_set_activity", err)
		return
	}
	c.JSON(http.StatusOK, ChannelSetResponse{Window: req.Window, Channels: channels})
}

// HandleDailyCounts handles GET /v1/channels/:channel_id/daily
func (s *Service) HandleDailyCounts(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	days, err := s.DailyCounts(c.Request.Context(), channelID)
	if err != nil {
		writeQueryError(c, "daily_counts", err)
		return
	}
	c.JSON(http.StatusOK, DailyResponse{ChannelID: channelID, Days: days})
}

// HandleChannelHistory handles GET /v1/channels/:channel_id/history?window=&limit=
func (s *Service) HandleChannelHistory(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	var q struct {
		Window string `form:"window"`
		Limit  int    `form:"limit"`
	}
	if !bindQuery(c, &q) {
		return
	}
	messages, err := s.ChannelHistory(c.Request.Context(), channelID, q.Window, q.Limit)
	if err != nil {
		writeQueryError(c, "channel_history", err)
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{ChannelID: channelID, Window: q.Window, Messages: messages})
}

// HandleConsistencyCohort handles GET /v1/channels/:channel_id/consistency
func (s *Service) HandleConsistencyCohort(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	result, err := s.ConsistencyCohort(c.Request.Context(), channelID)
	if err != nil {
		writeQueryError(c, "consistency_cohort", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleChannelRolePresence handles GET /v1/channels/:channel_id/roles?window=
func (s *Service) HandleChannelRolePresence(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	var q windowQuery
	if !bindQuery(c, &q) {
		return
	}
	counts, err := s.ChannelRolePresence(c.Request.Context(), channelID, q.Window)
	if err != nil {
		writeQueryError(c, "channel_role_presence", err)
		return
	}
	c.JSON(http.StatusOK, RolesResponse{ChannelID: channelID, Window: q.Window, Roles: counts})
}

// HandlePhraseCount handles GET /v1/phrases/:phrase
func (s *Service) HandlePhraseCount(c *gin.Context) {
	phrase := c.Param("phrase")
	entries, err := s.PhraseCount(c.Request.Context(), phrase)
	if err != nil {
		writeQueryError(c, "phrase_count", err)
		return
	}
	c.JSON(http.StatusOK, RankingResponse{Phrase: phrase, Entries: entries})
}

// HandlePostCount handles GET /v1/users/:user_id/posts
func (s *Service) HandlePostCount(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	count, err := s.PostCount(c.Request.Context(), userID)
	if err != nil {
		writeQueryError(c, "post_count", err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{UserID: userID, Count: count})
}

// HandleModlogCount handles GET /v1/users/:user_id/modlogs?window=
func (s *Service) HandleModlogCount(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var q windowQuery
	if !bindQuery(c, &q) {
		return
	}
	count, err := s.ModlogCount(c.Request.Context(), userID, q.Window)
	if err != nil {
		writeQueryError(c, "modlog_count", err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Window: q.Window, UserID: userID, Count: count})
}

// HandleLeaderboard handles GET /v1/leaderboard?window=&n=
func (s *Service) HandleLeaderboard(c *gin.Context) {
	q := struct {
		Window string `form:"window"`
		N      int    `form:"n"`
	}{N: DefaultLeaderboardSize}
	if !bindQuery(c, &q) {
		return
	}
	entries, err := s.Leaderboard(c.Request.Context(), q.Window, q.N)
	if err != nil {
		writeQueryError(c, "leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, RankingResponse{Window: q.Window, Entries: entries})
}

// HandleModScoreboard handles GET /v1/modscoreboard?window=
func (s *Service) HandleModScoreboard(c *gin.Context) {
	var q windowQuery
	if !bindQuery(c, &q) {
		return
	}
	entries, err := s.ModScoreboard(c.Request.Context(), q.Window)
	if err != nil {
		writeQueryError(c, "mod_scoreboard", err)
		return
	}
	c.JSON(http.StatusOK, RankingResponse{Window: q.Window, Entries: entries})
}

// HandleRolePresence handles POST /v1/roles
func (s *Service) HandleRolePresence(c *gin.Context) {
	var req RolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid roles body",
			Details:   err.Error(),
		})
		return
	}
	counts, err := s.RolePresence(c.Request.Context(), req.Authors)
	if err != nil {
		writeQueryError(c, "role_presence", err)
		return
	}
	c.JSON(http.StatusOK, RolesResponse{Roles: counts})
}

func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpMalformedQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpValidationError,
			Message:   "Invalid path parameters",
			Details:   name + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

// writeQueryError maps a query failure to its HTTP shape. Validation errors
// are the caller's fault and logged at Debug; store failures once at Error.
func writeQueryError(c *gin.Context, op string, err error) {
	var (
		status  int
		errType string
	)
	switch {
	case errors.Is(err, ErrInvalidWindow):
		status, errType = http.StatusBadRequest, httperr.HttpInvalidWindowError
	case errors.Is(err, ErrEmptySelection):
		status, errType = http.StatusBadRequest, httperr.HttpEmptySelectionError
	case errors.Is(err, ErrInvalidQuery):
		status, errType = http.StatusBadRequest, httperr.HttpMalformedQueryError
	default:
		status, errType = httperr.StoreStatus(err)
	}

	if status == http.StatusBadRequest {
		slog.Debug("[Query] Rejected query", "op", op, "error", err)
	} else {
		slog.Error("[Query] Query failed", "op", op, "status", status, "error", err)
	}

	c.JSON(status, httperr.ErrorResponse{
		ErrorType: errType,
		Message:   "Query " + op + " failed",
		Details:   err.Error(),
	})
}
