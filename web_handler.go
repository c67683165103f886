package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pivolan/giveaway_stats/domain/models"
	"github.com/pivolan/giveaway_stats/gamerpower"
	"github.com/pivolan/giveaway_stats/logger"
	"github.com/pivolan/giveaway_stats/plot"
	"github.com/pivolan/giveaway_stats/report"
	"github.com/pivolan/giveaway_stats/stats"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, errorEnvelope{Error: apiError{Message: msg, Code: code}})
}

// respondFailure maps a sentinel error onto an HTTP status.
func respondFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stats.ErrInvalidArgument), errors.Is(err, gamerpower.ErrFilter):
		respondError(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.Is(err, stats.ErrParse):
		respondError(c, http.StatusUnprocessableEntity, "parse_error", err)
	case errors.Is(err, report.ErrUnknownChart):
		respondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, plot.ErrNoData):
		respondError(c, http.StatusNotFound, "no_data", err)
	default:
		respondError(c, http.StatusInternalServerError, "internal", err)
	}
}

type webHandler struct {
	source recordSource
	log    *logger.Logger
}

func setupRouter(source recordSource, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	h := &webHandler{source: source, log: log}
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api/v1")
	{
		api.GET("/giveaways", h.giveaways)
		api.GET("/charts/:name", h.chart)
		api.GET("/report.html", h.reportPage)

		st := api.Group("/stats")
		st.GET("/groups/:key", h.groups)
		st.GET("/zscores", h.zScores)
		st.GET("/count", h.count)
		st.GET("/titles/extreme", h.titleExtreme)
		st.GET("/titles/lengths", h.titleLengths)
		st.GET("/worth", h.worth)
	}
	return r
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

// records loads the giveaways selected by the request's filter query.
func (h *webHandler) records(c *gin.Context) ([]models.GiveawayRecord, bool) {
	filter := gamerpower.Filter{
		Platform: c.Query("platform"),
		Type:     c.Query("type"),
		SortBy:   c.Query("sort-by"),
	}
	records, err := loadRecords(c.Request.Context(), h.source, filter, h.log)
	if err != nil {
		respondFailure(c, err)
		return nil, false
	}
	return records, true
}

func (h *webHandler) giveaways(c *gin.Context) {
	records, ok := h.records(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, records)
}

type groupRow struct {
	Key   string   `json:"key"`
	Games int      `json:"games"`
	Mean  *float64 `json:"mean"`
	Std   *float64 `json:"std"`
	Min   *float64 `json:"min"`
	P25   *float64 `json:"p25"`
	P50   *float64 `json:"p50"`
	P75   *float64 `json:"p75"`
	Max   *float64 `json:"max"`
}

func (h *webHandler) groups(c *gin.Context) {
	key, err := stats.ParseGroupKey(c.Param("key"))
	if err != nil {
		respondFailure(c, err)
		return
	}
	records, ok := h.records(c)
	if !ok {
		return
	}
	table, err := stats.GroupSummary(records, key)
	if err != nil {
		respondFailure(c, err)
		return
	}

	rows := make([]groupRow, 0, len(table.Rows))
	for _, g := range table.Rows {
		rows = append(rows, groupRow{
			Key:   g.Key,
			Games: g.Games,
			Mean:  models.Nullable(g.Mean),
			Std:   models.Nullable(g.Std),
			Min:   models.Nullable(g.Min),
			P25:   models.Nullable(g.P25),
			P50:   models.Nullable(g.P50),
			P75:   models.Nullable(g.P75),
			Max:   models.Nullable(g.Max),
		})
	}
	c.JSON(http.StatusOK, gin.H{"grouped_by": table.GroupedBy, "rows": rows})
}

type zScoreRow struct {
	ID     int64    `json:"id"`
	Type   string   `json:"type"`
	Users  int64    `json:"users"`
	ZScore *float64 `json:"zscore"`
}

func (h *webHandler) zScores(c *gin.Context) {
	records, ok := h.records(c)
	if !ok {
		return
	}
	scores := stats.ZScores(records)
	rows := make([]zScoreRow, 0, len(scores))
	for _, z := range scores {
		rows = append(rows, zScoreRow{ID: z.ID, Type: z.Type, Users: z.Users, ZScore: models.Nullable(z.ZScore)})
	}
	c.JSON(http.StatusOK, rows)
}

// count takes the type to count from "type"; the fetch itself is left unfiltered
// so that the full set is counted.
func (h *webHandler) count(c *gin.Context) {
	giveawayType := c.Query("type")
	records, err := loadRecords(c.Request.Context(), h.source, gamerpower.Filter{
		Platform: c.Query("platform"),
		SortBy:   c.Query("sort-by"),
	}, h.log)
	if err != nil {
		respondFailure(c, err)
		return
	}
	n, err := stats.CountByType(records, giveawayType)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": giveawayType, "count": n})
}

func (h *webHandler) titleExtreme(c *gin.Context) {
	mode, err := stats.ParseExtremeMode(c.DefaultQuery("mode", string(stats.ExtremeMax)))
	if err != nil {
		respondFailure(c, err)
		return
	}
	records, ok := h.records(c)
	if !ok {
		return
	}
	title, err := stats.TitleExtreme(records, mode)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": mode, "title": title, "length": len([]rune(title))})
}

func (h *webHandler) titleLengths(c *gin.Context) {
	records, ok := h.records(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stats.TitleLengthByType(records))
}

type worthRow struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Worth      string  `json:"worth"`
	WorthValue float64 `json:"worth_value"`
	Users      int64   `json:"users"`
	Type       string  `json:"type"`
	Platforms  string  `json:"platforms"`
}

func (h *webHandler) worth(c *gin.Context) {
	ascending, err := strconv.ParseBool(c.DefaultQuery("ascending", "true"))
	if err != nil {
		respondFailure(c, fmt.Errorf("%w: ascending %q is not a boolean", stats.ErrInvalidArgument, c.Query("ascending")))
		return
	}
	records, ok := h.records(c)
	if !ok {
		return
	}
	ranked, err := stats.WorthRanked(records, ascending)
	if err != nil {
		respondFailure(c, err)
		return
	}
	rows := make([]worthRow, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, worthRow{
			ID:         r.ID,
			Title:      r.Title,
			Worth:      r.Worth,
			WorthValue: r.WorthValue,
			Users:      r.Users,
			Type:       r.Type,
			Platforms:  r.Platforms,
		})
	}
	c.JSON(http.StatusOK, rows)
}

func (h *webHandler) buildReport(c *gin.Context) (*report.Report, bool) {
	records, ok := h.records(c)
	if !ok {
		return nil, false
	}
	r, err := report.Build(records)
	if err != nil {
		respondFailure(c, err)
		return nil, false
	}
	return r, true
}

func (h *webHandler) chart(c *gin.Context) {
	r, ok := h.buildReport(c)
	if !ok {
		return
	}
	b, err := report.RenderChart(r, c.Param("name"))
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *webHandler) reportPage(c *gin.Context) {
	r, ok := h.buildReport(c)
	if !ok {
		return
	}
	var page bytes.Buffer
	if err := report.WriteHTML(&page, r); err != nil {
		respondFailure(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}

// runServer serves handler on addr until ctx is cancelled.
func runServer(ctx context.Context, addr string, handler http.Handler, log *logger.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
