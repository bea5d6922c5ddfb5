// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/gradebook/db"
	"github.com/danielhkuo/gradebook/models"
	"github.com/danielhkuo/gradebook/templates"
)

type StatsHandler struct {
	tpl *templates.Renderer
}

func NewStatsHandler(tpl *templates.Renderer) *StatsHandler {
	return &StatsHandler{tpl: tpl}
}

// Both reports group by course title: two courses sharing a title merge
// into one report row.
const avgQuery = `
	SELECT c.title, AVG(p.value) AS avg_score
	FROM points p
	JOIN course c ON p.id_course = c.id
	GROUP BY c.title
`

// The four CASE buckets are mutually exclusive and exhaustive, so each
// grade record counts exactly once.
const distributionQuery = `
	SELECT c.title,
	       COUNT(CASE WHEN p.value >= 90 THEN 1 END) AS count_a,
	       COUNT(CASE WHEN p.value >= 75 AND p.value < 90 THEN 1 END) AS count_b,
	       COUNT(CASE WHEN p.value >= 60 AND p.value < 75 THEN 1 END) AS count_c,
	       COUNT(CASE WHEN p.value < 60 THEN 1 END) AS count_f
	FROM points p
	JOIN course c ON p.id_course = c.id
	GROUP BY c.title
`

// Stats handles GET /stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := db.ScopeFrom(ctx).Acquire(ctx)
	if err != nil {
		serverError(w, "failed to acquire connection", err)
		return
	}

	var averages []models.CourseAverage
	if err := conn.SelectContext(ctx, &averages, avgQuery); err != nil {
		serverError(w, "failed to query course averages", err)
		return
	}

	var distributions []models.CourseDistribution
	if err := conn.SelectContext(ctx, &distributions, distributionQuery); err != nil {
		serverError(w, "failed to query score distribution", err)
		return
	}

	render(w, h.tpl, "stats.html", map[string]any{
		"Averages":      averages,
		"Distributions": distributions,
	})
}
