package research

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

var (
	metricsSet = newMetricsSet()

	compilesTotal       = metricsSet.NewCounter("research_compiles_total")
	compileErrorsTotal  = metricsSet.NewCounter("research_compile_errors_total")
	cacheHitsTotal      = metricsSet.NewCounter("research_cache_hits_total")
	cacheMissesTotal    = metricsSet.NewCounter("research_cache_misses_total")
	executionsTotal     = metricsSet.NewCounter("research_executions_total")
	matchesTotal        = metricsSet.NewCounter("research_matches_total")
	backtrackLimitTotal = metricsSet.NewCounter("research_backtrack_limit_total")
	executeDuration     = metricsSet.NewHistogram("research_execute_duration_seconds")
)

func newMetricsSet() *metrics.Set {
	s := metrics.NewSet()
	metrics.RegisterSet(s)
	return s
}

// WriteMetrics writes the engine metrics to w in Prometheus text format.
//
// The metrics are also registered with the default metrics set, so
// metrics.WritePrometheus includes them.
func WriteMetrics(w io.Writer) {
	metricsSet.WritePrometheus(w)
}
