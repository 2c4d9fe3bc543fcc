package db

import "sort"

// MonthSummary lists the metric types stored for one period.
type MonthSummary struct {
	Period  string   `json:"period"`
	Metrics []string `json:"metrics"`
}

// GroupByPeriod folds scanned records into one summary per period. Metric
// types keep first-seen order; summaries sort ascending by period string
// (lexicographic on YYYY-MM equals chronological).
func GroupByPeriod(records []MetricRecord) []MonthSummary {
	index := make(map[string]int)
	summaries := make([]MonthSummary, 0)

	for _, rec := range records {
		i, ok := index[rec.Period]
		if !ok {
			index[rec.Period] = len(summaries)
			summaries = append(summaries, MonthSummary{
				Period:  rec.Period,
				Metrics: []string{rec.MetricType},
			})
			continue
		}
		if !containsMetric(summaries[i].Metrics, rec.MetricType) {
			summaries[i].Metrics = append(summaries[i].Metrics, rec.MetricType)
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Period < summaries[j].Period
	})
	return summaries
}

func containsMetric(metrics []string, metricType string) bool {
	for _, m := range metrics {
		if m == metricType {
			return true
		}
	}
	return false
}
