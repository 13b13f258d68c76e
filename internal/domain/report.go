package domain

// PerformanceReport é o resultado completo entregue aos relatórios
type PerformanceReport struct {
	Aggregate    AggregateMetrics
	Skus         []SkuSummary
	MonthlySales []MonthlySales
	MonthlyAds   []MonthlyAdSummary
	Breakdown    []MonthlyBreakdown
	ReturnsCount int
}
