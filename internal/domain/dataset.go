package domain

// Dataset reúne as quatro tabelas carregadas dos CSVs
type Dataset struct {
	Orders            []Order
	Returns           []ReturnRecord
	SponsoredProducts []SponsoredProductRecord
	SkuMetrics        []SkuMetricRecord
}
