package billverify

import "github.com/shopspring/decimal"

// HybridWeights controls how the matcher's hybrid re-rank blends its three
// signal components. Their exact numeric weighting is left open by the
// source specification; DESIGN.md records the defaults chosen here.
type HybridWeights struct {
	Semantic    float64
	Jaccard     float64
	Containment float64
}

// Config is the single injected configuration handle threaded through every
// component. There is no package-level global configuration anywhere in
// this module.
type Config struct {
	CategorySimilarityThreshold float64
	CategorySoftThreshold       float64
	ItemSimilarityThreshold     float64
	HybridAutoMatch             float64
	HybridLLMVerify             float64
	MinSimilarity               float64

	MaxLineItemAmount decimal.Decimal
	MaxGrandTotal     decimal.Decimal
	AmountTolerance   decimal.Decimal

	YClusterThreshold float64

	RateSheetDirectory string
	EmbeddingDim       int
	EmbeddingModel     string
	EmbeddingEndpoint  string

	AdjudicatorEndpoint string
	AdjudicatorModel    string

	PGVectorDSN string

	HybridWeights HybridWeights

	// ExcludePayments, when true (the default), drops payment events from
	// the persisted BillDocument entirely rather than merely isolating them.
	ExcludePayments bool
}

// DefaultConfig returns the enumerated defaults from the external
// interfaces section.
func DefaultConfig() *Config {
	return &Config{
		CategorySimilarityThreshold: 0.70,
		CategorySoftThreshold:       0.50,
		ItemSimilarityThreshold:     0.85,
		HybridAutoMatch:             0.60,
		HybridLLMVerify:             0.55,
		MinSimilarity:               0.50,

		MaxLineItemAmount: decimal.NewFromFloat(1e7),
		MaxGrandTotal:     decimal.NewFromFloat(1e8),
		AmountTolerance:   decimal.NewFromFloat(0.02),

		YClusterThreshold: 18,

		EmbeddingDim:      4096,
		EmbeddingModel:    "nomic-embed-text",
		EmbeddingEndpoint: "http://localhost:11434/api/embeddings",

		AdjudicatorEndpoint: "http://localhost:11434/api/chat",
		AdjudicatorModel:    "llama3",

		HybridWeights: HybridWeights{Semantic: 0.6, Jaccard: 0.2, Containment: 0.2},

		ExcludePayments: true,
	}
}
