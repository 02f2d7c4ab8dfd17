package config

import "github.com/jonathan/career-coach/internal/types"

// Built-in tables used when no configuration documents are supplied. The
// global/any/any key doubles as the fallback for unknown (industry, role,
// seniority) combinations.

func defaultBenchmarkKey() *types.BenchmarkKey {
	return &types.BenchmarkKey{Industry: "global", Role: "any", Seniority: "any"}
}

// DefaultThresholdTables returns the built-in elite benchmark tables.
func DefaultThresholdTables() []types.BenchmarkThresholds {
	globalDims := map[string][]float64{
		types.DimContentQuality:        {0.70, 0.76, 0.82, 0.88, 0.94},
		types.DimStructureOptimization: {0.68, 0.74, 0.80, 0.86, 0.93},
		types.DimIndustryAlignment:     {0.65, 0.72, 0.79, 0.86, 0.93},
		types.DimAchievementImpact:     {0.62, 0.70, 0.78, 0.86, 0.94},
		types.DimCommunicationClarity:  {0.72, 0.78, 0.84, 0.90, 0.95},
		types.DimPositioningAlignment:  {0.60, 0.68, 0.76, 0.84, 0.92},
		types.DimOverall:               {0.68, 0.74, 0.80, 0.87, 0.94},
	}

	seniorEngDims := map[string][]float64{
		types.DimContentQuality:        {0.74, 0.79, 0.85, 0.90, 0.95},
		types.DimStructureOptimization: {0.71, 0.77, 0.83, 0.88, 0.94},
		types.DimIndustryAlignment:     {0.70, 0.76, 0.82, 0.88, 0.94},
		types.DimAchievementImpact:     {0.68, 0.75, 0.82, 0.88, 0.95},
		types.DimCommunicationClarity:  {0.74, 0.80, 0.86, 0.91, 0.96},
		types.DimPositioningAlignment:  {0.65, 0.72, 0.79, 0.86, 0.93},
		types.DimOverall:               {0.72, 0.78, 0.83, 0.89, 0.95},
	}

	return []types.BenchmarkThresholds{
		{Key: *defaultBenchmarkKey(), Dimensions: globalDims},
		{
			Key:        types.BenchmarkKey{Industry: "technology", Role: "engineering", Seniority: "senior"},
			Dimensions: seniorEngDims,
		},
	}
}

// DefaultATSProfileSet returns the built-in ATS system profiles and the
// shared keyword list used for density scoring.
func DefaultATSProfileSet() *types.ATSProfileSet {
	return &types.ATSProfileSet{
		Keywords: []string{
			"led", "managed", "built", "designed", "delivered", "launched",
			"implemented", "optimized", "reduced", "increased", "improved",
			"engineering", "product", "revenue", "customers", "team",
			"architecture", "performance", "migration", "automation",
		},
		Profiles: []types.ATSSystemProfile{
			{
				Name:                      "workday",
				MaxLength:                 6000,
				OptimalKeywordDensity:     0.045,
				PenaltyFactor:             1.5,
				UnsupportedFormatFeatures: []string{"tables", "text_boxes"},
			},
			{
				Name:                      "greenhouse",
				MaxLength:                 8000,
				OptimalKeywordDensity:     0.04,
				PenaltyFactor:             1.0,
				UnsupportedFormatFeatures: []string{"images", "graphics"},
			},
			{
				Name:                      "lever",
				MaxLength:                 7000,
				OptimalKeywordDensity:     0.05,
				PenaltyFactor:             1.0,
				UnsupportedFormatFeatures: []string{"columns", "headers_footers"},
			},
			{
				Name:                      "taleo",
				MaxLength:                 5000,
				OptimalKeywordDensity:     0.055,
				PenaltyFactor:             2.0,
				UnsupportedFormatFeatures: []string{"tables", "images", "columns"},
			},
		},
	}
}
