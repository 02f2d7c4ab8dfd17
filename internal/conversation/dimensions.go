package conversation

import "github.com/jonathan/career-coach/internal/types"

// deriveDimensionScores maps the analysis signals of one turn onto the six
// benchmark dimensions. The quality sub-scores carry most dimensions
// directly; achievement_impact blends density with mined confidence, and
// structure_optimization uses the ATS aggregate when one was computed.
func deriveDimensionScores(qs *types.QualityScore, achievements []types.Achievement, atsScores *types.ATSScoreSet) map[string]float64 {
	impact := qs.AchievementDensity
	if maxConf := maxConfidence(achievements); maxConf > 0 {
		impact = 0.5*qs.AchievementDensity + 0.5*maxConf
	}

	structure := (qs.Clarity + qs.Specificity) / 2
	if atsScores != nil {
		structure = atsScores.Aggregate
	}

	return map[string]float64{
		types.DimContentQuality:        qs.Overall,
		types.DimCommunicationClarity:  qs.Clarity,
		types.DimIndustryAlignment:     qs.Specificity,
		types.DimPositioningAlignment:  qs.Quantification,
		types.DimAchievementImpact:     impact,
		types.DimStructureOptimization: structure,
	}
}

func maxConfidence(achievements []types.Achievement) float64 {
	max := 0.0
	for i := range achievements {
		if achievements[i].Confidence > max {
			max = achievements[i].Confidence
		}
	}
	return max
}
