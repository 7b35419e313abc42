package domain

// DiseaseCode identifies an entry of the disease catalog. The set of codes is
// closed: anything not listed in DiseaseCodes resolves to DiseaseNone.
type DiseaseCode string

const (
	DiseaseNone                  DiseaseCode = "none"
	DiseaseMinor                 DiseaseCode = "minor"
	DiseaseHeartFailure          DiseaseCode = "heart_failure"
	DiseaseCoronary              DiseaseCode = "coronary"
	DiseaseStroke                DiseaseCode = "stroke"
	DiseaseArrhythmia            DiseaseCode = "arrhythmia"
	DiseaseCancerRemission       DiseaseCode = "cancer_remission"
	DiseaseCancerProstate        DiseaseCode = "cancer_prostate"
	DiseaseCancerBreast          DiseaseCode = "cancer_breast"
	DiseaseCancerColon           DiseaseCode = "cancer_colon"
	DiseaseCancerLung            DiseaseCode = "cancer_lung"
	DiseaseCancerPancreas        DiseaseCode = "cancer_pancreas"
	DiseaseCOPDModerate          DiseaseCode = "copd_moderate"
	DiseaseCOPDSevere            DiseaseCode = "copd_severe"
	DiseasePulmonaryFibrosis     DiseaseCode = "pulmonary_fibrosis"
	DiseaseDiabetesControlled    DiseaseCode = "diabetes_controlled"
	DiseaseDiabetesComplications DiseaseCode = "diabetes_complications"
	DiseaseRenalFailure          DiseaseCode = "renal_failure"
	DiseaseCirrhosis             DiseaseCode = "cirrhosis"
	DiseaseAlzheimerEarly        DiseaseCode = "alzheimer_early"
	DiseaseAlzheimerAdvanced     DiseaseCode = "alzheimer_advanced"
	DiseaseParkinson             DiseaseCode = "parkinson"
	DiseaseALS                   DiseaseCode = "als"
)

// DiseaseCodes lists every catalog code in display order
var DiseaseCodes = []DiseaseCode{
	DiseaseNone,
	DiseaseMinor,
	DiseaseHeartFailure,
	DiseaseCoronary,
	DiseaseStroke,
	DiseaseArrhythmia,
	DiseaseCancerRemission,
	DiseaseCancerProstate,
	DiseaseCancerBreast,
	DiseaseCancerColon,
	DiseaseCancerLung,
	DiseaseCancerPancreas,
	DiseaseCOPDModerate,
	DiseaseCOPDSevere,
	DiseasePulmonaryFibrosis,
	DiseaseDiabetesControlled,
	DiseaseDiabetesComplications,
	DiseaseRenalFailure,
	DiseaseCirrhosis,
	DiseaseAlzheimerEarly,
	DiseaseAlzheimerAdvanced,
	DiseaseParkinson,
	DiseaseALS,
}

// Known reports whether c belongs to the catalog
func (c DiseaseCode) Known() bool {
	for _, known := range DiseaseCodes {
		if c == known {
			return true
		}
	}
	return false
}

// Resolve maps unknown and empty codes to DiseaseNone
func (c DiseaseCode) Resolve() DiseaseCode {
	if c.Known() {
		return c
	}
	return DiseaseNone
}
