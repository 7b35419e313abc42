package mortality

import (
	"github.com/rgehrsitz/viagerpro/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultVersion identifies the built-in table set
const DefaultVersion = "INSEE 2024"

// Remaining life expectancy in years, ages 50 to 100
var (
	maleLifeExpectancy = []float64{
		31.0, 30.1, 29.2, 28.3, 27.4, 26.5, 25.7, 24.8, 24.0, 23.1,
		22.3, 21.5, 20.7, 19.9, 19.1, 18.4, 17.6, 16.9, 16.1, 15.4,
		14.7, 14.0, 13.3, 12.6, 12.0, 11.3, 10.7, 10.1, 9.5, 8.9,
		8.3, 7.8, 7.3, 6.8, 6.3, 5.9, 5.5, 5.1, 4.7, 4.4,
		4.1, 3.8, 3.5, 3.3, 3.0, 2.8, 2.6, 2.4, 2.3, 2.1,
		2.0,
	}

	femaleLifeExpectancy = []float64{
		35.3, 34.3, 33.4, 32.4, 31.5, 30.5, 29.6, 28.7, 27.7, 26.8,
		25.9, 25.0, 24.1, 23.2, 22.3, 21.4, 20.5, 19.7, 18.8, 18.0,
		17.1, 16.3, 15.5, 14.7, 13.9, 13.1, 12.4, 11.6, 10.9, 10.2,
		9.5, 8.8, 8.2, 7.6, 7.0, 6.5, 6.0, 5.5, 5.0, 4.6,
		4.3, 3.9, 3.6, 3.3, 3.1, 2.8, 2.6, 2.4, 2.2, 2.1,
		2.0,
	}

	// Share of the property value retained by the occupant, ages 50 to 100
	duhCoefficients = []float64{
		0.60, 0.59, 0.58, 0.57, 0.56, 0.55, 0.54, 0.53, 0.52, 0.51,
		0.50, 0.49, 0.48, 0.47, 0.46, 0.45, 0.44, 0.43, 0.42, 0.41,
		0.40, 0.39, 0.38, 0.37, 0.36, 0.35, 0.34, 0.33, 0.32, 0.31,
		0.30, 0.29, 0.28, 0.27, 0.26, 0.25, 0.24, 0.23, 0.22, 0.21,
		0.20, 0.19, 0.18, 0.17, 0.16, 0.15, 0.14, 0.13, 0.12, 0.11,
		0.10,
	}
)

type diseaseRow struct {
	code        domain.DiseaseCode
	name        string
	reduction   float64
	multiplier  float64
	description string
}

var diseaseCatalog = []diseaseRow{
	{domain.DiseaseNone, "Bonne santé", 0, 1.05, "Aucune pathologie connue"},
	{domain.DiseaseMinor, "Pathologies mineures", 0.5, 1.0, "Hypertension contrôlée, cholestérol..."},
	{domain.DiseaseHeartFailure, "Insuffisance cardiaque", 5, 0.65, "Espérance médiane: 5 ans après diagnostic"},
	{domain.DiseaseCoronary, "Maladie coronarienne", 4, 0.75, "Réduction moyenne de 4-6 ans"},
	{domain.DiseaseStroke, "AVC", 6, 0.60, "Risque de récidive, réduction significative"},
	{domain.DiseaseArrhythmia, "Arythmie sévère", 3, 0.80, "Fibrillation auriculaire, risque d'AVC"},
	{domain.DiseaseCancerRemission, "Cancer en rémission", 2, 0.90, "+5 ans sans récidive, bon pronostic"},
	{domain.DiseaseCancerProstate, "Cancer prostate", 2, 0.85, "Survie à 5 ans: 98% (stade localisé)"},
	{domain.DiseaseCancerBreast, "Cancer du sein", 3, 0.80, "Survie à 5 ans: 90% (global)"},
	{domain.DiseaseCancerColon, "Cancer colorectal", 5, 0.70, "Survie à 5 ans: 65% (tous stades)"},
	{domain.DiseaseCancerLung, "Cancer du poumon", 8, 0.40, "Survie à 5 ans: 20% (tous stades)"},
	{domain.DiseaseCancerPancreas, "Cancer du pancréas", 10, 0.20, "Survie à 5 ans: 10%, très agressif"},
	{domain.DiseaseCOPDModerate, "BPCO modérée", 3, 0.85, "Stade II, réduction de 3-5 ans"},
	{domain.DiseaseCOPDSevere, "BPCO sévère", 7, 0.55, "Stade III-IV, oxygénothérapie"},
	{domain.DiseasePulmonaryFibrosis, "Fibrose pulmonaire", 8, 0.45, "Survie médiane: 3-5 ans après diagnostic"},
	{domain.DiseaseDiabetesControlled, "Diabète contrôlé", 2, 0.90, "Réduction moyenne de 1-3 ans"},
	{domain.DiseaseDiabetesComplications, "Diabète complications", 6, 0.65, "Néphropathie, rétinopathie, neuropathie"},
	{domain.DiseaseRenalFailure, "Insuffisance rénale", 7, 0.55, "Dialyse: espérance 5-10 ans"},
	{domain.DiseaseCirrhosis, "Cirrhose hépatique", 8, 0.50, "Survie médiane: 2-12 ans selon stade"},
	{domain.DiseaseAlzheimerEarly, "Alzheimer précoce", 5, 0.65, "Espérance: 8-10 ans après diagnostic"},
	{domain.DiseaseAlzheimerAdvanced, "Alzheimer avancé", 8, 0.40, "Stade sévère, dépendance totale"},
	{domain.DiseaseParkinson, "Parkinson", 4, 0.75, "Réduction moyenne de 2-5 ans"},
	{domain.DiseaseALS, "SLA", 12, 0.15, "Survie médiane: 2-5 ans après diagnostic"},
}

func decimals(values []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func defaultSpec() TableSpec {
	diseases := make([]domain.DiseaseProfile, 0, len(diseaseCatalog))
	for _, row := range diseaseCatalog {
		diseases = append(diseases, domain.DiseaseProfile{
			Code:               row.code,
			Name:               row.name,
			LifeReductionYears: decimal.NewFromFloat(row.reduction),
			SurvivalMultiplier: decimal.NewFromFloat(row.multiplier),
			Description:        row.description,
		})
	}

	return TableSpec{
		Version: DefaultVersion,
		LifeExpectancy: LifeExpectancySpec{
			Male:   decimals(maleLifeExpectancy),
			Female: decimals(femaleLifeExpectancy),
		},
		DUHCoefficients: decimals(duhCoefficients),
		Diseases:        diseases,
	}
}
