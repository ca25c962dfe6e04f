package model

import "time"

type Symptom string

const (
	SymptomFever            Symptom = "FEVER"
	SymptomBreathing        Symptom = "BREATHING"
	SymptomNewCough         Symptom = "NEW_COUGH"
	SymptomSoreThroat       Symptom = "SORE_THROAT"
	SymptomAching           Symptom = "ACHING"
	SymptomVomitingDiarrhea Symptom = "VOMITING_DIARRHEA"
	SymptomMigraines        Symptom = "MIGRAINES"
	SymptomLossOfTaste      Symptom = "LOSS_OF_TASTE"
)

type AgeCategory string

const (
	AgeMinor   AgeCategory = "MINOR"
	AgeGeneral AgeCategory = "GENERAL"
	AgeElderly AgeCategory = "ELDERLY"
)

type HouseholdSize string

const (
	HouseholdSingle  HouseholdSize = "SINGLE"
	HouseholdPartner HouseholdSize = "PARTNER"
	HouseholdSmall   HouseholdSize = "SMALL"
	HouseholdMedium  HouseholdSize = "MEDIUM"
	HouseholdLarge   HouseholdSize = "LARGE"
)

type PublicInteractionScale string

const (
	InteractionNone    PublicInteractionScale = "NONE"
	InteractionSingle  PublicInteractionScale = "SINGLE"
	InteractionPartner PublicInteractionScale = "PARTNER"
	InteractionSmall   PublicInteractionScale = "SMALL"
	InteractionMedium  PublicInteractionScale = "MEDIUM"
	InteractionLarge   PublicInteractionScale = "LARGE"
)

type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "Celsius"
	UnitFahrenheit TemperatureUnit = "Fahrenheit"
	UnitKelvin     TemperatureUnit = "Kelvin"
)

type Temperature struct {
	Value float64         `json:"value"`
	Unit  TemperatureUnit `json:"unit"`
}

// ToCelsius normalizes the reading; readings are stored in Celsius only.
func (t Temperature) ToCelsius() float64 {
	switch t.Unit {
	case UnitFahrenheit:
		return (t.Value - 32) / 1.8
	case UnitKelvin:
		return t.Value - 273.15
	default:
		return t.Value
	}
}

// TestResult is a self- or clinic-reported medical test. ReportedBy and
// TestedParty may name the same device.
type TestResult struct {
	ReportedBy  string
	TestedParty string
	Verified    bool
	TestDate    time.Time
	Result      bool
	Timestamp   time.Time
}

type SymptomSummary struct {
	ReportedBy             string
	TestedParty            string
	Symptoms               []Symptom
	Age                    AgeCategory
	HouseholdSize          HouseholdSize
	PublicInteractionScale PublicInteractionScale
	Temperature            *Temperature
	Verified               bool
	Timestamp              time.Time
}
