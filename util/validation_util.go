// util/validation_util.go

package util

import (
	"fmt"

	"github.com/tracegraph/registry/model"
)

// ValidationUtil holds the request-shape checks the boundary applies before
// anything reaches a DAO, plus the configured site/scannable catalogs.
type ValidationUtil struct {
	siteTypes      map[string][]string
	scannableTypes []string
}

func NewValidationUtil(siteTypes map[string][]string, scannableTypes []string) *ValidationUtil {
	return &ValidationUtil{siteTypes: siteTypes, scannableTypes: scannableTypes}
}

func (v *ValidationUtil) ValidateNewOrganization(name, contactName, email string) error {
	if name == "" {
		return fmt.Errorf("organization name cannot be empty")
	}
	if contactName == "" {
		return fmt.Errorf("organization contact name cannot be empty")
	}
	if email == "" {
		return fmt.Errorf("organization contact email cannot be empty")
	}
	return nil
}

// ValidateNewUser requires at least one way to identify the person.
func (v *ValidationUtil) ValidateNewUser(name, phone, email string) error {
	if name == "" && phone == "" && email == "" {
		return fmt.Errorf("at least one contact method or a name is required to create a user")
	}
	return nil
}

func (v *ValidationUtil) ValidateSiteType(category, subcategory string) error {
	subcategories, ok := v.siteTypes[category]
	if !ok {
		return fmt.Errorf("not a valid category, please check /models/site-types")
	}
	for _, s := range subcategories {
		if s == subcategory {
			return nil
		}
	}
	return fmt.Errorf("not a valid subcategory, please check /models/site-types")
}

func (v *ValidationUtil) ValidateScannableType(scanType string) error {
	for _, t := range v.scannableTypes {
		if t == scanType {
			return nil
		}
	}
	return fmt.Errorf("not a valid type, please check /models/scannable-types")
}

func (v *ValidationUtil) SiteTypes() map[string][]string {
	return v.siteTypes
}

func (v *ValidationUtil) ScannableTypes() []string {
	return v.scannableTypes
}

func (v *ValidationUtil) ValidateSymptoms(symptoms []model.Symptom) error {
	if len(symptoms) == 0 {
		return fmt.Errorf("a symptom report must list at least one symptom")
	}
	return nil
}
