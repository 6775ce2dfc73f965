package models

import "github.com/tfalohun/olera-sub001/pkg/region"

// ProgramID identifies a catalog program.
type ProgramID string

// Benefit names a public benefit a program can reference.
type Benefit string

const (
	BenefitMedicaid Benefit = "medicaid"
	BenefitMedicare Benefit = "medicare"
	BenefitSSI      Benefit = "ssi"
	BenefitSNAP     Benefit = "snap"
	BenefitVA       Benefit = "va"
)

// Program is a read-only benefit catalog record. Region is empty for the
// nationwide baseline catalog.
type Program struct {
	ID                 ProgramID
	Name               string
	Category           Category
	PriorityScore      int
	MinAge             *int
	MaxIncomeSingle    *int
	RequiresMedicaid   bool
	RelatedBenefits    []Benefit
	RequiresVeteran    bool
	RequiresDisability bool
	Region             region.Code
	Description        string
	Phone              string
	Website            string
}

// References reports whether the program lists b as a related benefit.
func (p Program) References(b Benefit) bool {
	for _, rb := range p.RelatedBenefits {
		if rb == b {
			return true
		}
	}
	return false
}

// ExpectsMedicaid reports whether Medicaid enrollment is relevant to the
// program, either as a requirement or as a related benefit.
func (p Program) ExpectsMedicaid() bool {
	return p.RequiresMedicaid || p.References(BenefitMedicaid)
}

// LocalResourceID identifies a regional support office.
type LocalResourceID string

// LocalResource is a regional support office (for example an Area Agency on
// Aging). Counties and ZIPCodes only break ties between offices in the same
// region; an office without them is still a valid regional default.
type LocalResource struct {
	ID       LocalResourceID
	Name     string
	Region   region.Code
	Counties []string
	ZIPCodes []string
	Phone    string
	Website  string
	Script   string
}
