package models

import (
	"fmt"
	"strings"

	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/region"
)

// CareSetting is where the person expects to receive care.
type CareSetting string

const (
	CareSettingAtHome         CareSetting = "atHome"
	CareSettingAssistedLiving CareSetting = "assistedLiving"
	CareSettingNursingHome    CareSetting = "nursingHome"
	CareSettingNotSure        CareSetting = "notSure"
)

// ParseCareSetting validates a care-setting preference. Empty means unknown.
func ParseCareSetting(s string) (CareSetting, error) {
	switch c := CareSetting(strings.TrimSpace(s)); c {
	case "", CareSettingAtHome, CareSettingAssistedLiving, CareSettingNursingHome, CareSettingNotSure:
		return c, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown care_setting %q", s))
	}
}

// IncomeBracket is the monthly income range selected at intake.
type IncomeBracket string

const (
	IncomeUnder1500      IncomeBracket = "under1500"
	Income1500To3000     IncomeBracket = "1500to3000"
	Income3000To5000     IncomeBracket = "3000to5000"
	IncomeOver5000       IncomeBracket = "over5000"
	IncomePreferNotToSay IncomeBracket = "preferNotToSay"
)

// incomeMidpoints are the declared monthly midpoints used as the estimate
// for a bracket.
var incomeMidpoints = map[IncomeBracket]int{
	IncomeUnder1500:  750,
	Income1500To3000: 2250,
	Income3000To5000: 4000,
	IncomeOver5000:   6500,
}

// ParseIncomeBracket validates an income bracket. Empty means unknown.
func ParseIncomeBracket(s string) (IncomeBracket, error) {
	b := IncomeBracket(strings.TrimSpace(s))
	if b == "" || b == IncomePreferNotToSay {
		return b, nil
	}
	if _, ok := incomeMidpoints[b]; !ok {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown income %q", s))
	}
	return b, nil
}

// EstimatedMonthly returns the bracket midpoint. ok is false when the
// bracket is unknown or withheld.
func (b IncomeBracket) EstimatedMonthly() (amount int, ok bool) {
	amount, ok = incomeMidpoints[b]
	return amount, ok
}

// BenefitStatus records whether the person already receives the reference
// public benefit (Medicaid).
type BenefitStatus string

const (
	BenefitAlreadyHas  BenefitStatus = "alreadyHas"
	BenefitApplying    BenefitStatus = "applying"
	BenefitDoesNotHave BenefitStatus = "doesNotHave"
	BenefitNotSure     BenefitStatus = "notSure"
)

// ParseBenefitStatus validates a benefit status. Empty means unknown.
func ParseBenefitStatus(s string) (BenefitStatus, error) {
	switch b := BenefitStatus(strings.TrimSpace(s)); b {
	case "", BenefitAlreadyHas, BenefitApplying, BenefitDoesNotHave, BenefitNotSure:
		return b, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown benefit_status %q", s))
	}
}

// HoldsMedicaid reports whether enrollment is confirmed. Applying does not
// count.
func (b BenefitStatus) HoldsMedicaid() bool {
	return b == BenefitAlreadyHas
}

// AnswerSet is the typed intake for one eligibility request. Build it once
// at the boundary and treat it as read-only.
type AnswerSet struct {
	ZIP           string
	Region        region.Code
	County        string
	Age           *int
	CareSetting   CareSetting
	Needs         []NeedTag
	Income        IncomeBracket
	BenefitStatus BenefitStatus
}
