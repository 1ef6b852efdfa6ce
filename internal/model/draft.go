package model

// Completeness is the derived three-state classification of one section's
// stored answers. A section is Complete only when every field its own
// validation rule requires is present; there is no stored flag.
type Completeness string

const (
	SectionAbsent     Completeness = "absent"
	SectionIncomplete Completeness = "incomplete"
	SectionComplete   Completeness = "complete"
)

type AssetType string

const (
	AssetResidential         AssetType = "residential"
	AssetNonResidential      AssetType = "non-residential"
	AssetMixedUse            AssetType = "mixed-use"
	AssetIndirectResidential AssetType = "indirect-residential"
)

// ValidAssetTypes is the canonical set of accepted asset type strings.
var ValidAssetTypes = map[AssetType]bool{
	AssetResidential:         true,
	AssetNonResidential:      true,
	AssetMixedUse:            true,
	AssetIndirectResidential: true,
}

// DraftReturn is the aggregate root for one return-in-progress. Each section
// holds nil until the user starts it; answer records carry their own
// completeness derivation.
type DraftReturn struct {
	ReturnID  string `json:"return_id"`
	CreatedAt string `json:"created_at"`

	Contact *ContactDetails `json:"contact_details"`

	// EmailVerification holds the outstanding verification-link token, if a
	// verification email has been requested and not yet confirmed.
	EmailVerification *PendingEmailVerification `json:"email_verification,omitempty"`

	Triage              *TriageAnswers              `json:"triage"`
	PropertyAddress     *PropertyAddressAnswers     `json:"property_address"`
	DisposalDetails     *DisposalDetailsAnswers     `json:"disposal_details"`
	AcquisitionDetails  *AcquisitionDetailsAnswers  `json:"acquisition_details"`
	InitialGainOrLoss   *InitialGainOrLossAnswers   `json:"initial_gain_or_loss"`
	ReliefDetails       *ReliefDetailsAnswers       `json:"relief_details"`
	ExemptionsAndLosses *ExemptionsAndLossesAnswers `json:"exemptions_and_losses"`
	YearToDateLiability *YearToDateLiabilityAnswers `json:"year_to_date_liability"`
}

// PendingEmailVerification records a requested but unconfirmed email
// verification: the callback token we expect and the address it covers.
type PendingEmailVerification struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type TriageAnswers struct {
	IndividualUserType *string    `json:"individual_user_type"`
	CountryOfResidence *string    `json:"country_of_residence"`
	AssetType          *AssetType `json:"asset_type"`
	DisposalDate       *string    `json:"disposal_date"`
	CompletionDate     *string    `json:"completion_date"`
}

func (a *TriageAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	if a.IndividualUserType != nil && a.CountryOfResidence != nil &&
		a.AssetType != nil && a.DisposalDate != nil && a.CompletionDate != nil {
		return SectionComplete
	}
	return SectionIncomplete
}

type PropertyAddressAnswers struct {
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	TownOrCity *string `json:"town_or_city"`
	County     *string `json:"county"`
	Postcode   *string `json:"postcode"`
}

func (a *PropertyAddressAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	// Line2 and County are optional on a complete address.
	if a.Line1 != nil && a.TownOrCity != nil && a.Postcode != nil {
		return SectionComplete
	}
	return SectionIncomplete
}

type DisposalDetailsAnswers struct {
	ShareOfProperty *float64 `json:"share_of_property"`
	DisposalPrice   *float64 `json:"disposal_price"`
	DisposalFees    *float64 `json:"disposal_fees"`
}

func (a *DisposalDetailsAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	if a.ShareOfProperty != nil && a.DisposalPrice != nil && a.DisposalFees != nil {
		return SectionComplete
	}
	return SectionIncomplete
}

type AcquisitionDetailsAnswers struct {
	AcquisitionMethod *string  `json:"acquisition_method"`
	AcquisitionDate   *string  `json:"acquisition_date"`
	AcquisitionPrice  *float64 `json:"acquisition_price"`
	ImprovementCosts  *float64 `json:"improvement_costs"`
	AcquisitionFees   *float64 `json:"acquisition_fees"`
}

func (a *AcquisitionDetailsAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	if a.AcquisitionMethod != nil && a.AcquisitionDate != nil &&
		a.AcquisitionPrice != nil && a.ImprovementCosts != nil && a.AcquisitionFees != nil {
		return SectionComplete
	}
	return SectionIncomplete
}

// InitialGainOrLossAnswers holds the pre-rebasing gain (negative for a loss).
type InitialGainOrLossAnswers struct {
	Amount *float64 `json:"amount"`
}

func (a *InitialGainOrLossAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	if a.Amount != nil {
		return SectionComplete
	}
	return SectionIncomplete
}

type ReliefDetailsAnswers struct {
	PrivateResidentsRelief *float64 `json:"private_residents_relief"`
	LettingsRelief         *float64 `json:"lettings_relief"`
	OtherReliefsName       *string  `json:"other_reliefs_name"`
	OtherReliefsAmount     *float64 `json:"other_reliefs_amount"`
}

func (a *ReliefDetailsAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	// Other reliefs are optional but must be named and valued together.
	if a.PrivateResidentsRelief != nil && a.LettingsRelief != nil &&
		(a.OtherReliefsName == nil) == (a.OtherReliefsAmount == nil) {
		return SectionComplete
	}
	return SectionIncomplete
}

type ExemptionsAndLossesAnswers struct {
	InYearLosses        *float64 `json:"in_year_losses"`
	PreviousYearsLosses *float64 `json:"previous_years_losses"`
	AnnualExemptAmount  *float64 `json:"annual_exempt_amount"`
}

func (a *ExemptionsAndLossesAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	if a.InYearLosses != nil && a.PreviousYearsLosses != nil && a.AnnualExemptAmount != nil {
		return SectionComplete
	}
	return SectionIncomplete
}

type YearToDateLiabilityAnswers struct {
	TaxableGainOrLoss *float64 `json:"taxable_gain_or_loss"`
	EstimatedIncome   *float64 `json:"estimated_income"`
	PersonalAllowance *float64 `json:"personal_allowance"`
	TaxDue            *float64 `json:"tax_due"`
}

func (a *YearToDateLiabilityAnswers) Completeness() Completeness {
	if a == nil {
		return SectionAbsent
	}
	// PersonalAllowance is not required.
	if a.TaxableGainOrLoss != nil && a.EstimatedIncome != nil && a.TaxDue != nil {
		return SectionComplete
	}
	return SectionIncomplete
}
