package tasklist

import (
	"time"

	"cgt-returns/internal/model"
)

// Section identifiers in canonical task order.
const (
	SectionTriage              = "triage"
	SectionPropertyAddress     = "property-address"
	SectionDisposalDetails     = "disposal-details"
	SectionAcquisitionDetails  = "acquisition-details"
	SectionInitialGainOrLoss   = "initial-gain-or-loss"
	SectionReliefDetails       = "relief-details"
	SectionExemptionsAndLosses = "exemptions-and-losses"
	SectionYearToDateLiability = "year-to-date-liability"
)

// rebasingCutoff: properties acquired strictly before this date by a
// non-resident fall under the 2015 rebasing rules, which require the
// initial gain or loss section.
var rebasingCutoff = time.Date(2015, time.April, 1, 0, 0, 0, 0, time.UTC)

// Descriptor is the static metadata for one task-list section: display key,
// target link, which earlier sections must be complete before it can start,
// and (for conditional sections) whether it applies to this return at all.
type Descriptor struct {
	ID           string
	LabelKey     string
	Link         string
	Prerequisite func(*model.DraftReturn) bool
	Applicable   func(*model.DraftReturn) bool // nil: always applicable
	Answers      func(*model.DraftReturn) model.Completeness
}

// descriptors is the fixed, ordered section table. Order is the user-facing
// task order and must not change without a corresponding journey change.
var descriptors = []Descriptor{
	{
		ID:       SectionTriage,
		LabelKey: "task-list.triage",
		Link:     "/triage",
		Prerequisite: func(*model.DraftReturn) bool { return true },
		Answers:      func(d *model.DraftReturn) model.Completeness { return d.Triage.Completeness() },
	},
	{
		ID:           SectionPropertyAddress,
		LabelKey:     "task-list.property-address",
		Link:         "/property-address",
		Prerequisite: triageDone,
		Answers: func(d *model.DraftReturn) model.Completeness { return d.PropertyAddress.Completeness() },
	},
	{
		ID:           SectionDisposalDetails,
		LabelKey:     "task-list.disposal-details",
		Link:         "/disposal-details",
		Prerequisite: addressDone,
		Answers: func(d *model.DraftReturn) model.Completeness { return d.DisposalDetails.Completeness() },
	},
	{
		ID:           SectionAcquisitionDetails,
		LabelKey:     "task-list.acquisition-details",
		Link:         "/acquisition-details",
		Prerequisite: disposalDone,
		Answers: func(d *model.DraftReturn) model.Completeness { return d.AcquisitionDetails.Completeness() },
	},
	{
		ID:           SectionInitialGainOrLoss,
		LabelKey:     "task-list.initial-gain-or-loss",
		Link:         "/initial-gain-or-loss",
		Prerequisite: acquisitionDone,
		Applicable:   InitialGainOrLossApplicable,
		Answers: func(d *model.DraftReturn) model.Completeness { return d.InitialGainOrLoss.Completeness() },
	},
	{
		ID:           SectionReliefDetails,
		LabelKey:     "task-list.relief-details",
		Link:         "/relief-details",
		Prerequisite: reliefsReady,
		Answers: func(d *model.DraftReturn) model.Completeness { return d.ReliefDetails.Completeness() },
	},
	{
		ID:       SectionExemptionsAndLosses,
		LabelKey: "task-list.exemptions-and-losses",
		Link:     "/exemptions-and-losses",
		Prerequisite: func(d *model.DraftReturn) bool {
			return reliefsReady(d) && d.ReliefDetails.Completeness() == model.SectionComplete
		},
		Answers: func(d *model.DraftReturn) model.Completeness { return d.ExemptionsAndLosses.Completeness() },
	},
	{
		ID:       SectionYearToDateLiability,
		LabelKey: "task-list.year-to-date-liability",
		Link:     "/year-to-date-liability",
		Prerequisite: func(d *model.DraftReturn) bool {
			return reliefsReady(d) &&
				d.ReliefDetails.Completeness() == model.SectionComplete &&
				d.ExemptionsAndLosses.Completeness() == model.SectionComplete
		},
		Answers: func(d *model.DraftReturn) model.Completeness { return d.YearToDateLiability.Completeness() },
	},
}

func triageDone(d *model.DraftReturn) bool {
	return d.Triage.Completeness() == model.SectionComplete
}

func addressDone(d *model.DraftReturn) bool {
	return triageDone(d) && d.PropertyAddress.Completeness() == model.SectionComplete
}

func disposalDone(d *model.DraftReturn) bool {
	return addressDone(d) && d.DisposalDetails.Completeness() == model.SectionComplete
}

func acquisitionDone(d *model.DraftReturn) bool {
	return disposalDone(d) && d.AcquisitionDetails.Completeness() == model.SectionComplete
}

// reliefsReady additionally requires the initial gain or loss section to be
// complete on returns where it applies.
func reliefsReady(d *model.DraftReturn) bool {
	if !acquisitionDone(d) {
		return false
	}
	if InitialGainOrLossApplicable(d) {
		return d.InitialGainOrLoss.Completeness() == model.SectionComplete
	}
	return true
}

// InitialGainOrLossApplicable reports whether the return needs the initial
// gain or loss section: a non-UK resident disposing of a residential (or
// indirectly held residential) property acquired before the rebasing cutoff.
// Undecidable until both triage and acquisition details are complete.
func InitialGainOrLossApplicable(d *model.DraftReturn) bool {
	if d.Triage.Completeness() != model.SectionComplete ||
		d.AcquisitionDetails.Completeness() != model.SectionComplete {
		return false
	}
	if *d.Triage.CountryOfResidence == "GB" {
		return false
	}
	switch *d.Triage.AssetType {
	case model.AssetResidential, model.AssetIndirectResidential:
	default:
		return false
	}
	acquired, ok := model.ParseDate(*d.AcquisitionDetails.AcquisitionDate)
	return ok && acquired.Before(rebasingCutoff)
}

// CanStart reports whether the named section's prerequisites are met on the
// given snapshot. Unknown ids cannot start.
func CanStart(d *model.DraftReturn, sectionID string) bool {
	for _, desc := range descriptors {
		if desc.ID == sectionID {
			return desc.Prerequisite(d)
		}
	}
	return false
}
