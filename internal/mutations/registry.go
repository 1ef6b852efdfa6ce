package mutations

var registry = map[string]Handler{
	"start_return":                &StartReturnHandler{},
	"save_triage":                 &SaveTriageHandler{},
	"save_property_address":       &SavePropertyAddressHandler{},
	"save_disposal_details":       &SaveDisposalDetailsHandler{},
	"save_acquisition_details":    &SaveAcquisitionDetailsHandler{},
	"save_initial_gain_or_loss":   &SaveInitialGainOrLossHandler{},
	"save_relief_details":         &SaveReliefDetailsHandler{},
	"save_exemptions_and_losses":  &SaveExemptionsAndLossesHandler{},
	"save_year_to_date_liability": &SaveYearToDateLiabilityHandler{},
	"verify_email":                &VerifyEmailHandler{},
}

func Get(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}
