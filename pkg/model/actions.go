package model

// Named step actions the dispatcher knows how to translate into remote calls.
// Step descriptors reference these in SubmitAction; the dispatcher maps each
// to a payload shaper and a named endpoint per listing type.
const (
	ActionCreate             = "create"
	ActionUpdate             = "update"
	ActionUploadMedia        = "uploadMedia"
	ActionUpdatePricing      = "updatePricing"
	ActionUpdateCalendar     = "updateCalendar"
	ActionUpdateTerms        = "updateTerms"
	ActionUpdateService      = "updateService"
	ActionUpdateDriver       = "updateDriver"
	ActionUpdateInformations = "updateInformations"
	ActionUpdateExtras       = "updateExtras"
)
