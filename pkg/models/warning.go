package models

// Warning types in storage form. The wire form is the uppercase variant
// (ToWire / FromWire).
const (
	WarningNoPerson         = "no_person"
	WarningMultiplePeople   = "multiple_people"
	WarningPhoneDetected    = "phone_detected"
	WarningLowConcentration = "low_concentration"
	WarningTabSwitched      = "tab_switched"
	WarningExcessiveNoise   = "excessive_noise"
	WarningMultipleSpeakers = "multiple_speakers"
	WarningProctorDegraded  = "proctor_degraded"
)

// WarningTypes lists every warning type in a stable order.
var WarningTypes = []string{
	WarningNoPerson,
	WarningMultiplePeople,
	WarningPhoneDetected,
	WarningLowConcentration,
	WarningTabSwitched,
	WarningExcessiveNoise,
	WarningMultipleSpeakers,
	WarningProctorDegraded,
}

// Suppressed reports whether a warning type is a soft signal: logged
// without an evidence screenshot and excluded from the recruiter-facing
// warning summary.
func Suppressed(warningType string) bool {
	return warningType == WarningLowConcentration || warningType == WarningTabSwitched
}
