package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Output configuration
	KeyColor   = "COLOR"   // auto, always or never
	KeyVerbose = "VERBOSE" // report every folder and file

	// Prompting
	KeyNonInteractive = "NON_INTERACTIVE"
)

// Color modes accepted by KeyColor
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyColor:          ColorAuto,
	KeyVerbose:        "false",
	KeyNonInteractive: "false",
}
