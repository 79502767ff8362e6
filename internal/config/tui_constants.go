package config

// Layout constants.
const (
	// FormWidth is the width of the configuring form.
	FormWidth = 60

	// MinFormWidth is the narrowest the form is rendered.
	MinFormWidth = 24

	// CompactModeThreshold drops units from field rows below this width.
	CompactModeThreshold = 40

	// ProgressWidth is the preferred width of the run progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the minimum width of the run progress bar.
	MinProgressWidth = 10
)

// Display formats.
const (
	// TimestampLayout renders touch and tick timestamps with milliseconds.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
