package tui

// Color constants for the bundy TUI theme
const (
	ColorBorder = "#2E4057" // Slate blue-grey

	// Text Colors
	ColorPrimaryText   = "#E8EDF4" // Field labels, values, titles
	ColorSecondaryText = "#9FB2C8" // Captions, timestamps
	ColorDisabledText  = "#5C6B80" // Muted/unavailable
	ColorHelpText      = "240"     // Dark grey for the key legend

	// Accent Colors (teal theme)
	ColorAccentMain   = "#14B8A6" // Active tab, selection marker
	ColorAccentBright = "#5EEAD4" // Highlights, focused input cursor

	// State Colors
	ColorError   = "#F87171" // Validation and rejection notices
	ColorSuccess = "#4ADE80" // Confirmations, clocked-in state
	ColorWarning = "#FBBF24" // Pending approvals, expiry notices
)
