package vision

// EngineName identifies this engine in logs and metrics.
const EngineName = "vision"

// Preprocessing settings, tuned against real profile screenshots.
const (
	// Stats text: dark text on light panel.
	statsContrast   = 2.0
	statsBrightness = -127

	// Card names: light text over card art.
	cardContrast   = 2.5
	cardBrightness = 54

	// Level badges are white digits on colored circles; the white mask keeps
	// pixels with saturation below maskMaxSaturation and value above
	// maskMinValue (0-255 scale).
	maskMaxSaturation = 50
	maskMinValue      = 200

	// Badge crops below this edge length get upscaled before OCR.
	minBadgeSize = 50
)

// Equipment card levels observed in the game sit in this band; anything
// outside is an OCR misread.
const (
	minPlausibleLevel = 8
	maxPlausibleLevel = 20
)

// Attribute values are displayed as 1-3 digit numbers.
const (
	minStatValue = 1
	maxStatValue = 999
)

// Tesseract whitelists.
const (
	digitWhitelist = "0123456789"
	textWhitelist  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyzÀàÂâÇçÉéÈèÊêÎîÏïÔôÙùÛû.,:()/•·- "
)

const ocrLanguage = "eng+fra"

const (
	WarnPointsNotDetected = "points not detected"
	WarnNameNotDetected   = "character name not detected"
	WarnUnreadableImage   = "unreadable image"
	WarnStatsPassFailed   = "stats region unreadable"
)
