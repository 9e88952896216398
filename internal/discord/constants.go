package discord

// Accepted screenshot extensions, lowercase
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Limits
const (
	MaxRecentCaptures = 5
	MaxHistoryShown   = 5
	MaxCompareShown   = 10
)

// Error Messages
const (
	ErrMsgSendPrompt   = "failed to send validation prompt: %w"
	ErrMsgOpenDM       = "failed to open DM channel: %w"
	ErrMsgBadSelection = "unexpected selection value: %q"
	ErrMsgAckComponent = "Failed to acknowledge component interaction"
	ErrMsgExpireDialog = "Failed to expire dialog message"
)
