package discord

// Friendly message constants for Discord responses. User-facing text is in
// French, the club's working language.
const (
	// Capture submission
	MsgNoImage       = "📷 **Pas d'image !**\nJoins une capture d'écran Tennis Clash à la commande."
	MsgInvalidImage  = "❓ **Format non supporté**\nFormats acceptés : PNG, JPG, JPEG, WEBP."
	MsgDownloadError = "⚠️ **Téléchargement impossible**\nRéessaie dans un instant."
	MsgQueuedFmt     = "📥 **Capture en file d'attente** (position %d)\nTu recevras un message privé quand l'analyse sera prête."

	// Validation dialogs
	MsgPreviewTitle  = "📊 Stats détectées"
	MsgSelectPlayer  = "Sélectionne ton joueur..."
	MsgSelectBuild   = "Type de build..."
	MsgBtnConfirm    = "Confirmer"
	MsgBtnCancel     = "Annuler"
	MsgTimeout       = "⏳ Temps écoulé. La validation te sera proposée à nouveau plus tard."
	MsgOutcomeStored = "✅ **Stats enregistrées !**"
	MsgOutcomeDup    = "♻️ Stats identiques à la dernière capture, rien de nouveau à enregistrer."
	MsgOutcomeReject = "🗑️ Capture annulée."
	MsgPlayerAdded   = "✅ Joueur **%s** enregistré."
	MsgNoPlayers     = "👤 **Aucun joueur enregistré**\nUtilise `/player add` d'abord."
	MsgUnknownPlayer = "👤 **Joueur inconnu : %s**\nVérifie le nom avec `/player list`."

	// Browsing
	MsgEvoNoData     = "📈 Aucune donnée pour **%s**."
	MsgCompareNoData = "🏆 Aucune donnée pour **%s**."
	MsgQueueEmpty    = "📭 Aucune capture en attente."

	MsgGenericError = "❌ Quelque chose s'est mal passé."
)

// Embed colors
const (
	ColorBlue   = 0x3498db
	ColorOrange = 0xe67e22
	ColorGreen  = 0x2ecc71
	ColorGold   = 0xf1c40f
)

// Confidence below which the preview embed turns orange
const lowConfidencePreview = 0.5
