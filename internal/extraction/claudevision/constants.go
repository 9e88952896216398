package claudevision

// EngineName identifies this engine in logs and metrics.
const EngineName = "claudevision"

const (
	messagesPath     = "/v1/messages"
	apiVersionHeader = "2023-06-01"
	maxTokens        = 1024
)

// extractionPrompt asks for bare JSON in the exact shape the engine decodes.
// The card names on screen are French, so the model is told to keep them.
const extractionPrompt = `Analyse cette capture d'écran Tennis Clash et retourne UNIQUEMENT un JSON valide (sans markdown, sans explication, sans tableau, sans commentaire) avec cette structure exacte:

{
    "character_name": "nom du personnage",
    "character_level": 14,
    "points": 2122,
    "global_power": 413,
    "stats": {
        "agility": 98,
        "endurance": 70,
        "serve": 45,
        "volley": 38,
        "forehand": 71,
        "backhand": 91
    },
    "equipment": [
        {"slot": 1, "name": "Nom raquette", "level": 14},
        {"slot": 2, "name": "Nom grip", "level": 14},
        {"slot": 3, "name": "Nom chaussures", "level": 13},
        {"slot": 4, "name": "Nom poignet", "level": 14},
        {"slot": 5, "name": "Nom nutrition", "level": 14},
        {"slot": 6, "name": "Nom entrainement", "level": 14}
    ]
}

Garde les noms de cartes en français. IMPORTANT: Retourne UNIQUEMENT le JSON brut. Pas de texte, pas de markdown, pas d'explication.`

const (
	ErrMsgRequestFailed  = "vision model request failed"
	ErrMsgBadStatus      = "vision model returned status %d"
	ErrMsgEmptyReply     = "vision model returned an empty reply"
	ErrMsgSchemaMismatch = "vision model reply does not match schema"
)
