package catalog

import "github.com/Lestat2Lioncourt/discord-bot/internal/domain"

// cardSlots maps every known equipment card name, French and English, to
// its slot. Keys are lowercase; common OCR misreads are included as extra
// keys so noisy text still resolves.
var cardSlots = map[string]int{
	// Racket
	"basique": domain.SlotRacket, "starter racket": domain.SlotRacket,
	"aigle": domain.SlotRacket, "eagle": domain.SlotRacket,
	"panthere": domain.SlotRacket, "panthère": domain.SlotRacket,
	"panther": domain.SlotRacket, "panter": domain.SlotRacket,
	"samourai": domain.SlotRacket, "samouraï": domain.SlotRacket,
	"patriote": domain.SlotRacket, "patriot": domain.SlotRacket,
	"outback": domain.SlotRacket,
	"marteau": domain.SlotRacket, "hammer": domain.SlotRacket,
	"mille": domain.SlotRacket, "bullseye": domain.SlotRacket,
	"zeus": domain.SlotRacket,

	// Grip
	"guerrier": domain.SlotGrip, "warrior": domain.SlotGrip,
	"machette": domain.SlotGrip, "machete": domain.SlotGrip,
	"katana":  domain.SlotGrip,
	"griffe":  domain.SlotGrip, "talon": domain.SlotGrip,
	"cobra":   domain.SlotGrip,
	"forge":   domain.SlotGrip,
	"tactique": domain.SlotGrip, "tactical": domain.SlotGrip,
	"titan":   domain.SlotGrip,

	// Shoes
	"raptor":   domain.SlotShoes,
	"chasseur": domain.SlotShoes, "hunter": domain.SlotShoes,
	"enclume": domain.SlotShoes, "enciume": domain.SlotShoes,
	"enctume": domain.SlotShoes, "anvil": domain.SlotShoes,
	"ballistique": domain.SlotShoes, "balistique": domain.SlotShoes, "ballistic": domain.SlotShoes,
	"plume": domain.SlotShoes, "feather": domain.SlotShoes,
	"piranha":  domain.SlotShoes,
	"shuriken": domain.SlotShoes,
	"hades":    domain.SlotShoes, "hadès": domain.SlotShoes,

	// Wristband
	"missile": domain.SlotWristband, "rocket": domain.SlotWristband,
	"ara": domain.SlotWristband, "macaw": domain.SlotWristband,
	"kodiak":   domain.SlotWristband,
	"bouclier": domain.SlotWristband, "shield": domain.SlotWristband,
	"tomahawk": domain.SlotWristband,
	"pirate":   domain.SlotWristband, "jolly": domain.SlotWristband,
	"koi":      domain.SlotWristband, "koï": domain.SlotWristband,
	"gladiateur": domain.SlotWristband, "gladiator": domain.SlotWristband,

	// Nutrition
	"vegane": domain.SlotNutrition, "végane": domain.SlotNutrition, "vegan": domain.SlotNutrition,
	"antioxydants": domain.SlotNutrition, "antioxidants": domain.SlotNutrition,
	"hydratation":  domain.SlotNutrition,
	"energie":      domain.SlotNutrition, "énergie": domain.SlotNutrition, "energy": domain.SlotNutrition,
	"proteine":     domain.SlotNutrition, "protéine": domain.SlotNutrition, "protein": domain.SlotNutrition,
	"macrobiotique": domain.SlotNutrition, "macrobiotic": domain.SlotNutrition,
	"cetogene": domain.SlotNutrition, "cétogène": domain.SlotNutrition, "keto": domain.SlotNutrition,
	"glucides": domain.SlotNutrition, "carboload": domain.SlotNutrition,

	// Workout
	"pliometrie": domain.SlotWorkout, "pliométrie": domain.SlotWorkout, "plyometrics": domain.SlotWorkout,
	"musculation": domain.SlotWorkout, "weight": domain.SlotWorkout, "lifting": domain.SlotWorkout,
	"endurance": domain.SlotWorkout,
	"alpinisme": domain.SlotWorkout, "mountain": domain.SlotWorkout, "climber": domain.SlotWorkout,
	"vitesse": domain.SlotWorkout, "sprint": domain.SlotWorkout,
	"halterophilie": domain.SlotWorkout, "haltérophilie": domain.SlotWorkout, "powerlifting": domain.SlotWorkout,
	"elastique": domain.SlotWorkout, "élastique": domain.SlotWorkout, "resistance": domain.SlotWorkout,
	"fentes": domain.SlotWorkout, "lunges": domain.SlotWorkout,
}

// canonicalNames corrects known OCR misreads to the proper display name.
// Anything absent here is displayed by capitalizing the matched key.
var canonicalNames = map[string]string{
	"enciume": "Enclume",
	"enctume": "Enclume",
}
