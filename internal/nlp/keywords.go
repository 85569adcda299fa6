package nlp

import "strings"

// Keyword tables below are ordered slices on purpose: every matcher in this
// package iterates them in declared order so first-match-wins behavior stays
// reproducible across runs.

// GeneralConversationKeywords admit small talk through the domain gate.
var GeneralConversationKeywords = []string{
	// Greetings
	"bonjour", "salut", "coucou", "hello", "hi", "hey", "bonsoir", "bonne nuit",
	"yo", "wesh", "salam", "hola",

	// Politeness
	"merci", "remercie", "thanks", "thank you", "merci beaucoup", "merci bien",
	"s'il te plaît", "s'il vous plaît", "please", "stp", "svp", "de rien", "je t'en prie",

	// Farewells
	"au revoir", "bye", "adieu", "ciao", "à plus", "à bientôt", "goodbye",
	"see you", "à demain", "bonne journée", "bonne soirée",

	// Help requests
	"aide", "help", "assistance", "support", "aide-moi", "peux-tu m'aider", "j'ai besoin d'aide",

	// Repetition requests
	"répète", "repeat", "encore", "again", "peux-tu répéter", "tu peux répéter",
	"redire", "redis", "je n'ai pas compris", "pas compris", "incompris",
	"explique à nouveau", "reprends", "recommence",

	// Question words
	"quoi", "comment", "pourquoi", "quand", "où", "qui", "quel", "quelle", "quels", "quelles",
	"combien", "lequel", "laquelle", "est-ce que", "qu'est-ce que",

	// Explanations
	"explique", "définis", "define", "explain", "définition", "signification",
	"que veut dire", "c'est quoi", "qu'est-ce que c'est",

	// Affirmations / negations
	"oui", "non", "ok", "d'accord", "bien", "yes", "no", "okay", "parfait",
	"exact", "correct", "faux", "incorrect",

	// Small talk
	"ça va", "comment ça va", "tu vas bien", "how are you",
	"quoi de neuf", "très bien", "super", "génial", "cool", "excellent", "formidable",

	// Understanding checks
	"compris", "entendu", "je vois", "je comprends", "pas de problème", "bien reçu",

	// Appreciation
	"bravo", "félicitations", "bon travail", "well done",

	// Simple commands
	"stop", "arrête", "continue", "vas-y", "suivant", "précédent", "retour",
}

// AutomobileKeywords mark a message as on-topic for the assistant.
var AutomobileKeywords = []string{
	// Vehicle types
	"voiture", "automobile", "véhicule", "auto", "moto", "scooter", "camion",
	"utilitaire", "fourgon", "bus", "poids lourd", "remorque", "caravane",
	"camping-car", "van", "pick-up", "suv", "crossover", "berline", "break",
	"citadine", "cabriolet", "coupé", "monospace", "4x4",

	// Brands and popular models
	"renault", "peugeot", "citroën", "citroen", "dacia", "seat", "skoda",
	"bmw", "mercedes", "audi", "volkswagen", "vw", "opel", "ford", "fiat",
	"ferrari", "lamborghini", "porsche", "volvo", "tesla", "mini",
	"land rover", "jaguar", "toyota", "honda", "nissan", "lexus", "mazda",
	"mitsubishi", "subaru", "suzuki", "hyundai", "kia", "jeep", "dodge", "byd",
	"clio", "megane", "captur", "duster", "sandero", "logan",
	"golf", "polo", "passat", "tiguan", "308", "208", "3008", "2008",
	"c3", "c4", "berlingo", "corolla", "yaris", "rav4",

	// Engine and powertrain
	"moteur", "motorisation", "cylindre", "soupape", "piston", "vilebrequin",
	"arbre à cames", "culasse", "turbo", "injection", "injecteur", "allumage",
	"bougie", "bobine", "courroie", "chaîne distribution", "embrayage",
	"transmission", "boîte vitesse", "boite vitesse", "chevaux", "puissance",
	"couple", "régime", "accélération",

	// Fuel and energy
	"carburant", "essence", "diesel", "gazole", "gpl", "hybride", "électrique",
	"batterie", "charge", "borne", "recharge", "autonomie", "consommation",

	// Braking
	"frein", "freins", "freinage", "disque", "plaquette", "étrier", "abs",
	"esp", "frein main",

	// Suspension and steering
	"suspension", "amortisseur", "ressort", "rotule", "direction",
	"direction assistée", "crémaillère", "volant", "pneu", "pneus",
	"pression", "gonflage", "roue", "roues", "jante",

	// Electrical
	"alternateur", "démarreur", "fusible", "relais", "câblage", "prise obd",
	"diagnostic", "calculateur", "ecu", "capteur", "sonde",

	// Interior / dashboard
	"tableau bord", "tableau de bord", "compteur", "voyant", "témoin",
	"indicateur", "rétroviseur", "siège", "ceinture", "airbag",
	"climatisation", "chauffage", "gps",

	// Exterior
	"phare", "phares", "feu", "feux", "clignotant", "essuie-glace",
	"pare-brise", "vitre", "portière", "coffre", "capot", "pare-chocs",

	// Maintenance and repair
	"entretien", "maintenance", "révision", "vidange", "filtre", "huile",
	"huile moteur", "lubrifiant", "liquide frein", "liquide refroidissement",
	"antigel", "niveau", "contrôle", "vérification", "panne", "dépannage",
	"réparation", "garage", "mécanicien", "atelier", "carrosserie",

	// Warning lights
	"check engine", "voyant moteur", "température", "surchauffe",
	"pression huile", "pression pneus", "tpms", "filtre particules", "fap",
	"adblue", "échappement", "catalyseur", "pot catalytique",

	// Driving and paperwork
	"conduite", "conduire", "conducteur", "permis", "sécurité routière",
	"accident", "assurance", "carte grise", "contrôle technique", "pollution",

	// Buying and selling
	"achat", "acheter", "vente", "vendre", "occasion", "neuf", "kilométrage",
	"financement", "crédit", "leasing", "location", "reprise", "cote", "prix",

	// Misc technical
	"châssis", "différentiel", "cardan", "refroidissement", "canbus",
}

// KounhanyKeywords flag messages about the application and its services.
var KounhanyKeywords = []string{
	"kounhany", "application", "réserver", "garage", "forfait", "service",
}

// TechnicalKeywords flag mechanical/maintenance questions.
var TechnicalKeywords = []string{
	"huile", "moteur", "frein", "pneu", "vidange", "batterie", "voyant",
	"entretien", "réparation", "panne", "bruit", "problème",
}

// GreetingKeywords flag salutations.
var GreetingKeywords = []string{
	"bonjour", "salut", "hello", "bonsoir", "hey", "coucou",
}

// QuestionMarkers admit interrogative messages through the domain gate.
var QuestionMarkers = []string{
	"?", "quoi", "comment", "pourquoi", "quand", "où", "qui",
	"quel", "quelle", "quels", "quelles",
}

// RepeatTriggers fire the repeat-last-answer shortcut in the orchestrator.
var RepeatTriggers = []string{
	"répète", "repeat", "encore", "redire", "expliquer le", "explique le",
	"explain it", "re-explain", "reexplain", "expliquer ça", "explique ça",
}

// Stopwords removed by Normalize. French articles and clitics only.
var Stopwords = []string{
	"le", "la", "les", "un", "une", "des", "de", "du", "et", "est",
	"je", "tu", "il", "elle", "nous", "vous", "ils", "elles",
	"mon", "ma", "mes", "ton", "ta", "tes", "son", "sa", "ses",
}

// ContainsAny reports whether textLower contains any keyword, scanning the
// list in declared order.
func ContainsAny(textLower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(textLower, kw) {
			return true
		}
	}
	return false
}
