package obd

// CodeInfo describes one entry of the static OBD-II reference table.
type CodeInfo struct {
	DescriptionEN string `json:"en"`
	DescriptionFR string `json:"fr"`
	Severity      string `json:"severity"` // "low", "medium" or "high"
	Cause         string `json:"cause"`
	Solution      string `json:"solution"`
}

// Codes is the static diagnostic-code reference table, loaded once and never
// mutated. French descriptions are the primary user-facing text.
var Codes = map[string]CodeInfo{
	// P0xxx - Powertrain
	"P0001": {
		DescriptionEN: "Fuel Volume Regulator Control Circuit/Open",
		DescriptionFR: "Circuit de régulateur de volume de carburant ouvert",
		Severity:      "high",
		Cause:         "Problème avec le régulateur de pression de carburant",
		Solution:      "Vérifier le câblage et le régulateur de pression de carburant",
	},
	"P0002": {
		DescriptionEN: "Fuel Volume Regulator Control Circuit Range/Performance",
		DescriptionFR: "Circuit de régulateur de volume de carburant - Plage/Performance",
		Severity:      "high",
		Cause:         "Régulateur de pression de carburant défectueux, câblage endommagé, problème de pompe à carburant",
		Solution:      "Vérifier le régulateur de pression de carburant, inspecter le câblage, tester la pompe à carburant",
	},
	"P0003": {
		DescriptionEN: "Fuel Volume Regulator Control Circuit Low",
		DescriptionFR: "Circuit de régulateur de volume de carburant - Signal bas",
		Severity:      "high",
		Cause:         "Court-circuit dans le circuit du régulateur, régulateur défaillant",
		Solution:      "Vérifier le câblage pour court-circuit, remplacer le régulateur si nécessaire",
	},
	"P0004": {
		DescriptionEN: "Fuel Volume Regulator Control Circuit High",
		DescriptionFR: "Circuit de régulateur de volume de carburant - Signal haut",
		Severity:      "high",
		Cause:         "Circuit ouvert, régulateur de carburant défectueux",
		Solution:      "Inspecter le câblage, tester et remplacer le régulateur de carburant",
	},
	"P0010": {
		DescriptionEN: "Camshaft Position Actuator Circuit (Bank 1)",
		DescriptionFR: "Circuit de l'actuateur de position d'arbre à cames (Banc 1)",
		Severity:      "medium",
		Cause:         "Problème avec le système de calage variable des soupapes",
		Solution:      "Vérifier le solénoïde VVT, le câblage et le niveau d'huile",
	},
	"P0011": {
		DescriptionEN: "Camshaft Position - Timing Over-Advanced (Bank 1)",
		DescriptionFR: "Position d'arbre à cames - Calage trop avancé (Banc 1)",
		Severity:      "medium",
		Cause:         "Huile moteur sale ou niveau bas, solénoïde VVT défectueux",
		Solution:      "Vidange d'huile, vérifier le solénoïde VVT et la chaîne de distribution",
	},
	"P0012": {
		DescriptionEN: "Camshaft Position - Timing Over-Retarded (Bank 1)",
		DescriptionFR: "Position d'arbre à cames - Calage trop retardé (Banc 1)",
		Severity:      "medium",
		Cause:         "Huile moteur sale, solénoïde VVT bloqué",
		Solution:      "Vidange d'huile, nettoyer ou remplacer le solénoïde VVT",
	},
	"P0013": {
		DescriptionEN: "Exhaust Camshaft Position Actuator Circuit (Bank 1)",
		DescriptionFR: "Circuit de l'actuateur de position d'arbre à cames d'échappement (Banc 1)",
		Severity:      "medium",
		Cause:         "Câblage endommagé ou solénoïde défectueux",
		Solution:      "Vérifier le câblage et remplacer le solénoïde si nécessaire",
	},
	"P0014": {
		DescriptionEN: "Exhaust Camshaft Position - Timing Over-Advanced (Bank 1)",
		DescriptionFR: "Position d'arbre à cames d'échappement - Calage trop avancé (Banc 1)",
		Severity:      "medium",
		Cause:         "Huile contaminée, solénoïde VVT défaillant",
		Solution:      "Vidange d'huile et vérification du système VVT",
	},
	"P0016": {
		DescriptionEN: "Crankshaft/Camshaft Position Correlation (Bank 1 Sensor A)",
		DescriptionFR: "Corrélation position vilebrequin/arbre à cames (Banc 1 Capteur A)",
		Severity:      "high",
		Cause:         "Chaîne de distribution étirée, capteurs défectueux",
		Solution:      "Vérifier la chaîne de distribution et les capteurs de position",
	},
	"P0017": {
		DescriptionEN: "Crankshaft/Camshaft Position Correlation (Bank 1 Sensor B)",
		DescriptionFR: "Corrélation position vilebrequin/arbre à cames (Banc 1 Capteur B)",
		Severity:      "high",
		Cause:         "Chaîne de distribution usée ou capteur défaillant",
		Solution:      "Inspecter la chaîne de distribution et remplacer les capteurs",
	},
	"P0020": {
		DescriptionEN: "Camshaft Position Actuator Circuit (Bank 2)",
		DescriptionFR: "Circuit de l'actuateur de position d'arbre à cames (Banc 2)",
		Severity:      "medium",
		Cause:         "Problème électrique dans le circuit VVT",
		Solution:      "Vérifier le câblage et le solénoïde VVT du banc 2",
	},
	"P0030": {
		DescriptionEN: "HO2S Heater Control Circuit (Bank 1 Sensor 1)",
		DescriptionFR: "Circuit de chauffage de la sonde lambda (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Sonde lambda défectueuse ou câblage endommagé",
		Solution:      "Remplacer la sonde lambda ou réparer le câblage",
	},
	"P0031": {
		DescriptionEN: "HO2S Heater Control Circuit Low (Bank 1 Sensor 1)",
		DescriptionFR: "Circuit de chauffage sonde lambda bas (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Court-circuit ou résistance de chauffage défectueuse",
		Solution:      "Vérifier le câblage et remplacer la sonde si nécessaire",
	},
	"P0036": {
		DescriptionEN: "HO2S Heater Control Circuit (Bank 1 Sensor 2)",
		DescriptionFR: "Circuit de chauffage de la sonde lambda (Banc 1 Capteur 2)",
		Severity:      "medium",
		Cause:         "Sonde lambda aval défectueuse",
		Solution:      "Remplacer la sonde lambda aval",
	},
	"P0037": {
		DescriptionEN: "HO2S Heater Control Circuit Low (Bank 1 Sensor 2)",
		DescriptionFR: "Circuit de chauffage sonde lambda bas (Banc 1 Capteur 2)",
		Severity:      "medium",
		Cause:         "Problème de chauffage de la sonde aval",
		Solution:      "Vérifier le câblage et la sonde lambda",
	},
	"P0100": {
		DescriptionEN: "Mass or Volume Air Flow Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du débitmètre d'air",
		Severity:      "medium",
		Cause:         "Capteur MAF défectueux ou encrassé",
		Solution:      "Nettoyer ou remplacer le capteur MAF",
	},
	"P0101": {
		DescriptionEN: "Mass or Volume Air Flow Circuit Range/Performance Problem",
		DescriptionFR: "Problème de performance du circuit du débitmètre d'air",
		Severity:      "medium",
		Cause:         "Capteur MAF sale ou fuite d'air après le capteur",
		Solution:      "Nettoyer le capteur MAF, vérifier les fuites d'air",
	},
	"P0102": {
		DescriptionEN: "Mass or Volume Air Flow Circuit Low Input",
		DescriptionFR: "Signal bas du circuit du débitmètre d'air",
		Severity:      "medium",
		Cause:         "Capteur MAF défaillant ou filtre à air bouché",
		Solution:      "Vérifier le filtre à air, nettoyer/remplacer le capteur MAF",
	},
	"P0103": {
		DescriptionEN: "Mass or Volume Air Flow Circuit High Input",
		DescriptionFR: "Signal haut du circuit du débitmètre d'air",
		Severity:      "medium",
		Cause:         "Court-circuit dans le câblage MAF",
		Solution:      "Vérifier le câblage, remplacer le capteur MAF",
	},
	"P0104": {
		DescriptionEN: "Mass or Volume Air Flow Circuit Intermittent",
		DescriptionFR: "Circuit du débitmètre d'air intermittent",
		Severity:      "medium",
		Cause:         "Connexion électrique intermittente",
		Solution:      "Vérifier les connexions du capteur MAF",
	},
	"P0115": {
		DescriptionEN: "Engine Coolant Temperature Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit de température du liquide de refroidissement",
		Severity:      "medium",
		Cause:         "Capteur de température défectueux",
		Solution:      "Remplacer le capteur de température",
	},
	"P0116": {
		DescriptionEN: "Engine Coolant Temperature Circuit Range/Performance Problem",
		DescriptionFR: "Problème de performance du circuit de température",
		Severity:      "medium",
		Cause:         "Thermostat bloqué ou capteur défaillant",
		Solution:      "Vérifier le thermostat et le capteur de température",
	},
	"P0117": {
		DescriptionEN: "Engine Coolant Temperature Circuit Low Input",
		DescriptionFR: "Signal bas du circuit de température du liquide de refroidissement",
		Severity:      "medium",
		Cause:         "Court-circuit ou capteur défectueux",
		Solution:      "Vérifier le câblage, remplacer le capteur",
	},
	"P0118": {
		DescriptionEN: "Engine Coolant Temperature Circuit High Input",
		DescriptionFR: "Signal haut du circuit de température du liquide de refroidissement",
		Severity:      "medium",
		Cause:         "Circuit ouvert ou capteur défaillant",
		Solution:      "Vérifier le câblage, remplacer le capteur",
	},
	"P0120": {
		DescriptionEN: "Throttle/Pedal Position Sensor A Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du capteur de position papillon A",
		Severity:      "high",
		Cause:         "Capteur de position papillon défectueux",
		Solution:      "Remplacer le capteur de position papillon",
	},
	"P0121": {
		DescriptionEN: "Throttle/Pedal Position Sensor A Circuit Range/Performance Problem",
		DescriptionFR: "Problème de performance du capteur de position papillon A",
		Severity:      "high",
		Cause:         "Capteur TPS usé ou corps de papillon encrassé",
		Solution:      "Nettoyer le corps de papillon, remplacer le capteur TPS",
	},
	"P0122": {
		DescriptionEN: "Throttle/Pedal Position Sensor A Circuit Low Input",
		DescriptionFR: "Signal bas du capteur de position papillon A",
		Severity:      "high",
		Cause:         "Court-circuit ou capteur défaillant",
		Solution:      "Vérifier le câblage, remplacer le capteur TPS",
	},
	"P0123": {
		DescriptionEN: "Throttle/Pedal Position Sensor A Circuit High Input",
		DescriptionFR: "Signal haut du capteur de position papillon A",
		Severity:      "high",
		Cause:         "Court-circuit ou capteur défectueux",
		Solution:      "Vérifier le câblage, remplacer le capteur TPS",
	},
	"P0125": {
		DescriptionEN: "Insufficient Coolant Temperature for Closed Loop Fuel Control",
		DescriptionFR: "Température insuffisante pour le contrôle en boucle fermée",
		Severity:      "medium",
		Cause:         "Thermostat bloqué ouvert ou capteur défectueux",
		Solution:      "Remplacer le thermostat",
	},
	"P0128": {
		DescriptionEN: "Coolant Thermostat (Coolant Temperature Below Thermostat Regulating Temperature)",
		DescriptionFR: "Thermostat - Température en dessous de la température de régulation",
		Severity:      "medium",
		Cause:         "Thermostat bloqué en position ouverte",
		Solution:      "Remplacer le thermostat",
	},
	"P0130": {
		DescriptionEN: "O2 Sensor Circuit Malfunction (Bank 1 Sensor 1)",
		DescriptionFR: "Dysfonctionnement du circuit de la sonde O2 (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Sonde lambda défectueuse ou câblage endommagé",
		Solution:      "Remplacer la sonde lambda amont banc 1",
	},
	"P0131": {
		DescriptionEN: "O2 Sensor Circuit Low Voltage (Bank 1 Sensor 1)",
		DescriptionFR: "Tension basse du circuit sonde O2 (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Sonde lambda défaillante ou fuite d'air",
		Solution:      "Vérifier les fuites d'air, remplacer la sonde",
	},
	"P0132": {
		DescriptionEN: "O2 Sensor Circuit High Voltage (Bank 1 Sensor 1)",
		DescriptionFR: "Tension haute du circuit sonde O2 (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Court-circuit ou sonde défectueuse",
		Solution:      "Vérifier le câblage, remplacer la sonde",
	},
	"P0133": {
		DescriptionEN: "O2 Sensor Circuit Slow Response (Bank 1 Sensor 1)",
		DescriptionFR: "Réponse lente du circuit sonde O2 (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Sonde lambda vieillissante",
		Solution:      "Remplacer la sonde lambda",
	},
	"P0134": {
		DescriptionEN: "O2 Sensor Circuit No Activity Detected (Bank 1 Sensor 1)",
		DescriptionFR: "Aucune activité détectée sur le circuit sonde O2 (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Sonde lambda défectueuse ou déconnectée",
		Solution:      "Vérifier la connexion, remplacer la sonde",
	},
	"P0135": {
		DescriptionEN: "O2 Sensor Heater Circuit Malfunction (Bank 1 Sensor 1)",
		DescriptionFR: "Dysfonctionnement du circuit de chauffage sonde O2 (Banc 1 Capteur 1)",
		Severity:      "medium",
		Cause:         "Circuit de chauffage de la sonde défectueux",
		Solution:      "Remplacer la sonde lambda",
	},
	"P0136": {
		DescriptionEN: "O2 Sensor Circuit Malfunction (Bank 1 Sensor 2)",
		DescriptionFR: "Dysfonctionnement du circuit de la sonde O2 (Banc 1 Capteur 2)",
		Severity:      "medium",
		Cause:         "Sonde lambda aval défectueuse",
		Solution:      "Remplacer la sonde lambda aval",
	},
	"P0137": {
		DescriptionEN: "O2 Sensor Circuit Low Voltage (Bank 1 Sensor 2)",
		DescriptionFR: "Tension basse du circuit sonde O2 (Banc 1 Capteur 2)",
		Severity:      "medium",
		Cause:         "Sonde aval défaillante",
		Solution:      "Remplacer la sonde lambda aval",
	},
	"P0138": {
		DescriptionEN: "O2 Sensor Circuit High Voltage (Bank 1 Sensor 2)",
		DescriptionFR: "Tension haute du circuit sonde O2 (Banc 1 Capteur 2)",
		Severity:      "medium",
		Cause:         "Sonde aval en court-circuit",
		Solution:      "Vérifier le câblage, remplacer la sonde",
	},
	"P0140": {
		DescriptionEN: "O2 Sensor Circuit No Activity Detected (Bank 1 Sensor 2)",
		DescriptionFR: "Aucune activité détectée sur le circuit sonde O2 (Banc 1 Capteur 2)",
		Severity:      "medium",
		Cause:         "Sonde lambda aval inactive",
		Solution:      "Remplacer la sonde lambda aval",
	},
	"P0141": {
		DescriptionEN: "O2 Sensor Heater Circuit Malfunction (Bank 1 Sensor 2)",
		DescriptionFR: "Dysfonctionnement du circuit de chauffage sonde O2 (Banc 1 Capteur 2)",
		Severity:      "medium",
		Cause:         "Chauffage de la sonde aval défectueux",
		Solution:      "Remplacer la sonde lambda aval",
	},
	"P0150": {
		DescriptionEN: "O2 Sensor Circuit Malfunction (Bank 2 Sensor 1)",
		DescriptionFR: "Dysfonctionnement du circuit de la sonde O2 (Banc 2 Capteur 1)",
		Severity:      "medium",
		Cause:         "Sonde lambda amont banc 2 défectueuse",
		Solution:      "Remplacer la sonde lambda amont banc 2",
	},
	"P0155": {
		DescriptionEN: "O2 Sensor Heater Circuit Malfunction (Bank 2 Sensor 1)",
		DescriptionFR: "Dysfonctionnement du circuit de chauffage sonde O2 (Banc 2 Capteur 1)",
		Severity:      "medium",
		Cause:         "Chauffage de la sonde banc 2 défectueux",
		Solution:      "Remplacer la sonde lambda",
	},
	"P0171": {
		DescriptionEN: "System Too Lean (Bank 1)",
		DescriptionFR: "Mélange trop pauvre (Banc 1)",
		Severity:      "medium",
		Cause:         "Fuite d'air, capteur MAF sale, injecteurs bouchés, pompe à carburant faible",
		Solution:      "Rechercher les fuites d'air, nettoyer le capteur MAF, vérifier la pression de carburant",
	},
	"P0172": {
		DescriptionEN: "System Too Rich (Bank 1)",
		DescriptionFR: "Mélange trop riche (Banc 1)",
		Severity:      "medium",
		Cause:         "Injecteurs qui fuient, capteur MAF défectueux, pression de carburant élevée",
		Solution:      "Vérifier les injecteurs, nettoyer/remplacer le capteur MAF",
	},
	"P0174": {
		DescriptionEN: "System Too Lean (Bank 2)",
		DescriptionFR: "Mélange trop pauvre (Banc 2)",
		Severity:      "medium",
		Cause:         "Fuite d'air côté banc 2, problème d'alimentation en carburant",
		Solution:      "Rechercher les fuites d'air, vérifier le système de carburant",
	},
	"P0175": {
		DescriptionEN: "System Too Rich (Bank 2)",
		DescriptionFR: "Mélange trop riche (Banc 2)",
		Severity:      "medium",
		Cause:         "Injecteurs défectueux banc 2, régulateur de pression défaillant",
		Solution:      "Vérifier les injecteurs et le régulateur de pression",
	},
	"P0200": {
		DescriptionEN: "Injector Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit d'injecteur",
		Severity:      "high",
		Cause:         "Problème dans le circuit des injecteurs",
		Solution:      "Vérifier le câblage et les injecteurs",
	},
	"P0201": {
		DescriptionEN: "Injector Circuit Malfunction - Cylinder 1",
		DescriptionFR: "Dysfonctionnement du circuit d'injecteur - Cylindre 1",
		Severity:      "high",
		Cause:         "Injecteur 1 défectueux ou câblage",
		Solution:      "Vérifier l'injecteur et le câblage du cylindre 1",
	},
	"P0202": {
		DescriptionEN: "Injector Circuit Malfunction - Cylinder 2",
		DescriptionFR: "Dysfonctionnement du circuit d'injecteur - Cylindre 2",
		Severity:      "high",
		Cause:         "Injecteur 2 défectueux ou câblage",
		Solution:      "Vérifier l'injecteur et le câblage du cylindre 2",
	},
	"P0203": {
		DescriptionEN: "Injector Circuit Malfunction - Cylinder 3",
		DescriptionFR: "Dysfonctionnement du circuit d'injecteur - Cylindre 3",
		Severity:      "high",
		Cause:         "Injecteur 3 défectueux ou câblage",
		Solution:      "Vérifier l'injecteur et le câblage du cylindre 3",
	},
	"P0204": {
		DescriptionEN: "Injector Circuit Malfunction - Cylinder 4",
		DescriptionFR: "Dysfonctionnement du circuit d'injecteur - Cylindre 4",
		Severity:      "high",
		Cause:         "Injecteur 4 défectueux ou câblage",
		Solution:      "Vérifier l'injecteur et le câblage du cylindre 4",
	},
	"P0300": {
		DescriptionEN: "Random/Multiple Cylinder Misfire Detected",
		DescriptionFR: "Ratés d'allumage aléatoires/multiples cylindres détectés",
		Severity:      "high",
		Cause:         "Bougies usées, bobines défectueuses, injecteurs sales, fuite d'air",
		Solution:      "Vérifier bougies, bobines, injecteurs et rechercher les fuites d'air",
	},
	"P0301": {
		DescriptionEN: "Cylinder 1 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 1",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 1 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 1",
	},
	"P0302": {
		DescriptionEN: "Cylinder 2 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 2",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 2 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 2",
	},
	"P0303": {
		DescriptionEN: "Cylinder 3 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 3",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 3 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 3",
	},
	"P0304": {
		DescriptionEN: "Cylinder 4 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 4",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 4 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 4",
	},
	"P0305": {
		DescriptionEN: "Cylinder 5 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 5",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 5 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 5",
	},
	"P0306": {
		DescriptionEN: "Cylinder 6 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 6",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 6 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 6",
	},
	"P0307": {
		DescriptionEN: "Cylinder 7 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 7",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 7 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 7",
	},
	"P0308": {
		DescriptionEN: "Cylinder 8 Misfire Detected",
		DescriptionFR: "Raté d'allumage détecté - Cylindre 8",
		Severity:      "high",
		Cause:         "Bougie, bobine ou injecteur du cylindre 8 défectueux",
		Solution:      "Remplacer la bougie, vérifier la bobine et l'injecteur du cylindre 8",
	},
	"P0325": {
		DescriptionEN: "Knock Sensor 1 Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du capteur de cliquetis 1",
		Severity:      "medium",
		Cause:         "Capteur de cliquetis défectueux ou câblage endommagé",
		Solution:      "Remplacer le capteur de cliquetis ou réparer le câblage",
	},
	"P0326": {
		DescriptionEN: "Knock Sensor 1 Circuit Range/Performance",
		DescriptionFR: "Performance du circuit du capteur de cliquetis 1 hors plage",
		Severity:      "medium",
		Cause:         "Capteur mal fixé ou défectueux",
		Solution:      "Vérifier le serrage et l'état du capteur de cliquetis",
	},
	"P0327": {
		DescriptionEN: "Knock Sensor 1 Circuit Low Input",
		DescriptionFR: "Signal bas du circuit du capteur de cliquetis 1",
		Severity:      "medium",
		Cause:         "Court-circuit ou capteur défaillant",
		Solution:      "Vérifier le câblage et remplacer le capteur si nécessaire",
	},
	"P0328": {
		DescriptionEN: "Knock Sensor 1 Circuit High Input",
		DescriptionFR: "Signal haut du circuit du capteur de cliquetis 1",
		Severity:      "medium",
		Cause:         "Interférence électrique ou capteur défectueux",
		Solution:      "Vérifier le câblage pour interférences, remplacer le capteur",
	},
	"P0335": {
		DescriptionEN: "Crankshaft Position Sensor A Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du capteur de position vilebrequin A",
		Severity:      "high",
		Cause:         "Capteur de vilebrequin défectueux, câblage endommagé",
		Solution:      "Remplacer le capteur de position vilebrequin",
	},
	"P0336": {
		DescriptionEN: "Crankshaft Position Sensor A Circuit Range/Performance",
		DescriptionFR: "Performance du capteur de position vilebrequin A hors plage",
		Severity:      "high",
		Cause:         "Entrefer incorrect ou roue dentée endommagée",
		Solution:      "Vérifier l'entrefer et l'état de la roue dentée",
	},
	"P0340": {
		DescriptionEN: "Camshaft Position Sensor Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du capteur de position d'arbre à cames",
		Severity:      "high",
		Cause:         "Capteur d'arbre à cames défectueux ou câblage",
		Solution:      "Remplacer le capteur de position d'arbre à cames",
	},
	"P0341": {
		DescriptionEN: "Camshaft Position Sensor Circuit Range/Performance",
		DescriptionFR: "Performance du capteur de position d'arbre à cames hors plage",
		Severity:      "high",
		Cause:         "Calage de distribution incorrect, capteur défaillant",
		Solution:      "Vérifier le calage de distribution et le capteur",
	},
	"P0380": {
		DescriptionEN: "Glow Plug/Heater Circuit A Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit des bougies de préchauffage A",
		Severity:      "medium",
		Cause:         "Bougie de préchauffage défectueuse ou relais",
		Solution:      "Vérifier les bougies de préchauffage et le relais",
	},
	"P0381": {
		DescriptionEN: "Glow Plug/Heater Indicator Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit indicateur de préchauffage",
		Severity:      "low",
		Cause:         "Problème dans le circuit témoin de préchauffage",
		Solution:      "Vérifier le câblage du témoin",
	},
	"P0400": {
		DescriptionEN: "Exhaust Gas Recirculation Flow Malfunction",
		DescriptionFR: "Dysfonctionnement du débit de recirculation des gaz d'échappement",
		Severity:      "medium",
		Cause:         "Vanne EGR encrassée ou défectueuse",
		Solution:      "Nettoyer ou remplacer la vanne EGR",
	},
	"P0401": {
		DescriptionEN: "Exhaust Gas Recirculation Flow Insufficient Detected",
		DescriptionFR: "Débit EGR insuffisant détecté",
		Severity:      "medium",
		Cause:         "Vanne EGR bloquée, passages obstrués",
		Solution:      "Nettoyer les passages EGR et la vanne",
	},
	"P0402": {
		DescriptionEN: "Exhaust Gas Recirculation Flow Excessive Detected",
		DescriptionFR: "Débit EGR excessif détecté",
		Severity:      "medium",
		Cause:         "Vanne EGR bloquée ouverte",
		Solution:      "Remplacer la vanne EGR",
	},
	"P0403": {
		DescriptionEN: "Exhaust Gas Recirculation Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit EGR",
		Severity:      "medium",
		Cause:         "Problème électrique dans le circuit EGR",
		Solution:      "Vérifier le câblage et le solénoïde EGR",
	},
	"P0404": {
		DescriptionEN: "Exhaust Gas Recirculation Circuit Range/Performance",
		DescriptionFR: "Performance du circuit EGR hors plage",
		Severity:      "medium",
		Cause:         "Vanne EGR usée ou capteur défectueux",
		Solution:      "Remplacer la vanne EGR",
	},
	"P0420": {
		DescriptionEN: "Catalyst System Efficiency Below Threshold (Bank 1)",
		DescriptionFR: "Efficacité du catalyseur en dessous du seuil (Banc 1)",
		Severity:      "medium",
		Cause:         "Catalyseur usé ou défectueux, sonde lambda défaillante",
		Solution:      "Vérifier les sondes lambda, remplacer le catalyseur si nécessaire",
	},
	"P0421": {
		DescriptionEN: "Warm Up Catalyst Efficiency Below Threshold (Bank 1)",
		DescriptionFR: "Efficacité du catalyseur à chaud en dessous du seuil (Banc 1)",
		Severity:      "medium",
		Cause:         "Catalyseur endommagé ou contamination",
		Solution:      "Vérifier l'état du catalyseur et les sondes lambda",
	},
	"P0430": {
		DescriptionEN: "Catalyst System Efficiency Below Threshold (Bank 2)",
		DescriptionFR: "Efficacité du catalyseur en dessous du seuil (Banc 2)",
		Severity:      "medium",
		Cause:         "Catalyseur du banc 2 usé ou défectueux",
		Solution:      "Remplacer le catalyseur du banc 2",
	},
	"P0440": {
		DescriptionEN: "Evaporative Emission Control System Malfunction",
		DescriptionFR: "Dysfonctionnement du système de contrôle des émissions par évaporation",
		Severity:      "low",
		Cause:         "Bouchon de réservoir mal fermé, fuite dans le système EVAP",
		Solution:      "Vérifier le bouchon de réservoir, rechercher les fuites EVAP",
	},
	"P0441": {
		DescriptionEN: "Evaporative Emission Control System Incorrect Purge Flow",
		DescriptionFR: "Débit de purge incorrect du système EVAP",
		Severity:      "low",
		Cause:         "Vanne de purge défectueuse ou fuite",
		Solution:      "Remplacer la vanne de purge EVAP",
	},
	"P0442": {
		DescriptionEN: "Evaporative Emission Control System Leak Detected (Small Leak)",
		DescriptionFR: "Petite fuite détectée dans le système EVAP",
		Severity:      "low",
		Cause:         "Petite fuite dans le système de récupération des vapeurs",
		Solution:      "Test de fumée pour localiser la fuite, vérifier le bouchon",
	},
	"P0443": {
		DescriptionEN: "Evaporative Emission Control System Purge Control Valve Circuit",
		DescriptionFR: "Circuit de la vanne de purge du système EVAP",
		Severity:      "low",
		Cause:         "Vanne de purge ou câblage défectueux",
		Solution:      "Remplacer la vanne de purge ou réparer le câblage",
	},
	"P0446": {
		DescriptionEN: "Evaporative Emission Control System Vent Control Circuit",
		DescriptionFR: "Circuit de contrôle d'évent du système EVAP",
		Severity:      "low",
		Cause:         "Vanne d'évent ou filtre à charbon obstrué",
		Solution:      "Vérifier la vanne d'évent et le filtre à charbon",
	},
	"P0455": {
		DescriptionEN: "Evaporative Emission Control System Leak Detected (Gross Leak)",
		DescriptionFR: "Grosse fuite détectée dans le système EVAP",
		Severity:      "low",
		Cause:         "Bouchon de réservoir manquant ou grosse fuite",
		Solution:      "Vérifier le bouchon de réservoir, inspecter les durites EVAP",
	},
	"P0500": {
		DescriptionEN: "Vehicle Speed Sensor Malfunction",
		DescriptionFR: "Dysfonctionnement du capteur de vitesse du véhicule",
		Severity:      "medium",
		Cause:         "Capteur de vitesse défectueux ou câblage",
		Solution:      "Remplacer le capteur de vitesse",
	},
	"P0501": {
		DescriptionEN: "Vehicle Speed Sensor Range/Performance",
		DescriptionFR: "Performance du capteur de vitesse hors plage",
		Severity:      "medium",
		Cause:         "Signal du capteur de vitesse irrégulier",
		Solution:      "Vérifier le capteur et le câblage",
	},
	"P0505": {
		DescriptionEN: "Idle Control System Malfunction",
		DescriptionFR: "Dysfonctionnement du système de contrôle de ralenti",
		Severity:      "medium",
		Cause:         "Vanne de ralenti encrassée ou défectueuse",
		Solution:      "Nettoyer ou remplacer la vanne de ralenti",
	},
	"P0506": {
		DescriptionEN: "Idle Control System RPM Lower Than Expected",
		DescriptionFR: "Régime de ralenti inférieur à la normale",
		Severity:      "medium",
		Cause:         "Fuite d'air, corps de papillon encrassé",
		Solution:      "Nettoyer le corps de papillon, rechercher les fuites",
	},
	"P0507": {
		DescriptionEN: "Idle Control System RPM Higher Than Expected",
		DescriptionFR: "Régime de ralenti supérieur à la normale",
		Severity:      "medium",
		Cause:         "Fuite d'air, vanne de ralenti bloquée ouverte",
		Solution:      "Rechercher les fuites d'air, vérifier la vanne de ralenti",
	},
	"P0562": {
		DescriptionEN: "System Voltage Low",
		DescriptionFR: "Tension système basse",
		Severity:      "medium",
		Cause:         "Batterie faible, alternateur défaillant",
		Solution:      "Tester la batterie et l'alternateur",
	},
	"P0563": {
		DescriptionEN: "System Voltage High",
		DescriptionFR: "Tension système haute",
		Severity:      "medium",
		Cause:         "Alternateur en surcharge",
		Solution:      "Remplacer le régulateur ou l'alternateur",
	},
	"P0600": {
		DescriptionEN: "Serial Communication Link Malfunction",
		DescriptionFR: "Dysfonctionnement de la liaison de communication série",
		Severity:      "high",
		Cause:         "Problème de communication interne du calculateur",
		Solution:      "Reprogrammation ou remplacement du calculateur",
	},
	"P0601": {
		DescriptionEN: "Internal Control Module Memory Check Sum Error",
		DescriptionFR: "Erreur de somme de contrôle de la mémoire du calculateur",
		Severity:      "high",
		Cause:         "Mémoire du calculateur corrompue",
		Solution:      "Reprogrammation ou remplacement du calculateur",
	},
	"P0602": {
		DescriptionEN: "Control Module Programming Error",
		DescriptionFR: "Erreur de programmation du calculateur",
		Severity:      "high",
		Cause:         "Programmation incorrecte ou corrompue",
		Solution:      "Reprogrammer le calculateur",
	},
	"P0606": {
		DescriptionEN: "PCM Processor Fault",
		DescriptionFR: "Défaut du processeur du calculateur",
		Severity:      "high",
		Cause:         "Processeur du calculateur défaillant",
		Solution:      "Remplacer le calculateur",
	},
	"P0700": {
		DescriptionEN: "Transmission Control System Malfunction",
		DescriptionFR: "Dysfonctionnement du système de contrôle de transmission",
		Severity:      "high",
		Cause:         "Problème général de transmission, autre code présent",
		Solution:      "Lire les codes supplémentaires, diagnostic approfondi",
	},
	"P0705": {
		DescriptionEN: "Transmission Range Sensor Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du capteur de position de transmission",
		Severity:      "high",
		Cause:         "Capteur de position sélecteur défectueux",
		Solution:      "Remplacer le capteur de position de transmission",
	},
	"P0715": {
		DescriptionEN: "Input/Turbine Speed Sensor Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du capteur de vitesse d'entrée",
		Severity:      "high",
		Cause:         "Capteur de vitesse de turbine défectueux",
		Solution:      "Remplacer le capteur de vitesse d'entrée",
	},
	"P0720": {
		DescriptionEN: "Output Speed Sensor Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit du capteur de vitesse de sortie",
		Severity:      "high",
		Cause:         "Capteur de vitesse de sortie défectueux",
		Solution:      "Remplacer le capteur de vitesse de sortie",
	},
	"P0730": {
		DescriptionEN: "Incorrect Gear Ratio",
		DescriptionFR: "Rapport de vitesse incorrect",
		Severity:      "high",
		Cause:         "Problème interne de transmission, embrayages usés",
		Solution:      "Diagnostic de transmission, révision possible",
	},
	"P0740": {
		DescriptionEN: "Torque Converter Clutch Circuit Malfunction",
		DescriptionFR: "Dysfonctionnement du circuit d'embrayage du convertisseur de couple",
		Severity:      "high",
		Cause:         "Solénoïde TCC défectueux ou câblage",
		Solution:      "Remplacer le solénoïde TCC",
	},
	"P0741": {
		DescriptionEN: "Torque Converter Clutch Circuit Performance or Stuck Off",
		DescriptionFR: "Performance du circuit TCC ou bloqué désengagé",
		Severity:      "high",
		Cause:         "Solénoïde TCC bloqué ou défaillant",
		Solution:      "Remplacer le solénoïde TCC, vérifier le câblage",
	},
	"P0750": {
		DescriptionEN: "Shift Solenoid A Malfunction",
		DescriptionFR: "Dysfonctionnement du solénoïde de changement de vitesse A",
		Severity:      "high",
		Cause:         "Solénoïde A défectueux",
		Solution:      "Remplacer le solénoïde de changement A",
	},
	"P0755": {
		DescriptionEN: "Shift Solenoid B Malfunction",
		DescriptionFR: "Dysfonctionnement du solénoïde de changement de vitesse B",
		Severity:      "high",
		Cause:         "Solénoïde B défectueux",
		Solution:      "Remplacer le solénoïde de changement B",
	},
	"P1000": {
		DescriptionEN: "OBD Systems Readiness Test Not Complete",
		DescriptionFR: "Test de préparation des systèmes OBD non terminé",
		Severity:      "low",
		Cause:         "Cycles de conduite insuffisants après effacement des codes",
		Solution:      "Effectuer un cycle de conduite complet",
	},
	"P2002": {
		DescriptionEN: "Diesel Particulate Filter Efficiency Below Threshold",
		DescriptionFR: "Efficacité du filtre à particules en dessous du seuil",
		Severity:      "high",
		Cause:         "Filtre à particules (FAP) colmaté ou défectueux",
		Solution:      "Régénération forcée ou remplacement du FAP",
	},
	"P2003": {
		DescriptionEN: "Diesel Particulate Filter Efficiency Below Threshold (Bank 2)",
		DescriptionFR: "Efficacité du FAP en dessous du seuil (Banc 2)",
		Severity:      "high",
		Cause:         "FAP du banc 2 colmaté",
		Solution:      "Régénération ou remplacement du FAP",
	},
	"P2279": {
		DescriptionEN: "Intake Air System Leak",
		DescriptionFR: "Fuite dans le système d'admission d'air",
		Severity:      "medium",
		Cause:         "Fuite d'air dans l'admission",
		Solution:      "Rechercher et réparer la fuite d'air",
	},
	// U0xxx - Network
	"U0100": {
		DescriptionEN: "Lost Communication With ECM/PCM A",
		DescriptionFR: "Perte de communication avec le calculateur moteur",
		Severity:      "high",
		Cause:         "Problème de communication CAN bus",
		Solution:      "Vérifier le câblage CAN bus et le calculateur",
	},
	"U0101": {
		DescriptionEN: "Lost Communication With TCM",
		DescriptionFR: "Perte de communication avec le calculateur de transmission",
		Severity:      "high",
		Cause:         "Problème de communication avec le TCM",
		Solution:      "Vérifier le câblage et le calculateur de transmission",
	},
	"U0121": {
		DescriptionEN: "Lost Communication With Anti-Lock Brake System Control Module",
		DescriptionFR: "Perte de communication avec le module ABS",
		Severity:      "high",
		Cause:         "Problème de communication avec le module ABS",
		Solution:      "Vérifier le câblage et le module ABS",
	},
	"U0140": {
		DescriptionEN: "Lost Communication With Body Control Module",
		DescriptionFR: "Perte de communication avec le module de carrosserie",
		Severity:      "medium",
		Cause:         "Problème de communication avec le BCM",
		Solution:      "Vérifier le câblage et le module de carrosserie",
	},
	// B0xxx - Body
	"B0001": {
		DescriptionEN: "Driver Frontal Stage 1 Deployment Control",
		DescriptionFR: "Contrôle de déploiement airbag frontal conducteur étape 1",
		Severity:      "high",
		Cause:         "Problème dans le circuit de l'airbag conducteur",
		Solution:      "Diagnostic du système airbag requis",
	},
	"B1000": {
		DescriptionEN: "ECU Malfunction",
		DescriptionFR: "Dysfonctionnement du calculateur",
		Severity:      "high",
		Cause:         "Problème interne du calculateur",
		Solution:      "Reprogrammation ou remplacement du calculateur",
	},
	// C0xxx - Chassis
	"C0035": {
		DescriptionEN: "Left Front Wheel Speed Sensor Circuit",
		DescriptionFR: "Circuit du capteur de vitesse roue avant gauche",
		Severity:      "medium",
		Cause:         "Capteur ABS avant gauche défectueux",
		Solution:      "Remplacer le capteur ABS avant gauche",
	},
	"C0040": {
		DescriptionEN: "Right Front Wheel Speed Sensor Circuit",
		DescriptionFR: "Circuit du capteur de vitesse roue avant droite",
		Severity:      "medium",
		Cause:         "Capteur ABS avant droit défectueux",
		Solution:      "Remplacer le capteur ABS avant droit",
	},
	"C0045": {
		DescriptionEN: "Left Rear Wheel Speed Sensor Circuit",
		DescriptionFR: "Circuit du capteur de vitesse roue arrière gauche",
		Severity:      "medium",
		Cause:         "Capteur ABS arrière gauche défectueux",
		Solution:      "Remplacer le capteur ABS arrière gauche",
	},
	"C0050": {
		DescriptionEN: "Right Rear Wheel Speed Sensor Circuit",
		DescriptionFR: "Circuit du capteur de vitesse roue arrière droite",
		Severity:      "medium",
		Cause:         "Capteur ABS arrière droit défectueux",
		Solution:      "Remplacer le capteur ABS arrière droit",
	},
	"C0110": {
		DescriptionEN: "Pump Motor Circuit",
		DescriptionFR: "Circuit du moteur de pompe ABS",
		Severity:      "high",
		Cause:         "Pompe ABS défectueuse",
		Solution:      "Remplacer la pompe ABS ou le module",
	},
}
