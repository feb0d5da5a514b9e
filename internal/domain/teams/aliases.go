package teams

// canonical is the fixed set of league team codes.
var canonical = map[string]struct{}{
	"ATL": {}, "BOS": {}, "BKN": {}, "CHA": {}, "CHI": {}, "CLE": {},
	"DAL": {}, "DEN": {}, "DET": {}, "GSW": {}, "HOU": {}, "IND": {},
	"LAC": {}, "LAL": {}, "MEM": {}, "MIA": {}, "MIL": {}, "MIN": {},
	"NOP": {}, "NYK": {}, "OKC": {}, "ORL": {}, "PHI": {}, "PHX": {},
	"POR": {}, "SAC": {}, "SAS": {}, "TOR": {}, "UTA": {}, "WAS": {},
}

// aliases maps uppercased variant spellings (abbreviation variants, city
// names, nickname words) to canonical codes. Lookups happen after
// uppercase+trim, so entries are stored uppercased.
var aliases = map[string]string{
	// Abbreviation variants seen across slate files and lineup pages.
	"BRK":  "BKN",
	"BRO":  "BKN",
	"CHO":  "CHA",
	"GS":   "GSW",
	"NET":  "BKN",
	"NO":   "NOP",
	"NOR":  "NOP",
	"NY":   "NYK",
	"PHO":  "PHX",
	"SA":   "SAS",
	"UTAH": "UTA",
	"WSH":  "WAS",

	// City names.
	"ATLANTA":       "ATL",
	"BOSTON":        "BOS",
	"BROOKLYN":      "BKN",
	"CHARLOTTE":     "CHA",
	"CHICAGO":       "CHI",
	"CLEVELAND":     "CLE",
	"DALLAS":        "DAL",
	"DENVER":        "DEN",
	"DETROIT":       "DET",
	"GOLDEN STATE":  "GSW",
	"HOUSTON":       "HOU",
	"INDIANA":       "IND",
	"LA CLIPPERS":   "LAC",
	"LA LAKERS":     "LAL",
	"MEMPHIS":       "MEM",
	"MIAMI":         "MIA",
	"MILWAUKEE":     "MIL",
	"MINNESOTA":     "MIN",
	"NEW ORLEANS":   "NOP",
	"NEW YORK":      "NYK",
	"OKLAHOMA CITY": "OKC",
	"ORLANDO":       "ORL",
	"PHILADELPHIA":  "PHI",
	"PHOENIX":       "PHX",
	"PORTLAND":      "POR",
	"SACRAMENTO":    "SAC",
	"SAN ANTONIO":   "SAS",
	"TORONTO":       "TOR",
	"WASHINGTON":    "WAS",

	// Nickname words.
	"HAWKS":         "ATL",
	"CELTICS":       "BOS",
	"NETS":          "BKN",
	"HORNETS":       "CHA",
	"BULLS":         "CHI",
	"CAVALIERS":     "CLE",
	"CAVS":          "CLE",
	"MAVERICKS":     "DAL",
	"MAVS":          "DAL",
	"NUGGETS":       "DEN",
	"PISTONS":       "DET",
	"WARRIORS":      "GSW",
	"ROCKETS":       "HOU",
	"PACERS":        "IND",
	"CLIPPERS":      "LAC",
	"LAKERS":        "LAL",
	"GRIZZLIES":     "MEM",
	"HEAT":          "MIA",
	"BUCKS":         "MIL",
	"TIMBERWOLVES":  "MIN",
	"WOLVES":        "MIN",
	"PELICANS":      "NOP",
	"KNICKS":        "NYK",
	"THUNDER":       "OKC",
	"MAGIC":         "ORL",
	"76ERS":         "PHI",
	"SIXERS":        "PHI",
	"SUNS":          "PHX",
	"TRAIL BLAZERS": "POR",
	"BLAZERS":       "POR",
	"KINGS":         "SAC",
	"SPURS":         "SAS",
	"RAPTORS":       "TOR",
	"JAZZ":          "UTA",
	"WIZARDS":       "WAS",
}
