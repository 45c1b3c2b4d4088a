package setting

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// DefaultRegion is reported when no keyword matches
const DefaultRegion = "Western Europe"

// colonialCutoff is the first year North America resolves to the colonial zone
const colonialCutoff = 1600

// LocationContext is the structured form of a location string
type LocationContext struct {
	Zone     entities.CulturalZone
	Region   string
	Location string
	Matched  bool
}

// locationRule maps any of its keywords to a region. Zone is fixed unless
// ZoneForYear is set.
type locationRule struct {
	Region      string
	Zone        entities.CulturalZone
	ZoneForYear func(year int) entities.CulturalZone
	Keywords    []string
}

func northAmericaZone(year int) entities.CulturalZone {
	if year < colonialCutoff {
		return entities.ZoneNorthAmericanPreColumbian
	}
	return entities.ZoneNorthAmericanColonial
}

// locationRules are evaluated top to bottom; the first rule with a matching
// keyword wins. Compound names ("new york", "new guinea") come before the
// shorter names they contain.
var locationRules = []locationRule{
	{Region: "Melanesia", Zone: entities.ZoneOceanian, Keywords: []string{
		"new guinea", "papua", "melanesia", "fiji", "solomon islands", "vanuatu",
	}},
	{Region: "Polynesia", Zone: entities.ZoneOceanian, Keywords: []string{
		"new zealand", "aotearoa", "maori", "polynesia", "hawaii", "tahiti", "samoa",
		"tonga", "easter island", "rapa nui", "micronesia", "pacific islands",
	}},
	{Region: "Australia", Zone: entities.ZoneOceanian, Keywords: []string{
		"australia", "sydney", "melbourne", "oceania", "tasmania",
	}},
	{Region: "North America", ZoneForYear: northAmericaZone, Keywords: []string{
		"new england", "new york", "new jersey", "new mexico", "new orleans",
		"north america", "united states", "usa", "canada", "quebec", "ontario",
		"massachusetts", "virginia", "boston", "philadelphia", "chicago", "california",
		"texas", "florida", "carolina", "pennsylvania", "ohio", "michigan", "illinois",
		"washington", "oregon", "alaska", "mississippi", "louisiana", "kentucky",
		"tennessee", "maryland", "connecticut", "vermont", "maine", "colorado",
		"arizona", "nevada", "utah", "kansas", "nebraska", "dakota", "minnesota",
		"wisconsin", "iowa", "missouri", "oklahoma", "alabama", "indiana", "cherokee",
		"iroquois", "lakota", "navajo", "apache", "hopi", "pueblo", "cahokia",
		"great plains", "british columbia", "manitoba", "nova scotia", "appalachia",
		"san francisco", "los angeles", "seattle", "detroit", "baltimore", "atlanta",
	}},
	{Region: "Mesoamerica", Zone: entities.ZoneSouthAmerican, Keywords: []string{
		"mexico", "aztec", "tenochtitlan", "maya", "yucatan", "guatemala", "honduras",
		"nicaragua", "costa rica", "panama", "central america", "el salvador",
	}},
	{Region: "Caribbean", Zone: entities.ZoneSouthAmerican, Keywords: []string{
		"caribbean", "cuba", "jamaica", "haiti", "puerto rico", "hispaniola", "barbados",
	}},
	{Region: "South America", Zone: entities.ZoneSouthAmerican, Keywords: []string{
		"south america", "latin america", "brazil", "argentina", "chile", "peru", "inca",
		"cusco", "bolivia", "colombia", "venezuela", "ecuador", "uruguay", "paraguay",
		"lima", "rio de janeiro", "buenos aires", "andes", "amazon",
	}},
	{Region: "North America", ZoneForYear: northAmericaZone, Keywords: []string{
		"america", "americas", "us",
	}},
	{Region: "British Isles", Zone: entities.ZoneEuropean, Keywords: []string{
		"england", "britain", "scotland", "wales", "ireland", "london", "york", "jersey",
		"uk", "united kingdom", "edinburgh", "dublin", "cornwall", "yorkshire", "oxford",
		"cambridge", "manchester", "liverpool", "glasgow",
	}},
	{Region: "Iberia", Zone: entities.ZoneEuropean, Keywords: []string{
		"spain", "portugal", "castile", "aragon", "madrid", "lisbon", "seville",
		"barcelona", "toledo", "granada", "catalonia", "andalusia", "iberia",
	}},
	{Region: "France", Zone: entities.ZoneEuropean, Keywords: []string{
		"france", "paris", "gaul", "normandy", "brittany", "burgundy", "provence",
		"lyon", "marseille", "aquitaine", "bordeaux",
	}},
	{Region: "Italy", Zone: entities.ZoneEuropean, Keywords: []string{
		"italy", "rome", "roman", "venice", "florence", "milan", "naples", "sicily",
		"genoa", "tuscany", "lombardy", "pisa", "sardinia",
	}},
	{Region: "Central Europe", Zone: entities.ZoneEuropean, Keywords: []string{
		"germany", "prussia", "bavaria", "saxony", "austria", "vienna", "berlin",
		"hamburg", "munich", "switzerland", "swiss", "holy roman empire", "bohemia",
		"prague", "netherlands", "holland", "amsterdam", "flanders", "belgium",
		"luxembourg", "hungary", "budapest",
	}},
	{Region: "Scandinavia", Zone: entities.ZoneEuropean, Keywords: []string{
		"norway", "sweden", "denmark", "iceland", "finland", "viking", "scandinavia",
		"oslo", "stockholm", "copenhagen",
	}},
	{Region: "Eastern Europe", Zone: entities.ZoneEuropean, Keywords: []string{
		"russia", "moscow", "kiev", "kyiv", "ukraine", "poland", "krakow", "warsaw",
		"lithuania", "novgorod", "belarus", "romania", "serbia", "bulgaria", "croatia",
		"bosnia", "latvia", "estonia", "slovakia", "moldova",
	}},
	{Region: "Greece and the Balkans", Zone: entities.ZoneEuropean, Keywords: []string{
		"greece", "athens", "sparta", "macedonia", "byzantium", "constantinople",
		"crete", "corinth", "albania", "cyprus",
	}},
	{Region: "Western Europe", Zone: entities.ZoneEuropean, Keywords: []string{
		"europe", "european",
	}},
	{Region: "Anatolia", Zone: entities.ZoneMENA, Keywords: []string{
		"turkey", "anatolia", "ottoman", "istanbul", "ankara", "troy", "smyrna",
	}},
	{Region: "Levant", Zone: entities.ZoneMENA, Keywords: []string{
		"israel", "jerusalem", "judea", "palestine", "lebanon", "syria", "damascus",
		"jordan", "phoenicia", "tyre", "antioch", "levant",
	}},
	{Region: "Mesopotamia", Zone: entities.ZoneMENA, Keywords: []string{
		"iraq", "baghdad", "babylon", "mesopotamia", "sumer", "assyria", "nineveh", "ur",
	}},
	{Region: "Persia", Zone: entities.ZoneMENA, Keywords: []string{
		"persia", "iran", "tehran", "isfahan", "persepolis",
	}},
	{Region: "Arabia", Zone: entities.ZoneMENA, Keywords: []string{
		"arabia", "mecca", "medina", "saudi", "yemen", "oman", "kuwait", "qatar",
		"dubai", "emirates",
	}},
	{Region: "Egypt", Zone: entities.ZoneMENA, Keywords: []string{
		"egypt", "cairo", "alexandria", "nile", "memphis", "giza",
	}},
	{Region: "North Africa", Zone: entities.ZoneMENA, Keywords: []string{
		"morocco", "algeria", "tunisia", "libya", "carthage", "maghreb", "fez",
		"marrakesh", "tripoli",
	}},
	{Region: "West Africa", Zone: entities.ZoneSubSaharanAfrican, Keywords: []string{
		"nigeria", "ghana", "mali", "timbuktu", "senegal", "benin", "guinea",
		"sierra leone", "liberia", "ivory coast", "songhai", "niger", "yoruba",
		"ashanti", "dahomey", "gambia", "burkina faso",
	}},
	{Region: "East Africa", Zone: entities.ZoneSubSaharanAfrican, Keywords: []string{
		"ethiopia", "abyssinia", "aksum", "kenya", "tanzania", "uganda", "somalia",
		"zanzibar", "swahili", "nubia", "sudan", "kush", "eritrea", "rwanda",
	}},
	{Region: "Southern Africa", Zone: entities.ZoneSubSaharanAfrican, Keywords: []string{
		"south africa", "zimbabwe", "zulu", "mozambique", "angola", "congo", "namibia",
		"botswana", "madagascar", "zambia", "malawi", "cape town", "africa",
	}},
	{Region: "South Asia", Zone: entities.ZoneSouthAsian, Keywords: []string{
		"india", "delhi", "bengal", "mughal", "punjab", "kerala", "bombay", "mumbai",
		"calcutta", "kolkata", "madras", "chennai", "pakistan", "lahore", "karachi",
		"bangladesh", "dhaka", "sri lanka", "ceylon", "nepal", "kathmandu", "bhutan",
		"harappa", "indus", "maurya", "rajasthan", "gujarat", "deccan", "hindustan",
		"varanasi",
	}},
	{Region: "China", Zone: entities.ZoneEastAsian, Keywords: []string{
		"china", "beijing", "peking", "shanghai", "nanjing", "xian", "chang an",
		"canton", "guangzhou", "hong kong", "manchuria", "taiwan", "formosa",
	}},
	{Region: "Japan", Zone: entities.ZoneEastAsian, Keywords: []string{
		"japan", "tokyo", "edo", "kyoto", "osaka", "nara",
	}},
	{Region: "Korea", Zone: entities.ZoneEastAsian, Keywords: []string{
		"korea", "seoul", "joseon", "goryeo", "silla",
	}},
	{Region: "Mainland Southeast Asia", Zone: entities.ZoneSoutheastAsian, Keywords: []string{
		"vietnam", "hanoi", "saigon", "thailand", "siam", "bangkok", "ayutthaya",
		"cambodia", "khmer", "angkor", "laos", "burma", "myanmar",
	}},
	{Region: "Maritime Southeast Asia", Zone: entities.ZoneSoutheastAsian, Keywords: []string{
		"malaysia", "malacca", "singapore", "indonesia", "java", "sumatra", "bali",
		"borneo", "philippines", "manila", "majapahit", "srivijaya",
	}},
	{Region: "Central Asia", Zone: entities.ZoneCentralAsian, Keywords: []string{
		"mongolia", "mongol", "karakorum", "kazakhstan", "uzbekistan", "samarkand",
		"bukhara", "turkmenistan", "kyrgyzstan", "tajikistan", "afghanistan", "kabul",
		"silk road", "tibet", "lhasa", "steppe", "scythia", "xinjiang",
	}},
}

// ResolveLocation classifies a location string. The year only matters for
// North America. Unmatched or empty input falls back to the European zone.
func ResolveLocation(raw string, year int) LocationContext {
	location := strings.TrimSpace(raw)
	padded := " " + normalize(location) + " "

	for _, rule := range locationRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(padded, " "+kw+" ") {
				zone := rule.Zone
				if rule.ZoneForYear != nil {
					zone = rule.ZoneForYear(year)
				}
				return LocationContext{
					Zone:     zone,
					Region:   rule.Region,
					Location: location,
					Matched:  true,
				}
			}
		}
	}

	if location == "" {
		location = "Europe"
	}
	return LocationContext{
		Zone:     entities.ZoneEuropean,
		Region:   DefaultRegion,
		Location: location,
	}
}

// normalize lowercases and turns punctuation into single spaces
func normalize(s string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteRune(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}
