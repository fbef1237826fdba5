package util

import (
	"regexp"
	"strings"
)

var (
	leadingTheRe = regexp.MustCompile(`^the\s+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// canonicalVenueMap maps lookup keys (lower-cased, leading "the " stripped,
// whitespace collapsed) to the canonical display form. Hand-maintained; the
// source data spells the same venue several ways. Entries are carried over
// from the curated list as-is.
var canonicalVenueMap = map[string]string{
	"west side comedy club":               "West Side Comedy Club",
	"greenwich village comedy club":       "Greenwich Village Comedy Club",
	"comedy shop":                         "Comedy Shop",
	"broadway comedy club":                "Broadway Comedy Club",
	"qed astoria":                         "QED Astoria",
	"the stand nyc":                       "The Stand NYC",
	"bushwick comedy club":                "Bushwick Comedy Club",
	"stand up ny":                         "Stand Up NY",
	"gotham comedy club":                  "Gotham Comedy Club",
	"caroline's on broadway":              "Caroline's on Broadway",
	"comedy cellar":                       "Comedy Cellar",
	"fat black pussycat":                  "Fat Black Pussycat",
	"the bell house":                      "The Bell House",
	"union hall":                          "Union Hall",
	"littlefield":                         "Littlefield",
	"brooklyn comedy collective":          "Brooklyn Comedy Collective",
	"creek and the cave":                  "Creek and the Cave",
	"the creek and the cave":              "Creek and the Cave",
	"eastville comedy club":               "Eastville Comedy Club",
	"laughing buddha":                     "Laughing Buddha",
	"the laughing buddha":                 "Laughing Buddha",
	"new york comedy club":                "New York Comedy Club",
	"comedy cellar village underground":   "Comedy Cellar Village Underground",
	"comedy cellar macdougal":             "Comedy Cellar MacDougal",
	"the stand comedy club":               "The Stand Comedy Club",
	"stand comedy club":                   "The Stand Comedy Club",
	"ucb east":                            "UCB East",
	"ucb west":                            "UCB West",
	"ucb chelsea":                         "UCB Chelsea",
	"upright citizens brigade":            "Upright Citizens Brigade",
	"the pit":                             "The PIT",
	"pit":                                 "The PIT",
	"magnet theater":                      "Magnet Theater",
	"annoyance theatre":                   "Annoyance Theatre",
	"annoyance theater":                   "Annoyance Theatre",
	"the annoyance":                       "Annoyance Theatre",
	"asylum nyc":                          "Asylum NYC",
	"the asylum":                          "Asylum NYC",
	"people's improv theater":             "People's Improv Theater",
	"the peoples improv theater":          "People's Improv Theater",
	"pit peoples improv theater":          "People's Improv Theater",
	"st marks comedy club":                "St. Marks Comedy Club",
	"st. marks comedy club":               "St. Marks Comedy Club",
	"saint marks comedy club":             "St. Marks Comedy Club",
	"the comedy store":                    "The Comedy Store",
	"comedy store":                        "The Comedy Store",
	"laugh factory":                       "Laugh Factory",
	"the laugh factory":                   "Laugh Factory",
	"improv":                              "The Improv",
	"the improv":                          "The Improv",
	"comedy works":                        "Comedy Works",
	"the comedy works":                    "Comedy Works",
	"grove34":                             "Grove 34",
	"grove 34":                            "Grove 34",
	"pinebox":                             "Pine Box Rock Shop",
	"cobra club brooklyn":                 "Cobra Club",
	"comic strip live":                    "The Comic Strip Live",
	"stand":                               "The Stand NYC",
	"grisly pear mic-a-thon":              "Grisly Pear Midtown",
	"grisly pear midtown":                 "Grisly Pear Midtown",
	"grisly pear mic":                     "Grisly Pear Midtown",
	"freddy's bar":                        "Freddy's",
	"gutter bar":                          "The Gutter Williamsburg",
	"mood ring bar":                       "Mood Ring Bar",
	"mood ring":                           "Mood Ring Bar",
	"freddy's":                            "Freddy's",
	"stand nyc":                           "The Stand NYC",
	"bklyn made comedy":                   "Brooklyn Made Comedy",
	"brooklyn made comedy":                "Brooklyn Made Comedy",
	"new york comedy club east village":   "New York Comedy Club East Village",
	"sesh comedy":                         "Sesh Comedy",
	"kgb bar":                             "KGB Bar",
}

// NormalizeVenueName maps known spelling variants of a venue name to its
// canonical display form. Unknown names come back trimmed but otherwise
// untouched. Idempotent: canonical values normalize to themselves, which
// the dedup key relies on.
func NormalizeVenueName(venueName string) string {
	normalized := strings.TrimSpace(venueName)
	if normalized == "" {
		return ""
	}

	key := strings.ToLower(normalized)
	key = leadingTheRe.ReplaceAllString(key, "")
	key = multiSpaceRe.ReplaceAllString(key, " ")

	if canonical, ok := canonicalVenueMap[key]; ok {
		return canonical
	}
	return normalized
}

// CanonicalVenueNames returns every canonical display form in the lookup
// table. Exposed so the fixed-point property can be checked.
func CanonicalVenueNames() []string {
	names := make([]string, 0, len(canonicalVenueMap))
	for _, canonical := range canonicalVenueMap {
		names = append(names, canonical)
	}
	return names
}
