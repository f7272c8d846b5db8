package catalog

// albumMeta holds the fixed dedication and release year for a known album
// type. This is a closed, hardcoded association keyed by the CSV type string,
// not something derived from row data.
type albumMeta struct {
	DedicatedTo string
	ReleaseYear string
}

var albumMetaByType = map[string]albumMeta{
	"Full Disclosure":     {DedicatedTo: "Max Spiers", ReleaseYear: "2023"},
	"Behold A Pale Horse": {DedicatedTo: "Milton William Cooper", ReleaseYear: "2024"},
	"Milabs":              {DedicatedTo: "Dr. Karla Turner", ReleaseYear: "2025"},
}

// merchTypes is the allow-list of row types imported as merchandise
var merchTypes = map[string]bool{
	"Apparel":     true,
	"Posters":     true,
	"Stickers":    true,
	"Accessories": true,
}

// singleType marks rows collected into the synthetic singles album
const singleType = "Single"

// placeholder durations; the store export carries no duration column
const (
	albumTrackDuration  = "3:45"
	singleTrackDuration = "3:30"
)

// ordinalSuffix returns the suffix for an album's trilogy position (1st, 2nd,
// 3rd, everything else th)
func ordinalSuffix(n int) string {
	switch n {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
