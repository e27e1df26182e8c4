package domain

// DefaultImageURL is substituted for mountains without a catalog image.
const DefaultImageURL = "https://datagunung.com/images/default-image.webp"

// StatusLevel is a volcanic hazard alert level (PVMBG scale).
type StatusLevel string

const (
	// StatusNormal is alert level I.
	StatusNormal StatusLevel = "Normal"
	// StatusWaspada is alert level II.
	StatusWaspada StatusLevel = "Waspada"
	// StatusSiaga is alert level III.
	StatusSiaga StatusLevel = "Siaga"
	// StatusAwas is alert level IV.
	StatusAwas StatusLevel = "Awas"
)

// ParseStatusLevel maps a store label to a StatusLevel.
// Unknown labels return false so callers can carry the field as absent.
func ParseStatusLevel(label string) (StatusLevel, bool) {
	switch StatusLevel(label) {
	case StatusNormal, StatusWaspada, StatusSiaga, StatusAwas:
		return StatusLevel(label), true
	}
	return "", false
}

// Mountain is the searchable catalog record.
// Optional attributes are pointers; nil means the store holds no value.
type Mountain struct {
	URI              string       `json:"uri"`
	Name             string       `json:"name"`
	Description      *string      `json:"description"`
	Elevation        *int         `json:"elevation"`
	ImageURL         string       `json:"imageUrl"`
	Province         *string      `json:"province"`
	Lat              *float64     `json:"lat"`
	Lon              *float64     `json:"lon"`
	StatusLevel      *StatusLevel `json:"statusLevel"`
	VolcanicCategory *string      `json:"volcanicCategory"`
	GoogleMapsURL    *string      `json:"googleMapsUrl"`
	RestrictedFrom   *string      `json:"restrictedFrom"`
	RestrictedUntil  *string      `json:"restrictedUntil"`
}

// Reference holds the resolved province and elevation anchoring a
// related-mountain lookup. Elevation defaults to 0 when the store has no value.
type Reference struct {
	Province  string
	Elevation int
}

// RelatedMountain is the reduced projection returned by related-entity lookups.
type RelatedMountain struct {
	URI       string  `json:"uri"`
	Name      string  `json:"name"`
	Elevation *int    `json:"elevation"`
	ImageURL  string  `json:"imageUrl"`
	Province  *string `json:"province"`
}
