package sparql

import (
	"fmt"
	"strings"
)

// RelatedLimit caps related-mountain lookups.
const RelatedLimit = 6

// ElevationBand is the +/- window (meters) used for related-mountain lookups.
const ElevationBand = 500

const queryPrefixes = `PREFIX sdp: <http://sudutpuncak.com/ontology#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX geo: <http://www.w3.org/2003/01/geo/wgs84_pos#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
`

// mountainPattern matches a mountain with all its optional attributes. Every
// attribute sits in its own OPTIONAL block so a missing value never excludes
// the mountain from the result set.
const mountainPattern = `  ?mountain a sdp:Mountain ;
            rdfs:label ?name .

  OPTIONAL { ?mountain sdp:description ?description . }
  OPTIONAL { ?mountain sdp:elevation ?elevation . }
  OPTIONAL { ?mountain sdp:imageUrl ?imageUrl . }
  OPTIONAL { ?mountain sdp:googleMapsUrl ?googleMapsUrl . }
  OPTIONAL {
    ?mountain sdp:locatedInProvince ?provinceUri .
    ?provinceUri rdfs:label ?province .
  }
  OPTIONAL {
    ?mountain sdp:hasLocation ?location .
    ?location geo:lat ?lat ;
              geo:long ?lon .
  }
  OPTIONAL {
    ?mountain sdp:hasStatusLevel ?statusLevelUri .
    ?statusLevelUri rdfs:label ?statusLevel .
  }
  OPTIONAL {
    ?mountain sdp:hasVolcanicCategory ?volcanicCategoryUri .
    ?volcanicCategoryUri rdfs:label ?volcanicCategory .
  }
  OPTIONAL {
    ?mountain sdp:hasRestriction ?restriction .
    ?restriction sdp:restrictedFrom ?restrictedFrom .
    ?restriction sdp:restrictedUntil ?restrictedUntil .
  }
`

const mountainVars = "?mountain ?name ?description ?elevation ?imageUrl ?province ?lat ?lon" +
	" ?statusLevel ?volcanicCategory ?googleMapsUrl ?restrictedFrom ?restrictedUntil"

// escaper rewrites every character that could break out of a quoted SPARQL
// literal. Mandatory for any user-controlled value placed into query text.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape sanitizes a user-supplied string for interpolation into a quoted
// SPARQL literal.
func Escape(input string) string {
	return escaper.Replace(input)
}

// MountainList selects every mountain with its optional attributes, ordered
// by name. Filtering and ranking happen in the coordinator, not the store.
func MountainList() string {
	return fmt.Sprintf("%s\nSELECT %s\nWHERE {\n%s}\nORDER BY ?name\n",
		queryPrefixes, mountainVars, mountainPattern)
}

// MountainByName selects a single mountain by case-insensitive exact name.
func MountainByName(name string) string {
	return fmt.Sprintf("%s\nSELECT %s\nWHERE {\n%s\n  FILTER(LCASE(?name) = LCASE(\"%s\"))\n}\nLIMIT 1\n",
		queryPrefixes, mountainVars, mountainPattern, Escape(name))
}

// ReferenceByName selects just the province and elevation of a named
// mountain; the first phase of a related lookup.
func ReferenceByName(name string) string {
	return fmt.Sprintf(`%s
SELECT ?province ?elevation
WHERE {
  ?mountain a sdp:Mountain ;
            rdfs:label ?name .
  FILTER(LCASE(?name) = LCASE("%s"))

  OPTIONAL {
    ?mountain sdp:locatedInProvince ?provinceUri .
    ?provinceUri rdfs:label ?province .
  }
  OPTIONAL { ?mountain sdp:elevation ?elevation . }
}
LIMIT 1
`, queryPrefixes, Escape(name))
}

// Related selects mountains sharing the reference's province or sitting
// within the elevation band, excluding the reference itself. Same-province
// mountains sort first, then by name. When the reference has no province the
// filter degrades to the elevation band alone.
func Related(refName, refProvince string, refElevation int) string {
	elevationFilter := fmt.Sprintf("BOUND(?elevation) && ?elevation >= %d && ?elevation <= %d",
		refElevation-ElevationBand, refElevation+ElevationBand)

	province := Escape(refProvince)
	filter := fmt.Sprintf("FILTER(%s)", elevationFilter)
	if refProvince != "" {
		filter = fmt.Sprintf("FILTER(?province = \"%s\" || (%s))", province, elevationFilter)
	}

	return fmt.Sprintf(`%s
SELECT ?mountain ?name ?elevation ?imageUrl ?province
WHERE {
  ?mountain a sdp:Mountain ;
            rdfs:label ?name .

  FILTER(LCASE(?name) != LCASE("%s"))

  OPTIONAL { ?mountain sdp:elevation ?elevation . }
  OPTIONAL { ?mountain sdp:imageUrl ?imageUrl . }
  OPTIONAL {
    ?mountain sdp:locatedInProvince ?provinceUri .
    ?provinceUri rdfs:label ?province .
  }

  %s
}
ORDER BY DESC(?province = "%s") ?name
LIMIT %d
`, queryPrefixes, Escape(refName), filter, province, RelatedLimit)
}

// Provinces selects all distinct province labels, ordered lexicographically.
func Provinces() string {
	return queryPrefixes + `
SELECT DISTINCT ?province
WHERE {
  ?mountain a sdp:Mountain ;
            sdp:locatedInProvince ?provinceUri .
  ?provinceUri rdfs:label ?province .
}
ORDER BY ?province
`
}

// Ping is a minimal ASK query used for health checks.
func Ping() string {
	return "ASK { }"
}
