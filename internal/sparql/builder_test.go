package sparql

import (
	"fmt"
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`plain name`, `plain name`},
		{`back\slash`, `back\\slash`},
		{`double"quote`, `double\"quote`},
		{`single'quote`, `single\'quote`},
		{"line\nbreak", `line\nbreak`},
		{"carriage\rreturn", `carriage\rreturn`},
		{"tab\there", `tab\there`},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscape_NoUnescapedSpecials(t *testing.T) {
	hostile := `x" . } ?y ?z . FILTER("\`
	escaped := Escape(hostile)

	// Every quote and backslash in the output must itself be escaped.
	for i := 0; i < len(escaped); i++ {
		if escaped[i] == '"' && (i == 0 || escaped[i-1] != '\\') {
			t.Errorf("unescaped quote at %d in %q", i, escaped)
		}
	}
	if strings.Contains(escaped, "\n") {
		t.Errorf("raw newline survived escaping: %q", escaped)
	}
}

func TestMountainByName_EmbedsEscapedName(t *testing.T) {
	q := MountainByName(`Se"meru`)

	if !strings.Contains(q, `LCASE("Se\"meru")`) {
		t.Errorf("query does not contain escaped name:\n%s", q)
	}
	if !strings.Contains(q, "LIMIT 1") {
		t.Error("single lookup must be limited to one result")
	}
}

func TestMountainList_OptionalAttributes(t *testing.T) {
	q := MountainList()

	for _, v := range []string{
		"?description", "?elevation", "?imageUrl", "?province",
		"?lat", "?lon", "?statusLevel", "?volcanicCategory",
		"?googleMapsUrl", "?restrictedFrom", "?restrictedUntil",
	} {
		if !strings.Contains(q, "OPTIONAL") || !strings.Contains(q, v) {
			t.Errorf("list query missing optional variable %s", v)
		}
	}
	if !strings.Contains(q, "ORDER BY ?name") {
		t.Error("list query must be ordered by name")
	}
}

func TestRelated_WithProvince(t *testing.T) {
	q := Related("Semeru", "Jawa Timur", 3676)

	if !strings.Contains(q, `?province = "Jawa Timur" ||`) {
		t.Errorf("missing province alternative in filter:\n%s", q)
	}
	if !strings.Contains(q, "?elevation >= 3176") || !strings.Contains(q, "?elevation <= 4176") {
		t.Errorf("elevation band wrong:\n%s", q)
	}
	if !strings.Contains(q, `LCASE(?name) != LCASE("Semeru")`) {
		t.Error("reference mountain must be excluded")
	}
	if !strings.Contains(q, fmt.Sprintf("LIMIT %d", RelatedLimit)) {
		t.Errorf("related query must be capped at %d", RelatedLimit)
	}
	if !strings.Contains(q, `ORDER BY DESC(?province = "Jawa Timur") ?name`) {
		t.Error("same-province mountains must sort first, then by name")
	}
}

func TestRelated_WithoutProvince_ElevationBandOnly(t *testing.T) {
	q := Related("Semeru", "", 3676)

	if strings.Contains(q, "||") {
		t.Errorf("no province: filter must degrade to elevation band alone:\n%s", q)
	}
	if !strings.Contains(q, "BOUND(?elevation)") {
		t.Error("elevation filter must require a bound elevation")
	}
}

func TestProvinces_DistinctOrdered(t *testing.T) {
	q := Provinces()

	if !strings.Contains(q, "SELECT DISTINCT ?province") {
		t.Error("province listing must be distinct")
	}
	if !strings.Contains(q, "ORDER BY ?province") {
		t.Error("province listing must be ordered")
	}
}
