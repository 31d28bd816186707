package catalog

import "strings"

// Resolution is exact-match first, then a substring scan over the mapping in
// declared order with the first hit winning. The substring rules differ per
// domain and are kept as-is for compatibility with the public behavior.

// ResolveCityForBeach resolves a beach name to its CPTEC city.
func (t *Tables) ResolveCityForBeach(beach string) (City, bool) {
	slug := Normalize(beach)

	target := ""
	for _, e := range t.BeachToCity {
		if e.Beach == slug {
			target = e.Target
			break
		}
	}

	if target == "" {
		for _, e := range t.BeachToCity {
			if strings.Contains(e.Beach, slug) ||
				strings.Contains(slug, strings.Replace(e.Beach, "praia-de-", "", 1)) {
				target = e.Target
				break
			}
		}
	}

	if target == "" {
		return City{}, false
	}
	return t.CityBySlug(target)
}

// ResolveCity resolves a city slug or display name to its CPTEC city.
func (t *Tables) ResolveCity(city string) (City, bool) {
	slug := Normalize(city)

	if c, ok := t.CityBySlug(slug); ok {
		return c, true
	}

	for _, c := range t.Cities {
		if strings.Contains(c.Slug, slug) || strings.Contains(strings.ToLower(c.Name), slug) {
			return c, true
		}
	}

	return City{}, false
}

// ResolvePortForBeach resolves a beach name to its tide reference port.
func (t *Tables) ResolvePortForBeach(beach string) (Port, bool) {
	slug := NormalizeBeachForTides(beach)

	target := ""
	for _, e := range t.BeachToPort {
		if e.Beach == slug {
			target = e.Target
			break
		}
	}

	if target == "" {
		for _, e := range t.BeachToPort {
			if strings.Contains(slug, e.Beach) || strings.Contains(e.Beach, slug) {
				target = e.Target
				break
			}
		}
	}

	if target == "" {
		return Port{}, false
	}
	return t.PortBySlug(target)
}

// ResolvePort resolves a port slug or display name.
func (t *Tables) ResolvePort(port string) (Port, bool) {
	slug := Normalize(port)

	if p, ok := t.PortBySlug(slug); ok {
		return p, true
	}

	for _, p := range t.Ports {
		if Normalize(p.Name) == slug {
			return p, true
		}
	}

	return Port{}, false
}
