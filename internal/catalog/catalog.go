// Package catalog holds the static reference data for the Pernambuco coast:
// tide reference ports, CPTEC city codes and the beach mappings onto both,
// plus the name resolution rules on top of them.
//
// The tables are declared as ordered slices rather than maps because fuzzy
// resolution is first-match-in-declared-order and Go map iteration is not
// deterministic.
package catalog

import "github.com/praiaspe/litoral/internal/models"

type Port struct {
	Slug string
	Name string
	Lat  float64
	Lon  float64
}

type City struct {
	Slug string
	Name string
	Code int
}

// MappingEntry relates a beach slug to a reference key (port or city slug).
type MappingEntry struct {
	Beach  string
	Target string
}

// Tables is the full reference dataset. It is built once at startup and
// treated as read-only; handlers and tests receive it by injection.
type Tables struct {
	Ports       []Port
	Cities      []City
	BeachToPort []MappingEntry
	BeachToCity []MappingEntry
}

// Default returns the production reference tables.
func Default() *Tables {
	return &Tables{
		Ports: []Port{
			{Slug: "recife", Name: "Porto do Recife", Lat: -8.0639, Lon: -34.8711},
			{Slug: "suape", Name: "Porto de Suape", Lat: -8.3847, Lon: -34.9486},
			{Slug: "tamandare", Name: "Tamandaré", Lat: -8.7594, Lon: -35.1033},
		},
		Cities: []City{
			{Slug: "recife", Name: "Recife", Code: 241},
			{Slug: "ipojuca", Name: "Ipojuca", Code: 1299},
			{Slug: "cabo-de-santo-agostinho", Name: "Cabo de Santo Agostinho", Code: 836},
			{Slug: "tamandare", Name: "Tamandaré", Code: 1374},
			{Slug: "jaboatao-dos-guararapes", Name: "Jaboatão dos Guararapes", Code: 1300},
			{Slug: "paulista", Name: "Paulista", Code: 1356},
			{Slug: "igarassu", Name: "Igarassu", Code: 1298},
			{Slug: "sirinhaem", Name: "Sirinhaém", Code: 1373},
			{Slug: "itamaraca", Name: "Ilha de Itamaracá", Code: 1301},
		},
		BeachToPort: []MappingEntry{
			{Beach: "boa-viagem", Target: "recife"},
			{Beach: "pina", Target: "recife"},
			{Beach: "brasilia-teimosa", Target: "recife"},
			{Beach: "piedade", Target: "recife"},
			{Beach: "candeias", Target: "recife"},
			{Beach: "maria-farinha", Target: "recife"},
			{Beach: "itamaraca", Target: "recife"},
			{Beach: "coroa-do-aviao", Target: "recife"},
			{Beach: "porto-de-galinhas", Target: "suape"},
			{Beach: "maracaipe", Target: "suape"},
			{Beach: "muro-alto", Target: "suape"},
			{Beach: "serrambi", Target: "suape"},
			{Beach: "calhetas", Target: "suape"},
			{Beach: "gaibu", Target: "suape"},
			{Beach: "paiva", Target: "suape"},
			{Beach: "suape", Target: "suape"},
			{Beach: "carneiros", Target: "tamandare"},
			{Beach: "tamandare", Target: "tamandare"},
			{Beach: "guadalupe", Target: "tamandare"},
		},
		BeachToCity: []MappingEntry{
			{Beach: "praia-de-boa-viagem", Target: "recife"},
			{Beach: "praia-do-pina", Target: "recife"},
			{Beach: "praia-de-brasilia-teimosa", Target: "recife"},
			{Beach: "porto-de-galinhas", Target: "ipojuca"},
			{Beach: "praia-de-maracaipe", Target: "ipojuca"},
			{Beach: "praia-de-muro-alto", Target: "ipojuca"},
			{Beach: "praia-de-serrambi", Target: "ipojuca"},
			{Beach: "praia-dos-macacos", Target: "ipojuca"},
			{Beach: "praia-de-calhetas", Target: "cabo-de-santo-agostinho"},
			{Beach: "praia-de-gaibu", Target: "cabo-de-santo-agostinho"},
			{Beach: "praia-de-suape", Target: "cabo-de-santo-agostinho"},
			{Beach: "praia-do-paiva", Target: "cabo-de-santo-agostinho"},
			{Beach: "praia-de-carneiros", Target: "tamandare"},
			{Beach: "praia-de-tamandare", Target: "tamandare"},
			{Beach: "praia-de-piedade", Target: "jaboatao-dos-guararapes"},
			{Beach: "praia-de-candeias", Target: "jaboatao-dos-guararapes"},
			{Beach: "praia-de-maria-farinha", Target: "paulista"},
			{Beach: "coroa-do-aviao", Target: "igarassu"},
			{Beach: "praia-de-guadalupe", Target: "sirinhaem"},
			{Beach: "praia-de-itamaraca", Target: "itamaraca"},
		},
	}
}

// PortBySlug looks up a port by its exact slug.
func (t *Tables) PortBySlug(slug string) (Port, bool) {
	for _, p := range t.Ports {
		if p.Slug == slug {
			return p, true
		}
	}
	return Port{}, false
}

// CityBySlug looks up a city by its exact slug.
func (t *Tables) CityBySlug(slug string) (City, bool) {
	for _, c := range t.Cities {
		if c.Slug == slug {
			return c, true
		}
	}
	return City{}, false
}

// PortInfos shapes the port table for the catalog listing response.
func (t *Tables) PortInfos() []models.PortInfo {
	infos := make([]models.PortInfo, len(t.Ports))
	for i, p := range t.Ports {
		infos[i] = models.PortInfo{
			Slug:        p.Slug,
			Name:        p.Name,
			Coordinates: models.Coordinates{Lat: p.Lat, Lon: p.Lon},
		}
	}
	return infos
}

// CityInfos shapes the city table for the catalog listing response.
func (t *Tables) CityInfos() []models.CityInfo {
	infos := make([]models.CityInfo, len(t.Cities))
	for i, c := range t.Cities {
		infos[i] = models.CityInfo{Slug: c.Slug, Name: c.Name, Code: c.Code}
	}
	return infos
}

// BeachCityInfos shapes the beach→city mapping for the catalog listing,
// with the city display name where known.
func (t *Tables) BeachCityInfos() []models.BeachCityInfo {
	infos := make([]models.BeachCityInfo, len(t.BeachToCity))
	for i, e := range t.BeachToCity {
		cityName := e.Target
		if city, ok := t.CityBySlug(e.Target); ok {
			cityName = city.Name
		}
		infos[i] = models.BeachCityInfo{Beach: e.Beach, City: cityName}
	}
	return infos
}

// BeachPortMap returns the beach→port relation as a plain map for JSON output.
func (t *Tables) BeachPortMap() map[string]string {
	m := make(map[string]string, len(t.BeachToPort))
	for _, e := range t.BeachToPort {
		m[e.Beach] = e.Target
	}
	return m
}
