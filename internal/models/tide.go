package models

import "encoding/json"

type TideType string

const (
	TideTypeHigh TideType = "high"
	TideTypeLow  TideType = "low"
)

// TideEvent is a single high or low water event in the daily tide table.
type TideEvent struct {
	Time        string   `json:"time"`
	Type        TideType `json:"type"`
	HeightM     float64  `json:"height_m"`
	Description string   `json:"description"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TideTableResponse is the success body of the tides endpoint. Data carries
// the raw upstream payload when the tide-table API answered; Tides and
// Disclaimer are set when the calculated model was used instead.
type TideTableResponse struct {
	Success         bool            `json:"success"`
	Source          string          `json:"source"`
	Port            string          `json:"port"`
	PortCoordinates Coordinates     `json:"port_coordinates"`
	Date            string          `json:"date"`
	Beach           *string         `json:"beach"`
	Data            json.RawMessage `json:"data,omitempty"`
	Tides           []TideEvent     `json:"tides,omitempty"`
	Disclaimer      string          `json:"disclaimer,omitempty"`
}

type PortInfo struct {
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// TideCatalogResponse lists the known ports and beach mappings when the
// request named no resolvable port.
type TideCatalogResponse struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message"`
	AvailablePorts   []PortInfo        `json:"available_ports"`
	BeachPortMapping map[string]string `json:"beach_port_mapping"`
	Note             string            `json:"note"`
}
