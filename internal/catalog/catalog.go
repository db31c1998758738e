// Package catalog holds the static room-type and service tables together
// with the two pricing rates.  The catalog is loaded once at process start
// and treated as read-only afterwards; every other layer receives it by
// pointer and never mutates it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// PricingMode describes how a service price is applied to a stay.
type PricingMode string

const (
	// PerStay services are charged once per booking regardless of length.
	PerStay PricingMode = "per-stay"
	// PerGuestPerNight services are multiplied by guest count and nights.
	PerGuestPerNight PricingMode = "per-guest-per-night"
)

// RoomType is a static catalog entry for one category of room.  Price is
// the nightly rate in whole currency units.  Floor is the leading digit of
// room numbers generated for this type and TotalRooms bounds the slot part.
type RoomType struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
	Size       int     `json:"size"` // floor area in square metres
	Floor      int     `json:"floor"`
	TotalRooms int     `json:"total_rooms"`
}

// Service is a static catalog entry for an add-on service.
type Service struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price float64     `json:"price"`
	Mode  PricingMode `json:"mode"`
}

// Catalog bundles the immutable configuration the quote calculator works
// from: the room and service tables plus the service-charge and VAT rates.
type Catalog struct {
	RoomTypes         []RoomType `json:"room_types"`
	Services          []Service  `json:"services"`
	ServiceChargeRate float64    `json:"service_charge_rate"`
	VATRate           float64    `json:"vat_rate"`

	roomIndex    map[string]int
	serviceIndex map[string]int
}

// Default returns the built-in catalog matching the resort's live
// configuration.  It is used when no catalog file is configured.
func Default() *Catalog {
	c := &Catalog{
		RoomTypes: []RoomType{
			{ID: "standard", Name: "Standard Room", Price: 2500, Capacity: 2, Size: 25, Floor: 1, TotalRooms: 20},
			{ID: "deluxe", Name: "Deluxe Room", Price: 3500, Capacity: 3, Size: 35, Floor: 2, TotalRooms: 20},
			{ID: "suite", Name: "Suite Room", Price: 5000, Capacity: 4, Size: 50, Floor: 3, TotalRooms: 20},
		},
		Services: []Service{
			{ID: "breakfast", Name: "Breakfast", Price: 300, Mode: PerGuestPerNight},
			{ID: "airport", Name: "Airport Transfer", Price: 800, Mode: PerStay},
			{ID: "spa", Name: "Spa Package", Price: 1500, Mode: PerStay},
			{ID: "tour", Name: "Island Tour", Price: 2000, Mode: PerStay},
		},
		ServiceChargeRate: 0.10,
		VATRate:           0.07,
	}
	c.reindex()
	return c
}

// Load returns the catalog from the JSON file at path, or the built-in
// defaults when path is empty.  A file that cannot be read or parsed is an
// error rather than a silent fallback so that a broken deployment is caught
// at startup.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(c.RoomTypes) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no room types", path)
	}
	if c.ServiceChargeRate < 0 || c.VATRate < 0 {
		return nil, fmt.Errorf("catalog file %s has negative rates", path)
	}
	c.reindex()
	return &c, nil
}

func (c *Catalog) reindex() {
	c.roomIndex = make(map[string]int, len(c.RoomTypes))
	for i, rt := range c.RoomTypes {
		c.roomIndex[rt.ID] = i
	}
	c.serviceIndex = make(map[string]int, len(c.Services))
	for i, s := range c.Services {
		c.serviceIndex[s.ID] = i
	}
}

// RoomType looks up a room type by identifier.
func (c *Catalog) RoomType(id string) (RoomType, bool) {
	i, ok := c.roomIndex[id]
	if !ok {
		return RoomType{}, false
	}
	return c.RoomTypes[i], true
}

// Service looks up a service by identifier.
func (c *Catalog) Service(id string) (Service, bool) {
	i, ok := c.serviceIndex[id]
	if !ok {
		return Service{}, false
	}
	return c.Services[i], true
}

// TotalRooms returns the number of physical rooms across all types.  The
// admin occupancy rate is computed against this figure.
func (c *Catalog) TotalRooms() int {
	total := 0
	for _, rt := range c.RoomTypes {
		total += rt.TotalRooms
	}
	return total
}
