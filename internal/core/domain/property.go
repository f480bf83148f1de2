package domain

import "errors"

// PropertyType classifies a rental unit.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyRoom      PropertyType = "room"
	PropertyBnB       PropertyType = "b&b"
)

var ErrPropertyNotFound = errors.New("property not found")

// Property is a short-term rental unit managed through Smoobu.
// Access to a property is granted per operator through the
// operator_properties relation; every read and write in the system is
// filtered through that relation.
type Property struct {
	ID       int64        `json:"id"`
	SmoobuID int64        `json:"smoobu_id"`
	Name     string       `json:"name"`
	Address  string       `json:"address"`
	Type     PropertyType `json:"type"`
}
