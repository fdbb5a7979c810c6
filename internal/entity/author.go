package entity

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Author is a person credited on one or more books.
type Author struct {
	ID        int       `json:"id" yaml:"id"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	BirthYear int       `json:"birth_year" yaml:"birth_year"`
	DeathYear DeathYear `json:"death_year" yaml:"death_year"`
}

// DeathYear is either a known year of death or the living marker.
// The zero value is Living.
type DeathYear struct {
	year  int
	known bool
}

// Living is the death year of an author who is still alive.
func Living() DeathYear { return DeathYear{} }

// Died returns a known death year.
func Died(year int) DeathYear { return DeathYear{year: year, known: true} }

// Year returns the year of death and whether it is known.
func (d DeathYear) Year() (int, bool) { return d.year, d.known }

// IsLiving reports whether no death year is recorded.
func (d DeathYear) IsLiving() bool { return !d.known }

func (d DeathYear) String() string {
	if !d.known {
		return "living"
	}
	return strconv.Itoa(d.year)
}

// MarshalJSON renders a living author's death year as null.
func (d DeathYear) MarshalJSON() ([]byte, error) {
	if !d.known {
		return []byte("null"), nil
	}
	return json.Marshal(d.year)
}

func (d *DeathYear) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Living()
		return nil
	}
	var y int
	if err := json.Unmarshal(b, &y); err != nil {
		return err
	}
	*d = Died(y)
	return nil
}

// MarshalYAML renders a living author's death year as null.
func (d DeathYear) MarshalYAML() (any, error) {
	if !d.known {
		return nil, nil
	}
	return d.year, nil
}

func (d *DeathYear) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*d = Living()
		return nil
	}
	var y int
	if err := node.Decode(&y); err != nil {
		return err
	}
	*d = Died(y)
	return nil
}
