package domain

import "strings"

// Player is one row of the biographical (Master.csv) table.
type Player struct {
	PlayerID     string
	BirthCountry string
	Weight       int // pounds, 0 when unknown
	Height       int // inches, 0 when unknown
	NameFirst    string
	NameLast     string
	NameGiven    string
}

// FullName returns "NameGiven NameLast", falling back to the first name and then the id.
func (p Player) FullName() string {
	first := p.NameGiven
	if first == "" {
		first = p.NameFirst
	}
	name := strings.TrimSpace(first + " " + p.NameLast)
	if name == "" {
		return p.PlayerID
	}
	return name
}
