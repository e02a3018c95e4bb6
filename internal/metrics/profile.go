package metrics

import (
	"sort"

	"salary-lab/internal/domain"
)

// CountryCount is the number of players born in one country.
type CountryCount struct {
	Country string
	Players int
}

// BodyCount is the number of players sharing a (weight, height) pair.
type BodyCount struct {
	Weight  int
	Height  int
	Players int
}

// BirthCountries counts players per birth country, ordered by country.
// Players with no recorded country are skipped.
func BirthCountries(players []domain.Player) []CountryCount {
	counts := make(map[string]int)
	for _, p := range players {
		if p.BirthCountry == "" {
			continue
		}
		counts[p.BirthCountry]++
	}

	out := make([]CountryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CountryCount{Country: c, Players: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// BodyProfile counts players per (weight, height), ordered by weight then height.
// Players with an unknown weight or height are skipped.
func BodyProfile(players []domain.Player) []BodyCount {
	type body struct{ w, h int }
	counts := make(map[body]int)
	for _, p := range players {
		if p.Weight <= 0 || p.Height <= 0 {
			continue
		}
		counts[body{p.Weight, p.Height}]++
	}

	out := make([]BodyCount, 0, len(counts))
	for b, n := range counts {
		out = append(out, BodyCount{Weight: b.w, Height: b.h, Players: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		return out[i].Height < out[j].Height
	})
	return out
}
