// Package petdata is the static species and breed reference consumed by
// the registration form for cascading selection.
package petdata

// BreedInfo maps one species to its ordered list of valid breed names.
type BreedInfo struct {
	Species string
	Breeds  []string
}

// Breed lists are disjoint per species; each ends with a catch-all
// "Other", and the final "Other" species carries only "Other".
var speciesData = []BreedInfo{
	{
		Species: "Dog",
		Breeds: []string{
			"Labrador Retriever",
			"German Shepherd",
			"Golden Retriever",
			"French Bulldog",
			"Bulldog",
			"Poodle",
			"Beagle",
			"Rottweiler",
			"Mixed Breed",
			"Other",
		},
	},
	{
		Species: "Cat",
		Breeds: []string{
			"Persian",
			"Maine Coon",
			"Siamese",
			"British Shorthair",
			"Ragdoll",
			"American Shorthair",
			"Mixed Breed",
			"Other",
		},
	},
	{
		Species: "Bird",
		Breeds: []string{
			"Parakeet",
			"Cockatiel",
			"African Grey Parrot",
			"Cockatoo",
			"Macaw",
			"Other",
		},
	},
	{
		Species: "Rabbit",
		Breeds: []string{
			"Holland Lop",
			"Mini Rex",
			"Netherland Dwarf",
			"Dutch",
			"Other",
		},
	},
	{
		Species: "Other",
		Breeds:  []string{"Other"},
	},
}

// SpeciesList returns the full reference in display order.
func SpeciesList() []BreedInfo {
	out := make([]BreedInfo, len(speciesData))
	for i, info := range speciesData {
		breeds := make([]string, len(info.Breeds))
		copy(breeds, info.Breeds)
		out[i] = BreedInfo{Species: info.Species, Breeds: breeds}
	}
	return out
}

// SpeciesNames returns the species names in display order.
func SpeciesNames() []string {
	names := make([]string, len(speciesData))
	for i, info := range speciesData {
		names[i] = info.Species
	}
	return names
}

// BreedsFor returns the breed list for a species, or nil when the
// species is not in the reference.
func BreedsFor(species string) []string {
	for _, info := range speciesData {
		if info.Species == species {
			breeds := make([]string, len(info.Breeds))
			copy(breeds, info.Breeds)
			return breeds
		}
	}
	return nil
}

// ValidBreed reports whether breed belongs to the breed list of the
// given species.
func ValidBreed(species, breed string) bool {
	for _, b := range BreedsFor(species) {
		if b == breed {
			return true
		}
	}
	return false
}
