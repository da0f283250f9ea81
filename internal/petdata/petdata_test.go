package petdata

import "testing"

func TestSpeciesList_ShapeAndCatchAlls(t *testing.T) {
	list := SpeciesList()
	if len(list) == 0 {
		t.Fatal("SpeciesList is empty")
	}

	for _, info := range list {
		if len(info.Breeds) == 0 {
			t.Fatalf("species %q has no breeds", info.Species)
		}
		if last := info.Breeds[len(info.Breeds)-1]; last != "Other" {
			t.Fatalf("species %q breed list ends with %q, want Other", info.Species, last)
		}
	}

	last := list[len(list)-1]
	if last.Species != "Other" || len(last.Breeds) != 1 {
		t.Fatalf("final entry = %#v, want Other species with single Other breed", last)
	}
}

func TestBreedsFor(t *testing.T) {
	cases := []struct {
		species string
		wantNil bool
		first   string
	}{
		{"Dog", false, "Labrador Retriever"},
		{"Cat", false, "Persian"},
		{"Other", false, "Other"},
		{"Dragon", true, ""},
		{"", true, ""},
	}
	for _, tc := range cases {
		got := BreedsFor(tc.species)
		if tc.wantNil {
			if got != nil {
				t.Fatalf("BreedsFor(%q) = %v, want nil", tc.species, got)
			}
			continue
		}
		if len(got) == 0 || got[0] != tc.first {
			t.Fatalf("BreedsFor(%q) = %v, want first %q", tc.species, got, tc.first)
		}
	}
}

func TestValidBreed(t *testing.T) {
	if !ValidBreed("Dog", "Beagle") {
		t.Fatal("Beagle should be a valid Dog breed")
	}
	if ValidBreed("Cat", "Beagle") {
		t.Fatal("breed lists are disjoint; Beagle is not a Cat breed")
	}
	if ValidBreed("Dragon", "Other") {
		t.Fatal("unknown species has no valid breeds")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	breeds := BreedsFor("Dog")
	breeds[0] = "mutated"
	if BreedsFor("Dog")[0] != "Labrador Retriever" {
		t.Fatal("reference data mutated through accessor")
	}

	list := SpeciesList()
	list[0].Breeds[0] = "mutated"
	if SpeciesList()[0].Breeds[0] != "Labrador Retriever" {
		t.Fatal("reference data mutated through SpeciesList")
	}
}
