package ui

import (
	"testing"

	"github.com/Nisaljde/VetPulzNext/internal/form"
	"github.com/Nisaljde/VetPulzNext/internal/petdata"
	"github.com/Nisaljde/VetPulzNext/internal/store"
)

func TestCycleOption(t *testing.T) {
	opts := []string{"a", "b", "c"}
	cases := []struct {
		current string
		delta   int
		want    string
	}{
		{"a", 1, "b"},
		{"c", 1, "a"},
		{"a", -1, "c"},
		{"b", -1, "a"},
		{"", 1, "a"},
		{"zzz", -1, "a"},
	}
	for _, tc := range cases {
		if got := cycleOption(opts, tc.current, tc.delta); got != tc.want {
			t.Errorf("cycleOption(%q, %d) = %q, want %q", tc.current, tc.delta, got, tc.want)
		}
	}
	if got := cycleOption(nil, "x", 1); got != "x" {
		t.Errorf("cycleOption(nil) = %q, want current unchanged", got)
	}
}

func TestRegisterFieldIndexing(t *testing.T) {
	rs := newRegisterState(form.NewCreate("English"))
	rs.ctrl.AddPetDraft()
	rs.pets = append(rs.pets, newPetInputs(&rs.ctrl.Pets[1]))

	if got := rs.fieldCount(); got != clientFieldCount+2*fieldsPerPet {
		t.Fatalf("fieldCount = %d", got)
	}

	// Select and toggle fields have no backing input.
	for _, i := range []int{fieldTitle, fieldSMS,
		clientFieldCount + petFieldUnknown,
		clientFieldCount + petFieldSpecies,
		clientFieldCount + fieldsPerPet + petFieldGender,
	} {
		if rs.input(i) != nil {
			t.Errorf("field %d should have no text input", i)
		}
	}
	for _, i := range []int{fieldName, fieldEmail,
		clientFieldCount + petFieldName,
		clientFieldCount + fieldsPerPet + petFieldDOB,
	} {
		if rs.input(i) == nil {
			t.Errorf("field %d should have a text input", i)
		}
	}
}

func TestRegisterFocusWraps(t *testing.T) {
	rs := newRegisterState(form.NewCreate("English"))
	last := rs.fieldCount() - 1

	rs.setFocus(last)
	if rs.focus != last {
		t.Fatalf("focus = %d, want %d", rs.focus, last)
	}
	rs.setFocus(last + 1)
	if rs.focus != 0 {
		t.Errorf("focus past end = %d, want 0", rs.focus)
	}
	rs.setFocus(-1)
	if rs.focus != last {
		t.Errorf("focus before start = %d, want %d", rs.focus, last)
	}
}

func TestRegisterSyncDrafts(t *testing.T) {
	rs := newRegisterState(form.NewCreate("English"))
	rs.txt[fieldName].SetValue("John Doe")
	rs.txt[fieldEmail].SetValue("john@example.com")
	rs.pets[0].name.SetValue("Max")
	rs.pets[0].years.SetValue("3")

	rs.syncDrafts()
	if rs.ctrl.Client.Name != "John Doe" || rs.ctrl.Client.Email != "john@example.com" {
		t.Errorf("client draft = %+v", rs.ctrl.Client)
	}
	if rs.ctrl.Pets[0].Name != "Max" || rs.ctrl.Pets[0].Years != "3" {
		t.Errorf("pet draft = %+v", rs.ctrl.Pets[0])
	}
}

func TestRegisterCycleSpeciesClearsBreed(t *testing.T) {
	rs := newRegisterState(form.NewCreate("English"))
	rs.ctrl.Pets[0].Species = "Dog"
	rs.ctrl.Pets[0].Breed = "Labrador Retriever"

	rs.setFocus(clientFieldCount + petFieldSpecies)
	rs.cycle(1)
	if rs.ctrl.Pets[0].Breed != "" {
		t.Errorf("breed survived a species change: %q", rs.ctrl.Pets[0].Breed)
	}
}

func TestRegisterCycleBreed(t *testing.T) {
	rs := newRegisterState(form.NewCreate("English"))
	rs.ctrl.Pets[0].Species = "Dog"

	rs.setFocus(clientFieldCount + petFieldBreed)
	rs.cycle(1)
	got := rs.ctrl.Pets[0].Breed
	if got != petdata.BreedsFor("Dog")[0] {
		t.Errorf("first cycle picked %q, want first Dog breed", got)
	}
	if !petdata.ValidBreed("Dog", got) {
		t.Errorf("cycled to %q, not a Dog breed", got)
	}

	rs.cycle(-1)
	rs.cycle(-1)
	if got := rs.ctrl.Pets[0].Breed; !petdata.ValidBreed("Dog", got) {
		t.Errorf("cycling backwards left %q, not a Dog breed", got)
	}

	// Without a species there is nothing to cycle through.
	rs.ctrl.Pets[0].Species = ""
	rs.ctrl.Pets[0].Breed = ""
	rs.cycle(1)
	if got := rs.ctrl.Pets[0].Breed; got != "" {
		t.Errorf("cycle without species set breed %q", got)
	}
}

func TestRegisterEditPrefillsInputs(t *testing.T) {
	c := store.Client{ID: "1", Name: "Jane Smith", Email: "jane@example.com"}
	p := store.Pet{ID: "1", PID: "PA9C3W5", Name: "Luna", Species: "Cat",
		Breed: "Siamese", OwnerID: "1", Age: store.Age{Years: 2}}

	rs := newRegisterState(form.NewEdit(c, p))
	if got := rs.txt[fieldName].Value(); got != "Jane Smith" {
		t.Errorf("name input = %q", got)
	}
	if got := rs.pets[0].name.Value(); got != "Luna" {
		t.Errorf("pet name input = %q", got)
	}
	if got := rs.pets[0].years.Value(); got != "2" {
		t.Errorf("years input = %q", got)
	}
}
