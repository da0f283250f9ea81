// Package form manages transient registration and edit state for one
// client plus any number of pet drafts. The controller never mutates
// store entities in place: it validates drafts, builds whole
// replacement values, and pushes them through the store's mutation
// methods on submit.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Nisaljde/VetPulzNext/internal/petdata"
	"github.com/Nisaljde/VetPulzNext/internal/store"
)

// ErrValidation is returned by Submit when drafts fail validation.
// It never reaches the store; Submit checks before any mutation.
var ErrValidation = errors.New("validation failed")

// Titles is the fixed set of client salutations.
var Titles = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Prof."}

// Genders is the fixed set of pet genders.
var Genders = []string{"Male", "Female"}

// DefaultLanguage is used when no preferred language is configured.
const DefaultLanguage = "English"

// ClientDraft holds unsaved client fields.
type ClientDraft struct {
	Title             string
	Name              string
	Email             string
	Phone             string
	SecondaryPhone    string
	Address           string
	NIC               string
	PreferredLanguage string
	SMSNotifications  bool
}

// PetDraft holds unsaved pet fields. Age components stay raw strings
// until submit; invalid or empty input falls back to zero per
// component.
type PetDraft struct {
	Name     string
	Species  string
	Breed    string
	Gender   string
	Years    string
	Months   string
	Weeks    string
	Days     string
	DOB      string
	Attitude string
	Unknown  bool // unknown patient: record created without a name

	pid string // existing PID carried through an edit, never regenerated
}

// Eligible reports whether this draft becomes a pet record on submit.
func (d PetDraft) Eligible() bool {
	return strings.TrimSpace(d.Name) != "" || d.Unknown
}

// AgeValue parses the four age components independently.
func (d PetDraft) AgeValue() store.Age {
	return store.Age{
		Years:  ageComponent(d.Years),
		Months: ageComponent(d.Months),
		Weeks:  ageComponent(d.Weeks),
		Days:   ageComponent(d.Days),
	}
}

// ageComponent parses one non-negative integer, falling back to zero on
// empty, malformed, or negative input.
func ageComponent(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Controller is the registration/edit form state machine.
type Controller struct {
	Client ClientDraft
	Pets   []PetDraft

	editing  bool
	clientID string
	petID    string
}

// NewCreate returns a controller in create mode with one empty pet
// draft.
func NewCreate(defaultLanguage string) *Controller {
	if strings.TrimSpace(defaultLanguage) == "" {
		defaultLanguage = DefaultLanguage
	}
	return &Controller{
		Client: ClientDraft{
			Title:             Titles[0],
			PreferredLanguage: defaultLanguage,
			SMSNotifications:  true,
		},
		Pets: []PetDraft{{}},
	}
}

// NewEdit returns a controller pre-populated from exactly one existing
// client and one existing pet. The pet's PID is carried through and
// preserved on submit.
func NewEdit(c store.Client, p store.Pet) *Controller {
	return &Controller{
		Client: ClientDraft{
			Title:             c.Title,
			Name:              c.Name,
			Email:             c.Email,
			Phone:             c.Phone,
			SecondaryPhone:    c.SecondaryPhone,
			Address:           c.Address,
			NIC:               c.NIC,
			PreferredLanguage: c.PreferredLanguage,
			SMSNotifications:  c.SMSNotifications,
		},
		Pets: []PetDraft{{
			Name:     p.Name,
			Species:  p.Species,
			Breed:    p.Breed,
			Gender:   p.Gender,
			Years:    strconv.Itoa(p.Age.Years),
			Months:   strconv.Itoa(p.Age.Months),
			Weeks:    strconv.Itoa(p.Age.Weeks),
			Days:     strconv.Itoa(p.Age.Days),
			DOB:      p.DOB,
			Attitude: p.Attitude,
			Unknown:  strings.TrimSpace(p.Name) == "",
			pid:      p.PID,
		}},
		editing:  true,
		clientID: c.ID,
		petID:    p.ID,
	}
}

// Editing reports whether the controller is in edit mode.
func (c *Controller) Editing() bool { return c.editing }

// AddPetDraft appends an empty draft. Create mode only; an edit always
// covers exactly one pet.
func (c *Controller) AddPetDraft() {
	if c.editing {
		return
	}
	c.Pets = append(c.Pets, PetDraft{})
}

// RemovePetDraft drops the draft at i. Removing below one draft is a
// no-op, as is removal in edit mode.
func (c *Controller) RemovePetDraft(i int) {
	if c.editing || len(c.Pets) <= 1 || i < 0 || i >= len(c.Pets) {
		return
	}
	c.Pets = append(c.Pets[:i], c.Pets[i+1:]...)
}

// SetSpecies changes the species of draft i, clearing its breed when
// the species actually changes. Breed lists are disjoint per species,
// so a stale breed can never survive a species switch.
func (c *Controller) SetSpecies(i int, species string) {
	if i < 0 || i >= len(c.Pets) {
		return
	}
	if c.Pets[i].Species != species {
		c.Pets[i].Breed = ""
	}
	c.Pets[i].Species = species
}

// Validate returns the list of problems preventing submission. An
// empty result means the drafts are submittable.
func (c *Controller) Validate() []string {
	var problems []string

	if strings.TrimSpace(c.Client.Name) == "" {
		problems = append(problems, "client name is required")
	}
	if strings.TrimSpace(c.Client.Email) == "" {
		problems = append(problems, "client email is required")
	}
	if strings.TrimSpace(c.Client.Phone) == "" {
		problems = append(problems, "client phone is required")
	}

	eligible := 0
	for i, d := range c.Pets {
		if !d.Eligible() {
			continue
		}
		eligible++
		if strings.TrimSpace(d.Species) == "" {
			problems = append(problems, fmt.Sprintf("pet %d: species is required", i+1))
			continue
		}
		if strings.TrimSpace(d.Breed) == "" {
			problems = append(problems, fmt.Sprintf("pet %d: breed is required", i+1))
		} else if !petdata.ValidBreed(d.Species, d.Breed) {
			problems = append(problems, fmt.Sprintf("pet %d: breed %q is not a %s breed", i+1, d.Breed, d.Species))
		}
	}
	if eligible == 0 {
		problems = append(problems, "at least one pet must be named or marked as unknown patient")
	}

	return problems
}

// Result reports what a successful submit stored.
type Result struct {
	Client store.Client
	Pets   []store.Pet
}

// Submit validates and pushes the drafts into the store.
//
// Create mode stores the client first, then one pet per eligible draft,
// each linked to the new client and given a fresh PID from newPID.
// Edit mode replaces the one client and one pet in place, preserving
// the pet's original PID. On any error nothing is partially saved and
// the draft state is left intact, so the form can stay open with the
// user's input.
func (c *Controller) Submit(st *store.Store, newPID func() string) (Result, error) {
	if problems := c.Validate(); len(problems) > 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}

	if c.editing {
		return c.submitEdit(st)
	}

	client := st.AddClient(c.clientValue())
	result := Result{Client: client}
	for _, d := range c.Pets {
		if !d.Eligible() {
			continue
		}
		pet := st.AddPet(c.petValue(d, client.ID, newPID()))
		result.Pets = append(result.Pets, pet)
	}
	return result, nil
}

func (c *Controller) submitEdit(st *store.Store) (Result, error) {
	// Verify both targets up front so a late NotFound cannot leave the
	// client updated but the pet untouched.
	if _, ok := st.Client(c.clientID); !ok {
		return Result{}, fmt.Errorf("edit client %s: %w", c.clientID, store.ErrNotFound)
	}
	existing, ok := st.Pet(c.petID)
	if !ok {
		return Result{}, fmt.Errorf("edit pet %s: %w", c.petID, store.ErrNotFound)
	}

	client, err := st.UpdateClient(c.clientID, c.clientValue())
	if err != nil {
		return Result{}, err
	}

	draft := c.Pets[0]
	value := c.petValue(draft, existing.OwnerID, draft.pid)
	pet, err := st.UpdatePet(c.petID, value)
	if err != nil {
		return Result{}, err
	}

	return Result{Client: client, Pets: []store.Pet{pet}}, nil
}

func (c *Controller) clientValue() store.Client {
	lang := strings.TrimSpace(c.Client.PreferredLanguage)
	if lang == "" {
		lang = DefaultLanguage
	}
	return store.Client{
		Title:             c.Client.Title,
		Name:              strings.TrimSpace(c.Client.Name),
		Email:             strings.TrimSpace(c.Client.Email),
		Phone:             strings.TrimSpace(c.Client.Phone),
		SecondaryPhone:    strings.TrimSpace(c.Client.SecondaryPhone),
		Address:           strings.TrimSpace(c.Client.Address),
		NIC:               strings.TrimSpace(c.Client.NIC),
		PreferredLanguage: lang,
		SMSNotifications:  c.Client.SMSNotifications,
	}
}

func (c *Controller) petValue(d PetDraft, ownerID, pid string) store.Pet {
	return store.Pet{
		PID:      pid,
		Name:     strings.TrimSpace(d.Name),
		Species:  d.Species,
		Breed:    d.Breed,
		Gender:   d.Gender,
		Age:      d.AgeValue(),
		DOB:      strings.TrimSpace(d.DOB),
		Attitude: strings.TrimSpace(d.Attitude),
		OwnerID:  ownerID,
	}
}
