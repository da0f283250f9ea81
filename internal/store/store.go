package store

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotFound is returned by update and delete operations when the
// referenced id is absent from the store.
var ErrNotFound = errors.New("record not found")

// Age holds a pet's age as four independent components. The components
// are never normalized into a single unit; each is stored and edited
// separately.
type Age struct {
	Years  int
	Months int
	Weeks  int
	Days   int
}

// Client is a registered pet owner.
type Client struct {
	ID                string
	Title             string // Mr., Mrs., Ms., Dr., Prof.
	Name              string
	Email             string
	Phone             string
	SecondaryPhone    string
	Address           string
	NIC               string
	PreferredLanguage string
	SMSNotifications  bool
}

// Pet is a registered patient. OwnerID references an existing Client.
type Pet struct {
	ID       string
	PID      string // human-facing patient identifier, stable after creation
	Name     string
	Species  string
	Breed    string
	Gender   string
	Age      Age
	DOB      string
	Attitude string
	OwnerID  string
}

// Store is the in-memory authoritative collection of clients and pets.
// Construct with New and pass by handle; each instance owns its own id
// counters, so tests get isolation from fresh instances.
type Store struct {
	clients      []Client
	pets         []Pet
	nextClientID int
	nextPetID    int
}

// New returns an empty store with id counters starting at 1.
func New() *Store {
	return &Store{nextClientID: 1, nextPetID: 1}
}

// AddClient assigns a fresh id, appends the client, and returns the
// stored value. Any id on data is ignored.
func (s *Store) AddClient(data Client) Client {
	data.ID = strconv.Itoa(s.nextClientID)
	s.nextClientID++
	s.clients = append(s.clients, data)
	return data
}

// UpdateClient replaces every field except the id.
func (s *Store) UpdateClient(id string, data Client) (Client, error) {
	for i := range s.clients {
		if s.clients[i].ID == id {
			data.ID = id
			s.clients[i] = data
			return data, nil
		}
	}
	return Client{}, fmt.Errorf("update client %s: %w", id, ErrNotFound)
}

// DeleteClient removes the client with the given id.
func (s *Store) DeleteClient(id string) error {
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete client %s: %w", id, ErrNotFound)
}

// AddPet assigns a fresh id, appends the pet, and returns the stored
// value. The PID is supplied by the caller, not generated here.
func (s *Store) AddPet(data Pet) Pet {
	data.ID = strconv.Itoa(s.nextPetID)
	s.nextPetID++
	s.pets = append(s.pets, data)
	return data
}

// UpdatePet replaces every field except the id.
func (s *Store) UpdatePet(id string, data Pet) (Pet, error) {
	for i := range s.pets {
		if s.pets[i].ID == id {
			data.ID = id
			s.pets[i] = data
			return data, nil
		}
	}
	return Pet{}, fmt.Errorf("update pet %s: %w", id, ErrNotFound)
}

// DeletePet removes the pet with the given id. When the pet's owner has
// no remaining pets afterward, the owner client is removed in the same
// operation: a client with no pets is orphaned and must not linger. The
// store owns this invariant so view layers never have to infer it.
func (s *Store) DeletePet(id string) error {
	for i := range s.pets {
		if s.pets[i].ID != id {
			continue
		}
		ownerID := s.pets[i].OwnerID
		s.pets = append(s.pets[:i], s.pets[i+1:]...)
		if len(s.PetsByOwner(ownerID)) == 0 {
			// Ignore the lookup result: the owner may already be gone.
			for j := range s.clients {
				if s.clients[j].ID == ownerID {
					s.clients = append(s.clients[:j], s.clients[j+1:]...)
					break
				}
			}
		}
		return nil
	}
	return fmt.Errorf("delete pet %s: %w", id, ErrNotFound)
}

// Clients returns all clients in insertion order.
func (s *Store) Clients() []Client {
	out := make([]Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Pets returns all pets in insertion order.
func (s *Store) Pets() []Pet {
	out := make([]Pet, len(s.pets))
	copy(out, s.pets)
	return out
}

// PetsByOwner returns the pets owned by the given client, insertion
// order preserved.
func (s *Store) PetsByOwner(ownerID string) []Pet {
	var out []Pet
	for _, p := range s.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

// Client looks up a client by id.
func (s *Store) Client(id string) (Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// Pet looks up a pet by id.
func (s *Store) Pet(id string) (Pet, bool) {
	for _, p := range s.pets {
		if p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}
