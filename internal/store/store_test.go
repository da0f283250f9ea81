package store

import (
	"errors"
	"testing"
)

func TestAddClient_AssignsSequentialIDs(t *testing.T) {
	s := New()

	a := s.AddClient(Client{Name: "John Doe"})
	b := s.AddClient(Client{Name: "Jane Smith"})

	if a.ID != "1" || b.ID != "2" {
		t.Fatalf("ids = %q, %q, want 1, 2", a.ID, b.ID)
	}

	clients := s.Clients()
	if len(clients) != 2 || clients[0].Name != "John Doe" || clients[1].Name != "Jane Smith" {
		t.Fatalf("Clients() = %#v, want insertion order", clients)
	}
}

func TestAddClient_IgnoresSuppliedID(t *testing.T) {
	s := New()
	c := s.AddClient(Client{ID: "999", Name: "John Doe"})
	if c.ID != "1" {
		t.Fatalf("ID = %q, want 1", c.ID)
	}
}

func TestUpdateClient_ReplacesAllFieldsExceptID(t *testing.T) {
	s := New()
	c := s.AddClient(Client{Name: "John Doe", Phone: "111", NIC: "851234567V"})

	updated, err := s.UpdateClient(c.ID, Client{ID: "ignored", Name: "John D.", Phone: "222"})
	if err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}
	if updated.ID != c.ID {
		t.Fatalf("ID changed to %q", updated.ID)
	}
	if updated.Phone != "222" {
		t.Fatalf("Phone = %q, want 222", updated.Phone)
	}
	if updated.NIC != "" {
		t.Fatalf("NIC = %q, want cleared (full replacement)", updated.NIC)
	}
}

func TestUpdateClient_UnknownIDLeavesStoreUnmodified(t *testing.T) {
	s := New()
	s.AddClient(Client{Name: "John Doe"})

	_, err := s.UpdateClient("42", Client{Name: "Nobody"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	clients := s.Clients()
	if len(clients) != 1 || clients[0].Name != "John Doe" {
		t.Fatalf("store modified on failed update: %#v", clients)
	}
}

func TestUpdatePet_UnknownID(t *testing.T) {
	s := New()
	if _, err := s.UpdatePet("7", Pet{Name: "Max"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(s.Pets()) != 0 {
		t.Fatalf("store modified on failed update")
	}
}

func TestDeletePet_CascadesWhenLastPet(t *testing.T) {
	s := New()
	owner := s.AddClient(Client{Name: "Jane Smith"})
	pet := s.AddPet(Pet{Name: "Luna", OwnerID: owner.ID})

	if err := s.DeletePet(pet.ID); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if _, ok := s.Client(owner.ID); ok {
		t.Fatal("owner should be removed with last pet")
	}
	if len(s.Pets()) != 0 {
		t.Fatalf("Pets() = %#v, want empty", s.Pets())
	}
}

func TestDeletePet_KeepsOwnerWithRemainingPets(t *testing.T) {
	s := New()
	owner := s.AddClient(Client{Name: "John Doe"})
	first := s.AddPet(Pet{Name: "Max", OwnerID: owner.ID})
	s.AddPet(Pet{Name: "Rex", OwnerID: owner.ID})

	if err := s.DeletePet(first.ID); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	if _, ok := s.Client(owner.ID); !ok {
		t.Fatal("owner removed despite remaining pet")
	}
	remaining := s.PetsByOwner(owner.ID)
	if len(remaining) != 1 || remaining[0].Name != "Rex" {
		t.Fatalf("PetsByOwner = %#v, want [Rex]", remaining)
	}
}

func TestDeletePet_UnknownID(t *testing.T) {
	s := New()
	if err := s.DeletePet("1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteClient_UnknownID(t *testing.T) {
	s := New()
	if err := s.DeleteClient("1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPetsByOwner_PreservesInsertionOrder(t *testing.T) {
	s := New()
	a := s.AddClient(Client{Name: "A"})
	b := s.AddClient(Client{Name: "B"})
	s.AddPet(Pet{Name: "first", OwnerID: a.ID})
	s.AddPet(Pet{Name: "other", OwnerID: b.ID})
	s.AddPet(Pet{Name: "second", OwnerID: a.ID})

	pets := s.PetsByOwner(a.ID)
	if len(pets) != 2 || pets[0].Name != "first" || pets[1].Name != "second" {
		t.Fatalf("PetsByOwner = %#v, want [first second]", pets)
	}
}

func TestReadMethodsReturnCopies(t *testing.T) {
	s := New()
	s.AddClient(Client{Name: "John Doe"})

	clients := s.Clients()
	clients[0].Name = "mutated"

	if got, _ := s.Client("1"); got.Name != "John Doe" {
		t.Fatalf("stored client mutated via returned slice: %q", got.Name)
	}
}

func TestPointLookups_AbsentMarker(t *testing.T) {
	s := New()
	if _, ok := s.Client("9"); ok {
		t.Fatal("Client(9) = ok, want absent")
	}
	if _, ok := s.Pet("9"); ok {
		t.Fatal("Pet(9) = ok, want absent")
	}
}

func TestIDCountersNeverReuse(t *testing.T) {
	s := New()
	owner := s.AddClient(Client{Name: "A"})
	p := s.AddPet(Pet{Name: "x", OwnerID: owner.ID})
	if err := s.DeletePet(p.ID); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}

	owner2 := s.AddClient(Client{Name: "B"})
	p2 := s.AddPet(Pet{Name: "y", OwnerID: owner2.ID})
	if owner2.ID != "2" {
		t.Fatalf("client id = %q, want 2", owner2.ID)
	}
	if p2.ID != "2" {
		t.Fatalf("pet id = %q, want 2", p2.ID)
	}
}

func TestSeed_PopulatesThroughPublicAPI(t *testing.T) {
	s := New()
	Seed(s)

	clients := s.Clients()
	pets := s.Pets()
	if len(clients) == 0 || len(pets) == 0 {
		t.Fatalf("seed produced %d clients, %d pets", len(clients), len(pets))
	}
	for _, p := range pets {
		if _, ok := s.Client(p.OwnerID); !ok {
			t.Fatalf("seeded pet %q has dangling owner %q", p.Name, p.OwnerID)
		}
		if p.PID == "" {
			t.Fatalf("seeded pet %q has empty PID", p.Name)
		}
	}
}
