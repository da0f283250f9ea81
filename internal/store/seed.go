package store

// Seed loads a small set of demo records through the public mutation
// methods, so a fresh session has something to show in the listing and
// queue. Callers that want an empty store simply skip it.
func Seed(s *Store) {
	john := s.AddClient(Client{
		Title:             "Mr.",
		Name:              "John Doe",
		Email:             "john.doe@example.com",
		Phone:             "0771234567",
		NIC:               "851234567V",
		Address:           "12 Lake Road, Colombo",
		PreferredLanguage: "English",
		SMSNotifications:  true,
	})
	s.AddPet(Pet{
		PID:     "PK7M2Q9",
		Name:    "Max",
		Species: "Dog",
		Breed:   "Labrador Retriever",
		Gender:  "Male",
		Age:     Age{Years: 3, Months: 4},
		OwnerID: john.ID,
	})
	s.AddPet(Pet{
		PID:      "PX4B8T1",
		Name:     "Rex",
		Species:  "Dog",
		Breed:    "German Shepherd",
		Gender:   "Male",
		Age:      Age{Years: 5},
		Attitude: "Nervous around strangers",
		OwnerID:  john.ID,
	})

	jane := s.AddClient(Client{
		Title:             "Mrs.",
		Name:              "Jane Smith",
		Email:             "jane.smith@example.com",
		Phone:             "0769876543",
		PreferredLanguage: "English",
		SMSNotifications:  true,
	})
	s.AddPet(Pet{
		PID:     "PA9C3W5",
		Name:    "Luna",
		Species: "Cat",
		Breed:   "Siamese",
		Gender:  "Female",
		Age:     Age{Years: 1, Months: 6, Weeks: 2},
		OwnerID: jane.ID,
	})
}
