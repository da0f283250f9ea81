package auth

import "testing"

func TestAuthenticate(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		ok       bool
		role     Role
	}{
		{"known admin", "admin@vetcare.com", "anything", true, RoleAdmin},
		{"known doctor any password", "doctor@vetcare.com", "", true, RoleDoctor},
		{"case insensitive email", "STAFF@VetCare.com", "x", true, RoleStaff},
		{"surrounding whitespace", "  admin@vetcare.com ", "x", true, RoleAdmin},
		{"unknown email", "nobody@vetcare.com", "x", false, ""},
		{"empty email", "", "x", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, ok := Authenticate(tc.email, tc.password)
			if ok != tc.ok {
				t.Fatalf("Authenticate(%q) ok = %v, want %v", tc.email, ok, tc.ok)
			}
			if ok && u.Role != tc.role {
				t.Fatalf("role = %q, want %q", u.Role, tc.role)
			}
		})
	}
}

func TestTestUsers_Copy(t *testing.T) {
	users := TestUsers()
	if len(users) != 3 {
		t.Fatalf("TestUsers() returned %d users, want 3", len(users))
	}
	users[0].Email = "mutated"
	if _, ok := Authenticate("admin@vetcare.com", ""); !ok {
		t.Fatal("built-in accounts mutated through TestUsers")
	}
}
