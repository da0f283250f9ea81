// Package auth is the mock credential lookup gating the dashboard.
// There is no real security here: any password is accepted for a known
// test email. The session guard only needs a present, non-null user.
package auth

import "strings"

// Role labels what kind of staff member is logged in.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleStaff  Role = "staff"
)

// User is a logged-in front-desk user.
type User struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

var testUsers = []User{
	{ID: "1", Email: "admin@vetcare.com", Name: "Admin User", Role: RoleAdmin},
	{ID: "2", Email: "doctor@vetcare.com", Name: "Doctor Smith", Role: RoleDoctor},
	{ID: "3", Email: "staff@vetcare.com", Name: "Staff Member", Role: RoleStaff},
}

// TestUsers returns the built-in accounts, for display on the login
// screen.
func TestUsers() []User {
	out := make([]User, len(testUsers))
	copy(out, testUsers)
	return out
}

// Authenticate matches the email against the test users. The password
// is ignored for known emails.
func Authenticate(email, _ string) (User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range testUsers {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}
