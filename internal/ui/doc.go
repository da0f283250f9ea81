// Package ui implements the terminal front desk on Bubble Tea.
//
// A single root Model owns every screen: login, the client directory,
// the registration form, the appointment calendar, and the waiting
// room. All state changes happen inside Update on the Bubble Tea event
// loop, which is also why the record store needs no locking — nothing
// outside this loop touches it.
//
// The directory searches live: each keystroke in the search box
// re-filters against client name, phone, and email. The registration
// form wraps form.Controller, keeping text inputs as the source of
// truth for free-text fields and syncing them into the controller
// drafts before validation, so a failed submit leaves every keystroke
// on screen.
package ui
