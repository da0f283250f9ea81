// Package store holds the in-memory client and pet records for the
// front desk.
//
// # Overview
//
// The store is the single owner of all Client and Pet entities. Views
// and the registration form never mutate stored entities in place; they
// build whole replacement values and push them through the mutation
// methods. Read methods hand out copies, so nothing a caller does to a
// returned slice or struct can corrupt the store.
//
// # Identity
//
// Record ids are monotonically increasing integers rendered as decimal
// strings, one counter per entity type, scoped to the store instance.
// They are unique for the life of the process and never reused, even
// after deletes. Patient identifiers (PIDs) are a separate, human-facing
// concern: the store accepts whatever PID the caller supplies and never
// generates one (see the ident package).
//
// # The orphan invariant
//
// Every pet references an owning client at creation time. The reverse
// direction is enforced by DeletePet: removing a pet whose owner has no
// other pets removes the owner too. Keeping that cascade inside the
// store means no view can forget it and leave an orphaned client behind.
//
// # Concurrency
//
// The store is not synchronized. All access happens on the Bubble Tea
// event loop, which is a single logical thread; there is no concurrent
// mutation source, so a mutex would guard nothing. Do not share a store
// across goroutines.
//
// # Lifetime
//
// State is ephemeral. There is no persistence; a new process starts
// from an empty store (plus optional seed data).
package store
