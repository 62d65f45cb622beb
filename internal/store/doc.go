// Package store declares the persistence interfaces for national parks,
// trails, and users, plus the error taxonomy their implementations report
// through. Handlers depend on these interfaces only, never on a concrete
// database package.
package store
