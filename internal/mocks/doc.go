// Package mocks provides hand-rolled in-memory implementations of the
// store and auth service interfaces for handler and middleware tests.
// Each mock exposes optional function fields to override behavior per test
// and a small default implementation backed by maps.
package mocks
