// Package domain holds the catalog's core entities: national parks, the
// trails that belong to them, and registered users. Entities validate
// themselves and carry no persistence or transport concerns.
package domain
