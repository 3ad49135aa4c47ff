// Package client holds the client record store: the matter data that seeds
// letter generation and the append-only history of letters produced for each
// client.
package client

import (
	"context"
	"fmt"
)

// ErrNotFound is wrapped by lookups for records that do not exist.
var ErrNotFound = fmt.Errorf("client: record not found")

// Letter is one entry in a client's letter history. History is append-only;
// entries are never rewritten, only marked sent.
type Letter struct {
	Type  string
	Date  string
	Notes string
	Sent  bool
}

// Record is a client matter. The string fields feed letter generation
// directly, so their names track the template token vocabulary.
type Record struct {
	ID           string
	Name         string
	Address      string
	Phone        string
	Email        string
	MatterNumber string
	Court        string
	MatterType   string
	Charges      string
	LegalAid     bool
	Contribution string
	NextCourt    string
	Letters      []Letter
}

// Store persists client records. Implementations must be safe for concurrent
// use.
type Store interface {
	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)
	// Put inserts or replaces a record. A record with an empty ID is
	// assigned one; the stored record is returned.
	Put(ctx context.Context, rec Record) (Record, error)
	// List returns all records ordered by name.
	List(ctx context.Context) ([]Record, error)
	// AppendLetter adds a letter history entry to the record.
	AppendLetter(ctx context.Context, clientID string, letter Letter) error
	// MarkLetterSent marks the most recent history entry of the given
	// letter type as sent.
	MarkLetterSent(ctx context.Context, clientID, letterType string) error
}
