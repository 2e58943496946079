package geodat

import (
	"fmt"
	"io"
	"net"
	"strings"
)

// Database is an opened geolocation database for one address family. It is
// immutable after Open: every lookup only issues position-specified reads
// against the byte source, so a single Database may be shared by any number
// of concurrent lookups without locking.
type Database struct {
	src    Source
	closer io.Closer // set when Open owns the underlying file
	st     *structure
}

// Open opens the database file at path and detects its structure.
func Open(path string) (*Database, error) {
	src, err := openFileSource(path)
	if err != nil {
		return nil, err
	}
	db, err := OpenSource(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	db.closer = src
	return db, nil
}

// OpenSource detects the database structure on an arbitrary byte source.
// The caller keeps ownership of src.
func OpenSource(src Source) (*Database, error) {
	st, err := detectStructure(src)
	if err != nil {
		return nil, err
	}
	return &Database{src: src, st: st}, nil
}

// Close releases the underlying file if Open created it. It is a no-op for
// databases built over a caller-provided source.
func (db *Database) Close() error {
	if db.closer == nil {
		return nil
	}
	c := db.closer
	db.closer = nil
	if err := c.Close(); err != nil {
		return fmt.Errorf("geodat: error closing database file: %w", err)
	}
	return nil
}

// Edition reports the detected database edition.
func (db *Database) Edition() Edition { return db.st.edition }

// Bits reports the address bit length the database's tree supports.
func (db *Database) Bits() int { return db.st.bits }

// Lookup decodes the record for the given address text. The address family
// must match the database; use a Resolver to dispatch across families.
//
// Returns ErrNotFound when the tree has no leaf for the address, and
// ErrFamilyMismatch when e.g. an IPv6 address is looked up in an IPv4-only
// database.
func (db *Database) Lookup(addr string) (*Record, error) {
	ip, err := parseAddr(addr)
	if err != nil {
		return nil, err
	}
	return db.lookupBytes(ip)
}

func (db *Database) lookupBytes(ip []byte) (*Record, error) {
	if len(ip)*8 != db.st.bits {
		return nil, fmt.Errorf("geodat: %w: %d-bit address, %d-bit tree", ErrFamilyMismatch, len(ip)*8, db.st.bits)
	}
	offset, err := db.findRecord(ip)
	if err != nil {
		return nil, err
	}
	return db.decodeRecord(offset)
}

// About returns metadata about the opened database.
func (db *Database) About() map[string]interface{} {
	return map[string]interface{}{
		"Edition":            db.st.edition.String(),
		"Edition ID":         uint8(db.st.edition),
		"Node Width (bytes)": db.st.nodeWidth,
		"Address Bits":       db.st.bits,
		"Segments":           db.st.segments,
		"Record Base Offset": db.st.recordBase,
		"File Size":          db.src.Size(),
	}
}

// parseAddr parses dotted-quad or colon-hextet address text into the 4- or
// 16-byte form the walker consumes. The family is chosen by the presence of
// a colon, so IPv4-mapped notations stay in the IPv6 tree.
func parseAddr(s string) ([]byte, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, fmt.Errorf("geodat: %w: %q", ErrParseAddress, s)
	}
	if strings.ContainsRune(s, ':') {
		return ip.To16(), nil
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, fmt.Errorf("geodat: %w: %q", ErrParseAddress, s)
	}
	return ip4, nil
}
