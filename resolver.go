package geodat

import "fmt"

// Resolver dispatches lookups to the database matching the address family.
// Either database may be nil when the caller only carries one family.
type Resolver struct {
	v4 *Database
	v6 *Database
}

// NewResolver builds a resolver over up to two databases, one per family.
func NewResolver(v4, v6 *Database) *Resolver {
	return &Resolver{v4: v4, v6: v6}
}

// Lookup parses the address text, selects the database for its family and
// returns the decoded record. Fails with ErrNoDatabaseForFamily when the
// resolver has no database for the parsed family.
func (r *Resolver) Lookup(addr string) (*Record, error) {
	ip, err := parseAddr(addr)
	if err != nil {
		return nil, err
	}
	db := r.v4
	if len(ip) == 16 {
		db = r.v6
	}
	if db == nil {
		return nil, fmt.Errorf("geodat: %w: %q", ErrNoDatabaseForFamily, addr)
	}
	return db.lookupBytes(ip)
}

// Close closes both databases, returning the first error.
func (r *Resolver) Close() error {
	var first error
	for _, db := range []*Database{r.v4, r.v6} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
