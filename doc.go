// Package geodat reads legacy binary geolocation databases and resolves IP
// addresses to country, city and coordinate information without any network
// access.
//
// A database file consists of a binary search tree indexed by address bits,
// a packed record area with back-reference string deduplication, and a
// structure trailer at the end of the file naming the edition. Open detects
// the edition and layout once; lookups afterwards are pure reads, so one
// Database (or Resolver) can serve any number of goroutines.
//
// Basic usage:
//
//	db, err := geodat.Open("GeoIPCity.dat")
//	if err != nil {
//	    log.Fatalf("failed to open database: %v", err)
//	}
//	defer db.Close()
//
//	rec, err := db.Lookup("108.95.4.105")
//	switch {
//	case errors.Is(err, geodat.ErrNotFound):
//	    fmt.Println("no match")
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println(rec.CountryCode, rec.City, rec.Latitude, rec.Longitude)
//	}
//
// To serve both address families, open one database per family and combine
// them with NewResolver; wrap with NewCachedResolver when lookup traffic is
// repetitive.
package geodat
