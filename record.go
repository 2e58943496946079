package geodat

import "fmt"

// Record holds the decoded geolocation fields for one address. String fields
// are empty when the source record omits them; the format drops trailing
// absent fields instead of encoding nulls.
type Record struct {
	CountryCode  string  `json:"country_code"`
	CountryCode3 string  `json:"country_code3,omitempty"`
	CountryName  string  `json:"country_name,omitempty"`
	Continent    string  `json:"continent,omitempty"`
	Region       string  `json:"region_code,omitempty"`
	City         string  `json:"city,omitempty"`
	PostalCode   string  `json:"postal_code,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
	MetroCode    int     `json:"metro_code,omitempty"`
	AreaCode     int     `json:"area_code,omitempty"`

	// Organization carries the name string of the Org/ISP/ASNum editions.
	Organization string `json:"organization,omitempty"`
}

// decodeRecord turns the record offset produced by the tree walk into a
// Record, according to the edition's schema.
func (db *Database) decodeRecord(offset uint32) (*Record, error) {
	switch db.st.edition {
	case EditionCountry, EditionCountryV6:
		// Country editions store no record area; the offset is the country
		// index itself.
		return countryRecord(offset)
	case EditionOrg, EditionISP, EditionASNum, EditionASNumV6:
		return db.decodeName(offset)
	default:
		return db.decodeCity(offset)
	}
}

// countryRecord fills the table-derived fields for a country index.
func countryRecord(idx uint32) (*Record, error) {
	if idx >= uint32(len(countryCode2)) {
		return nil, fmt.Errorf("geodat: %w: country index %d out of range", ErrCorruptRecord, idx)
	}
	return &Record{
		CountryCode:  countryCode2[idx],
		CountryCode3: countryCode3[idx],
		CountryName:  countryName[idx],
		Continent:    continentCode[idx],
	}, nil
}

// decodeCity decodes a packed city record: country index, three string
// fields, two fixed-point coordinates, and for the rev1 editions a combined
// metro/area integer on US records.
func (db *Database) decodeCity(offset uint32) (*Record, error) {
	abs := db.st.recordBase + int64(offset)
	buf, err := db.recordBytes(abs)
	if err != nil {
		return nil, err
	}

	rec, err := countryRecord(uint32(buf[0]))
	if err != nil {
		return nil, err
	}

	cur := 1
	if rec.Region, cur, err = db.fieldString(buf, cur, abs); err != nil {
		return nil, err
	}
	if rec.City, cur, err = db.fieldString(buf, cur, abs); err != nil {
		return nil, err
	}
	if rec.PostalCode, cur, err = db.fieldString(buf, cur, abs); err != nil {
		return nil, err
	}

	if cur+6 > len(buf) {
		return nil, fmt.Errorf("geodat: %w: record at %d truncated before coordinates", ErrCorruptRecord, abs)
	}
	rec.Latitude = float64(leUint24(buf[cur:]))/coordScale - coordOffset
	rec.Longitude = float64(leUint24(buf[cur+3:]))/coordScale - coordOffset
	cur += 6

	rev1 := db.st.edition == EditionCityRev1 || db.st.edition == EditionCityRev1V6
	if rev1 && rec.CountryCode == "US" && cur+3 <= len(buf) {
		if v := leUint24(buf[cur:]); v != 0 {
			rec.MetroCode = v / 1000
			rec.AreaCode = v % 1000
		}
	}
	return rec, nil
}

// decodeName decodes the single name string of the Org/ISP/ASNum editions.
func (db *Database) decodeName(offset uint32) (*Record, error) {
	abs := db.st.recordBase + int64(offset)
	buf, err := db.recordBytes(abs)
	if err != nil {
		return nil, err
	}
	name, _, err := db.fieldString(buf, 0, abs)
	if err != nil {
		return nil, err
	}
	return &Record{Organization: name}, nil
}

// recordBytes reads up to maxRecordLen bytes at abs, clamped to the file end.
func (db *Database) recordBytes(abs int64) ([]byte, error) {
	size := db.src.Size()
	if abs < 0 || abs >= size {
		return nil, fmt.Errorf("geodat: %w: record offset %d outside file bounds (%d)", ErrCorruptRecord, abs, size)
	}
	n := int64(maxRecordLen)
	if abs+n > size {
		n = size - abs
	}
	buf := make([]byte, n)
	if err := readFull(db.src, buf, abs); err != nil {
		return nil, fmt.Errorf("geodat: failed to read record at %d: %w", abs, err)
	}
	return buf, nil
}

// fieldString decodes one string field of a record held in buf, whose first
// byte sits at absolute offset base+cur. A zero byte is an empty field; a
// 3-byte big-endian value below the back-reference ceiling points at an
// earlier null-terminated string in the record area; anything else is a
// literal string up to its terminator. Returns the string and the cursor
// position after the field.
func (db *Database) fieldString(buf []byte, cur int, base int64) (string, int, error) {
	if cur >= len(buf) {
		return "", cur, fmt.Errorf("geodat: %w: record at %d truncated", ErrCorruptRecord, base)
	}
	if buf[cur] == 0 {
		return "", cur + 1, nil
	}

	if cur+3 <= len(buf) {
		if ptr := beUint(buf[cur : cur+3]); ptr < backRefCeiling {
			target := db.st.recordBase + int64(ptr)
			// A reference must strictly decrease the read position, so
			// corrupt forward or self references cannot loop.
			if target >= base+int64(cur) {
				return "", cur, fmt.Errorf("geodat: %w: back-reference %d does not precede read position %d",
					ErrCorruptRecord, target, base+int64(cur))
			}
			s, err := db.poolString(target)
			return s, cur + 3, err
		}
	}

	for i := cur; i < len(buf); i++ {
		if buf[i] == 0 {
			return string(buf[cur:i]), i + 1, nil
		}
	}
	return "", cur, fmt.Errorf("geodat: %w: unterminated string at %d", ErrCorruptRecord, base+int64(cur))
}

// poolString reads the null-terminated string a back-reference points at.
// The read is bounded by maxStringLen so runaway references on corrupt input
// fail instead of scanning the whole file.
func (db *Database) poolString(abs int64) (string, error) {
	size := db.src.Size()
	if abs < 0 || abs >= size {
		return "", fmt.Errorf("geodat: %w: back-reference target %d outside file bounds (%d)", ErrCorruptRecord, abs, size)
	}
	n := int64(maxStringLen)
	if abs+n > size {
		n = size - abs
	}
	buf := make([]byte, n)
	if err := readFull(db.src, buf, abs); err != nil {
		return "", fmt.Errorf("geodat: failed to read string at %d: %w", abs, err)
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i]), nil
		}
	}
	return "", fmt.Errorf("geodat: %w: string at %d exceeds %d bytes", ErrCorruptRecord, abs, maxStringLen)
}

// leUint24 decodes a 3-byte little-endian integer.
func leUint24(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
}
