package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/idanyas/geodat"
)

// Environment overrides for the database locations.
const (
	envDBPath   = "GEODAT_DB"
	envDBPathV6 = "GEODAT_DB_V6"
)

// Default file names under ~/.geodat.
const (
	defaultDBName   = "GeoIPCity.dat"
	defaultDBNameV6 = "GeoIPCityv6.dat"
)

// resolveDBPath picks the database path for one family: explicit flag first,
// then the environment override, then the home-directory default.
func resolveDBPath(flag, env, name string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".geodat", name)
}

// openResolver opens whichever family databases exist at the resolved paths.
// At least one must open; the other is logged and skipped.
func openResolver() (*geodat.Resolver, error) {
	v4Path := resolveDBPath(flagDB, envDBPath, defaultDBName)
	v6Path := resolveDBPath(flagDBV6, envDBPathV6, defaultDBNameV6)

	v4, err := geodat.Open(v4Path)
	if err != nil {
		log.Debug().Err(err).Str("path", v4Path).Msg("no IPv4 database")
	} else {
		log.Debug().Str("path", v4Path).Stringer("edition", v4.Edition()).Msg("opened IPv4 database")
	}

	v6, err := geodat.Open(v6Path)
	if err != nil {
		log.Debug().Err(err).Str("path", v6Path).Msg("no IPv6 database")
	} else {
		log.Debug().Str("path", v6Path).Stringer("edition", v6.Edition()).Msg("opened IPv6 database")
	}

	if v4 == nil && v6 == nil {
		return nil, fmt.Errorf("no database found at %s or %s", v4Path, v6Path)
	}
	return geodat.NewResolver(v4, v6), nil
}
