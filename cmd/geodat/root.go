package main

import (
	"github.com/spf13/cobra"
)

var (
	flagDB      string // IPv4 database path
	flagDBV6    string // IPv6 database path
	flagLogLvl  string
	flagLogFile string
)

// rootCmd is the entry point of the geodat CLI. Subcommands look up addresses
// and inspect database files.
var rootCmd = &cobra.Command{
	Use:   "geodat",
	Short: "Offline IP geolocation lookups against legacy binary databases",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(flagLogLvl, flagLogFile)
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDB, "db", "", "path to the IPv4 database (default $GEODAT_DB or ~/.geodat/GeoIPCity.dat)")
	pf.StringVar(&flagDBV6, "db-v6", "", "path to the IPv6 database (default $GEODAT_DB_V6 or ~/.geodat/GeoIPCityv6.dat)")
	pf.StringVar(&flagLogLvl, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&flagLogFile, "log-file", "", "also write logs to this file, with rotation")
}
