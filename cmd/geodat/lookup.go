package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idanyas/geodat"
)

var flagJSON bool

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	valStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// lookupCmd resolves one address and prints the decoded record.
var lookupCmd = &cobra.Command{
	Use:   "lookup <address>",
	Short: "Look up an IP address in the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openResolver()
		if err != nil {
			return err
		}
		defer r.Close()

		rec, err := r.Lookup(args[0])
		if errors.Is(err, geodat.ErrNotFound) {
			log.Info().Str("address", args[0]).Msg("address not found")
			fmt.Println("not found")
			return nil
		}
		if err != nil {
			return err
		}

		if flagJSON {
			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		printRecord(rec)
		return nil
	},
}

// printRecord renders the record as an aligned, colored key/value listing.
func printRecord(rec *geodat.Record) {
	rows := [][2]string{
		{"country_code", rec.CountryCode},
		{"country_code3", rec.CountryCode3},
		{"country_name", rec.CountryName},
		{"continent", rec.Continent},
		{"region_code", rec.Region},
		{"city", rec.City},
		{"postal_code", rec.PostalCode},
		{"latitude", strconv.FormatFloat(rec.Latitude, 'f', -1, 64)},
		{"longitude", strconv.FormatFloat(rec.Longitude, 'f', -1, 64)},
	}
	if rec.MetroCode != 0 {
		rows = append(rows,
			[2]string{"metro_code", strconv.Itoa(rec.MetroCode)},
			[2]string{"area_code", strconv.Itoa(rec.AreaCode)})
	}
	if rec.Organization != "" {
		rows = [][2]string{{"organization", rec.Organization}}
	}

	for _, row := range rows {
		val := valStyle.Render(row[1])
		if row[1] == "" {
			val = emptyStyle.Render("-")
		}
		fmt.Printf("%s %s\n", keyStyle.Width(14).Render(row[0]), val)
	}
}

func init() {
	lookupCmd.Flags().BoolVar(&flagJSON, "json", false, "print the record as JSON")
	rootCmd.AddCommand(lookupCmd)
}
