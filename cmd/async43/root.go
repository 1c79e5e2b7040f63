// Package main implements a thin cobra CLI front end over the async43
// library, grounded on the teacher's src/client/cmd (cobra + viper,
// persistent flags, a version template baked from -ldflags vars). It
// exists only so the module is runnable from a shell; the library
// itself is the deliverable.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devl00p/async43/src/model"
	"github.com/devl00p/async43/src/whois"
	"github.com/devl00p/async43/src/wlog"
)

// Build info, set via -ldflags at build time, matching the teacher's
// client/cmd/root.go pattern.
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

var (
	cfgFile     string
	host        string
	country     string
	output      string
	timeout     time.Duration
	quick       bool
	preferIPv6  bool
	ignoreErr   bool
	debugMode   bool
	logFile     string
	commandPath string
)

var rootCmd = &cobra.Command{
	Use:   "async43 [domain]",
	Short: "Recursive WHOIS lookup and normalization",
	Long:  `async43 resolves a domain or IP to a registrable target, queries the appropriate WHOIS server, follows at most one referral, and prints a normalized record.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(args[0])
	},
}

func runLookup(query string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout+5*time.Second)
	defer cancel()

	if commandPath != "" {
		rec, err := whois.LookupCommand(ctx, commandPath, query)
		if err != nil {
			return err
		}
		return printRecord(rec)
	}

	opts := []whois.Option{
		whois.WithTimeout(timeout),
		whois.WithIPv6Preference(preferIPv6),
		whois.WithIgnoreSocketErrors(ignoreErr),
	}
	if quick {
		opts = append(opts, whois.WithQuick())
	}
	if host != "" {
		opts = append(opts, whois.WithHost(host))
	}
	if country != "" {
		opts = append(opts, whois.WithCountry(country))
	}
	if debugMode {
		opts = append(opts, whois.WithLogger(wlog.New(wlog.Config{File: logFile, Level: slog.LevelDebug})))
	}

	rec, err := whois.Lookup(ctx, query, opts...)
	if err != nil {
		return err
	}
	return printRecord(rec)
}

// printRecord renders rec per the --output flag, matching the teacher's
// root.go switch over getOutputFormat() (json/plain/table) but scaled
// to this module's one record shape instead of search hit lists.
func printRecord(rec *model.Record) error {
	switch output {
	case "table":
		printTable(rec)
		return nil
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
}

func printTable(rec *model.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Domain:\t%s\n", rec.Domain)
	fmt.Fprintf(w, "Registrar:\t%s\n", rec.Registrar.Name)
	fmt.Fprintf(w, "Registrar IANA ID:\t%s\n", rec.RegistrarIANAID)
	fmt.Fprintf(w, "Status:\t%s\n", strings.Join(rec.Status, ", "))
	fmt.Fprintf(w, "Nameservers:\t%s\n", strings.Join(rec.Nameservers, ", "))
	fmt.Fprintf(w, "DNSSEC:\t%s\n", rec.DNSSEC)
	fmt.Fprintf(w, "Created:\t%s\n", rec.Dates.CreatedRaw)
	fmt.Fprintf(w, "Updated:\t%s\n", rec.Dates.UpdatedRaw)
	fmt.Fprintf(w, "Expires:\t%s\n", rec.Dates.ExpiresRaw)
	fmt.Fprintf(w, "Registrant Email:\t%s\n", rec.Contacts.Registrant.Email)
	w.Flush()
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "query this whois server directly, bypassing server selection")
	rootCmd.PersistentFlags().StringVar(&country, "country", "", "query <country>.whois-servers.net directly")
	rootCmd.PersistentFlags().StringVar(&output, "output", "json", "output format: json, table")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-hop connect+read timeout")
	rootCmd.PersistentFlags().BoolVar(&quick, "quick", false, "disable referral following")
	rootCmd.PersistentFlags().BoolVar(&preferIPv6, "prefer-ipv6", false, "try IPv6 addresses first")
	rootCmd.PersistentFlags().BoolVar(&ignoreErr, "ignore-socket-errors", true, "report socket failures as record text instead of an error")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable trace logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "trace log destination (stderr if empty)")
	rootCmd.PersistentFlags().StringVar(&commandPath, "command", "", "shell out to this whois executable instead of the built-in transport")

	rootCmd.SetVersionTemplate(fmt.Sprintf("async43 %s (%s) built %s\n", Version, CommitID, BuildDate))
	rootCmd.Version = Version
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig()
	}
}
