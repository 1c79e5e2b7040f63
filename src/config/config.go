// Package config loads the small set of tunables this module exposes,
// grounded on the teacher's viper-based config loading (src/config) but
// scaled to this module's actual surface: a lookup timeout, IPv6
// preference, quick-mode default, and where to write trace logs.
//
// The SOCKS proxy is deliberately not part of Settings: §5 of the spec
// requires it be read from the environment at connect time, never
// cached, so the transport package reads os.Getenv("SOCKS") directly.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the process-wide defaults a caller may override.
type Settings struct {
	// DefaultTimeout bounds each hop's connect+read unless the caller
	// passes whois.WithTimeout; an earlier context deadline still wins.
	// Spec §5 default: 10s.
	DefaultTimeout time.Duration

	// PreferIPv6 sorts IPv6 addresses first when the transport dials
	// a multi-homed whois server (spec §4.3).
	PreferIPv6 bool

	// QuickByDefault, when true, disables referral-following (spec §4.4
	// WHOIS_QUICK); no whois.Option turns it back off.
	QuickByDefault bool

	// IgnoreSocketErrors controls whether transport failures become
	// the "Socket not responding: ..." sentinel (spec §4.3/§7) instead
	// of a returned error. Defaults to true, matching NICClient.whois.
	IgnoreSocketErrors bool

	// LogFile, when set, is where wlog rotates trace output. Empty
	// means stderr.
	LogFile string
}

// Defaults returns the library's baseline settings.
func Defaults() Settings {
	return Settings{
		DefaultTimeout:     10 * time.Second,
		PreferIPv6:         false,
		QuickByDefault:     false,
		IgnoreSocketErrors: true,
	}
}

// Load reads Settings from environment variables prefixed ASYNC43_
// (e.g. ASYNC43_TIMEOUT=15s, ASYNC43_PREFER_IPV6=true) and, if present,
// from the given YAML config file, overlaying both onto Defaults().
// An empty path skips the file and reads only the environment.
func Load(path string) (Settings, error) {
	s := Defaults()

	v := viper.New()
	v.SetEnvPrefix("ASYNC43")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("timeout", s.DefaultTimeout.String())
	v.SetDefault("prefer_ipv6", s.PreferIPv6)
	v.SetDefault("quick", s.QuickByDefault)
	v.SetDefault("ignore_socket_errors", s.IgnoreSocketErrors)
	v.SetDefault("log_file", s.LogFile)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return s, err
		}
	}

	timeoutStr := v.GetString("timeout")
	d, err := time.ParseDuration(timeoutStr)
	if err != nil {
		d = s.DefaultTimeout
	}

	return Settings{
		DefaultTimeout:     d,
		PreferIPv6:         v.GetBool("prefer_ipv6"),
		QuickByDefault:     v.GetBool("quick"),
		IgnoreSocketErrors: v.GetBool("ignore_socket_errors"),
		LogFile:            v.GetString("log_file"),
	}, nil
}
