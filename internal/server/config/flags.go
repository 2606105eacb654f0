package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (empty disables)
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-i string   token issuer
//	-t int      access token validity, minutes
//	-r int      token record retention, days
//	-w int      revocation sweep interval, seconds
//	-H string   password hasher (bcrypt, argon2id)
//	-l string   log level
//
// Bootstrap passwords are deliberately not accepted as flags; use the JSON
// file or GATEKEEPER_ADMIN_PASSWORD / GATEKEEPER_SUPERADMIN_PASSWORD.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-i", "-t", "-r", "-w", "-H", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret key")
	fs.StringVar(&config.TokenIssuer, "i", config.TokenIssuer, "token issuer")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	recordRetention := fs.Int("r", int(config.TokenRecordRetention.Hours()/24), "token record retention (in days)")
	sweepInterval := fs.Int("w", int(config.RevocationSweepInterval.Seconds()), "revocation sweep interval (in seconds)")

	fs.StringVar(&config.PasswordHasher, "H", config.PasswordHasher, "password hasher: bcrypt or argon2id")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Integer flags are coarser than durations from JSON or env, so they only
	// apply when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
		case "r":
			config.TokenRecordRetention = time.Duration(*recordRetention) * 24 * time.Hour
		case "w":
			config.RevocationSweepInterval = time.Duration(*sweepInterval) * time.Second
		}
	})
}
