package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gatekeeper/internal/flagx"
	"github.com/dmitrijs2005/gatekeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Duration fields
// accept "10h"-style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	MetricsAddr                 string         `json:"metrics_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	TokenIssuer                 string         `json:"token_issuer"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	TokenRecordRetention        timex.Duration `json:"token_record_retention"`
	RevocationSweepInterval     timex.Duration `json:"revocation_sweep_interval"`
	PasswordHasher              string         `json:"password_hasher"`
	AdminPassword               string         `json:"admin_password"`
	SuperAdminPassword          string         `json:"superadmin_password"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Keys missing from the file leave the current value untouched. An
// unreadable file or invalid JSON panics: a half-applied config is worse
// than not starting.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.TokenIssuer, c.TokenIssuer)
	setString(&config.PasswordHasher, c.PasswordHasher)
	setString(&config.AdminPassword, c.AdminPassword)
	setString(&config.SuperAdminPassword, c.SuperAdminPassword)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.TokenRecordRetention.Duration != 0 {
		config.TokenRecordRetention = c.TokenRecordRetention.Duration
	}
	if c.RevocationSweepInterval.Duration != 0 {
		config.RevocationSweepInterval = c.RevocationSweepInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
