package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JwtSecret is the HS256 secret used to validate session tokens.
	// Session issuance lives in the account service; this backend only
	// verifies.
	JwtSecret string `mapstructure:"jwt_secret" default:""`
	// BodyLimitBytes caps the size of an incoming sync batch body.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"4194304"`
}

// IsConfigured reports whether the server can authenticate requests.
func (c Config) IsConfigured() bool {
	return c.JwtSecret != ""
}
