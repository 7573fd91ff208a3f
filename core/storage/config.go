package storage

const (
	BackendLocal  = "local"
	BackendObject = "s3"
)

// Config holds configuration for the byte store backing a game install.
type Config struct {
	// Backend selects where game files live: "local" (filesystem) or "s3" (S3/MinIO).
	Backend string `mapstructure:"backend" default:"local"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket holding extracted game installs.
	Bucket string `mapstructure:"bucket" default:"games"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendLocal, BackendObject:
		return true
	default:
		return false
	}
}
