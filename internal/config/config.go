package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Security SecurityConfig
	Coinbase CoinbaseConfig
	Gemini   GeminiConfig
	Prices   PricesConfig
	Sync     SyncConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AuthConfig describes how access tokens minted by the external identity
// provider are verified. An RSA public key takes precedence over the shared secret.
type AuthConfig struct {
	JWTSecret string
	PublicKey *rsa.PublicKey
	Issuer    string
	Audience  string
}

type SecurityConfig struct {
	CredentialEncryptionKey string
	RateLimitPerSecond      int
	RateLimitBurst          int
	MaxUploadBytes          int64
}

type CoinbaseConfig struct {
	ClientID          string
	ClientSecret      string
	RedirectURI       string
	APIBaseURL        string
	AuthorizeURL      string
	Scopes            string
	RequestsPerSecond float64
}

type GeminiConfig struct {
	APIBaseURL        string
	RequestsPerSecond float64
}

type PricesConfig struct {
	CoinMarketCapAPIKey string
	APIBaseURL          string
	Timeout             time.Duration
}

type SyncConfig struct {
	ExpiryBuffer       time.Duration
	InitialSyncTimeout time.Duration
	Interval           time.Duration
	MaxWorkers         int
	SchedulerEnabled   bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARNING: failed to load .env file: %v", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 20*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "cryptofolio"),
			Password:        getEnv("DB_PASSWORD", "cryptofolio"),
			Name:            getEnv("DB_NAME", "cryptofolio"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("IDP_JWT_SECRET"),
			Issuer:    os.Getenv("IDP_JWT_ISSUER"),
			Audience:  getEnv("IDP_JWT_AUDIENCE", "authenticated"),
		},
		Security: SecurityConfig{
			CredentialEncryptionKey: os.Getenv("CREDENTIALS_ENCRYPTION_KEY"),
			RateLimitPerSecond:      getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:          getIntEnv("RATE_LIMIT_BURST", 10),
			MaxUploadBytes:          int64(getIntEnv("MAX_UPLOAD_BYTES", 10<<20)),
		},
		Coinbase: CoinbaseConfig{
			ClientID:          os.Getenv("COINBASE_CLIENT_ID"),
			ClientSecret:      os.Getenv("COINBASE_CLIENT_SECRET"),
			RedirectURI:       os.Getenv("COINBASE_REDIRECT_URI"),
			APIBaseURL:        getEnv("COINBASE_API_BASE_URL", "https://api.coinbase.com"),
			AuthorizeURL:      getEnv("COINBASE_AUTHORIZE_URL", "https://login.coinbase.com/oauth2/auth"),
			Scopes:            getEnv("COINBASE_SCOPES", "wallet:accounts:read,wallet:user:read"),
			RequestsPerSecond: getFloatEnv("COINBASE_REQUESTS_PER_SECOND", 10),
		},
		Gemini: GeminiConfig{
			APIBaseURL:        getEnv("GEMINI_API_BASE_URL", "https://api.gemini.com"),
			RequestsPerSecond: getFloatEnv("GEMINI_REQUESTS_PER_SECOND", 5),
		},
		Prices: PricesConfig{
			CoinMarketCapAPIKey: os.Getenv("COINMARKETCAP_API_KEY"),
			APIBaseURL:          getEnv("COINMARKETCAP_API_BASE_URL", "https://pro-api.coinmarketcap.com"),
			Timeout:             getDurationEnv("COINMARKETCAP_TIMEOUT", 10*time.Second),
		},
		Sync: SyncConfig{
			ExpiryBuffer:       getDurationEnv("SYNC_TOKEN_EXPIRY_BUFFER", 5*time.Minute),
			InitialSyncTimeout: getDurationEnv("SYNC_INITIAL_TIMEOUT", 60*time.Second),
			Interval:           getDurationEnv("SYNC_INTERVAL", 15*time.Minute),
			MaxWorkers:         getIntEnv("SYNC_MAX_WORKERS", 4),
			SchedulerEnabled:   getBoolEnv("SYNC_SCHEDULER_ENABLED", false),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	publicKey, err := config.loadIdentityPublicKey()
	if err != nil {
		log.Fatal("Failed to load identity provider public key:", err)
	}
	config.Auth.PublicKey = publicKey

	if err := config.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	return config
}

// Validate reports settings that the service cannot run without.
func (c *Config) Validate() error {
	if c.Auth.PublicKey == nil && c.Auth.JWTSecret == "" {
		return errors.New("either IDP_JWT_PUBLIC_KEY or IDP_JWT_SECRET must be set")
	}

	if c.Security.CredentialEncryptionKey == "" {
		if c.IsProduction() {
			return errors.New("CREDENTIALS_ENCRYPTION_KEY must be set in production environments")
		}
		log.Println("WARNING: CREDENTIALS_ENCRYPTION_KEY not set, using an insecure development key")
		c.Security.CredentialEncryptionKey = "development-only-credentials-key"
	}

	if c.Sync.MaxWorkers < 1 {
		c.Sync.MaxWorkers = 1
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the DSN in the postgres:// form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadIdentityPublicKey reads the base64-encoded PEM public key of the identity
// provider, if one is configured. A nil key means HS256 shared-secret verification.
func (c *Config) loadIdentityPublicKey() (*rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("IDP_JWT_PUBLIC_KEY")
	if publicKeyB64 == "" {
		return nil, nil
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode IDP_JWT_PUBLIC_KEY: %w", err)
	}

	log.Println("Loading identity provider RSA public key from environment")
	return LoadRSAPublicKey(publicKeyBytes)
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// LoadRSAPublicKey loads an RSA public key from PEM format
func LoadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
