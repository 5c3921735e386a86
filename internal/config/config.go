package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMongo = "mongo"
	BackendBolt  = "bolt"
)

// Config holds all configuration for the seeder.
type Config struct {
	// Store
	StoreBackend string `env:"STORE_BACKEND" envDefault:"mongo"`
	MongoURI     string `env:"MONGO_URI"`
	MongoDbName  string `env:"MONGO_DB_NAME" envDefault:"mern-estate"`
	BoltPath     string `env:"BOLT_PATH" envDefault:"var/seed.db"`

	// Batch
	AccountCount        int           `env:"SEED_ACCOUNT_COUNT" envDefault:"50"`
	ListingCount        int           `env:"SEED_LISTING_COUNT" envDefault:"200"`
	Password            string        `env:"SEED_PASSWORD" envDefault:"password123"`
	RandomSeed          uint64        `env:"SEED_RANDOM_SEED" envDefault:"0"`
	AccountMaxAttempts  int           `env:"SEED_ACCOUNT_MAX_ATTEMPTS" envDefault:"3"`
	IdentityMaxAttempts int           `env:"SEED_IDENTITY_MAX_ATTEMPTS" envDefault:"1000"`
	RetryDelay          time.Duration `env:"SEED_RETRY_DELAY" envDefault:"50ms"`
	MaxWritesPerSecond  float64       `env:"SEED_MAX_WRITES_PER_SECOND" envDefault:"0"`
	EmailDomain         string        `env:"SEED_EMAIL_DOMAIN" envDefault:"example.com"`
	BcryptCost          int           `env:"BCRYPT_COST" envDefault:"10"`

	// Media
	AvatarBaseURL string `env:"AVATAR_BASE_URL" envDefault:"https://i.pravatar.cc/150"`
	ImageBaseURL  string `env:"IMAGE_BASE_URL" envDefault:"https://loremflickr.com/1280/720"`

	// Redis (optional report publishing)
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	ReportKey     string `env:"SEED_REPORT_KEY" envDefault:"seed:last_report"`
	ReportHistory int64  `env:"SEED_REPORT_HISTORY" envDefault:"20"`
}

// Overrides carries command-line values that take precedence over the environment.
// Negative counts and empty strings mean "not set".
type Overrides struct {
	Accounts int
	Listings int
	Seed     int64
	Backend  string
}

// NoOverrides leaves the environment configuration untouched.
var NoOverrides = Overrides{Accounts: -1, Listings: -1, Seed: -1}

// Load configuration from the .env file and environment variables.
func Load(o Overrides) (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.apply(o)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(o Overrides) {
	if o.Accounts >= 0 {
		c.AccountCount = o.Accounts
	}
	if o.Listings >= 0 {
		c.ListingCount = o.Listings
	}
	if o.Seed >= 0 {
		c.RandomSeed = uint64(o.Seed)
	}
	if o.Backend != "" {
		c.StoreBackend = o.Backend
	}
}

// Validate checks the combination of values that env parsing cannot express.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("missing required environment variable: MONGO_URI")
		}
	case BackendBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("missing required environment variable: BOLT_PATH")
		}
	default:
		return fmt.Errorf("invalid STORE_BACKEND: %q", c.StoreBackend)
	}
	if c.AccountCount < 0 {
		return fmt.Errorf("invalid SEED_ACCOUNT_COUNT: %d", c.AccountCount)
	}
	if c.ListingCount < 0 {
		return fmt.Errorf("invalid SEED_LISTING_COUNT: %d", c.ListingCount)
	}
	if c.AccountMaxAttempts < 1 {
		return fmt.Errorf("invalid SEED_ACCOUNT_MAX_ATTEMPTS: %d", c.AccountMaxAttempts)
	}
	if c.IdentityMaxAttempts < 1 {
		return fmt.Errorf("invalid SEED_IDENTITY_MAX_ATTEMPTS: %d", c.IdentityMaxAttempts)
	}
	if c.MaxWritesPerSecond < 0 {
		return fmt.Errorf("invalid SEED_MAX_WRITES_PER_SECOND: %v", c.MaxWritesPerSecond)
	}
	if c.Password == "" {
		return fmt.Errorf("SEED_PASSWORD must not be empty")
	}
	return nil
}
