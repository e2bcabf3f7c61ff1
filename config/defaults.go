package config

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverGorm   = "gorm"
	DriverRedis  = "redis"
)

// DevJWTSecret is only meant for local runs; main warns when it is in use.
const DevJWTSecret = "storefront-dev-secret"

func Defaults() *Config {
	return &Config{
		AppPort: "8080",
		HOST:    "127.0.0.1",

		StoreDriver: DriverFile,
		StoreDir:    "./data/storage",
		RedisPrefix: "storefront:",

		CatalogSource:  "./data/data.json",
		CatalogTimeout: "10s",

		JWTSecret:     DevJWTSecret,
		JWTExpiration: "72h",

		CORSAllowOrigins: []string{"*"},
		CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}
}
