package config

import (
	"github.com/spf13/viper"
)

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type HTTP struct {
	Host string
	Port int
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Uploads struct {
	Dir         string
	PublicPath  string
	Placeholder string
}

type Redis struct {
	Host string
	Port int
}

type Admin struct {
	Email    string
	Password string
}

type Config struct {
	Env       string
	HTTP      HTTP
	DB        DB
	JWT       JWT
	Uploads   Uploads
	StaticDir string
	Redis     Redis
	Admin     Admin
}

// IsProduction reports whether the server runs with production policies
// (same-origin only, no dev CORS).
func (c Config) IsProduction() bool { return c.Env == "production" }

// Load reads configuration from the process environment. Every option has a
// development default so a bare `go run ./cmd/server` against a local MySQL
// works without any setup.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("NODE_ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("MYSQL_HOST", "127.0.0.1")
	v.SetDefault("MYSQL_PORT", 3306)
	v.SetDefault("MYSQL_USER", "root")
	v.SetDefault("MYSQL_PASSWORD", "")
	v.SetDefault("MYSQL_DATABASE", "repairdesk")
	v.SetDefault("JWT_SECRET", "dev-secret")
	v.SetDefault("JWT_ISSUER", "repairdesk")
	v.SetDefault("JWT_EXP_MIN", 60)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("STATIC_DIR", "frontend/dist")
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")

	cfg := Config{
		Env:  v.GetString("NODE_ENV"),
		HTTP: HTTP{Host: v.GetString("HOST"), Port: v.GetInt("PORT")},
		DB: DB{
			Host: v.GetString("MYSQL_HOST"),
			Port: v.GetInt("MYSQL_PORT"),
			User: v.GetString("MYSQL_USER"),
			Pass: v.GetString("MYSQL_PASSWORD"),
			Name: v.GetString("MYSQL_DATABASE"),
		},
		JWT: JWT{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
			ExpMin: v.GetInt("JWT_EXP_MIN"),
		},
		Uploads: Uploads{
			Dir:         v.GetString("UPLOAD_DIR"),
			PublicPath:  "/uploads",
			Placeholder: "/uploads/placeholder.png",
		},
		StaticDir: v.GetString("STATIC_DIR"),
		Redis:     Redis{Host: v.GetString("REDIS_HOST"), Port: v.GetInt("REDIS_PORT")},
		Admin:     Admin{Email: v.GetString("ADMIN_EMAIL"), Password: v.GetString("ADMIN_PASSWORD")},
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}
