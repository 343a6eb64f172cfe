package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// Drivers de base de datos soportados.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
	Docs DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de la base de datos relacional.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver          string // mysql (por defecto), postgres, sqlite
	DatabaseURL     string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string // en sqlite: ruta del archivo o ":memory:"
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowQuery       time.Duration // 0 desactiva el log de consultas lentas
	QueryLog        bool          // activa bundebug (todas las consultas)
	AutoSchema      bool          // crea las tablas si no existen al arrancar
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string según el driver.
func (c DBConfig) DSN() string {
	switch c.Driver {
	case DriverPostgres:
		// url.UserPassword escapa caracteres especiales en la contraseña
		u := &url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
			Path:     "/" + c.DBName,
			RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
		}
		return u.String()
	case DriverSQLite:
		if c.DBName == "" || c.DBName == ":memory:" {
			return "file::memory:?cache=shared"
		}
		if strings.HasPrefix(c.DBName, "file:") {
			return c.DBName
		}
		return "file:" + c.DBName
	default:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
		mc.DBName = c.DBName
		mc.ParseTime = true
		// RowsAffected cuenta filas encontradas y no solo modificadas (PUT idempotente).
		mc.ClientFoundRows = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	}
}

// JWTConfig configuración de validación de JWT.
type JWTConfig struct {
	Secret string
	Issuer string
	Roles  []string // roles con acceso a la API
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DocsConfig ubicación del swagger.json pre-generado.
type DocsConfig struct {
	Path string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	driver := strings.ToLower(getString(v, "DB_DRIVER", DriverMySQL))
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "garden-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:          driver,
			DatabaseURL:     getString(v, "DATABASE_URL", ""),
			Host:            getString(v, "DB_HOST", "localhost"),
			Port:            getInt(v, "DB_PORT", defaultPort(driver)),
			User:            getString(v, "DB_USER", "root"),
			Password:        getString(v, "DB_PASSWORD", ""),
			DBName:          getString(v, "DB_NAME", "garden"),
			SSLMode:         getString(v, "DB_SSLMODE", "disable"),
			MaxOpenConns:    getInt(v, "DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt(v, "DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getInt(v, "DB_CONN_MAX_LIFETIME_MINUTES", 60)) * time.Minute,
			SlowQuery:       time.Duration(getInt(v, "DB_SLOW_QUERY_MS", 500)) * time.Millisecond,
			QueryLog:        getBool(v, "DB_QUERY_LOG", false),
			AutoSchema:      getBool(v, "DB_AUTO_SCHEMA", false),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", ""),
			Roles:  splitList(getString(v, "AUTH_ROLES", "Employee")),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Docs: DocsConfig{
			Path: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}

	switch cfg.DB.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("config: DB_DRIVER no soportado: %q", cfg.DB.Driver)
	}
	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
}

func defaultPort(driver string) int {
	if driver == DriverPostgres {
		return 5432
	}
	return 3306
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
