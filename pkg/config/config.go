package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	AI      AIConfig
	Almacen AlmacenConfig
	GLPI    GLPIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// AIConfig servicio de extracción de ítems.
// Provider selecciona el adaptador: "gemini" o "anthropic".
type AIConfig struct {
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	Lecciones       string // corpus de lecciones inyectado al prompt (ruta o texto)
}

// AlmacenConfig repositorio git que hospeda el documento del histórico.
type AlmacenConfig struct {
	Owner      string
	Repo       string
	Branch     string
	Token      string
	LedgerFile string // nombre del documento JSON del histórico
	OrdersDir  string // directorio de órdenes de borrado
}

// GLPIConfig acceso al sistema de tickets para consulta de activos.
type GLPIConfig struct {
	BaseURL   string
	AppToken  string
	UserToken string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, AI_PROVIDER, ALMACEN_TOKEN, GLPI_URL, etc.
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
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-jaher"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AI: AIConfig{
			Provider:        getString(v, "AI_PROVIDER", "gemini"),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			Lecciones:       getString(v, "AI_LECCIONES", ""),
		},
		Almacen: AlmacenConfig{
			Owner:      getString(v, "ALMACEN_OWNER", ""),
			Repo:       getString(v, "ALMACEN_REPO", ""),
			Branch:     getString(v, "ALMACEN_BRANCH", "main"),
			Token:      getString(v, "ALMACEN_TOKEN", ""),
			LedgerFile: getString(v, "ALMACEN_LEDGER_FILE", "historico.json"),
			OrdersDir:  getString(v, "ALMACEN_ORDERS_DIR", "ordenes"),
		},
		GLPI: GLPIConfig{
			BaseURL:   getString(v, "GLPI_URL", ""),
			AppToken:  getString(v, "GLPI_APP_TOKEN", ""),
			UserToken: getString(v, "GLPI_USER_TOKEN", ""),
		},
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
