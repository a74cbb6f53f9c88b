package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Log   LogConfig
	Quote QuoteConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// QuoteConfig políticas del motor de cotización. Son decisiones de borde
// (jurisdicción, numeración), nunca estado mutable compartido: se copian a las
// entradas en el momento de crear cada cotización.
type QuoteConfig struct {
	NumberPrefix    string // prefijo del consecutivo, ej. "COT"
	DefaultCurrency string // ISO-4217 usado cuando el caller no indica moneda
	// ShippingZeroRated true: el envío se trata exento de IVA; false: se grava
	// con la tasa efectiva de la cotización. Depende de la jurisdicción, por
	// eso es bandera explícita y no un valor cableado.
	ShippingZeroRated bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env o config.env). Las env vars tienen prioridad.
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
			Name: getString(v, "APP_NAME", "cotizador-pro"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Quote: QuoteConfig{
			NumberPrefix:      getString(v, "QUOTE_NUMBER_PREFIX", "COT"),
			DefaultCurrency:   getString(v, "QUOTE_DEFAULT_CURRENCY", "COP"),
			ShippingZeroRated: getBool(v, "QUOTE_SHIPPING_ZERO_RATED", false),
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch val := v.Get(key).(type) {
		case bool:
			return val
		case string:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return def
			}
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
