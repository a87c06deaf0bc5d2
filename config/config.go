package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Configuration struct {
	ApiPort string `mapstructure:"api_port"`

	Database string `mapstructure:"database"` // "sqlite3" ou "postgres"
	DbHost   string `mapstructure:"db_host"`
	DbPort   string `mapstructure:"db_port"`
	DbUser   string `mapstructure:"db_user"`
	DbName   string `mapstructure:"db_name"`
	DbPass   string `mapstructure:"db_pass"`
	DbPath   string `mapstructure:"db_path"` // arquivo sqlite3

	Security struct {
		JwtSecret     string `mapstructure:"jwt_secret"`
		TokenDays     int    `mapstructure:"token_days"`
		ResetCodeLen  int    `mapstructure:"reset_code_len"`
		ResetCodeMins int    `mapstructure:"reset_code_valid_minutes"`
	} `mapstructure:"security"`

	Groq struct {
		ApiKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"groq"`

	Smtp struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
		User string `mapstructure:"user"`
		Pass string `mapstructure:"pass"`
		From string `mapstructure:"from"`
	} `mapstructure:"smtp"`

	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Get carrega o config.json e aplica overrides de ambiente
// (AGENDAI_GROQ_API_KEY, AGENDAI_SECURITY_JWT_SECRET, ...).
func Get(path string) Configuration {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("AGENDAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_port", "8080")
	v.SetDefault("database", "sqlite3")
	v.SetDefault("db_path", "db/database.db")
	v.SetDefault("security.jwt_secret", "CHANGE_ME")
	v.SetDefault("security.token_days", 7)
	v.SetDefault("security.reset_code_len", 6)
	v.SetDefault("security.reset_code_valid_minutes", 10)
	v.SetDefault("groq.model", "llama-3.3-70b-versatile")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	if err := v.ReadInConfig(); err != nil {
		// sem arquivo ainda dá pra rodar só com env + defaults
		log.Printf("config: %v (seguindo com defaults e variáveis de ambiente)", err)
	}

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		log.Fatal(err)
	}
	return c
}
