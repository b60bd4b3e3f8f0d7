package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Razorpay struct {
		Enabled       bool   `yaml:"enabled"`
		KeyID         string `yaml:"key_id"`
		KeySecret     string `yaml:"key_secret"`
		WebhookSecret string `yaml:"webhook_secret"`
	} `yaml:"razorpay"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"` // may be "Name <addr>"
	} `yaml:"email"`

	Certificates struct {
		Dir     string `yaml:"dir"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"certificates"`

	CORS struct {
		FrontendOrigin string `yaml:"frontend_origin"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig populates AppConfig from a YAML file when CONFIG_PATH is set,
// otherwise from environment variables (a .env file is honored either way).
func LoadConfig() {
	// Локальный .env необязателен: на сервере переменные задаёт окружение.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Server.Env = os.Getenv("SERVER_ENV")

	cfg.Razorpay.Enabled = os.Getenv("USE_RAZORPAY") == "1"
	cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
	cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	cfg.Razorpay.WebhookSecret = os.Getenv("RAZORPAY_WEBHOOK_SECRET")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUser = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASS")
	cfg.Email.FromEmail = os.Getenv("FROM_EMAIL")

	cfg.Certificates.Dir = os.Getenv("CERT_DIR")
	cfg.CORS.FrontendOrigin = os.Getenv("FRONTEND_ORIGIN")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults fills the fields both loading paths may leave empty.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Razorpay.KeyID == "" {
		cfg.Razorpay.KeyID = "rzp_test_dummy"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Email.FromEmail == "" {
		if cfg.Email.SMTPUser != "" {
			cfg.Email.FromEmail = cfg.Email.SMTPUser
		} else {
			cfg.Email.FromEmail = "no-reply@example.com"
		}
	}
	if cfg.Certificates.Dir == "" {
		cfg.Certificates.Dir = "./certificates"
	}
	if cfg.Certificates.BaseURL == "" {
		cfg.Certificates.BaseURL = "/certificate"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
