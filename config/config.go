// Package config provides configuration management for the Paybox request
// service. Configuration is loaded from a YAML file and can be overridden
// by environment variables.
package config

import (
	"fmt"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"

	"paybox/entity"
)

// Config holds all configuration for the Paybox request service.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug bool `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	Listen  struct {
		Type     string `yaml:"type" env:"LISTEN_TYPE" env-default:"port"`
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5100"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:"admin"`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:"pass"`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:""`
	} `yaml:"mongo"`
	Kafka struct {
		Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
		Topic   string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"payment_requests"`
	} `yaml:"kafka"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
		BindIP  string `yaml:"bind_ip" env:"METRICS_BIND_IP" env-default:"0.0.0.0"`
		Port    string `yaml:"port" env:"METRICS_PORT" env-default:"9100"`
	} `yaml:"metrics"`
	Paybox struct {
		// Site, Rank and Identifiant are assigned by the Paybox back office.
		Site        string `yaml:"site" env:"PAYBOX_SITE" env-default:""`
		Rank        string `yaml:"rank" env:"PAYBOX_RANK" env-default:""`
		Identifiant string `yaml:"identifiant" env:"PAYBOX_IDENTIFIANT" env-default:""`
		// Secret is the hex-encoded HMAC key from the back office.
		Secret string `yaml:"secret" env:"PAYBOX_SECRET" env-default:""`
		// BaseUrl is the public base URL of the shop; return routes are
		// resolved against it unless they are absolute already.
		BaseUrl      string               `yaml:"base_url" env:"PAYBOX_BASE_URL" env-default:""`
		ReturnFields []entity.ReturnField `yaml:"return_fields"`
		ReturnRoutes struct {
			Accepted string `yaml:"accepted" env:"PAYBOX_ROUTE_ACCEPTED" env-default:"/payment/accepted"`
			Refused  string `yaml:"refused" env:"PAYBOX_ROUTE_REFUSED" env-default:"/payment/refused"`
			Aborted  string `yaml:"aborted" env:"PAYBOX_ROUTE_ABORTED" env-default:"/payment/aborted"`
			Waiting  string `yaml:"waiting" env:"PAYBOX_ROUTE_WAITING" env-default:"/payment/waiting"`
			Verify   string `yaml:"verify" env:"PAYBOX_ROUTE_VERIFY" env-default:"/payment/verify"`
		} `yaml:"return_routes"`
		// Servers lists the gateway fronts in preference order.
		Servers []string `yaml:"servers" env:"PAYBOX_SERVERS" env-default:"tpeweb.paybox.com,tpeweb1.paybox.com"`
	} `yaml:"paybox"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path. This
// function uses a singleton pattern and only loads the config once.
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("load config: %w; %s", err, desc)
			instance = nil
		}
	})
	return instance, err
}
