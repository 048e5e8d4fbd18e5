package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort string `yaml:"server_port"`
	BaseUrl    string `yaml:"base_url"`

	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`
	DBDebug    bool   `yaml:"db_debug"`

	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`

	PrivateKeyPath string `yaml:"private_key_path"`
}

func NewConfig(path string) (*Config, error) {
	var c Config

	if path == "" {
		path = "config.yaml"
	}

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	if c.ServerPort == "" {
		c.ServerPort = ":8080"
	}
	if c.PrivateKeyPath == "" {
		c.PrivateKeyPath = "./private.pem"
	}

	return &c, nil
}
