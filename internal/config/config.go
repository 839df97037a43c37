package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig     `mapstructure:"db"`
	JWT     JWTConfig    `mapstructure:"jwt"`
	AWS     AWSConfig    `mapstructure:"aws"`
	Admin   AdminConfig  `mapstructure:"admin"`
	AppHost string       `mapstructure:"host"`
	Server  ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type AWSConfig struct {
	Region       string `mapstructure:"region"`
	Bucket       string `mapstructure:"bucket"`
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
	// PublicURLBase overrides the URL prefix returned for uploaded objects.
	// Empty means the standard virtual-hosted bucket URL.
	PublicURLBase string `mapstructure:"public_url_base"`
}

// AdminConfig describes the seeded admin account reconciled at startup.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.addr", ":8080")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
