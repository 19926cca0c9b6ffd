package config

import "github.com/spf13/viper"

type Config struct {
	HTTPPort      string `mapstructure:"HTTP_PORT"`
	AllowOrigins  string `mapstructure:"ALLOW_ORIGINS"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"` // postgres | redis | memory

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`

	JWTSecret       string `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`

	DecaySweepSeconds int `mapstructure:"DECAY_SWEEP_SECONDS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("ALLOW_ORIGINS")
	viper.BindEnv("STORAGE_DRIVER")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("TOKEN_TTL_MINUTES")
	viper.BindEnv("DECAY_SWEEP_SECONDS")

	viper.SetDefault("HTTP_PORT", ":8080")
	viper.SetDefault("ALLOW_ORIGINS", "http://localhost:3000")
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("TOKEN_TTL_MINUTES", 43200) // 30 days; kids stay logged in
	viper.SetDefault("DECAY_SWEEP_SECONDS", 60)

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}
	err = viper.Unmarshal(&config)
	return
}
