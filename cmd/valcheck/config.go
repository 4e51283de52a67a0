package main

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Rules       string `env:"VALCHECK_RULES,required,notEmpty"`
	List        string `env:"VALCHECK_LIST"`
	PhoneRegion string `env:"VALCHECK_PHONE_REGION" envDefault:"US"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
}
