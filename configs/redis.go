package configs

type RedisConfig struct {
	Address  string `yaml:"address"`
	Username string `yaml:"username"`
	Database int    `yaml:"database"`
	Tls      bool   `yaml:"tls"`
}
