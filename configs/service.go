package configs

type ServiceConfig struct {
	HttpPort     string   `yaml:"http_port"`
	AllowOrigins []string `yaml:"allow_origins"`
}
