package configs

type MySQLConfig struct {
	Address  string `yaml:"address"` // host:port
	Username string `yaml:"username"`
	Database string `yaml:"database"`
}
