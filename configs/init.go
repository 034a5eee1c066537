package configs

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

type configs struct {
	Service ServiceConfig `yaml:"service"`
	MySQL   MySQLConfig   `yaml:"mysql"`
	Redis   RedisConfig   `yaml:"redis"`
	S3      S3Config      `yaml:"s3"`
	CarAPI  CarAPIConfig  `yaml:"car_api"`
	Uploads UploadsConfig `yaml:"uploads"`
	Session SessionConfig `yaml:"session"`
	Logs    LogsConfig    `yaml:"logs"`
	Secrets Secrets       `yaml:"-"`
}

var Configs configs

func Init(ConfigPath *string) {
	var configPath string
	if ConfigPath == nil || *ConfigPath == "" {
		_, b, _, _ := runtime.Caller(0)
		BasePath := filepath.Dir(b)
		configPath = BasePath + "/file/configs.yaml"
	} else {
		configPath = *ConfigPath
	}
	load(configPath)

	// 비밀값은 설정 파일이 아닌 환경 변수에서만 읽습니다.
	Configs.Secrets = loadSecretsFromEnv()
	Configs.CarAPI.applyDefaults()
	Configs.Session.applyDefaults()

	InitLogger()
}

func load(ConfigsPath string) {
	yamlFile, err := os.ReadFile(ConfigsPath)
	if err != nil {
		panic("Failed to read config file: " + err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Configs)
	if err != nil {
		panic("Failed to parse config file: " + err.Error())
	}
}
