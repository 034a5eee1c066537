package configs

import "os"

// Secrets는 환경 변수에서만 읽는 비밀값 모음입니다.
// 설정 파일이나 코드에 기본값을 두지 않습니다.
type Secrets struct {
	SessionSecret string
	MySQLPassword string
	RedisPassword string
	S3AccessKey   string
	S3SecretKey   string
}

func loadSecretsFromEnv() Secrets {
	return Secrets{
		SessionSecret: os.Getenv("SESSION_SECRET"),
		MySQLPassword: os.Getenv("MYSQL_PASSWORD"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
	}
}
