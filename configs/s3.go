package configs

type S3Config struct {
	Region     string `yaml:"region"`
	BucketName string `yaml:"bucket_name"`
}
