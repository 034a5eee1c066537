package configs

type UploadsConfig struct {
	// Backend 사진 저장 위치 ("local" 또는 "s3")
	Backend string `yaml:"backend"`
	// Dir local 백엔드의 저장 디렉토리
	Dir string `yaml:"dir"`
	// MaxPhotosPerUser 사용자당 보관 가능한 사진 수 (기본 12)
	MaxPhotosPerUser int `yaml:"max_photos_per_user"`
	// MaxFileSizeBytes 업로드 원본 최대 크기 (기본 2MB)
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes"`
	// MaxWidth 리사이즈 후 최대 가로 픽셀 (기본 1600)
	MaxWidth int `yaml:"max_width"`
	// MinWidth 허용하는 원본 최소 가로 픽셀 (기본 320)
	MinWidth int `yaml:"min_width"`
	// JpegQuality 재인코딩 품질 (기본 85)
	JpegQuality int `yaml:"jpeg_quality"`
}
