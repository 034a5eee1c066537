package logics

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// FileStorage 사진 바이트 저장 백엔드. 설정에 따라 로컬 디스크 또는 S3를 사용합니다.
type FileStorage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// URL은 직접 다운로드 가능한 주소를 반환합니다. 지원하지 않는 백엔드는 빈 문자열을 반환합니다.
	URL(ctx context.Context, key string) (string, error)
}

// LocalStorage 설정된 디렉토리에 파일을 보관하는 백엔드입니다.
type LocalStorage struct {
	dir string
}

// NewLocalStorage 로컬 저장소 생성. 디렉토리가 없으면 만듭니다.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) Save(ctx context.Context, key string, data []byte, contentType string) error {
	return os.WriteFile(filepath.Join(l.dir, key), data, 0644)
}

func (l *LocalStorage) Load(ctx context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.dir, key))
}

func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(l.dir, key))
}

func (l *LocalStorage) URL(ctx context.Context, key string) (string, error) {
	return "", nil
}

// S3Storage S3 버킷에 파일을 보관하는 백엔드입니다. 다운로드는 presigned URL로 제공합니다.
type S3Storage struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
}

// NewS3Storage S3 저장소 생성
func NewS3Storage(s3Client *s3.Client, bucketName string) *S3Storage {
	return &S3Storage{
		s3Client:      s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    bucketName,
	}
}

func (s *S3Storage) objectKey(key string) string {
	return fmt.Sprintf("photos/%s", key)
}

func (s *S3Storage) Save(ctx context.Context, key string, data []byte, contentType string) error {
	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPrivate,
	}

	if _, err := s.s3Client.PutObject(ctx, putInput); err != nil {
		return fmt.Errorf("failed to upload file to s3: %w", err)
	}
	return nil
}

func (s *S3Storage) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from s3: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(out.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from s3: %w", err)
	}
	return nil
}

// URL은 15분 유효한 presigned 다운로드 URL을 생성합니다.
func (s *S3Storage) URL(ctx context.Context, key string) (string, error) {
	presignResult, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey(key)),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return presignResult.URL, nil
}
