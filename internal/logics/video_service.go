package logics

import (
	"github.com/OuserDev/Connected-Car-BE/internal/models"
)

// VideoService 안내 영상 카탈로그. DB 없이 정적 목록으로 제공합니다.
type VideoService struct {
	catalog []models.Video
}

// NewVideoService 영상 서비스 생성
func NewVideoService() *VideoService {
	return &VideoService{
		catalog: []models.Video{
			{ID: 1, Title: "커넥티드카 서비스 시작하기", URL: "https://videos.carlink.example.com/getting-started.mp4", Duration: "03:24", Category: "guide"},
			{ID: 2, Title: "원격 제어 기능 안내", URL: "https://videos.carlink.example.com/remote-control.mp4", Duration: "05:12", Category: "guide"},
			{ID: 3, Title: "차량 사진 관리하기", URL: "https://videos.carlink.example.com/photo-manage.mp4", Duration: "02:48", Category: "guide"},
			{ID: 4, Title: "결제 카드 등록 방법", URL: "https://videos.carlink.example.com/card-register.mp4", Duration: "02:05", Category: "payment"},
			{ID: 5, Title: "주행 기록 살펴보기", URL: "https://videos.carlink.example.com/driving-records.mp4", Duration: "04:31", Category: "guide"},
			{ID: 6, Title: "겨울철 차량 관리 팁", URL: "https://videos.carlink.example.com/winter-care.mp4", Duration: "06:17", Category: "tips"},
		},
	}
}

// List 전체 영상 목록. category가 비어 있지 않으면 해당 분류만 반환합니다.
func (s *VideoService) List(category string) []models.Video {
	if category == "" {
		return s.catalog
	}

	filtered := make([]models.Video, 0, len(s.catalog))
	for _, v := range s.catalog {
		if v.Category == category {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
