package models

// Video 안내 영상 항목. DB가 아닌 정적 카탈로그로 제공합니다.
type Video struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
	Category string `json:"category"`
}
