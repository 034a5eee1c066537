package models

// APIError 응답 에러 본문
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse 모든 핸들러가 사용하는 단일 응답 포맷입니다.
// 성공: {"success": true, "data": ...} / 실패: {"success": false, "error": {...}}
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// NewSuccessResponse 성공 응답 생성
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewErrorResponse 실패 응답 생성
func NewErrorResponse(code, message string) APIResponse {
	return APIResponse{Success: false, Error: &APIError{Code: code, Message: message}}
}
