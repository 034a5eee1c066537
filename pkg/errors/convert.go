package errors

// 코드별 HTTP 상태 매핑 테이블
var codeMapping = map[string]int{
	ErrInternal:        500, // Internal Server Error
	ErrNotFound:        404, // Not Found
	ErrInvalidArgument: 400, // Bad Request
	ErrUnauthenticated: 401, // Unauthorized
	ErrUnauthorized:    403, // Forbidden
	ErrConflict:        409, // Conflict
	ErrTimeout:         504, // Gateway Timeout
	ErrUnavailable:     503, // Service Unavailable
	ErrNotImplemented:  501, // Not Implemented
}

// ToHTTPStatus는 특정 에러 코드에 대한 HTTP 상태 코드를 반환합니다
func ToHTTPStatus(code string) int {
	if status, ok := codeMapping[code]; ok {
		return status
	}
	return 500 // 기본값으로 Internal Server Error
}
