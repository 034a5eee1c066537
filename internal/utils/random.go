package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateRandomString은 지정된 길이의 무작위 문자열을 생성합니다.
func GenerateRandomString(length int) string {
	const letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	b := make([]byte, length)
	for i := range b {
		randIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		b[i] = letters[randIndex.Int64()]
	}
	return string(b)
}

// GenerateVIN은 17자리 차대번호를 생성합니다.
// 실제 VIN 규격의 금지 문자(I, O, Q)를 제외합니다.
func GenerateVIN() string {
	const letters = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"
	b := make([]byte, 17)
	for i := range b {
		randIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		b[i] = letters[randIndex.Int64()]
	}
	return string(b)
}

// 번호판 중간 한글 후보
var plateHangul = []string{"가", "나", "다", "라", "마", "거", "너", "더", "러", "머", "고", "노", "도", "로", "모", "구", "누", "두", "루", "무"}

// GenerateLicensePlate는 "12가3456" 형태의 번호판을 생성합니다.
func GenerateLicensePlate() string {
	front, _ := rand.Int(rand.Reader, big.NewInt(90))
	mid, _ := rand.Int(rand.Reader, big.NewInt(int64(len(plateHangul))))
	back, _ := rand.Int(rand.Reader, big.NewInt(9000))

	return fmt.Sprintf("%02d%s%04d", front.Int64()+10, plateHangul[mid.Int64()], back.Int64()+1000)
}
