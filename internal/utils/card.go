package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
)

// DetectCardBrand는 카드 번호 접두사로 브랜드를 판별합니다.
func DetectCardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return models.CardBrandVisa
	case len(number) >= 2 && number[0] == '5' && number[1] >= '1' && number[1] <= '5':
		return models.CardBrandMastercard
	case strings.HasPrefix(number, "34") || strings.HasPrefix(number, "37"):
		return models.CardBrandAmex
	case strings.HasPrefix(number, "6011") || strings.HasPrefix(number, "65"):
		return models.CardBrandDiscover
	default:
		return models.CardBrandUnknown
	}
}

// IsTestCard는 테스트용 카드 번호 여부를 판별합니다 (4242, 0077로 끝나는 번호).
func IsTestCard(number string) bool {
	return strings.HasSuffix(number, "4242") || strings.HasSuffix(number, "0077")
}

// MaskCardNumber는 마지막 4자리만 남기고 카드 번호를 마스킹합니다.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return "****"
	}
	return "****-****-****-" + number[len(number)-4:]
}

// HashCardNumber는 중복 등록 검출용 해시를 생성합니다. 번호 원문은 저장하지 않습니다.
func HashCardNumber(number string) string {
	sum := sha256.Sum256([]byte(number))
	return hex.EncodeToString(sum[:])
}
