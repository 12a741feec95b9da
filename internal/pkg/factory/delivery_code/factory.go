package delivery_code

import (
	"math/rand/v2"
	"strings"
)

// Коды человекочитаемые, не криптографические: ими оперируют
// клиент и водитель при подтверждении, а не авторизация.
// Уникальность обеспечивает БД уникальными индексами, при коллизии
// сервис перегенерирует.
const (
	trackingPrefix     = "FKS"
	trackingLength     = 8
	confirmationLength = 6

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

// TrackingCode клиентский код отслеживания, формат FKS + 8 символов.
func (f *CodeFactory) TrackingCode() string {
	return trackingPrefix + randomToken(trackingLength)
}

// ConfirmationCode код подтверждения вручения, 6 символов.
func (f *CodeFactory) ConfirmationCode() string {
	return randomToken(confirmationLength)
}

func randomToken(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}
