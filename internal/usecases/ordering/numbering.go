package ordering

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	orderNumberPrefix = "GBOB"
	sequenceDigits    = 5
	maxSequence       = 99999
)

// OrderNumberFinder devolve o maior número de pedido com o prefixo, incluindo
// pedidos excluídos, ou "" quando nenhum existe
type OrderNumberFinder interface {
	LatestOrderNumber(ctx context.Context, prefix string) (string, error)
}

// OrderNumberPrefix devolve o prefixo do mês, ex: GBOB-202501-
func OrderNumberPrefix(now time.Time) string {
	return fmt.Sprintf("%s-%s-", orderNumberPrefix, now.Format("200601"))
}

// GenerateOrderNumber calcula o próximo número do mês de now. Não grava nada;
// a unicidade é garantida por quem insere o pedido.
func GenerateOrderNumber(ctx context.Context, now time.Time, finder OrderNumberFinder) (string, error) {
	prefix := OrderNumberPrefix(now)

	latest, err := finder.LatestOrderNumber(ctx, prefix)
	if err != nil {
		return "", errors.Wrap(err, "failed to find latest order number")
	}

	next := 1
	if sequence, ok := parseSequence(latest); ok {
		if sequence >= maxSequence {
			return "", ErrOrderNumberExhausted
		}
		next = sequence + 1
	}

	return fmt.Sprintf("%s%0*d", prefix, sequenceDigits, next), nil
}

// parseSequence lê os últimos dígitos do número. Qualquer valor fora do
// formato reinicia a sequência.
func parseSequence(orderNumber string) (int, bool) {
	if len(orderNumber) < sequenceDigits {
		return 0, false
	}

	suffix := orderNumber[len(orderNumber)-sequenceDigits:]
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	sequence, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}

	return sequence, true
}
