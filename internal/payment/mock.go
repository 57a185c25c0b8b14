package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Mock struct {
	now func() time.Time
}

func NewMock() *Mock {
	return &Mock{now: time.Now}
}

func (m *Mock) CreateCheckout(_ context.Context, _ CheckoutRequest) (Checkout, error) {
	return Checkout{
		TransactionID: fmt.Sprintf("MOCK_%d_%s", m.now().UnixMilli(), uuid.NewString()[:8]),
		Mock:          true,
	}, nil
}
