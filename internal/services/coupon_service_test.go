package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
)

func TestCouponCode(t *testing.T) {
	t.Run("código tem 10 letras minúsculas", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			code, err := couponCode()
			if err != nil {
				t.Fatalf("geração não deveria falhar: %v", err)
			}
			if len(code) != couponCodeLength {
				t.Fatalf("esperava %d caracteres, obteve %d", couponCodeLength, len(code))
			}
			for _, r := range code {
				if r < 'a' || r > 'z' {
					t.Fatalf("caractere inesperado %q em %s", r, code)
				}
			}
		}
	})
}

func TestCouponService_ToggleCoupon(t *testing.T) {
	ctx := context.Background()

	couponRepo := &mockCouponRepo{}
	service := NewCouponService(couponRepo, &mockMailer{}, noopLogger{})

	couponRepo.On("FindByID", ctx, "c1").Return(&entities.Coupon{
		ID:                 "c1",
		Code:               "abcdefghij",
		DiscountPercentage: 10,
		IsActive:           true,
	}, nil)
	couponRepo.On("Update", ctx, mock.MatchedBy(func(c *entities.Coupon) bool {
		return !c.IsActive
	})).Return(nil)

	coupon, err := service.ToggleCoupon(ctx, "c1")
	if err != nil {
		t.Fatalf("toggle não deveria falhar: %v", err)
	}
	if coupon.IsActive {
		t.Fatal("cupom ativo deveria ficar inativo após o toggle")
	}
}

func TestCouponService_SendCoupons(t *testing.T) {
	ctx := context.Background()

	couponRepo := &mockCouponRepo{}
	mailer := &mockMailer{}
	service := NewCouponService(couponRepo, mailer, noopLogger{})

	couponRepo.On("Create", ctx, mock.Anything).Return(nil)
	mailer.On("SendCoupon", mock.Anything, mock.Anything).Return()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	coupons, err := service.SendCoupons(ctx, emails, 15, time.Now().AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("envio não deveria falhar: %v", err)
	}

	if len(coupons) != 3 {
		t.Fatalf("esperava 3 cupons, obteve %d", len(coupons))
	}
	couponRepo.AssertNumberOfCalls(t, "Create", 3)
	mailer.AssertNumberOfCalls(t, "SendCoupon", 3)

	// Cada destinatário recebe um cupom distinto
	seen := map[string]bool{}
	for _, c := range coupons {
		if seen[c.Code] {
			t.Fatalf("código repetido entre destinatários: %s", c.Code)
		}
		seen[c.Code] = true
	}
}
