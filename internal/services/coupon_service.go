package services

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	domainerrors "github.com/gamevault/gamevault-backend/internal/domain/errors"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/domain/repositories"
)

const (
	couponCodeLength   = 10
	couponCodeAlphabet = "abcdefghijklmnopqrstuvwxyz"
)

// CouponService contém a lógica de negócio para cupons de desconto
type CouponService struct {
	couponRepo repositories.CouponRepository
	mailer     ports.Mailer
	logger     ports.Logger
	now        nowFunc
}

// NewCouponService cria um novo CouponService
func NewCouponService(
	couponRepo repositories.CouponRepository,
	mailer ports.Mailer,
	logger ports.Logger,
) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		mailer:     mailer,
		logger:     logger,
		now:        defaultNow,
	}
}

// CreateCoupon cria um cupom com código aleatório de 10 letras minúsculas
func (s *CouponService) CreateCoupon(ctx context.Context, discountPercentage int, expirationDate time.Time) (*entities.Coupon, error) {
	code, err := couponCode()
	if err != nil {
		return nil, err
	}

	coupon := &entities.Coupon{
		ID:                 uuid.NewString(),
		Code:               code,
		DiscountPercentage: discountPercentage,
		ExpirationDate:     expirationDate,
		IsActive:           true,
	}
	if err := coupon.Validate(); err != nil {
		return nil, err
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	s.logger.Info("coupon created", "coupon_id", coupon.ID, "code", code)
	return coupon, nil
}

// GetCoupon busca um cupom por ID
func (s *CouponService) GetCoupon(ctx context.Context, id string) (*entities.Coupon, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, domainerrors.ErrCouponNotFound
	}
	return coupon, nil
}

// ListCoupons lista cupons com paginação por keyset
func (s *CouponService) ListCoupons(ctx context.Context, cursor *string, limit int) (repositories.Page[*entities.Coupon, string], error) {
	return s.couponRepo.List(ctx, cursor, limit)
}

// DeleteCoupon remove um cupom
func (s *CouponService) DeleteCoupon(ctx context.Context, id string) error {
	if _, err := s.GetCoupon(ctx, id); err != nil {
		return err
	}
	return s.couponRepo.Delete(ctx, id)
}

// ToggleCoupon inverte o flag de atividade do cupom
func (s *CouponService) ToggleCoupon(ctx context.Context, id string) (*entities.Coupon, error) {
	coupon, err := s.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}

	coupon.IsActive = !coupon.IsActive
	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	s.logger.Info("coupon toggled", "coupon_id", id, "is_active", coupon.IsActive)
	return coupon, nil
}

// UpdateDiscount altera o percentual de desconto do cupom
func (s *CouponService) UpdateDiscount(ctx context.Context, id string, discountPercentage int) (*entities.Coupon, error) {
	coupon, err := s.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}

	coupon.DiscountPercentage = discountPercentage
	if err := coupon.Validate(); err != nil {
		return nil, err
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// ValidateCoupon checa se o cupom pode ser aplicado: existência,
// expiração (comparada ao dia de hoje) e atividade, nessa ordem
func (s *CouponService) ValidateCoupon(ctx context.Context, id string) (*entities.Coupon, error) {
	coupon, err := s.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := coupon.CheckValid(s.now()); err != nil {
		return nil, err
	}
	return coupon, nil
}

// SendCoupons cria um cupom por destinatário e envia o email de
// presente. Envio é best-effort; a criação dos cupons não é desfeita
// se um email falhar.
func (s *CouponService) SendCoupons(ctx context.Context, emails []string, discountPercentage int, expirationDate time.Time) ([]*entities.Coupon, error) {
	coupons := make([]*entities.Coupon, 0, len(emails))
	for _, email := range emails {
		coupon, err := s.CreateCoupon(ctx, discountPercentage, expirationDate)
		if err != nil {
			return nil, err
		}

		s.mailer.SendCoupon(email, coupon)
		coupons = append(coupons, coupon)
	}

	s.logger.Info("coupons sent", "count", len(coupons))
	return coupons, nil
}

// couponCode gera o código aleatório de 10 letras minúsculas
func couponCode() (string, error) {
	buf := make([]byte, couponCodeLength)
	alphabetSize := big.NewInt(int64(len(couponCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = couponCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
