package relayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"financeguard/internal/authz"
	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var TimeNow = time.Now

var (
	ErrDecryptionDenied   error = errors.New("decryption denied")
	ErrServiceUnavailable error = errors.New("decryption service unavailable")
)

// Service performs user decryptions on behalf of entitled accounts. Every
// rejection surfaces as ErrDecryptionDenied; the reason is only logged.
type Service struct {
	logs        *zap.SugaredLogger
	coprocessor Coprocessor
	key         KeyHolder
	domain      authz.Domain
}

func NewService(logger *zap.SugaredLogger, coprocessor Coprocessor, key KeyHolder, domain authz.Domain) *Service {
	return &Service{
		logs:        logger,
		coprocessor: coprocessor,
		key:         key,
		domain:      domain,
	}
}

func (s *Service) Domain() authz.Domain {
	return s.domain
}

// UserDecrypt returns every requested plaintext sealed to req.PublicKey.
func (s *Service) UserDecrypt(ctx context.Context, req authz.Request) (map[fhe.Handle][]byte, error) {
	if reason := checkShape(req); reason != "" {
		return nil, s.deny(req, reason)
	}

	signer, err := authz.RecoverSigner(s.domain, req.Claim(), req.Signature)
	if err != nil {
		return nil, s.deny(req, err.Error())
	}
	if signer != req.UserAddress {
		return nil, s.deny(req, "signer is not the requester")
	}

	if !req.Claim().Window().Contains(TimeNow()) {
		return nil, s.deny(req, "outside validity window")
	}

	for _, pair := range req.Pairs {
		for _, account := range []common.Address{req.UserAddress, pair.Contract} {
			allowed, err := s.coprocessor.IsAllowed(ctx, pair.Handle, account)
			if errors.Is(err, fhe.ErrUnknownHandle) {
				return nil, s.deny(req, "unknown handle "+pair.Handle.Hex())
			}
			if err != nil {
				return nil, fmt.Errorf("%w: check access: %w", ErrServiceUnavailable, err)
			}
			if !allowed {
				return nil, s.deny(req, fmt.Sprintf("%s not entitled to %s", account.Hex(), pair.Handle.Hex()))
			}
		}
	}

	results := make(map[fhe.Handle][]byte, len(req.Pairs))
	for _, pair := range req.Pairs {
		if _, done := results[pair.Handle]; done {
			continue
		}

		c, err := s.coprocessor.Ciphertext(ctx, pair.Handle)
		if err != nil {
			return nil, fmt.Errorf("%w: load ciphertext: %w", ErrServiceUnavailable, err)
		}
		plaintext, err := s.key.Decrypt(c)
		if err != nil {
			return nil, fmt.Errorf("%w: decrypt: %w", ErrServiceUnavailable, err)
		}
		sealed, err := Seal(plaintext, &req.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
		}
		results[pair.Handle] = sealed
	}

	s.logs.Infow("user decryption served",
		"user", req.UserAddress.Hex(),
		"handles", len(results),
	)

	return results, nil
}

func (s *Service) deny(req authz.Request, reason string) error {
	s.logs.Infow("user decryption denied",
		"user", req.UserAddress.Hex(),
		"reason", reason,
	)
	return ErrDecryptionDenied
}

func checkShape(req authz.Request) string {
	if len(req.Pairs) == 0 {
		return "no handles"
	}
	if len(req.ContractAddresses) == 0 {
		return "no contract addresses"
	}
	if req.DurationDays == 0 || req.DurationDays > authz.MaxDurationDays {
		return "duration out of range"
	}

	listed := make(map[common.Address]struct{}, len(req.ContractAddresses))
	for _, c := range req.ContractAddresses {
		listed[c] = struct{}{}
	}
	for _, p := range req.Pairs {
		if _, ok := listed[p.Contract]; !ok {
			return "contract " + p.Contract.Hex() + " not listed"
		}
	}
	return ""
}
