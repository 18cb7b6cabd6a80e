package client

import (
	"errors"

	"financeguard/internal/relayer"
)

var (
	ErrCapabilityNotReady error = errors.New("encryption capability not initialized")
	ErrContractUnresolved error = errors.New("ledger contract address not resolved")
	ErrNotConnected       error = errors.New("wallet not connected")
	ErrNotAuthenticated   error = errors.New("not logged in")
	ErrSignatureRejected  error = errors.New("signature request rejected")
	ErrSignatureTimedOut  error = errors.New("signature request timed out")
	ErrInvalidAmount      error = errors.New("amount must be a positive dollar value")
	ErrNotIncluded        error = errors.New("transaction not yet included")

	ErrDecryptionDenied   = relayer.ErrDecryptionDenied
	ErrServiceUnavailable = relayer.ErrServiceUnavailable
)
