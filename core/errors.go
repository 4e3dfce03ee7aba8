package core

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrReentrantCall a mutating call re-entered the engine while another was in flight
	ErrReentrantCall ErrorCode = 100001

	// ErrAssetNotRegistered asset has no registered price feed
	ErrAssetNotRegistered ErrorCode = 100100
	// ErrInvalidAmount amount is zero or negative
	ErrInvalidAmount ErrorCode = 100101
	// ErrLengthMismatch asset and feed registration lists differ in length
	ErrLengthMismatch ErrorCode = 100102
	// ErrInsufficientCollateral vault balance below requested quantity
	ErrInsufficientCollateral ErrorCode = 100103
	// ErrInsufficientDebt burn amount exceeds minted debt
	ErrInsufficientDebt ErrorCode = 100104
	// ErrInsufficientBalance token ledger balance too low
	ErrInsufficientBalance ErrorCode = 100105
	// ErrTransferFailed an external value transfer reported failure
	ErrTransferFailed ErrorCode = 100106
	// ErrMintFailed the debt token mint call reported failure
	ErrMintFailed ErrorCode = 100107
	// ErrInvalidPrice the price feed returned no usable price
	ErrInvalidPrice ErrorCode = 100108
	// ErrHealthFactorViolated post-state health factor below minimum
	ErrHealthFactorViolated ErrorCode = 100109
	// ErrHealthFactorOk liquidation target is already solvent
	ErrHealthFactorOk ErrorCode = 100110
	// ErrHealthFactorNotImproved liquidation did not improve the target's factor
	ErrHealthFactorNotImproved ErrorCode = 100111
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// HealthFactorError carries the offending ratio so the caller can diagnose
// a rejection without re-querying state.
type HealthFactorError struct {
	Code   ErrorCode
	Factor decimal.Decimal
}

func (e *HealthFactorError) Error() string {
	return fmt.Sprintf("%s: health factor %s", e.Code, e.Factor)
}

func (e *HealthFactorError) Unwrap() error {
	return e.Code
}

// TransferError reports a failed external value transfer.
type TransferError struct {
	Symbol string
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s: transfer %s failed: %v", ErrTransferFailed, e.Symbol, e.Err)
}

func (e *TransferError) Is(target error) bool {
	return target == ErrTransferFailed
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
