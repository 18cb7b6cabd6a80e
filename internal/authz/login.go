package authz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
)

const loginPrefix = "FinanceGuard login: "

var ErrMalformedLogin error = errors.New("malformed login message")

// LoginText is the personal message a wallet signs to open a session.
func LoginText(t time.Time) string {
	return loginPrefix + strconv.FormatInt(t.Unix(), 10)
}

// ParseLoginText returns the time embedded in a login message.
func ParseLoginText(text string) (time.Time, error) {
	raw, ok := strings.CutPrefix(text, loginPrefix)
	if !ok {
		return time.Time{}, ErrMalformedLogin
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedLogin, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

// RecoverTextSigner returns the account behind a personal_sign signature.
func RecoverTextSigner(text string, sig []byte) (common.Address, error) {
	return recoverAddress(accounts.TextHash([]byte(text)), sig)
}
