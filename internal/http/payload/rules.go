package payload

import (
	"errors"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

var (
	hexBytes  = regexp.MustCompile(`^0x([a-fA-F0-9]{2})*$`)
	hexHandle = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
)

func isAddress(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !common.IsHexAddress(s) {
		return errors.New("must be a hex encoded address")
	}
	return nil
}
