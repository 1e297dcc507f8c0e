package ledger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// callError mimics the error shape geth returns for a reverted eth_call
type callError struct {
	msg  string
	data interface{}
}

func (e *callError) Error() string          { return e.msg }
func (e *callError) ErrorData() interface{} { return e.data }

func TestIsRevert(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		revert bool
	}{
		{
			name:   "geth revert with data",
			err:    &callError{msg: "execution reverted: unknown item", data: "0x08c379a0"},
			revert: true,
		},
		{
			name:   "wrapped revert with data",
			err:    fmt.Errorf("call failed: %w", &callError{msg: "execution reverted", data: "0x"}),
			revert: true,
		},
		{
			name:   "revert reason in message only",
			err:    errors.New("execution reverted: item does not exist"),
			revert: true,
		},
		{
			name:   "transport failure",
			err:    errors.New("dial tcp 127.0.0.1:8545: connection refused"),
			revert: false,
		},
		{
			name:   "context timeout",
			err:    errors.New("context deadline exceeded"),
			revert: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.revert, isRevert(tc.err))
		})
	}
}
