package infra

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("[infra] sentinel")

func TestWrapErrorStack(t *testing.T) {
	err := WrapErrorStack(errSentinel)
	require.Error(t, err)
	require.True(t, errors.Is(err, errSentinel))
	require.Equal(t, errSentinel.Error(), err.Error())

	require.Nil(t, WrapErrorStack(nil))
}

func TestWrapErrorStackWithMessage(t *testing.T) {
	err := WrapErrorStackWithMessage(errSentinel, "lookup of key 42")
	require.Error(t, err)
	require.True(t, errors.Is(err, errSentinel))
	require.Equal(t, "lookup of key 42: [infra] sentinel", err.Error())

	require.Nil(t, WrapErrorStackWithMessage(nil, "whatever"))
}

func TestErrorStackVerboseFormat(t *testing.T) {
	err := WrapErrorStack(errSentinel)
	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, errSentinel.Error()))
	require.Contains(t, verbose, "err_stack_test.go")

	plain := fmt.Sprintf("%s", err)
	require.Equal(t, errSentinel.Error(), plain)
}
