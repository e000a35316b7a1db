//go:build !opencl

package clblast_test

import (
	"testing"

	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"github.com/stretchr/testify/assert"
)

func TestNewWithoutNativeLibrary(t *testing.T) {
	lib, err := clblast.New()
	assert.ErrorIs(t, err, native.ErrNotBuilt)
	assert.Nil(t, lib)
}
