package intersect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/newton"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, Found, classify(nil))
	assert.Equal(t, ZeroDerivative, classify(fmt.Errorf("x=1: %w", newton.ErrZeroDerivative)))
	assert.Equal(t, NonFinite, classify(fmt.Errorf("x=1: %w", newton.ErrNonFinite)))
	assert.Equal(t, Failed, classify(errors.New("other")))
	assert.Equal(t, "failed", Failed.String())
}
