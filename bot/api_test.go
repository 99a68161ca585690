package bot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotModified(t *testing.T) {
	assert.True(t, isNotModified(errors.New("Bad Request: message is not modified")))
	assert.False(t, isNotModified(errors.New("Bad Request: chat not found")))
	assert.False(t, isNotModified(nil))
}
