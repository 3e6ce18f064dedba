package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentSelected(t *testing.T) {
	msg := DocumentSelected{ID: "doc-1"}
	assert.Equal(t, "doc-1", msg.ID)
}

func TestOutlineJump(t *testing.T) {
	msg := OutlineJump{HeadingID: "heading-intro-0"}
	assert.Equal(t, "heading-intro-0", msg.HeadingID)
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}
	assert.Equal(t, err, msg.Err)
}
