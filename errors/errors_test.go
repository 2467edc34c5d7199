package errors

import (
	stderr "errors"
	"testing"

	"github.com/eaugeas/dstruct/logs"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorfDescription(t *testing.T) {
	err := Errorf(ErrorCodeIndexOutOfBounds, "index %d out of bounds", 7)

	assert.Equal(t, "index 7 out of bounds", err.Error())
	assert.Equal(t, ErrorCodeIndexOutOfBounds, err.ErrorCode)
}

func TestErrorLog(t *testing.T) {
	fields := logs.MapFields{}

	New(ErrorCodeUnknownOperator, "unknown operator: %").Log(fields)

	assert.Equal(t, logs.MapFields{
		"error_code":  ErrorCodeUnknownOperator,
		"description": "unknown operator: %",
	}, fields)
}

func TestCodeWrapped(t *testing.T) {
	err := pkgerrors.Wrap(New(ErrorCodeMalformedExpression, "missing operand"), "evaluate")

	code, ok := Code(err)
	assert.True(t, ok)
	assert.Equal(t, ErrorCodeMalformedExpression, code)
}

func TestCodeMissing(t *testing.T) {
	_, ok := Code(stderr.New("plain"))
	assert.False(t, ok)
}
