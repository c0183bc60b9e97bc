package repl

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillang/quill/internal/config"
	"github.com/quillang/quill/internal/errs"
	"github.com/quillang/quill/internal/heap"
)

func TestNeedsMoreInputDetectsUnclosedForms(t *testing.T) {
	assert.True(t, needsMoreInput(errs.NewParser(1, 1, "unexpected EOF inside list")))
	assert.True(t, needsMoreInput(errs.NewParser(1, 1, "unterminated string literal")))
	assert.True(t, needsMoreInput(errs.NewParser(1, 1, "unexpected end of input")))
	assert.False(t, needsMoreInput(errs.NewParser(1, 1, "unexpected ')'")))
	assert.False(t, needsMoreInput(errors.New("some other error")))
}

func TestTryParseReportsIncompleteForDanglingQuote(t *testing.T) {
	r := &REPL{heap: heap.New(nil)}
	_, ok, complete, err := r.tryParse("'")
	assert.False(t, complete)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestPromptForContinuation(t *testing.T) {
	r := &REPL{cfg: config.Config{Prompt: "quill> "}}
	assert.Equal(t, "quill> ", r.promptFor(false))
	assert.Equal(t, "... ", r.promptFor(true))
}

func TestColorResultHonorsNoColor(t *testing.T) {
	r := &REPL{cfg: config.Config{NoColor: true}}
	assert.Equal(t, "42", r.colorResult("42"))
}

func TestPrintErrorHonorsNoColor(t *testing.T) {
	var errOut bytes.Buffer
	r := &REPL{cfg: config.Config{NoColor: true}, errOut: &errOut}
	r.printError(errors.New("boom"))
	assert.Equal(t, "boom\n", errOut.String())
}

func TestTryParseReportsIncompleteForUnclosedList(t *testing.T) {
	r := &REPL{heap: heap.New(nil)}
	_, ok, complete, err := r.tryParse("(+ 1 2")
	assert.False(t, complete)
	assert.False(t, ok)
	assert.NoError(t, err)
}
