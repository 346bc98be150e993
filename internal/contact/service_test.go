package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSender struct {
	calls int
	err   error
}

func (f *fakeSender) Submit(ctx context.Context, form Form) error {
	f.calls++
	return f.err
}

func TestHandleInvalidFormSkipsSubmission(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, zap.NewNop())

	form := Form{Name: "Ann", Message: "Hi"}
	res := svc.Handle(context.Background(), form)

	assert.Equal(t, 0, sender.calls)
	assert.Equal(t, ValidationErrors{"email": "Email is required"}, res.Errors)
	assert.Equal(t, form, res.Form)
	assert.False(t, res.Sent)
	assert.False(t, res.Failed)
}

func TestHandleFailureKeepsFields(t *testing.T) {
	sender := &fakeSender{err: errors.Join(ErrSubmission, errors.New("boom"))}
	svc := NewService(sender, nil)

	form := Form{Name: "Ann", Email: "ann@farm.com", Message: "Hi"}
	res := svc.Handle(context.Background(), form)

	assert.Equal(t, 1, sender.calls)
	assert.True(t, res.Failed)
	assert.False(t, res.Sent)
	assert.Equal(t, form, res.Form)
}

func TestHandleSuccessClearsFields(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, zap.NewNop())

	res := svc.Handle(context.Background(), Form{Name: "Ann", Email: "ann@farm.com", Message: "Hi"})

	assert.Equal(t, 1, sender.calls)
	assert.True(t, res.Sent)
	assert.Equal(t, Form{}, res.Form)
	assert.Empty(t, res.Errors)
}
