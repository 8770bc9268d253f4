package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		SetLevel("info")
	})
	return &buf
}

func TestLogger_IncludesRequestID(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "rid-1")
	New(ctx).Infof("projects.create", "id=%s", "p1")

	assert.Equal(t, "[info] request_id=rid-1 operation=projects.create id=p1\n", buf.String())
}

func TestLogger_Levels(t *testing.T) {
	buf := captureLog(t)
	SetLevel("warn")

	l := New(context.Background())
	l.Infof("op", "hidden")
	l.Debugf("op", "hidden")
	l.Error("op", errors.New("boom"))

	assert.Equal(t, "[error] request_id=- operation=op error=boom\n", buf.String())
}

func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
