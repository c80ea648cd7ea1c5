package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"certpoints/internal/model"
)

func TestRollbarLogger_PrintsWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := Discard()
	l.std = log.New(&buf, "", 0)

	l.Warn("scoring fell back", errors.New("catalog down"))
	assert.Contains(t, buf.String(), "[WARN] scoring fell back")
	assert.Contains(t, buf.String(), "catalog down")
}

func TestRollbarLogger_PrepareDropsUser(t *testing.T) {
	l := Discard()
	usr := model.User{ID: "u1", Name: "Asha", Email: "asha@example.com"}
	extra := map[string]interface{}{"certificate": "c1"}

	got := l.prepare("upload rejected", []interface{}{usr, extra, &usr})
	assert.Equal(t, []interface{}{"upload rejected", extra}, got)
}
