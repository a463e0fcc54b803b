package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLevel("info")
	})
}

func TestSetLevelFilters(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	SetLevel("error")
	Info("hidden message")
	Error("shown message")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "shown message")
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	SetLevel("chatty")
	Debug("debug message")
	Info("info message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
}

func TestConcurrentLoggingAndLevelChanges(t *testing.T) {
	restore(t)
	SetOutput(io.Discard)

	// Logging while the level changes must not race.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Info("message %d", j)
				Debug("message %d", j)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetLevel("debug")
				SetLevel("warn")
			}
		}()
	}
	wg.Wait()
}
