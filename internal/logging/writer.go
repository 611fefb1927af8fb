package logging

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/go-logfmt/logfmt"
)

// Redacted replaces the value of sensitive keys.
const Redacted = "[redacted]"

var sensitiveKeys = map[string]bool{
	"authorization": true,
	"apikey":        true,
	"api_key":       true,
	"password":      true,
	"access_token":  true,
	"refresh_token": true,
	"bearer_token":  true,
	"bearertoken":   true,
	"client_secret": true,
}

type writer struct {
	mu sync.Mutex
	w  io.Writer
}

// Write re-encodes logfmt records, masking the values of credential keys.
// Input that is not logfmt is passed through unchanged.
func (w *writer) Write(p []byte) (int, error) {
	var buf bytes.Buffer
	enc := logfmt.NewEncoder(&buf)
	d := logfmt.NewDecoder(bytes.NewReader(p))
	for d.ScanRecord() {
		for d.ScanKeyval() {
			key := string(d.Key())
			value := string(d.Value())
			if sensitiveKeys[strings.ToLower(key)] && value != "" {
				value = Redacted
			}
			if err := enc.EncodeKeyval(key, value); err != nil {
				return w.passthrough(p)
			}
		}
		if err := enc.EndRecord(); err != nil {
			return w.passthrough(p)
		}
	}
	if d.Err() != nil {
		return w.passthrough(p)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *writer) passthrough(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// NewWriter returns a thread-safe writer that masks credentials in logfmt
// records before writing them to w.
func NewWriter(w io.Writer) io.Writer {
	return &writer{w: w}
}
