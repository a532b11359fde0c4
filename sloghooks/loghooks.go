package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/jsontime"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RejectEvery uint64
	// Optional input redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr atomic.Uint64
}

var _ jsontime.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(s string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(s)
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) ConverterReplaced(typ string) {
	if h.l == nil {
		return
	}
	h.l.Debug("jsontime.converter_replaced", "type", typ)
}

func (h *Hooks) DecodeRejected(typ, input string, err error) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	// FormatError text quotes the input.
	var fe *jsontime.FormatError
	if errors.As(err, &fe) {
		err = fe.Err
	}
	h.l.Warn("jsontime.decode_rejected",
		"type", typ,
		"input", h.redact(input),
		"err", err)
}
