// Copyright 2024 Borealis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

func init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that writes human-readable log lines
// with the level label colored through the terminal when it supports
// color. It is installed as the default slog handler when this
// package is imported.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

// NewHandler returns a [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(LevelColor(r.Level, r.Level.String()))
	b.WriteString(" ")
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		h.writeAttr(b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		h.writeAttr(b, a)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value.Resolve())
}

// WithAttrs qualifies the keys with the open group so that later
// record attrs and earlier bound attrs keep their own prefixes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}
