// Package fitskit holds a small in-memory model of a multi-extension
// FITS image - ordered header cards, a free-text history log, and 2D
// float64 pixel data - plus persistence via astrogo/fitsio.
package fitskit

// A Card is a single keyword record. Value is one of string, int,
// float64 or bool.
type Card struct {
	Key     string
	Value   interface{}
	Comment string
}

// A Header is an ordered card list plus a chronological history log.
type Header struct {
	Cards   []Card
	History []string
}

// Set updates the card with the given key in place, or appends a new
// one, preserving card order.
func (h *Header) Set(key string, value interface{}, comment string) {
	for i := range h.Cards {
		if h.Cards[i].Key == key {
			h.Cards[i].Value = value
			h.Cards[i].Comment = comment
			return
		}
	}
	h.Cards = append(h.Cards, Card{Key: key, Value: value, Comment: comment})
}

func (h *Header) Get(key string) (interface{}, bool) {
	for _, c := range h.Cards {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

func (h *Header) IntValue(key string) (int, bool) {
	v, ok := h.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func (h *Header) FloatValue(key string) (float64, bool) {
	v, ok := h.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// AddHistory appends a free-text provenance line. Order of additions
// is preserved in the output file.
func (h *Header) AddHistory(s string) {
	h.History = append(h.History, s)
}

func (h *Header) Copy() Header {
	h2 := Header{
		Cards:   make([]Card, len(h.Cards)),
		History: make([]string, len(h.History)),
	}
	copy(h2.Cards, h.Cards)
	copy(h2.History, h.History)
	return h2
}
