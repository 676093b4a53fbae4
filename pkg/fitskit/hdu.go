package fitskit

import (
	"fmt"

	"github.com/kdouglass/obssim/pkg/smath"
)

// An HDU is one image extension: pixel data plus its header.
type HDU struct {
	Header Header
	Data   smath.Grid
}

func (h *HDU) Copy() *HDU {
	return &HDU{
		Header: h.Header.Copy(),
		Data:   h.Data.Copy(),
	}
}

// An HDUList is an ordered list of image extensions. The first entry
// is the primary HDU.
type HDUList struct {
	HDUs []*HDU
}

func NewHDUList(hdus ...*HDU) *HDUList {
	return &HDUList{HDUs: hdus}
}

// Primary returns the first HDU. Nil when the list is empty.
func (l *HDUList) Primary() *HDU {
	if len(l.HDUs) == 0 {
		return nil
	}
	return l.HDUs[0]
}

func (l *HDUList) Len() int { return len(l.HDUs) }

func (l *HDUList) Append(h *HDU) {
	l.HDUs = append(l.HDUs, h)
}

// Pop removes and returns the last HDU.
func (l *HDUList) Pop() *HDU {
	if len(l.HDUs) == 0 {
		return nil
	}
	h := l.HDUs[len(l.HDUs)-1]
	l.HDUs = l.HDUs[:len(l.HDUs)-1]
	return h
}

// Copy deep-copies the list, its headers and its pixel data.
func (l *HDUList) Copy() *HDUList {
	l2 := &HDUList{HDUs: make([]*HDU, len(l.HDUs))}
	for i, h := range l.HDUs {
		l2.HDUs[i] = h.Copy()
	}
	return l2
}

func (l *HDUList) String() string {
	str := "HDUList[\n"
	for _, h := range l.HDUs {
		name, _ := h.Header.Get("EXTNAME")
		str += fmt.Sprintf("  %v %s\n", name, h.Data.Stats())
	}
	return str + "]\n"
}
