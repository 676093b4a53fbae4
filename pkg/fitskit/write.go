package fitskit

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"
)

// WriteTo persists the HDU list as a multi-extension FITS file. When
// clobber is false the write fails if the target already exists; when
// true an existing file is truncated. Plain whole-file overwrite, no
// atomic rename.
func (l *HDUList) WriteTo(path string, clobber bool) error {
	if l.Len() == 0 {
		return fmt.Errorf("writeto %s: empty HDU list", path)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if clobber {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	w, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", path, err)
	}
	defer w.Close()

	f, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("fits create '%s': %v", path, err)
	}
	defer f.Close()

	for _, hdu := range l.HDUs {
		if err := writeImageHDU(f, hdu); err != nil {
			return fmt.Errorf("fits write '%s': %v", path, err)
		}
	}

	return nil
}

func writeImageHDU(f *fitsio.File, hdu *HDU) error {
	im := fitsio.NewImage(-64, []int{hdu.Data.Dx(), hdu.Data.Dy()})
	defer im.Close()

	cards := make([]fitsio.Card, 0, len(hdu.Header.Cards)+len(hdu.Header.History))
	for _, c := range hdu.Header.Cards {
		cards = append(cards, fitsio.Card{Name: c.Key, Value: c.Value, Comment: c.Comment})
	}
	for _, s := range hdu.Header.History {
		cards = append(cards, fitsio.Card{Name: "HISTORY", Value: s})
	}
	if err := im.Header().Append(cards...); err != nil {
		return fmt.Errorf("header: %v", err)
	}

	data := hdu.Data.Values()
	if err := im.Write(&data); err != nil {
		return fmt.Errorf("pixels: %v", err)
	}
	return f.Write(im)
}
