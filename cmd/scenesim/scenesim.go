package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kdouglass/obssim/pkg/instrument"
	"github.com/kdouglass/obssim/pkg/obssim"
	"github.com/kdouglass/obssim/pkg/sptype"
)

var (
	fConfig     string
	fOutDir     string
	fFOV        float64
	fNLambda    int
	fOversample int
	fClobber    bool
	fPreview    string
	fList       bool
)

func init() {
	flag.StringVar(&fConfig, "config", "", "instrument config YAML (default: built-in SimCam)")
	flag.StringVar(&fOutDir, "outdir", ".", "directory for output FITS files")
	flag.Float64Var(&fFOV, "fov", 5, "field of view in arcsec")
	flag.IntVar(&fNLambda, "nlambda", 3, "number of wavelengths per PSF calculation")
	flag.IntVar(&fOversample, "oversample", 0, "oversampling factor (0 = instrument default)")
	flag.BoolVar(&fClobber, "clobber", false, "overwrite existing output files")
	flag.StringVar(&fPreview, "preview", "", "also write a scene plot PNG to this path")
	flag.BoolVar(&fList, "list", false, "print known spectral types and exit")
	flag.Parse()

	log.Printf("scenesim starting\n")
}

func main() {
	if fList {
		for _, st := range sptype.List() {
			fmt.Println(st)
		}
		return
	}

	cfg := instrument.DefaultConfig()
	if fConfig != "" {
		var err error
		if cfg, err = instrument.LoadConfig(fConfig); err != nil {
			log.Fatal(err)
		}
	}

	cam, err := instrument.NewCamera(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// A demonstration scene: a central G star with two fainter
	// companions.
	scene := obssim.NewScene()
	mustAdd(scene, "G0V", "G0V star", 0.1, 0, obssim.ScalarNorm(1.0))
	mustAdd(scene, "K0V", "K0V star", 1.0, 45, obssim.ScalarNorm(0.4))
	mustAdd(scene, "M0V", "M0V star", 1.5, 245, obssim.ScalarNorm(0.3))

	if fPreview != "" {
		if err := scene.DisplayPNG(fPreview, 600); err != nil {
			log.Fatal(err)
		}
		log.Printf("Saved scene plot to %s", fPreview)
	}

	for _, filt := range []string{"F115W", "F210M", "F360M"} {
		if err := cam.SetFilter(filt); err != nil {
			log.Fatal(err)
		}

		outname := filepath.Join(fOutDir, fmt.Sprintf("test_scene_%s.fits", filt))
		if _, err := os.Stat(outname); err == nil && !fClobber {
			log.Printf("Skipping %s, already exists", outname)
			continue
		}

		_, err := scene.CalcImage(cam, obssim.CalcImageOptions{
			Outfile: outname,
			Clobber: fClobber,
			Rebin:   true,
			Calc: instrument.CalcOptions{
				FOVArcsec:  fFOV,
				NLambda:    fNLambda,
				Oversample: fOversample,
			},
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}

func mustAdd(s *obssim.Scene, st, name string, sep, pa float64, norm obssim.Normalization) {
	if err := s.AddPointSourceByType(st, name, sep, pa, norm); err != nil {
		log.Fatal(err)
	}
}
