package obssim

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/kdouglass/obssim/pkg/fitskit"
	"github.com/kdouglass/obssim/pkg/instrument"
	"github.com/kdouglass/obssim/pkg/smath"
	"github.com/kdouglass/obssim/pkg/synphot"
)

// A PointingOffset displaces the whole field from the optical axis,
// modeling imperfect target acquisition. R in arcsec, PA in degrees.
type PointingOffset struct {
	R  float64
	PA float64
}

// CalcImageOptions configure one composite image calculation.
type CalcImageOptions struct {
	Outfile string // empty means don't persist
	Clobber bool   // overwrite an existing Outfile
	Rebin   bool   // attach a detector-sampled extension
	Noise   bool   // read/photon noise; rejected as unimplemented

	PA     float64         // position angle of +Y in the output image
	Offset *PointingOffset // nil means perfect acquisition

	Calc instrument.CalcOptions // passed through to each CalcPSF call
}

// CalcImage propagates every source in the scene through the
// instrument, scales each PSF to physical counts, and sums them into
// one composite. Sources are processed strictly in insertion order;
// any per-source failure aborts the whole computation.
func (s *Scene) CalcImage(inst instrument.Instrument, opt CalcImageOptions) (*fitskit.HDUList, error) {
	if len(s.Sources) == 0 {
		return nil, fmt.Errorf("calcimage: scene has no sources")
	}

	var sum *fitskit.HDUList
	imagePA := opt.PA

	for _, src := range s.Sources {
		log.Printf("Now propagating for %s", src.Name)

		offR, offTheta := resolveOffset(src, opt.Offset, imagePA)
		log.Printf("  post-offset & rot pos: %.3f'' at %.1f deg", offR, offTheta)

		calcOpt := opt.Calc
		calcOpt.Rebin = opt.Rebin
		psf, err := inst.CalcPSF(src.Spectrum, offR, offTheta, calcOpt)
		if err != nil {
			return nil, fmt.Errorf("calcimage: propagating %s: %v", src.Name, err)
		}

		flux, err := fluxScale(src, inst)
		if err != nil {
			return nil, err
		}
		psf.Primary().Data.Scale(flux)

		if sum == nil {
			// The accumulator is a copy of the first result, so the
			// running composite doesn't alias the per-source PSF.
			sum = psf.Copy()
			hdr := &sum.Primary().Header
			hdr.AddHistory("obssim : Creating an image simulation with multiple PSFs")
			hdr.Set("IMAGE_PA", imagePA, "PA of scene in simulated image")
			if opt.Offset == nil {
				hdr.Set("OFFSET_R", 0.0, "[arcsec] Offset of target center from FOV center")
				hdr.Set("OFFSETPA", 0.0, "[deg] Position angle of target offset from FOV center")
				hdr.AddHistory("Image is centered on target (perfect acquisition)")
			} else {
				hdr.Set("OFFSET_R", opt.Offset.R, "[arcsec] Offset of target center from FOV center")
				hdr.Set("OFFSETPA", opt.Offset.PA, "[deg] Position angle of target offset from FOV center")
				hdr.AddHistory(fmt.Sprintf("Image is offset %.2f arcsec at PA=%.1f from target", opt.Offset.R, opt.Offset.PA))
			}
		} else {
			if err := sum.Primary().Data.AddTo(psf.Primary().Data); err != nil {
				return nil, fmt.Errorf("calcimage: accumulating %s: %v", src.Name, err)
			}
		}

		hdr := &sum.Primary().Header
		hdr.AddHistory(fmt.Sprintf("Added source %s at r=%.3f, theta=%.2f", src.Name, src.Separation, src.PA))
		hdr.AddHistory(fmt.Sprintf("                with flux scale = %.3g", flux))
		hdr.AddHistory(fmt.Sprintf("                counts in image: %.3g", psf.Primary().Data.Sum()))
		hdr.AddHistory(fmt.Sprintf("                pos in image: %.3g'' at %.1f deg", offR, offTheta))
	}

	if opt.Noise {
		return nil, fmt.Errorf("%w: noise injection", ErrNotImplemented)
	}

	sum.Primary().Header.Set("NSOURCES", len(s.Sources), "Number of point sources in sim")

	if oversample, ok := sum.Primary().Header.IntValue("DET_SAMP"); opt.Rebin && ok && oversample > 1 {
		// Any detector-sampled plane attached so far only reflects the
		// last single-source PSF; regenerate from the summed image.
		for sum.Len() > 1 {
			sum.Pop()
		}
		log.Printf(" Downsampling summed image to detector pixel scale.")
		det, err := instrument.RebinToDetector(sum.Primary())
		if err != nil {
			return nil, fmt.Errorf("calcimage: rebinning composite: %v", err)
		}
		sum.Append(det)
	}

	if opt.Outfile != "" {
		sum.Primary().Header.Set("FILENAME", filepath.Base(opt.Outfile), "Name of this file")
		if err := sum.WriteTo(opt.Outfile, opt.Clobber); err != nil {
			return nil, fmt.Errorf("calcimage: %v", err)
		}
		log.Printf("Saved image to %s", opt.Outfile)
	}

	return sum, nil
}

// resolveOffset turns a source's sky position, plus any whole-field
// pointing offset, into the (r, theta) the instrument should place the
// PSF at, rotated into the image frame. Supplying a zero pointing
// offset resolves identically to supplying none.
func resolveOffset(src Source, offset *PointingOffset, imagePA float64) (float64, float64) {
	if offset == nil {
		return src.Separation, smath.NormalizeDeg(src.PA - imagePA)
	}
	r, pa := smath.CombinePolar(src.Separation, src.PA, offset.R, offset.PA)
	return r, smath.NormalizeDeg(pa - imagePA)
}

// fluxScale figures out the multiplicative factor that takes a
// unit-input-intensity PSF to physical counts for this source.
func fluxScale(src Source, inst instrument.Instrument) (float64, error) {
	switch src.Norm.Mode {
	case NormByScalar:
		return src.Norm.Factor, nil

	case NormBySpectrum:
		if src.Spectrum == nil {
			return 0, fmt.Errorf("calcimage: source %s has no spectrum to normalize by", src.Name)
		}
		bp, err := inst.Bandpass()
		if err != nil {
			return 0, fmt.Errorf("calcimage: bandpass for %s: %v", src.Name, err)
		}
		flux, err := synphot.NewObservation(src.Spectrum, bp).EffstimJy()
		if err != nil {
			return 0, fmt.Errorf("calcimage: effstim for %s: %v", src.Name, err)
		}
		return flux, nil

	default:
		return 0, fmt.Errorf("%w: normalization mode %d for %s", ErrNotImplemented, src.Norm.Mode, src.Name)
	}
}
