package imagepipe

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// PixelContour is an ordered, open-by-construction sequence of integer
// pixel coordinates discovered by the contour extractor.
type PixelContour []image.Point

// Result is the output of Run: the pixel contours found in the final
// binary image, plus a renderable diagnostic image with those contours
// drawn over the source.
type Result struct {
	Contours   []PixelContour
	Diagnostic gocv.Mat
}

// Run executes the image pipeline stage (Sec 4.1): grayscale conversion,
// optional inversion, optional dilation, optional thresholding, optional
// Canny, then contour extraction. The caller owns the returned
// Result.Diagnostic and must Close it.
func Run(img gocv.Mat, cfg Config, rng *rand.Rand, logger *logrus.Logger) (Result, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if img.Empty() {
		return Result{}, fmt.Errorf("imagepipe: input image is empty")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if err := gocv.CvtColor(img, &gray, gocv.ColorBGRToGray); err != nil {
		return Result{}, fmt.Errorf("imagepipe: grayscale conversion: %w", err)
	}

	working := gray.Clone()
	defer working.Close()

	if cfg.InvertImage {
		inverted := gocv.NewMat()
		gocv.BitwiseNot(working, &inverted)
		working.Close()
		working = inverted
	}

	if cfg.Dilation.Enable {
		dilated, err := dilate(working, cfg.Dilation)
		if err != nil {
			return Result{}, err
		}
		working.Close()
		working = dilated
	}

	if cfg.Threshold.Enable {
		thresholded, err := threshold(working, cfg.Threshold)
		if err != nil {
			return Result{}, err
		}
		working.Close()
		working = thresholded
	}

	if cfg.Canny.Enable {
		edges := gocv.NewMat()
		gocv.CannyWithParams(
			working, &edges,
			float32(cfg.Canny.LowerThreshold), float32(cfg.Canny.UpperThreshold),
			cfg.Canny.EffectiveAperture(), false,
		)
		working.Close()
		working = edges
	}

	mode, err := retrievalMode(cfg.Contour.Mode)
	if err != nil {
		return Result{}, err
	}
	method := approximationMode(cfg.Contour.Method)

	contoursVec := gocv.FindContours(working, mode, method)
	defer contoursVec.Close()

	raw := contoursVec.ToPoints()
	contours := make([]PixelContour, len(raw))
	for i, c := range raw {
		contours[i] = PixelContour(c)
	}

	diagnostic := img.Clone()
	drawDiagnostic(&diagnostic, contoursVec, rng)

	logger.WithFields(logrus.Fields{
		"contours": len(contours),
	}).Debug("image pipeline extracted contours")

	return Result{Contours: contours, Diagnostic: diagnostic}, nil
}

func dilate(src gocv.Mat, cfg DilationConfig) (gocv.Mat, error) {
	shape, err := morphShape(cfg.Elem)
	if err != nil {
		return gocv.Mat{}, err
	}
	size := 2*cfg.KernelSize + 1
	kernel := gocv.GetStructuringElement(shape, image.Pt(size, size))
	defer kernel.Close()

	out := gocv.NewMat()
	gocv.Dilate(src, &out, kernel)
	return out, nil
}

func threshold(src gocv.Mat, cfg ThresholdConfig) (gocv.Mat, error) {
	typ, err := thresholdType(cfg.Type)
	if err != nil {
		return gocv.Mat{}, err
	}
	out := gocv.NewMat()
	gocv.Threshold(src, &out, float32(cfg.Value), float32(cfg.MaxBinaryValue), typ)
	return out, nil
}

func morphShape(e MorphElem) (gocv.MorphShape, error) {
	switch e {
	case ElemRect:
		return gocv.MorphRect, nil
	case ElemCross:
		return gocv.MorphCross, nil
	case ElemEllipse:
		return gocv.MorphEllipse, nil
	default:
		return 0, fmt.Errorf("imagepipe: unknown dilation element %d", int(e))
	}
}

func thresholdType(t ThresholdType) (gocv.ThresholdType, error) {
	switch t {
	case ThresholdBinary:
		return gocv.ThresholdBinary, nil
	case ThresholdBinaryInverted:
		return gocv.ThresholdBinaryInv, nil
	case ThresholdTrunc:
		return gocv.ThresholdTrunc, nil
	case ThresholdToZero:
		return gocv.ThresholdToZero, nil
	case ThresholdToZeroInverted:
		return gocv.ThresholdToZeroInv, nil
	default:
		return 0, fmt.Errorf("imagepipe: unknown threshold type %d", int(t))
	}
}

func retrievalMode(m ContourMode) (gocv.RetrievalMode, error) {
	switch m {
	case ContourExternal:
		return gocv.RetrievalExternal, nil
	case ContourList:
		return gocv.RetrievalList, nil
	case ContourCComp:
		return gocv.RetrievalCComp, nil
	case ContourTree:
		return gocv.RetrievalTree, nil
	default:
		return 0, fmt.Errorf("imagepipe: unknown contour mode %d", int(m))
	}
}

func approximationMode(m ContourMethod) gocv.ContourApproximationMode {
	switch m {
	case ContourApproxNone:
		return gocv.ChainApproxNone
	case ContourApproxSimple:
		return gocv.ChainApproxSimple
	case ContourApproxTC89L1:
		return gocv.ChainApproxTC89L1
	case ContourApproxTC89KCOS:
		return gocv.ChainApproxTC89KCOS
	default:
		return gocv.ChainApproxSimple
	}
}

// drawDiagnostic renders every contour onto diagnostic with a deterministic
// per-contour color drawn from rng, so repeated runs against identical
// input produce bit-identical diagnostics (Sec 9: no package-level random
// generator).
func drawDiagnostic(diagnostic *gocv.Mat, contours gocv.PointsVector, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	for i := 0; i < contours.Size(); i++ {
		c := color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		}
		gocv.DrawContours(diagnostic, contours, i, c, 2)
	}
}
