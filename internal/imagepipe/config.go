// Package imagepipe implements the image-to-pixel-contour stage: grayscale
// conversion, optional inversion, optional morphological dilation, optional
// thresholding, optional Canny edge detection, and contour extraction. It is
// built directly on gocv.io/x/gocv, the same OpenCV binding the reference
// codebase's morphology and thresholding algorithms use.
package imagepipe

import "fmt"

// MorphElem selects the shape of the structuring element used for dilation.
type MorphElem int

const (
	ElemRect MorphElem = iota
	ElemCross
	ElemEllipse
)

func (e MorphElem) String() string {
	switch e {
	case ElemRect:
		return "rect"
	case ElemCross:
		return "cross"
	case ElemEllipse:
		return "ellipse"
	default:
		return fmt.Sprintf("MorphElem(%d)", int(e))
	}
}

// DilationConfig controls the optional morphological dilation step. The
// structuring element is (2*KernelSize+1) x (2*KernelSize+1), anchored at
// its center.
type DilationConfig struct {
	Enable     bool
	KernelSize int
	Elem       MorphElem
}

// ThresholdType selects the OpenCV threshold operation applied.
type ThresholdType int

const (
	ThresholdBinary ThresholdType = iota
	ThresholdBinaryInverted
	ThresholdTrunc
	ThresholdToZero
	ThresholdToZeroInverted
)

func (t ThresholdType) String() string {
	switch t {
	case ThresholdBinary:
		return "binary"
	case ThresholdBinaryInverted:
		return "binary-inverted"
	case ThresholdTrunc:
		return "trunc"
	case ThresholdToZero:
		return "tozero"
	case ThresholdToZeroInverted:
		return "tozero-inverted"
	default:
		return fmt.Sprintf("ThresholdType(%d)", int(t))
	}
}

// ThresholdConfig controls the optional thresholding step.
type ThresholdConfig struct {
	Enable         bool
	Value          float64
	Type           ThresholdType
	MaxBinaryValue float64
}

// CannyConfig controls the optional Canny edge-detection step. ApertureSize
// is stored as k; the effective Sobel aperture passed to OpenCV is
// max(3, 2k+1).
type CannyConfig struct {
	Enable          bool
	LowerThreshold  float64
	UpperThreshold  float64
	ApertureSize    int
}

// EffectiveAperture returns the Sobel aperture size actually passed to
// OpenCV's Canny implementation.
func (c CannyConfig) EffectiveAperture() int {
	k := 2*c.ApertureSize + 1
	if k < 3 {
		return 3
	}
	return k
}

// ContourMode selects OpenCV's contour retrieval policy.
type ContourMode int

const (
	ContourExternal ContourMode = iota
	ContourList
	ContourCComp
	ContourTree
)

func (m ContourMode) String() string {
	switch m {
	case ContourExternal:
		return "external"
	case ContourList:
		return "list"
	case ContourCComp:
		return "ccomp"
	case ContourTree:
		return "tree"
	default:
		return fmt.Sprintf("ContourMode(%d)", int(m))
	}
}

// ContourMethod selects OpenCV's contour approximation method.
type ContourMethod int

const (
	ContourApproxNone ContourMethod = iota
	ContourApproxSimple
	ContourApproxTC89L1
	ContourApproxTC89KCOS
)

func (m ContourMethod) String() string {
	switch m {
	case ContourApproxNone:
		return "none"
	case ContourApproxSimple:
		return "simple"
	case ContourApproxTC89L1:
		return "tc89-l1"
	case ContourApproxTC89KCOS:
		return "tc89-kcos"
	default:
		return fmt.Sprintf("ContourMethod(%d)", int(m))
	}
}

// ContourConfig controls contour extraction from the final binary image.
type ContourConfig struct {
	Mode   ContourMode
	Method ContourMethod
}

// Config is the flat opencv_cfg record from the component specification.
type Config struct {
	InvertImage bool
	Dilation    DilationConfig
	Threshold   ThresholdConfig
	Canny       CannyConfig
	Contour     ContourConfig

	// DebugWindowName is used by the engine to build the per-bundle window
	// name attached to every diagnostic image (diagnostic gocv.Mats are
	// always produced, regardless of debug mode -- Sec 3/10.3). DebugMode
	// Enable and DebugWaitKey are carried for record parity with the
	// original opencv_cfg and are not read by the engine at all: whether
	// to actually open a window, and how long to wait on it, is entirely
	// the caller's decision, since the engine itself never opens a window
	// or calls gocv's HighGUI WaitKey.
	DebugModeEnable bool
	DebugWindowName string
	DebugWaitKey    int
}

// DefaultConfig returns a Config with every optional stage disabled and
// conservative defaults for the values that would apply if enabled.
func DefaultConfig() Config {
	return Config{
		Dilation: DilationConfig{
			Enable:     false,
			KernelSize: 1,
			Elem:       ElemRect,
		},
		Threshold: ThresholdConfig{
			Enable:         false,
			Value:          127,
			Type:           ThresholdBinary,
			MaxBinaryValue: 255,
		},
		Canny: CannyConfig{
			Enable:         false,
			LowerThreshold: 50,
			UpperThreshold: 150,
			ApertureSize:   1,
		},
		Contour: ContourConfig{
			Mode:   ContourExternal,
			Method: ContourApproxSimple,
		},
		DebugModeEnable: false,
		DebugWindowName: "region-curves",
		DebugWaitKey:    0,
	}
}

// Validate rejects configurations that name unknown enum values or
// non-positive sizes, per the component specification's "Configuration
// invalid" error kind.
func (c Config) Validate() error {
	if c.Dilation.Enable {
		if c.Dilation.KernelSize <= 0 {
			return fmt.Errorf("imagepipe: dilation kernel_size must be > 0, got %d", c.Dilation.KernelSize)
		}
		switch c.Dilation.Elem {
		case ElemRect, ElemCross, ElemEllipse:
		default:
			return fmt.Errorf("imagepipe: unknown dilation element %d", int(c.Dilation.Elem))
		}
	}
	if c.Threshold.Enable {
		switch c.Threshold.Type {
		case ThresholdBinary, ThresholdBinaryInverted, ThresholdTrunc, ThresholdToZero, ThresholdToZeroInverted:
		default:
			return fmt.Errorf("imagepipe: unknown threshold type %d", int(c.Threshold.Type))
		}
	}
	if c.Canny.Enable && c.Canny.ApertureSize < 0 {
		return fmt.Errorf("imagepipe: canny aperture_size must be >= 0, got %d", c.Canny.ApertureSize)
	}
	switch c.Contour.Mode {
	case ContourExternal, ContourList, ContourCComp, ContourTree:
	default:
		return fmt.Errorf("imagepipe: unknown contour mode %d", int(c.Contour.Mode))
	}
	switch c.Contour.Method {
	case ContourApproxNone, ContourApproxSimple, ContourApproxTC89L1, ContourApproxTC89KCOS:
	default:
		return fmt.Errorf("imagepipe: unknown contour method %d", int(c.Contour.Method))
	}
	return nil
}
