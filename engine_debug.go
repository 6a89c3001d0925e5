package regioncurves

import "fmt"

// diagnosticWindowName returns the generated window title a caller should
// use to display diagnostic, without opening any window itself: per Sec 5
// the engine only ever produces a renderable gocv.Mat plus this name, never
// a blocking keypress wait. Actually opening a window and waiting on a
// keypress is the excluded demo driver's job, not the engine's.
func diagnosticWindowName(cfg Config, windowIndex int) string {
	return fmt.Sprintf("%s-%d", cfg.ImagePipeline.DebugWindowName, windowIndex)
}
