// Package app provides the main application logic for the Mudra virtual desktop.
package app

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/desktop"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tracker"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store         *store.Store
	CameraID      int
	MotionThresh  float64
	HistorySize   int
	DesktopWidth  int
	DesktopHeight int
}

// App owns the camera, the hand detector, the gesture recognizer, and the
// virtual desktop, and runs the pipeline connecting them. Desktop state is
// mutated only under the App mutex; readers get detached snapshots.
type App struct {
	config      Config
	camera      capture.Camera
	motion      *capture.MotionDetector
	detector    tracker.Detector
	recognizer  *gesture.Recognizer
	desktop     *desktop.Desktop
	enabled     bool
	lastGesture string
	mu          sync.RWMutex
	stopCh      chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) (*App, error) {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	width := config.DesktopWidth
	if width <= 0 {
		width = desktop.DefaultWidth
	}
	height := config.DesktopHeight
	if height <= 0 {
		height = desktop.DefaultHeight
	}

	d, err := desktop.New(width, height)
	if err != nil {
		return nil, err
	}

	recognizer, err := gesture.NewRecognizer(config.HistorySize)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		recognizer: recognizer,
		desktop:    d,
		enabled:    true,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := tracker.NewMediaPipeDetector(tracker.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand tracking")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = tracker.NewMockDetector()
	}

	return a, nil
}

// SetEnabled enables or disables gesture tracking.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture tracking is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d tracker.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Snapshot returns a detached copy of the current desktop state.
func (a *App) Snapshot() desktop.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.desktop.Snapshot()
}

// ResetDesktop restores the desktop to its initial window layout.
func (a *App) ResetDesktop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.desktop.Reset()
	a.recognizer.Reset()
}

// LastGesture returns a short description of the most recent recognized gesture.
func (a *App) LastGesture() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastGesture
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Detection pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() tracker.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// recordEvent appends a recognized gesture to the event log. Called with
// a.mu held.
func (a *App) recordEvent(kind, detail string, x, y int) {
	a.lastGesture = kind
	if detail != "" {
		a.lastGesture = kind + " " + detail
	}

	if a.config.Store == nil {
		return
	}

	event := &store.GestureEvent{
		ID:     uuid.New().String(),
		Kind:   kind,
		Detail: detail,
		X:      x,
		Y:      y,
	}
	if err := a.config.Store.Events().Create(event); err != nil {
		log.Printf("Failed to record gesture event: %v", err)
	}
}
