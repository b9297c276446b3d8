package app

import (
	"fmt"
	"log"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/tracker"
)

// runPipeline is the main loop that processes frames from the camera.
// It manages the state transitions between idle and active modes based on
// motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (idleFPS=5)
// 2. On motion detected, switch to active mode (activeFPS=15)
// 3. Run hand detection
// 4. Feed the tracked index fingertip to the gesture recognizer
// 5. Apply cursor, swipe, push, pull, and circle gestures to the desktop
// 6. After 2s no motion, switch back to idle mode
func (a *App) runPipeline() {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			// Skip processing if tracking is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// Step 2: Hand detection, only while active
			var hands []tracker.HandLandmarks
			if activeMode && a.Detector() != nil {
				hands, err = a.Detector().Detect(frame)
				if err != nil {
					log.Printf("Error detecting hands: %v", err)
					hands = nil
				}
			}
			frame.Close()

			// Step 3: Gesture recognition and desktop update
			a.step(hands)
		}
	}
}

// step advances the desktop by one frame given the hands observed in it.
// It drives the cursor, runs gesture detection, and ticks the status timer.
// Split out from the camera loop so tests can script frames directly.
func (a *App) step(hands []tracker.HandLandmarks) {
	a.mu.Lock()
	defer a.mu.Unlock()

	width, height := a.desktop.Size()

	if len(hands) == 0 {
		// No hand this frame, but the cooldown and status timer still advance
		a.recognizer.Update(nil)
		a.desktop.Tick()
		return
	}

	hand := &hands[0]

	pos := hand.IndexTipPosition(width, height)
	pinching := hand.IsPinching(width, height, 0)
	fingersUp := hand.CountFingersUp()

	a.recognizer.Update(&pos)
	a.desktop.HandleCursor(pos.X, pos.Y, pinching)

	// Swipes need an open palm so pointing and dragging don't move windows
	if fingersUp == 5 {
		if dir, ok := a.recognizer.DetectSwipe(gesture.DirectionAny, 0); ok {
			a.desktop.HandleSwipe(dir)
			a.recordEvent("swipe", string(dir), pos.X, pos.Y)
		}
	}

	if a.recognizer.DetectPush(0) {
		a.desktop.HandlePush()
		a.recordEvent("push", "", pos.X, pos.Y)
	}

	if a.recognizer.DetectPull(0) {
		a.desktop.HandlePull()
		a.recordEvent("pull", "", pos.X, pos.Y)
	}

	if rotation, ok := a.recognizer.DetectCircle(0); ok {
		a.desktop.SetStatus(fmt.Sprintf("Circle gesture (%s)", rotation))
		a.recordEvent("circle", string(rotation), pos.X, pos.Y)
	}

	a.desktop.Tick()
}
