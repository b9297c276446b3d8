package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	fmt.Println("Mudra - Gesture Controlled Virtual Desktop")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "mudra.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Create the app from stored settings
	a, err := app.New(app.Config{
		Store:        st,
		CameraID:     settingInt(st, "camera_id", 0),
		MotionThresh: settingFloat(st, "motion_threshold", 1.0),
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	if err := a.Start(); err != nil {
		log.Printf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start the server
	cfg := server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
	}

	srv := server.New(cfg)

	addr := ":8080"
	go func() {
		fmt.Printf("Starting server on %s\n", addr)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// The tray owns the main thread until quit
	tr := tray.New()
	tr.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	tr.OnReset(func() {
		a.ResetDesktop()
	})
	tr.OnSettings(func() {
		log.Printf("Desktop available at http://localhost%s", addr)
	})
	tr.OnQuit(func() {
		a.Stop()
	})

	// Mirror the last recognized gesture into the tray menu
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			tr.SetLastGesture(a.LastGesture())
		}
	}()

	tr.Run()
}

// settingInt reads an integer setting, falling back to def when the key is
// missing or malformed.
func settingInt(st *store.Store, key string, def int) int {
	value, err := st.Settings().Get(key)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring malformed setting %s=%q", key, value)
		return def
	}
	return n
}

// settingFloat reads a float setting, falling back to def when the key is
// missing or malformed.
func settingFloat(st *store.Store, key string, def float64) float64 {
	value, err := st.Settings().Get(key)
	if err != nil {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Ignoring malformed setting %s=%q", key, value)
		return def
	}
	return f
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
