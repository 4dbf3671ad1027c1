// Package terminal hosts the game on a tcell screen.
//
// Terminals report key presses and auto-repeats but no releases, so arrow
// keys are fed to an input.Tracker that keeps them held for a short window
// after the last event. Mouse clicks map back to world pixels for the pause
// menu volume slider.
package terminal
