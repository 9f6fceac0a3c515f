// Package terminal owns the tcell screen lifecycle and turns its event stream
// into game intents.
//
// Events are pumped on a background goroutine into a bounded channel that the
// game loop drains once per tick; a full channel drops events rather than
// blocking the pump. The screen is registered as the crash reset target so a
// panic anywhere restores the user's terminal before the stack is printed.
package terminal
