// Package scheduler provides the periodic timer that drives alarm ticks.
//
// Schedule returns a Token owned by the caller; Cancel blocks until the loop
// has exited so no callback can observe state torn down after cancellation.
package scheduler
