// monotime is a monotonic clock for timing frames
package monotime

import "time"

// epoch anchors the clock so readings come from the monotonic clock
// rather than the wall clock
var epoch = time.Now()

// Now returns the time since the process started
//
// The value is only meaningful when compared to another call to Now.
func Now() time.Duration {
	return time.Since(epoch)
}

// Since returns the time elapsed since start, a value returned by Now
func Since(start time.Duration) time.Duration {
	return Now() - start
}
