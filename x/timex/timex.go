package timex

import "time"

// Ms converts a millisecond count to a time.Duration.
func Ms(n uint32) time.Duration { return time.Duration(n) * time.Millisecond }
