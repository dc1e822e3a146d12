package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatResult renders the two-line result shown in each output region:
//
//	Fibonacci(<n>) = <result>
//	Calculation time: <ms> ms
func FormatResult(n, result int64, elapsed time.Duration) string {
	return fmt.Sprintf("Fibonacci(%d) = %d\nCalculation time: %s ms", n, result, Millis(elapsed))
}

// FormatNumberString inserts thousands separators into a decimal string.
// A leading minus sign is preserved.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	if neg {
		b.WriteByte('-')
	}
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatCount formats an unsigned counter with thousands separators.
func FormatCount(v uint64) string {
	return FormatNumberString(strconv.FormatUint(v, 10))
}
