package httpdate

import (
	"testing"
	"time"
)

// Sun, 06 Nov 1994 08:49:37 GMT
const rfcExampleInstant int64 = 784111777

// TestFormat tests the preferred RFC 1123 GMT production
func TestFormat(t *testing.T) {
	want := "Sun, 06 Nov 1994 08:49:37 GMT"
	if got := Format(rfcExampleInstant); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	// Epoch renders, it is not a failure
	if got := Format(0); got != "Thu, 01 Jan 1970 00:00:00 GMT" {
		t.Errorf("Unexpected epoch rendering: %q", got)
	}
}

// TestAppendFormat tests the append variant against Format
func TestAppendFormat(t *testing.T) {
	dst := AppendFormat([]byte("Date: "), rfcExampleInstant)
	want := "Date: " + Format(rfcExampleInstant)
	if string(dst) != want {
		t.Errorf("Expected %q, got %q", want, dst)
	}
}

// TestParseAllGrammars tests the three accepted date forms
func TestParseAllGrammars(t *testing.T) {
	cases := []string{
		"Sun, 06 Nov 1994 08:49:37 GMT", // RFC 1123, preferred
		"Sunday, 06-Nov-94 08:49:37 GMT", // RFC 850, obsolete
		"Sun Nov  6 08:49:37 1994",       // ANSI C asctime
	}

	for _, c := range cases {
		instant, ok := Parse(c)
		if !ok {
			t.Errorf("Parse(%q) should succeed", c)
			continue
		}

		u := time.Unix(instant, 0).UTC()
		if u.Year() != 1994 || u.Month() != time.November || u.Day() != 6 {
			t.Errorf("Parse(%q) wrong date: %v", c, u)
		}
		if u.Hour() != 8 || u.Minute() != 49 || u.Second() != 37 {
			t.Errorf("Parse(%q) wrong time: %v", c, u)
		}
		if instant != rfcExampleInstant {
			t.Errorf("Parse(%q) = %d, want %d", c, instant, rfcExampleInstant)
		}
	}
}

// TestParseRejects tests the explicit failure result
func TestParseRejects(t *testing.T) {
	cases := []string{
		"",
		"not a date",
		"Sun, 06 Nov 1994 08:49:37",          // missing zone
		"Sun, 06 Nov 1994 08:49:37 GMT extra", // trailing garbage
		"06 Nov 1994 08:49:37 GMT",            // missing weekday
	}

	for _, c := range cases {
		if instant, ok := Parse(c); ok || instant != 0 {
			t.Errorf("Parse(%q) = (%d, %v), want (0, false)", c, instant, ok)
		}
	}
}

// TestParseInstantSentinel tests the zero-sentinel wrapper
func TestParseInstantSentinel(t *testing.T) {
	if got := ParseInstant("junk"); got != 0 {
		t.Errorf("Expected sentinel 0, got %d", got)
	}
	if got := ParseInstant("Sun, 06 Nov 1994 08:49:37 GMT"); got != rfcExampleInstant {
		t.Errorf("Expected %d, got %d", rfcExampleInstant, got)
	}
}

// TestRoundTrip tests Format then Parse over assorted instants
func TestRoundTrip(t *testing.T) {
	instants := []int64{0, 1, rfcExampleInstant, 1234567890, 2147483647}

	for _, want := range instants {
		text := Format(want)
		got, ok := Parse(text)
		if !ok {
			t.Errorf("Parse(Format(%d)) = %q should round-trip", want, text)
			continue
		}
		if got != want {
			t.Errorf("Round-trip of %d gave %d via %q", want, got, text)
		}
	}
}

// TestNow tests that the clock output parses back
func TestNow(t *testing.T) {
	before := time.Now().Unix()
	instant, ok := Parse(Now())
	after := time.Now().Unix()

	if !ok {
		t.Fatal("Now() must produce a parseable date")
	}
	if instant < before || instant > after {
		t.Errorf("Now() instant %d outside [%d, %d]", instant, before, after)
	}
}

// BenchmarkFormat benchmarks preferred-form production
func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Format(rfcExampleInstant)
	}
}

// BenchmarkAppendFormat benchmarks allocation-free production
func BenchmarkAppendFormat(b *testing.B) {
	dst := make([]byte, 0, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = AppendFormat(dst[:0], rfcExampleInstant)
	}
}

// BenchmarkParsePreferred benchmarks the first-grammar fast path
func BenchmarkParsePreferred(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("Sun, 06 Nov 1994 08:49:37 GMT")
	}
}

// BenchmarkParseAsctime benchmarks the worst case (two failed grammars)
func BenchmarkParseAsctime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Parse("Sun Nov  6 08:49:37 1994")
	}
}
