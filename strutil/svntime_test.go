package strutil

import (
	"regexp"
	"testing"
	"time"
)

func TestSVNTimeFixedZone(t *testing.T) {
	pst := time.FixedZone("PST", -8*3600)
	ts := time.Date(2007, time.December, 7, 10, 3, 15, 0, pst)

	got := SVNTime(ts)
	want := "2007-12-07 10:03:15 -0800 (Fri, 07 Dec 2007)"
	if got != want {
		t.Errorf("SVNTime() = %q, want %q", got, want)
	}
}

func TestSVNTimeUTC(t *testing.T) {
	ts := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)

	got := SVNTime(ts)
	want := "2024-02-29 23:59:59 +0000 (Thu, 29 Feb 2024)"
	if got != want {
		t.Errorf("SVNTime() = %q, want %q", got, want)
	}
}

func TestSVNTimeSingleDigitFieldsArePadded(t *testing.T) {
	ts := time.Date(2023, time.January, 2, 3, 4, 5, 0, time.UTC)

	got := SVNTime(ts)
	want := "2023-01-02 03:04:05 +0000 (Mon, 02 Jan 2023)"
	if got != want {
		t.Errorf("SVNTime() = %q, want %q", got, want)
	}
}

var svnTimePattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} [+-]\d{4} \((Sun|Mon|Tue|Wed|Thu|Fri|Sat), \d{2} (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4}\)$`)

func TestSVNTimeNowFormat(t *testing.T) {
	got := SVNTimeNow()
	if !svnTimePattern.MatchString(got) {
		t.Errorf("SVNTimeNow() = %q does not match the Subversion format", got)
	}
}
