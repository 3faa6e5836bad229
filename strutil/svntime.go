package strutil

import "time"

// svnTimeLayout renders times the way Subversion prints them, e.g.
// "2007-12-07 10:03:15 -0800 (Fri, 07 Dec 2007)". The numeric zone offset
// reflects daylight saving when in effect.
const svnTimeLayout = "2006-01-02 15:04:05 -0700 (Mon, 02 Jan 2006)"

// SVNTime formats t in Subversion style in t's location.
func SVNTime(t time.Time) string {
	return t.Format(svnTimeLayout)
}

// SVNTimeNow formats the current local time in Subversion style.
func SVNTimeNow() string {
	return SVNTime(time.Now())
}
