package primitive

import (
	"time"
)

// DateTime is a point in time stored as milliseconds since the Unix epoch.
// Date constructor literals produce this type.
type DateTime int64

// NewDateTimeFromTime converts a time.Time, truncating to millisecond
// precision.
func NewDateTimeFromTime(t time.Time) DateTime {
	return DateTime(t.UnixMilli())
}

// Time converts the value back to a time.Time in UTC.
func (d DateTime) Time() time.Time {
	return time.UnixMilli(int64(d)).UTC()
}

func (d DateTime) String() string {
	return d.Time().Format(time.RFC3339Nano)
}
