package sysinfo

import (
	"github.com/shirou/gopsutil/v4/host"

	"freshfetch/errors"
	"freshfetch/inject"
)

// Uptime is the time since boot split into calendar units.
type Uptime struct {
	inject.Static
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// NewUptime reads the system uptime.
func NewUptime() (*Uptime, error) {
	secs, err := host.Uptime()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "uptime").WithSubject("uptime")
	}
	return UptimeFromSeconds(secs), nil
}

// UptimeFromSeconds splits a number of seconds into days, hours, minutes
// and seconds.
func UptimeFromSeconds(secs uint64) *Uptime {
	s := int64(secs)
	return &Uptime{
		Days:    s / 86400,
		Hours:   s % 86400 / 3600,
		Minutes: s % 3600 / 60,
		Seconds: s % 60,
	}
}

// Publish writes the uptime table.
func (u *Uptime) Publish(r *inject.Registry) error {
	return r.PublishRecord("uptime",
		inject.F("days", inject.Int(u.Days)),
		inject.F("hours", inject.Int(u.Hours)),
		inject.F("minutes", inject.Int(u.Minutes)),
		inject.F("seconds", inject.Int(u.Seconds)),
	)
}
