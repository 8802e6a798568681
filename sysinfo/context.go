package sysinfo

import (
	"os"

	"freshfetch/errors"
	"freshfetch/inject"
)

// Context is the login context: who is running freshfetch and where.
type Context struct {
	inject.Static
	User string
	Host string
}

// NewContext reads the user name from the environment and the host name
// from the operating system.
func NewContext(env LookupEnv) (*Context, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProbe, "hostname").WithSubject("context")
	}
	return &Context{User: userName(env), Host: host}, nil
}

func userName(env LookupEnv) string {
	for _, key := range []string{"USER", "LOGNAME", "USERNAME"} {
		if v, ok := env(key); ok && v != "" {
			return v
		}
	}
	return ""
}

// Publish writes the context table.
func (c *Context) Publish(r *inject.Registry) error {
	return r.PublishRecord("context",
		inject.F("user", inject.String(c.User)),
		inject.F("host", inject.String(c.Host)),
	)
}
