package state

import (
	"fmt"
	"strconv"
	"time"
)

// Duration is a yaml-friendly time.Duration: it accepts "5s"-style strings or
// a bare number of seconds.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return d.Duration().String()
}

func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if v, err := time.ParseDuration(s); err == nil {
		*d = Duration(v)
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(v) * time.Second)
		return nil
	}
	return fmt.Errorf("unparsable duration %q", s)
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}
