package options

import (
	"time"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutStored   = "2006-01-02"
)

// DateOptions holds a date flag as typed.
type DateOptions struct {
	Value string
}

// Get parses the date and returns it as YYYY-MM-DD, "" when unset.
func (o *DateOptions) Get() (string, error) {
	t, err := o.get(time.Now())
	if err != nil || t == nil {
		return "", err
	}
	return t.Format(layoutStored), nil
}

func (o *DateOptions) get(now time.Time) (*time.Time, error) {
	if o.Value == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.Value)
	if err != nil {
		// Let the year be the same.
		t, err = time.Parse(layoutISOShort, o.Value)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// A day already past this year means next year.
		if t.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}
