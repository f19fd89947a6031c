package url

import (
	"net/url"
	"strconv"
)

func ParseInt(name string, values url.Values, result *int) (err error) {
	intStr := values.Get(name)
	if intStr != "" {
		*result, err = strconv.Atoi(intStr)
		return err
	}
	return
}

func ParseBool(name string, values url.Values, result *bool) (err error) {
	boolStr := values.Get(name)
	if boolStr != "" {
		*result, err = strconv.ParseBool(boolStr)
		return err
	}
	return
}

// ParseUint64 accepts decimal, 0x hex, 0o octal and 0b binary.
func ParseUint64(value string) (uint64, error) {
	return strconv.ParseUint(value, 0, 64)
}
