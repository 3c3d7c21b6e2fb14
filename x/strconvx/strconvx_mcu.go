//go:build tinygo

package strconvx

// Small decimal helpers with strconv's signatures; strconv pulls in float
// tables we do not want in flash.

type parseError struct{}

func (parseError) Error() string { return "invalid syntax" }

var errSyntax error = parseError{}

func Itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	u := uint64(i)
	if neg {
		u = uint64(-i)
	}
	var buf [24]byte
	n := len(buf)
	for u > 0 {
		n--
		buf[n] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		n--
		buf[n] = '-'
	}
	return string(buf[n:])
}

func Atoi(s string) (int, error) {
	if s == "" {
		return 0, errSyntax
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, errSyntax
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errSyntax
		}
		v = v*10 + int(c-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}
