//go:build !windows && !darwin

package fdtrash

import (
	"bufio"
	"strings"
	"time"

	"github.com/valyala/bytebufferpool"
)

const dateLayout = "2006-01-02T15:04:05"

// unreserved holds the RFC 3986 unreserved set: ALPHA / DIGIT / "-" / "." /
// "_" / "~". Everything else gets percent-encoded, per spec.md §6's
// "URL-encoding follows RFC 3986 percent-encoding of all bytes outside the
// unreserved set" — stricter than net/url.QueryEscape, which treats space
// as "+" and leaves several non-unreserved bytes like "*" unescaped.
func isUnreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	}
	return false
}

const hexDigits = "0123456789ABCDEF"

func percentEncode(s string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i := 0; i < len(s); i++ {
		b := s[i]
		if isUnreserved(b) {
			buf.WriteByte(b)
			continue
		}
		buf.WriteByte('%')
		buf.WriteByte(hexDigits[b>>4])
		buf.WriteByte(hexDigits[b&0x0f])
	}
	return buf.String()
}

func percentDecode(s string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, hiOK := hexVal(s[i+1])
			lo, loOK := hexVal(s[i+2])
			if hiOK && loOK {
				buf.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// encodeTrashInfo renders the [Trash Info] body for path (already resolved
// to absolute-or-volume-relative by the caller) and deletionTime truncated
// to whole seconds.
func encodeTrashInfo(path string, deletionTime time.Time) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("[Trash Info]\nPath=")
	buf.WriteString(percentEncode(path))
	buf.WriteString("\nDeletionDate=")
	buf.WriteString(deletionTime.Truncate(time.Second).Format(dateLayout))
	buf.WriteByte('\n')

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// decodeTrashInfo parses the [Trash Info] group leniently: groups before it
// are skipped, any group after it stops the scan, unknown keys and comment
// lines are ignored, and a missing
// Path is reported via ok=false so the caller can drop the entry per
// spec.md §4.2 ("If Path is missing or empty, drop the entry").
func decodeTrashInfo(content []byte) (path string, deletionDate time.Time, ok bool) {
	sc := bufio.NewScanner(strings.NewReader(string(content)))
	inGroup := false
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if inGroup {
				break // a second group ends the [Trash Info] section
			}
			inGroup = line == "[Trash Info]"
			continue
		}
		if !inGroup {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch key {
		case "Path":
			path = percentDecode(value)
		case "DeletionDate":
			if t, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
				deletionDate = t
			}
		}
	}

	return path, deletionDate, path != ""
}
