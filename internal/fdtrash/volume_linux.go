//go:build linux

package fdtrash

import (
	"bufio"
	"os"
	"strings"
)

// MountedVolumes reads /proc/mounts, same source go-stdx-trash's
// mount_linux.go uses, including its octal-escape unescaping of mount
// points containing spaces or special characters. Entries that can't be
// parsed are skipped rather than aborting the whole read (spec.md §4.4:
// "volumes marked invalid are skipped").
func MountedVolumes() ([]string, error) {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var mounts []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		mounts = append(mounts, unescapeMount(fields[1]))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mounts, nil
}

func unescapeMount(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isOctal(s[i+1]) && isOctal(s[i+2]) && isOctal(s[i+3]) {
			v := (s[i+1]-'0')*64 + (s[i+2]-'0')*8 + (s[i+3] - '0')
			b.WriteByte(v)
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctal(c byte) bool { return c >= '0' && c <= '7' }
