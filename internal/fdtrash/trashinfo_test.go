//go:build !windows && !darwin

package fdtrash

import (
	"strings"
	"testing"
	"time"
)

func TestPercentEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"/home/user/plain.txt",
		"/home/user/with space.txt",
		"/home/user/100% done.txt",
		"/home/user/new\nline",
		"/home/user/héllo wörld.txt",
		"",
		"/home/user/no-ext",
	}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			encoded := percentEncode(c)
			decoded := percentDecode(encoded)
			if decoded != c {
				t.Fatalf("round trip mismatch: got %q, want %q", decoded, c)
			}
		})
	}
}

func TestPercentEncodeOnlyUnreservedUnescaped(t *testing.T) {
	encoded := percentEncode("a Z0-9_.~*")
	if strings.ContainsAny(encoded, " *") {
		t.Fatalf("expected space and * to be escaped, got %q", encoded)
	}
}

func TestEncodeDecodeTrashInfo(t *testing.T) {
	path := "/home/user/some file.txt"
	when := time.Date(2024, 3, 5, 10, 30, 0, 0, time.Local)

	body := encodeTrashInfo(path, when)

	gotPath, gotDate, ok := decodeTrashInfo(body)
	if !ok {
		t.Fatal("decodeTrashInfo reported !ok for a freshly encoded body")
	}
	if gotPath != path {
		t.Fatalf("path mismatch: got %q, want %q", gotPath, path)
	}
	if !gotDate.Equal(when) {
		t.Fatalf("date mismatch: got %v, want %v", gotDate, when)
	}
}

func TestDecodeTrashInfoMissingPath(t *testing.T) {
	_, _, ok := decodeTrashInfo([]byte("[Trash Info]\nDeletionDate=2024-01-01T00:00:00\n"))
	if ok {
		t.Fatal("expected ok=false when Path is missing")
	}
}

func TestDecodeTrashInfoIgnoresUnknownKeysAndComments(t *testing.T) {
	content := "# a comment\n[Trash Info]\nPath=/tmp/x\nUnknownKey=ignored\nDeletionDate=2024-01-01T00:00:00\n"
	path, _, ok := decodeTrashInfo([]byte(content))
	if !ok || path != "/tmp/x" {
		t.Fatalf("got path=%q ok=%v, want /tmp/x true", path, ok)
	}
}

func TestDecodeTrashInfoStopsAtSecondGroup(t *testing.T) {
	content := "[Trash Info]\nPath=/tmp/x\nDeletionDate=2024-01-01T00:00:00\n[Other Group]\nPath=/tmp/ignored\n"
	path, _, ok := decodeTrashInfo([]byte(content))
	if !ok || path != "/tmp/x" {
		t.Fatalf("got path=%q ok=%v, want /tmp/x true", path, ok)
	}
}
