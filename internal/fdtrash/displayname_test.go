//go:build !windows && !darwin

package fdtrash

import (
	"testing"

	"github.com/rohithgilla12/trashcan/internal/displaycache"
)

func TestParseDirectoryTrashPlainName(t *testing.T) {
	content := "[Desktop Entry]\nIcon=user-trash\nName=Trash\n"
	name, ok := parseDirectoryTrash([]byte(content))
	if !ok || name != "Trash" {
		t.Fatalf("got %q, %v, want Trash, true", name, ok)
	}
}

func TestParseDirectoryTrashLocalizedName(t *testing.T) {
	content := "[Desktop Entry]\nName=Trash\nName[fr]=Corbeille\nName[de]=Papierkorb\n"
	t.Setenv("LC_ALL", "fr_FR.UTF-8")

	name, ok := parseDirectoryTrash([]byte(content))
	if !ok {
		t.Fatal("expected ok")
	}
	if name != "Corbeille" {
		t.Fatalf("got %q, want Corbeille", name)
	}
}

func TestParseDirectoryTrashFallsBackToPlainWhenLocaleUnmatched(t *testing.T) {
	content := "[Desktop Entry]\nName=Trash\nName[de]=Papierkorb\n"
	t.Setenv("LC_ALL", "ja_JP.UTF-8")

	name, ok := parseDirectoryTrash([]byte(content))
	if !ok {
		t.Fatal("expected ok")
	}
	if name != "Trash" {
		t.Fatalf("got %q, want fallback Trash", name)
	}
}

func TestParseDirectoryTrashIgnoresOtherGroups(t *testing.T) {
	content := "[Other]\nName=Ignored\n[Desktop Entry]\nName=Trash\n"
	name, ok := parseDirectoryTrash([]byte(content))
	if !ok || name != "Trash" {
		t.Fatalf("got %q, %v, want Trash, true", name, ok)
	}
}

func TestParseDirectoryTrashEmptyIsNotOK(t *testing.T) {
	if _, ok := parseDirectoryTrash([]byte("[Desktop Entry]\nIcon=user-trash\n")); ok {
		t.Fatal("expected ok=false with no Name key at all")
	}
}

func TestNormalizeLocaleTag(t *testing.T) {
	cases := map[string]string{
		"pt_BR.UTF-8": "pt-BR",
		"de_DE@euro":  "de-DE",
		"C":           "C",
	}
	for in, want := range cases {
		if got := normalizeLocaleTag(in); got != want {
			t.Fatalf("normalizeLocaleTag(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayNameDefaultsWhenNothingFound(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_DATA_DIRS", dir)

	displayNameCache = displaycache.Cached{}
	if got := DisplayName(); got != "" {
		t.Fatalf("got %q, want empty per spec when no directory.trash is found", got)
	}
}
