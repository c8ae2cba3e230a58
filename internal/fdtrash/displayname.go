//go:build !windows && !darwin

package fdtrash

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/rohithgilla12/trashcan/internal/displaycache"
)

// candidateRelPaths are tried in order under every XDG data directory,
// per spec.md §4.6: KDE ships the lookup file at either location
// depending on version.
var candidateRelPaths = []string{
	filepath.Join("kio_desktop", "directory.trash"),
	filepath.Join("kde4", "apps", "kio_desktop", "directory.trash"),
}

var displayNameCache displaycache.Cached

// DisplayName implements spec.md §4.6: look up the desktop environment's
// localized trash can name from the first directory.trash file found
// across $XDG_DATA_HOME and $XDG_DATA_DIRS, returning empty when none
// exists or parsing fails. Resolved once per process.
func DisplayName() string {
	return displayNameCache.Get(func() string {
		for _, dir := range xdgDataDirs() {
			for _, rel := range candidateRelPaths {
				content, err := os.ReadFile(filepath.Join(dir, rel))
				if err != nil {
					continue
				}
				if name, ok := parseDirectoryTrash(content); ok {
					return name
				}
			}
		}
		return ""
	})
}

// xdgDataDirs returns $XDG_DATA_HOME followed by $XDG_DATA_DIRS, falling
// back to the freedesktop defaults when unset.
func xdgDataDirs() []string {
	var dirs []string

	home := os.Getenv("XDG_DATA_HOME")
	if home == "" {
		if hd, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(hd, ".local", "share")
		}
	}
	if home != "" {
		dirs = append(dirs, home)
	}

	sys := os.Getenv("XDG_DATA_DIRS")
	if sys == "" {
		sys = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(sys, ":") {
		if d != "" {
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// parseDirectoryTrash reads the [Desktop Entry] group of a directory.trash
// file and picks the best-matching localized Name[locale] key for the
// process locale, falling back to the bare Name key.
func parseDirectoryTrash(content []byte) (string, bool) {
	names := map[string]string{}
	var plain string
	inEntry := false

	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch {
		case key == "Name":
			plain = value
		case strings.HasPrefix(key, "Name[") && strings.HasSuffix(key, "]"):
			locale := key[len("Name[") : len(key)-1]
			names[locale] = value
		}
	}

	if plain == "" && len(names) == 0 {
		return "", false
	}
	if best, ok := bestLocaleMatch(names); ok {
		return best, true
	}
	if plain != "" {
		return plain, true
	}
	return "", false
}

// bestLocaleMatch walks the process locale's freedesktop fallback chain
// (full tag, then progressively less specific) and resolves it against
// the available Name[locale] keys using golang.org/x/text/language for
// tag parsing and matching instead of hand-rolled string trimming.
func bestLocaleMatch(names map[string]string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}

	want := processLocale()
	tags := make([]language.Tag, 0, len(names))
	keys := make([]string, 0, len(names))
	for locale := range names {
		tag, err := language.Parse(normalizeLocaleTag(locale))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		keys = append(keys, locale)
	}
	if len(tags) == 0 {
		return "", false
	}

	matcher := language.NewMatcher(tags)
	_, index, conf := matcher.Match(want)
	if conf == language.No {
		return "", false
	}
	return names[keys[index]], true
}

// processLocale reads LC_MESSAGES/LANG the way freedesktop desktop-entry
// consumers do, stripping the encoding suffix (e.g. ".UTF-8").
func processLocale() language.Tag {
	// glibc precedence: LC_ALL overrides every per-category variable,
	// LC_MESSAGES overrides LANG.
	raw := os.Getenv("LC_ALL")
	if raw == "" {
		raw = os.Getenv("LC_MESSAGES")
	}
	if raw == "" {
		raw = os.Getenv("LANG")
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.English
	}

	tag, err := language.Parse(normalizeLocaleTag(raw))
	if err != nil {
		return language.English
	}
	return tag
}

// normalizeLocaleTag turns a glibc-style locale ("pt_BR.UTF-8@euro") into
// a BCP 47 tag ("pt-BR") that language.Parse accepts.
func normalizeLocaleTag(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
