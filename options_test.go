package trash

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if !o.UseTopDirs || !o.CheckStickyBit || !o.FallbackToUserDir || !o.FallbackToHomeDir {
		t.Fatalf("expected every placement flag on by default, got %+v", o)
	}
	if o.BypassTrash {
		t.Fatal("expected BypassTrash off by default")
	}
}
