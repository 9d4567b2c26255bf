package fonts

import "testing"

func TestFamilyCached(t *testing.T) {
	a, err := Family()
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	b, _ := Family()
	if a != b {
		t.Error("Family() returned different instances")
	}
}

func TestNewFaces(t *testing.T) {
	faces, err := New(10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if faces.Regular == nil || faces.Bold == nil {
		t.Fatal("nil face")
	}
	w := faces.Regular.TextWidth("mag. sus.")
	if w <= 0 {
		t.Errorf("TextWidth = %v, want > 0", w)
	}
	if faces.Bold.TextWidth("g") <= 0 {
		t.Error("bold face has no width for g")
	}
}
