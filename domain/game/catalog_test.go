package game

import (
	"testing"
)

func TestSpecValidate(t *testing.T) {
	cases := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"valid digit game", Spec{ID: "3d", DigitCount: 3, MinValue: 0, MaxValue: 9, OrderSignificant: true}, false},
		{"valid combination", Spec{ID: "c", DigitCount: 6, MinValue: 1, MaxValue: 42}, false},
		{"missing id", Spec{DigitCount: 3, MinValue: 0, MaxValue: 9}, true},
		{"zero digit count", Spec{ID: "x", DigitCount: 0, MinValue: 0, MaxValue: 9}, true},
		{"inverted range", Spec{ID: "x", DigitCount: 3, MinValue: 9, MaxValue: 0}, true},
		{"combination range too small", Spec{ID: "x", DigitCount: 5, MinValue: 1, MaxValue: 3}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestCatalogRejectsDuplicateIDs(t *testing.T) {
	spec := Spec{ID: "3d", DigitCount: 3, MinValue: 0, MaxValue: 9, OrderSignificant: true}
	if _, err := NewCatalog(spec, spec); err == nil {
		t.Fatal("duplicate id accepted")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	spec, ok := c.Get("3d")
	if !ok {
		t.Fatal("default catalog is missing the 3-digit game")
	}
	if spec.DigitCount != 3 || spec.MinValue != 0 || spec.MaxValue != 9 || !spec.OrderSignificant {
		t.Errorf("unexpected 3d spec: %+v", spec)
	}

	list := c.List()
	if len(list) < 2 {
		t.Fatalf("catalog ships %d games, want several", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not in id order: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}
