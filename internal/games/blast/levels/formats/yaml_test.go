package formats

import "testing"

func TestParseYAMLDefaults(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: x\nsize: {rows: 5, cols: 6}\n"))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if lvl.Rows != 5 || lvl.Cols != 6 {
		t.Errorf("size = %dx%d, expected 5x6", lvl.Rows, lvl.Cols)
	}
	if lvl.Rules.TargetScore != 10000 || lvl.Rules.TotalMoves != 30 || lvl.Rules.MaxShuffles != 3 {
		t.Errorf("rules = %+v, expected defaults", lvl.Rules)
	}
	if lvl.Boosters.Bomb != 3 || lvl.Boosters.Swap != 3 {
		t.Errorf("boosters = %+v, expected defaults", lvl.Boosters)
	}
}

func TestParseYAMLExplicitZero(t *testing.T) {
	data := []byte("id: x\nrules: {max_shuffles: 0}\nboosters: {bomb: 0}\nlayout:\n  - \"R G\"\n  - \"B -\"\n")
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if lvl.Rules.MaxShuffles != 0 {
		t.Errorf("MaxShuffles = %d, expected 0", lvl.Rules.MaxShuffles)
	}
	if lvl.Boosters.Bomb != 0 || lvl.Boosters.Swap != 3 {
		t.Errorf("boosters = %+v, expected bomb 0 swap 3", lvl.Boosters)
	}
	if lvl.Rows != 2 || lvl.Cols != 2 || lvl.Layout[1] != "B-" {
		t.Errorf("layout = %v (%dx%d)", lvl.Layout, lvl.Rows, lvl.Cols)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	if _, err := ParseYAML([]byte("id: [unclosed")); err == nil {
		t.Error("ParseYAML() should fail on malformed YAML")
	}
}
