package mleader

import "testing"

func TestPathTypeRoundTrip(t *testing.T) {
	for _, p := range []PathType{PathInvisible, PathStraight, PathSpline} {
		got, err := ParsePathType(p.String())
		if err != nil {
			t.Fatalf("ParsePathType(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePathType(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParsePathType("curvy"); err == nil {
		t.Error("expected error for unknown path type")
	}
	if s := PathType(9).String(); s != "PathType(9)" {
		t.Errorf("String() = %q", s)
	}
}

func TestTextAttachmentDirectionRoundTrip(t *testing.T) {
	for _, d := range []TextAttachmentDirection{AttachHorizontal, AttachVertical} {
		got, err := ParseTextAttachmentDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseTextAttachmentDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseTextAttachmentDirection("diagonal"); err == nil {
		t.Error("expected error")
	}
}

func TestOverrideFlags(t *testing.T) {
	tests := []struct {
		flags OverrideFlags
		str   string
	}{
		{OverrideNone, "None"},
		{OverridePathType, "PathType"},
		{OverrideLineColor | OverrideArrowhead, "LineColor|Arrowhead"},
		{OverrideFlags(63), "PathType|LineColor|LineType|LineWeight|ArrowheadSize|Arrowhead"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.flags.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			parsed, err := ParseOverrideFlags(tt.str)
			if err != nil {
				t.Fatalf("ParseOverrideFlags: %v", err)
			}
			if parsed != tt.flags {
				t.Errorf("ParseOverrideFlags(%q) = %v, want %v", tt.str, parsed, tt.flags)
			}
		})
	}

	if s := OverrideFlags(64 | 1).String(); s != "PathType|0x40" {
		t.Errorf("unknown bits String() = %q", s)
	}
	if f, err := ParseOverrideFlags("linetype, arrowheadsize"); err != nil || f != OverrideLineType|OverrideArrowheadSize {
		t.Errorf("comma separated parse = %v, %v", f, err)
	}
	if _, err := ParseOverrideFlags("Bogus"); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestUnnamedEnumValuesRoundTrip(t *testing.T) {
	for _, p := range []PathType{5, -3, 32767} {
		got, err := ParsePathType(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePathType(%q) = %v, %v", p.String(), got, err)
		}
	}
	for _, d := range []TextAttachmentDirection{3, -1} {
		got, err := ParseTextAttachmentDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseTextAttachmentDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	for _, f := range []OverrideFlags{64 | 1, 0x100, -1} {
		got, err := ParseOverrideFlags(f.String())
		if err != nil || got != f {
			t.Errorf("ParseOverrideFlags(%q) = %v, %v", f.String(), got, err)
		}
	}

	for _, s := range []string{"PathType(", "PathType(x)", "PathType(70000)", "Other(1)"} {
		if _, err := ParsePathType(s); err == nil {
			t.Errorf("ParsePathType(%q): expected error", s)
		}
	}
	if _, err := ParseOverrideFlags("0xZZ"); err == nil {
		t.Error("expected error for malformed hex bits")
	}
}
