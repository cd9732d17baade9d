package xascii

import "testing"

// TestBuildTableDeterministic 验证重复构建得到逐项相同的表。
func TestBuildTableDeterministic(t *testing.T) {
	t.Parallel()

	a := buildTable()
	b := buildTable()
	if a != b {
		t.Fatal("buildTable() is not deterministic")
	}
	if a != classTable {
		t.Fatal("buildTable() differs from the process table")
	}
}

// TestTableInvariants 逐字节验证表项满足 ASCII 标准定义。
func TestTableInvariants(t *testing.T) {
	t.Parallel()

	for i := 0; i < 128; i++ {
		b := byte(i)
		f := Classify(b)

		wantDigit := b >= 0x30 && b <= 0x39
		if f.Has(FlagDigit) != wantDigit {
			t.Errorf("byte 0x%02x: FlagDigit = %v, want %v", b, f.Has(FlagDigit), wantDigit)
		}

		wantWS := b == 0x09 || b == 0x0a || b == 0x0d || b == 0x20
		if f.Has(FlagWhitespace) != wantWS {
			t.Errorf("byte 0x%02x: FlagWhitespace = %v, want %v", b, f.Has(FlagWhitespace), wantWS)
		}

		wantCtl := b <= 0x1f || b == 0x7f
		if f.Has(FlagControl) != wantCtl {
			t.Errorf("byte 0x%02x: FlagControl = %v, want %v", b, f.Has(FlagControl), wantCtl)
		}

		wantPrint := b >= 0x20 && b <= 0x7e
		if f.Has(FlagPrintable) != wantPrint {
			t.Errorf("byte 0x%02x: FlagPrintable = %v, want %v", b, f.Has(FlagPrintable), wantPrint)
		}

		// 大小写标志互斥，且字母必居其一
		if f.Has(FlagUpper) && f.Has(FlagLower) {
			t.Errorf("byte 0x%02x: both FlagUpper and FlagLower set", b)
		}
		wantLetter := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		if f.Has(FlagUpper|FlagLower) != wantLetter {
			t.Errorf("byte 0x%02x: letter flags = %v, want %v", b, f.Has(FlagUpper|FlagLower), wantLetter)
		}

		// 十六进制字母标志是对应字母区的子集
		if f.Has(FlagHexUpper) && !(b >= 'A' && b <= 'F') {
			t.Errorf("byte 0x%02x: FlagHexUpper outside 'A'-'F'", b)
		}
		if f.Has(FlagHexLower) && !(b >= 'a' && b <= 'f') {
			t.Errorf("byte 0x%02x: FlagHexLower outside 'a'-'f'", b)
		}
	}
}

// TestClassifyNonASCII 验证 0x80-0xFF 全部返回零标志。
func TestClassifyNonASCII(t *testing.T) {
	t.Parallel()

	for i := 0x80; i <= 0xff; i++ {
		if f := Classify(byte(i)); f != 0 {
			t.Errorf("Classify(0x%02x) = %08b, want 0", i, f)
		}
	}
}
