package xeol

// Style 表示行终止符风格。
type Style uint8

const (
	// LF 单字节 0x0A。
	LF Style = iota
	// CR 单字节 0x0D。
	CR
	// CRLF 两字节序列 0x0D 0x0A。
	CRLF
)

// Sequence 返回风格的规范字节序列。
func (s Style) Sequence() string {
	switch s {
	case CR:
		return "\r"
	case CRLF:
		return "\r\n"
	default:
		return "\n"
	}
}

// String 返回风格的名称。
func (s Style) String() string {
	switch s {
	case CR:
		return "CR"
	case CRLF:
		return "CRLF"
	default:
		return "LF"
	}
}
