package xdigit

import "fmt"

// Unsigned 约束全部无符号整型。
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed 约束全部有符号整型。
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// AppendUint 把 v 的十进制表示追加到 dst 并返回扩展后的切片。
// 反复除十取余，余数逆序落盘；v == 0 追加单个 '0'。
func AppendUint[T Unsigned](dst []byte, v T) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	// uint64 最多 20 位十进制
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = '0' + byte(v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendInt 把 v 的十进制表示追加到 dst，负数带 '-' 前缀。
func AppendInt[T Signed](dst []byte, v T) []byte {
	u := uint64(v)
	if v < 0 {
		dst = append(dst, '-')
		// 补码取负得到绝对值，最小值也正确
		u = -u
	}
	return AppendUint(dst, u)
}

// FormatUint 返回 v 的十进制字节表示。
func FormatUint[T Unsigned](v T) []byte {
	return AppendUint(nil, v)
}

// FormatInt 返回 v 的十进制字节表示，负数带 '-' 前缀。
func FormatInt[T Signed](v T) []byte {
	return AppendInt(nil, v)
}

// ParseUint 把 s 解析为无符号整数。
// 语法：一个或多个十进制数字；不接受符号。
// 空输入返回 [ErrEmpty]，非数字字节返回 [ErrSyntax]，
// 超出 T 的表示范围返回 [ErrRange]。
func ParseUint[T Unsigned, S ~string | ~[]byte](s S) (T, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}

	maxT := ^T(0)
	var n T
	for i := 0; i < len(s); i++ {
		d, ok := Digit(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: unexpected byte %q", ErrSyntax, s[i])
		}
		if n > maxT/10 {
			return 0, ErrRange
		}
		n *= 10
		if n > maxT-T(d) {
			return 0, ErrRange
		}
		n += T(d)
	}
	return n, nil
}

// ParseInt 把 s 解析为有符号整数。
// 语法：可选的 '+' 或 '-' 前缀，后跟一个或多个十进制数字；
// 符号后必须有数字，否则返回 [ErrSyntax]。
// 空输入返回 [ErrEmpty]，超出 T 的表示范围返回 [ErrRange]。
func ParseInt[T Signed, S ~string | ~[]byte](s S) (T, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
		if len(s) == 0 {
			return 0, fmt.Errorf("%w: missing digits after sign", ErrSyntax)
		}
	}

	// 先按 uint64 累加绝对值：任何宽度的溢出都先在这里暴露
	u, err := ParseUint[uint64](s)
	if err != nil {
		return 0, err
	}

	minT, maxT := signedLimits[T]()
	if neg {
		// |minT| = maxT + 1
		if u > uint64(maxT)+1 {
			return 0, ErrRange
		}
		if u == uint64(maxT)+1 {
			return minT, nil
		}
		return -T(u), nil
	}
	if u > uint64(maxT) {
		return 0, ErrRange
	}
	return T(u), nil
}

// signedLimits 返回有符号类型 T 的最小值与最大值。
// 左移 1 直至溢出为符号位，得到 minT；按位取反即 maxT。
func signedLimits[T Signed]() (minT, maxT T) {
	minT = 1
	for minT > 0 {
		minT <<= 1
	}
	maxT = ^minT
	return minT, maxT
}
