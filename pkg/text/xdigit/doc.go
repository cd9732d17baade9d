// Package xdigit 提供 ASCII 数字的解析与序列化。
//
// 三个层级：
//
//   - 单字符：[Digit] / [HexDigit] 取数值，[DigitByte] / [HexBytePair]
//     反向序列化，均为 (value, ok) 形式："不是数字"是预期结果而非错误
//   - 整数序列化：[AppendUint] / [AppendInt] / [FormatUint] / [FormatInt]，
//     反复除十取余，逆序落盘，零值输出单个 '0'
//   - 整数解析：[ParseUint] / [ParseInt]，泛型覆盖任意整型宽度
//
// # 快速示例
//
//	v, ok := xdigit.HexDigit('f')              // 15, true
//	buf := xdigit.FormatInt(-42)               // []byte("-42")
//	n, err := xdigit.ParseInt[int32]("-42")    // -42, nil
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xdigit.ParseUint[uint8]("300")
//	if errors.Is(err, xdigit.ErrRange) {
//	    // 溢出
//	}
//
// # 设计决策
//
//   - 溢出策略：所有宽度统一在累加过程中显式检查，溢出返回
//     [ErrRange]，绝不静默回绕（与 strconv 一致）
//   - 符号仅对有符号目标类型合法：[ParseUint] 把 '+'/'-' 当作
//     非法字节拒绝
//   - 解析输入泛型接受 string 与 []byte，不复制输入
package xdigit
