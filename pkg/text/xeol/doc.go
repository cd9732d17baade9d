// Package xeol 提供行终止符（LF / CR / CRLF）的检测、混用判断与规范化。
//
// 三种风格及其规范字节序列：
//
//   - [LF]: "\n"（0x0A），Unix/Linux/macOS
//   - [CR]: "\r"（0x0D），经典 Mac OS
//   - [CRLF]: "\r\n"（0x0D 0x0A），Windows 与多数互联网协议
//
// 核心约束：两字节序列 "\r\n" 在所有扫描中都作为一个整体处理。
// 一次 CR 后紧跟 LF 只计作一个 CRLF 并前进两字节；其余 CR 是孤立 CR，
// 未被 CRLF 消费的 LF 是孤立 LF。
//
// # 快速示例
//
// 检测与规范化：
//
//	style, ok := xeol.Detect("a\r\nb")        // CRLF, true
//	xeol.IsMixed("a\nb\rc")                   // true
//	out := xeol.Normalize([]byte("a\r\nb\rc"), xeol.LF)  // "a\nb\nc"
//
// 流式处理（实现 [transform.Transformer]）：
//
//	r := transform.NewReader(file, xeol.NewNormalizer(xeol.LF))
//
// # 设计决策
//
//   - [Normalize] 在无需改写时直接返回输入，零分配；需要改写时
//     通过 [Count] 预先算出精确输出长度，单次分配
//   - 检测优先级 CRLF > CR > LF：先判孤立 CR 会把 CRLF 的前半
//     误判为 CR
//   - 末尾的 CR 后面没有任何字节时是孤立 CR；流式场景下
//     [Normalizer] 对块末尾的 CR 返回 [transform.ErrShortSrc]
//     等待下一块，避免跨块拆散 CRLF
package xeol
