// Package xascii 提供 7 位 US-ASCII（INCITS 4-1986）字符分类与转换工具。
//
// xascii 是所有上层文本/协议解析的最底层原语，围绕一张进程级不可变的
// 128 项位标志表构建：
//
//   - table.go: 分类表与 [Flags] 位标志，[Classify] O(1) 查询
//   - classify.go: 逐字节谓词（IsDigit/IsLetter/IsWhitespace 等）与
//     集合判断 [All] / [Contains]
//   - case.go: 大小写转换，字节/缓冲区/字符串三个层级
//   - fold.go: ASCII 大小写不敏感比较（EqualFold 及前后缀变体）
//   - valid.go: 批量 ASCII 验证，8 字节一组的字级快速路径
//   - set.go: [Set] 128 位字符集合
//   - trim.go: 首尾修剪，返回原输入的切片视图
//
// # 快速示例
//
// 字符分类：
//
//	xascii.IsDigit('7')        // true
//	xascii.IsHexDigit('f')     // true
//	xascii.Classify(' ')       // FlagWhitespace|FlagPrintable
//
// 批量验证与转换：
//
//	xascii.ValidString("plain text")            // true
//	xascii.ToUpperString("héllo")               // "HéLLO"（多字节序列原样保留）
//	xascii.TrimSpace("  hello  ")               // "hello"
//
// # 设计决策
//
//   - 分类表由包初始化构建一次，此后只读：Go 的包级变量初始化即
//     进程级一次性初始化，天然并发安全，无需 sync.Once
//   - 所有谓词对 0-255 全域有定义：0x80 及以上一律判 false，绝不越界
//   - 谓词同时存在查表与无分支范围算术两种实现，测试逐值对拍
//   - 大小写转换对多字节 UTF-8 序列是恒等变换：其每个字节高位为 1，
//     不落入任何字母区间
package xascii
