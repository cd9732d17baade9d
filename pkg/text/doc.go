// Package text 提供 ASCII 文本处理相关的子包。
//
// 子包列表：
//   - xascii: ASCII 字符分类、大小写转换、批量验证、字符集合与修剪
//   - xeol: 行终止符（LF/CR/CRLF）检测、混用判断与规范化，含流式转换器
//   - xdigit: 十进制/十六进制数字的解析与序列化
//
// 设计原则：
//   - 所有操作均为纯函数，输入只读，输出为新值或原值的切片视图
//   - 零 I/O、零阻塞：不涉及网络、文件与调度，任意并发调用无需同步
//   - 仅在输出必须不同于输入时分配内存，分类与验证零分配
package text
