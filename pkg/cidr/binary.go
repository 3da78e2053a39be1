package cidr

import (
	"encoding/binary"
	"strings"
)

// BinaryGroups 将 v 渲染为二进制分组序列，并在网络/主机分界处拆分。
//
// 基础形式是 4 个 8 位二进制组（每八位段一组）。当 prefix 落在某个
// 八位段内部（prefix%8 != 0）时，下标为 prefix/8 的那一组在位偏移
// prefix%8 处被拆成两个 token，总数变为 5 个。这用于在掩码/地址/
// 网络地址的二进制展示中凸显网络位与主机位的分界。
//
// prefix 为 8 的整数倍（含 0 和 32）时不发生拆分，恒返回 4 个 token。
func BinaryGroups(v uint32, prefix int) []string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)

	splitOctet := prefix / 8
	splitOffset := prefix % 8

	groups := make([]string, 0, 5)
	for i, o := range b {
		s := binaryOctet(o)
		if i == splitOctet && splitOffset != 0 {
			groups = append(groups, s[:splitOffset], s[splitOffset:])
			continue
		}
		groups = append(groups, s)
	}
	return groups
}

// BinaryOctets 将 v 渲染为固定 4 个 8 位二进制组，不做分界拆分。
// 用于反掩码/广播/主机区间等不需要凸显前缀分界的展示。
func BinaryOctets(v uint32) []string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return []string{
		binaryOctet(b[0]),
		binaryOctet(b[1]),
		binaryOctet(b[2]),
		binaryOctet(b[3]),
	}
}

// BinaryString 返回空格连接的分组形式，等价于
// strings.Join(BinaryGroups(v, prefix), " ")。
func BinaryString(v uint32, prefix int) string {
	return strings.Join(BinaryGroups(v, prefix), " ")
}

// binaryOctet 将单个八位段格式化为 8 字符二进制串。
// 手写格式化避免 fmt.Sprintf("%08b") 的反射开销和额外分配。
func binaryOctet(o byte) string {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = '0' + (o>>(7-i))&1
	}
	return string(buf[:])
}
