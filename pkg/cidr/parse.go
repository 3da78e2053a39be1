package cidr

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseCIDR 解析并校验 "A.B.C.D/P" 形式的输入。
// 输入会自动去除首尾空白字符。错误按来源分流：
//
//   - 不是恰好两个 '/' 分隔段 → [ErrInvalidFormat]
//   - 地址段无效 → [ErrInvalidAddress]
//   - 前缀段无效 → [ErrInvalidPrefix]
//
// 返回的地址保证为纯 IPv4，前缀保证在 [0,32] 内，
// 可直接传入 [Compute]。
func ParseCIDR(s string) (netip.Addr, int, error) {
	s = strings.TrimSpace(s)

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return netip.Addr{}, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	addr, err := parseDottedQuad(strings.TrimSpace(parts[0]))
	if err != nil {
		return netip.Addr{}, 0, err
	}

	prefix, err := parsePrefixLen(strings.TrimSpace(parts[1]))
	if err != nil {
		return netip.Addr{}, 0, err
	}

	return addr, prefix, nil
}

// parseDottedQuad 解析四个点分八位段。
// 设计决策: 不走 netip.ParseAddr——它同时接受 IPv6 字面量，
// 而这里必须只接受 IPv4 点分四段。逐段 ParseUint 同时天然
// 拒绝空段、负号和超范围八位段。
func parseDottedQuad(s string) (netip.Addr, error) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	var b [4]byte
	for i, o := range octets {
		n, err := strconv.ParseUint(o, 10, 8)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%w: invalid octet %q", ErrInvalidAddress, o)
		}
		b[i] = byte(n)
	}
	return netip.AddrFrom4(b), nil
}

// parsePrefixLen 解析 [0,32] 内的前缀长度。
func parsePrefixLen(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > 32 {
		return 0, fmt.Errorf("%w: %q (want 0-32)", ErrInvalidPrefix, s)
	}
	return int(n), nil
}
