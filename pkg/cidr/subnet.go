package cidr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Subnet 聚合一次子网计算的全部推导值。
// 所有字段在 [Compute] 中一趟填充后不可变，值类型可安全复制。
type Subnet struct {
	// Addr 是输入地址。
	Addr netip.Addr

	// Bits 是前缀长度 [0,32]。
	Bits int

	// Mask 是子网掩码。
	Mask netip.Addr

	// Wildcard 是反掩码。
	Wildcard netip.Addr

	// Network 是网络地址（Addr & Mask）。
	Network netip.Addr

	// Broadcast 是广播地址（Network | Wildcard）。
	Broadcast netip.Addr

	// HostMin 是最小可用主机地址。
	HostMin netip.Addr

	// HostMax 是最大可用主机地址。
	HostMax netip.Addr

	// Hosts 是可用主机数量。
	Hosts uint64

	// Class 是地址分类（类别 + 私网标志）。
	Class Classification
}

// Compute 对 (addr, prefix) 做单趟推导，返回填充完整的 [Subnet]。
//
// addr 必须是 IPv4 地址（IPv4-mapped IPv6 会被归一化为纯 IPv4），
// 否则返回 [ErrInvalidAddress]；prefix 超出 [0,32] 返回
// [ErrInvalidPrefix]。通过 [ParseCIDR] 获得的输入总是满足这两个条件。
func Compute(addr netip.Addr, prefix int) (Subnet, error) {
	v, ok := AddrToUint32(addr)
	if !ok {
		return Subnet{}, fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
	}
	if prefix < 0 || prefix > 32 {
		return Subnet{}, fmt.Errorf("%w: %d (want 0-32)", ErrInvalidPrefix, prefix)
	}

	mask := MaskFromPrefix(prefix)
	wildcard := Wildcard(mask)
	network := NetworkOf(v, mask)
	broadcast := BroadcastOf(network, wildcard)
	hostMin, hostMax := HostRange(network, broadcast, prefix)

	return Subnet{
		Addr:      addr.Unmap(),
		Bits:      prefix,
		Mask:      AddrFromUint32(mask),
		Wildcard:  AddrFromUint32(wildcard),
		Network:   AddrFromUint32(network),
		Broadcast: AddrFromUint32(broadcast),
		HostMin:   AddrFromUint32(hostMin),
		HostMax:   AddrFromUint32(hostMax),
		Hosts:     HostCount(prefix),
		Class:     Classify(addr),
	}, nil
}

// Prefix 返回子网对应的 CIDR 前缀（以网络地址为基准）。
func (s Subnet) Prefix() netip.Prefix {
	return netip.PrefixFrom(s.Network, s.Bits)
}

// Range 返回子网覆盖的完整地址范围（网络地址到广播地址）。
func (s Subnet) Range() netipx.IPRange {
	return netipx.IPRangeFrom(s.Network, s.Broadcast)
}

// HostIPRange 返回可用主机区间（HostMin 到 HostMax）。
func (s Subnet) HostIPRange() netipx.IPRange {
	return netipx.IPRangeFrom(s.HostMin, s.HostMax)
}

// Contains 报告 addr 是否落在子网内（含网络/广播地址）。
// 使用 uint32 比较，对 IPv4 比 netip.Addr.Compare 更直接。
// 非 IPv4 地址返回 false。
func (s Subnet) Contains(addr netip.Addr) bool {
	v, ok := AddrToUint32(addr)
	if !ok {
		return false
	}
	from, _ := AddrToUint32(s.Network)
	to, _ := AddrToUint32(s.Broadcast)
	return v >= from && v <= to
}

// Size 返回子网覆盖的地址总数（含网络/广播地址）。
// 与 Hosts 不同：/24 的 Size 是 256，Hosts 是 254。
func (s Subnet) Size() uint64 {
	from, _ := AddrToUint32(s.Network)
	to, _ := AddrToUint32(s.Broadcast)
	return uint64(to-from) + 1
}

// MaskUint32 返回掩码的 uint32 表示，便于直接传入 [BinaryGroups]。
func (s Subnet) MaskUint32() uint32 {
	v, _ := AddrToUint32(s.Mask)
	return v
}

// String 返回 "network/bits" 形式，如 "192.168.1.0/24"。
func (s Subnet) String() string {
	return s.Prefix().String()
}
