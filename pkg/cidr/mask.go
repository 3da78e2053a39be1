package cidr

// MaskFromPrefix 返回前缀长度对应的子网掩码：高 prefix 位为 1，其余为 0。
//
// prefix=0 显式返回 0：朴素的 "全 1 左移 32 位" 写法依赖语言对超宽
// 移位的具体定义，此处显式分支使全零掩码成为明确约定而非移位副作用。
// 超出 [0,32] 的输入被钳制到边界值。
func MaskFromPrefix(prefix int) uint32 {
	if prefix <= 0 {
		return 0
	}
	if prefix >= 32 {
		return ^uint32(0)
	}
	return ^uint32(0) << (32 - prefix)
}

// Wildcard 返回掩码的反掩码（按位取反）。
func Wildcard(mask uint32) uint32 {
	return ^mask
}

// NetworkOf 返回地址与掩码按位与得到的网络地址。
func NetworkOf(addr, mask uint32) uint32 {
	return addr & mask
}

// BroadcastOf 返回网络地址与反掩码按位或得到的广播地址。
func BroadcastOf(network, wildcard uint32) uint32 {
	return network | wildcard
}

// HostRange 返回子网的可用主机区间 [hostMin, hostMax]。
//
// 三路分支：
//   - prefix ≤ 30: [network+1, broadcast−1]，首尾分别保留给网络/广播地址
//   - prefix = 31: [network, broadcast]，点对点链路两端均可用，无广播语义
//   - prefix = 32: 主机路由，四值相同
//
// /31 和 /32 直接复用 network/broadcast 作为端点，与传统 ipcalc 行为一致。
func HostRange(network, broadcast uint32, prefix int) (uint32, uint32) {
	if prefix >= 31 {
		return network, broadcast
	}
	return network + 1, broadcast - 1
}

// HostCount 返回前缀长度对应的可用主机数量。
//
//   - prefix ≤ 30: 2^(32−prefix) − 2
//   - prefix = 31: 2
//   - prefix = 32: 1
//
// 返回 uint64：prefix=0 时结果为 2^32−2，uint32 无法表示。
func HostCount(prefix int) uint64 {
	switch {
	case prefix >= 32:
		return 1
	case prefix == 31:
		return 2
	case prefix <= 0:
		// 2^32 − 2，与 default 分支同构，单列以避免负前缀导致超宽移位
		return (uint64(1) << 32) - 2
	default:
		return (uint64(1) << (32 - prefix)) - 2
	}
}
