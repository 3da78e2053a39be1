package cidr

import "net/netip"

// Class 表示传统的 IPv4 地址类别（classful addressing）。
type Class uint8

const (
	// ClassZero 表示首字节为 0 的保留地址（0.0.0.0/8）。
	ClassZero Class = iota
	// ClassA 表示 A 类地址（1.0.0.0 – 126.255.255.255）。
	ClassA
	// ClassLoopback 表示环回地址（127.0.0.0/8）。
	ClassLoopback
	// ClassB 表示 B 类地址（128.0.0.0 – 191.255.255.255）。
	ClassB
	// ClassC 表示 C 类地址（192.0.0.0 – 223.255.255.255）。
	ClassC
	// ClassD 表示 D 类多播地址（224.0.0.0/4）。
	ClassD
	// ClassE 表示 E 类保留地址（240.0.0.0/4）。
	ClassE
)

// String 返回类别的显示标签。
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "Address with 0.x (reserved)"
	case ClassA:
		return "Class A"
	case ClassLoopback:
		return "Loopback"
	case ClassB:
		return "Class B"
	case ClassC:
		return "Class C"
	case ClassD:
		return "Class D (multicast)"
	default:
		return "Class E (reserved)"
	}
}

// ClassOf 返回地址的传统类别，仅由首字节决定。
// 非 IPv4 地址返回 ClassZero。
func ClassOf(addr netip.Addr) Class {
	if !addr.Is4() && !addr.Is4In6() {
		return ClassZero
	}
	o1 := addr.Unmap().As4()[0]
	switch {
	case o1 == 0:
		return ClassZero
	case o1 <= 126:
		return ClassA
	case o1 == 127:
		return ClassLoopback
	case o1 <= 191:
		return ClassB
	case o1 <= 223:
		return ClassC
	case o1 <= 239:
		return ClassD
	default:
		return ClassE
	}
}

// IsPrivate 报告 addr 是否为 RFC 1918 私网地址。
// 私网范围：10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16。
//
// 这是对 [netip.Addr.IsPrivate] 的包装——对 IPv4 它恰好实现
// RFC 1918 的三段判断。无效地址或非 IPv4 地址返回 false。
func IsPrivate(addr netip.Addr) bool {
	if !addr.Is4() && !addr.Is4In6() {
		return false
	}
	return addr.Unmap().IsPrivate()
}

// Classify 返回地址的分类信息：传统类别 + 是否 RFC 1918 私网。
// 两者相互独立：类别仅看首字节，私网判断看完整四字节模式。
func Classify(addr netip.Addr) Classification {
	return Classification{
		Class:   ClassOf(addr),
		Private: IsPrivate(addr),
	}
}

// Classification 包含地址的类别与私网标志。
//
// 设计决策: 使用扁平的导出字段而非方法集，调用方可直接访问
// c.Private，与值类型结构体的 Go 惯用法一致。
type Classification struct {
	// Class 是传统 IPv4 类别。
	Class Class

	// Private 表示是否为 RFC 1918 私网地址。
	Private bool
}

// String 返回分类的显示形式，私网地址追加 ", Private Internet" 后缀。
func (c Classification) String() string {
	if c.Private {
		return c.Class.String() + ", Private Internet"
	}
	return c.Class.String()
}
